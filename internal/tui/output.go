package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/EmundoT/deployfix/internal/types"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	styleErr     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleCard    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).BorderForeground(lipgloss.Color("238"))
)

// PrintError displays an error message with styling to the terminal.
func PrintError(title, msg string) { fmt.Println(styleErr.Render("✖ " + title)); fmt.Println(msg) }

// PrintSuccess displays a success message with styling to the terminal.
func PrintSuccess(msg string) { fmt.Println(styleSuccess.Render("✔ " + msg)) }

// PrintInfo displays an informational message to the terminal.
func PrintInfo(msg string) {
	fmt.Println(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(msg))
}

// PrintWarning displays a warning message with styling to the terminal.
func PrintWarning(title, msg string) { fmt.Println(styleWarn.Render("! " + title)); fmt.Println(msg) }

// StyleTitle applies title styling to the given text string.
func StyleTitle(text string) string { return styleTitle.Render(text) }

// RenderAnalysis writes the per-category issue summary.
func RenderAnalysis(w io.Writer, a *types.Analysis) {
	fmt.Fprintln(w, styleTitle.Render("Analysis Results"))
	fmt.Fprintf(w, "  framework: %s\n", a.Framework)

	clean := true
	for _, s := range a.Summaries() {
		if s.Issues == 0 {
			continue
		}
		clean = false
		fmt.Fprintln(w, styleWarn.Render(fmt.Sprintf("  ⚠ %s: %d issues", s.Name, s.Issues)))
	}
	if clean {
		fmt.Fprintln(w, styleSuccess.Render("  ✔ no issues found"))
	}

	var details []string
	details = append(details, a.BuildConfig.Issues...)
	details = append(details, a.Routing...)
	details = append(details, a.Dependencies.Issues...)
	details = append(details, a.StaticExport...)
	if len(details) > 0 {
		var body string
		for i, d := range details {
			if i > 0 {
				body += "\n"
			}
			body += "• " + d
		}
		fmt.Fprintln(w, styleCard.Render(body))
	}

	fmt.Fprintln(w, styleDim.Render(fmt.Sprintf("  netlify.toml: %s  vercel.json: %s  workflows: %s",
		presence(a.DeploymentFiles.Netlify),
		presence(a.DeploymentFiles.Vercel),
		presence(a.DeploymentFiles.CIWorkflow))))
}

// RenderFixReport writes the applied, planned and failed fixes.
func RenderFixReport(w io.Writer, r *types.FixReport) {
	if r.DryRun {
		fmt.Fprintln(w, styleTitle.Render("Planned Fixes (dry run)"))
		if len(r.Planned) == 0 {
			fmt.Fprintln(w, styleDim.Render("  nothing to do"))
		}
		for _, p := range r.Planned {
			fmt.Fprintf(w, "  • %s\n", p.Description)
			for _, path := range p.Paths {
				fmt.Fprintln(w, styleDim.Render("      "+path))
			}
		}
		return
	}

	fmt.Fprintln(w, styleTitle.Render("Fixes Applied"))
	for _, f := range r.FixesApplied {
		fmt.Fprintln(w, styleSuccess.Render("  ✅ "+f))
	}
	for _, f := range r.Failures {
		fmt.Fprintln(w, styleErr.Render(fmt.Sprintf("  ✖ %s (%s): %s", f.Category, f.Path, f.Err)))
	}
	if !r.Success {
		fmt.Fprintln(w, styleErr.Render("\n❌ No fixes were applied. Manual review required."))
	}
}

// RenderVerification writes the build check outcome and the deployment next steps.
func RenderVerification(w io.Writer, v *types.VerificationResult) {
	if !v.Success {
		fmt.Fprintln(w, styleErr.Render("❌ "+v.Message))
		fmt.Fprintln(w, "🔍 Manual intervention may be required")
		return
	}
	fmt.Fprintln(w, styleSuccess.Render("✅ "+v.Message))
	fmt.Fprintln(w, "\n🎉 Project is ready for deployment!")
	fmt.Fprintln(w, styleTitle.Render("\nNext steps:"))
	fmt.Fprintln(w, "  1. For Netlify: Run 'npm run deploy:netlify' or drag 'out' folder to Netlify")
	fmt.Fprintln(w, "  2. For Vercel: Run 'npm run deploy:vercel' or connect GitHub repo")
	fmt.Fprintln(w, "  3. For GitHub Pages: Push to GitHub and enable Pages with 'out' folder")
}

// RenderResult writes every populated section of a run.
func RenderResult(w io.Writer, r *types.RunResult) {
	if r.Analysis != nil {
		RenderAnalysis(w, r.Analysis)
	}
	if r.Fixes != nil {
		fmt.Fprintln(w)
		RenderFixReport(w, r.Fixes)
	}
	if r.Verification != nil {
		fmt.Fprintln(w)
		RenderVerification(w, r.Verification)
	}
}

func presence(ok bool) string {
	if ok {
		return "present"
	}
	return "missing"
}

// PrintHelp displays usage information for deployfix.
func PrintHelp() {
	WriteHelp(os.Stdout)
}

// WriteHelp writes the usage text to w.
func WriteHelp(w io.Writer) {
	fmt.Fprintln(w, styleTitle.Render("deployfix"))
	fmt.Fprintln(w, "Detect and fix static-export deployment problems in Next.js projects")
	fmt.Fprintln(w, "\nUsage:")
	fmt.Fprintln(w, "  deployfix [options] <project-path>")
	fmt.Fprintln(w, "  deployfix completion <shell>")
	fmt.Fprintln(w, "\nOptions:")
	fmt.Fprintln(w, "  --analyze           Report issues without writing anything")
	fmt.Fprintln(w, "  --dry-run           Show which files would be written")
	fmt.Fprintln(w, "  --no-verify         Skip the build check after fixes")
	fmt.Fprintln(w, "  --watch             Re-analyze whenever deployment files change")
	fmt.Fprintln(w, "  --yes, -y           Apply fixes without asking")
	fmt.Fprintln(w, "  --quiet, -q         Minimal output")
	fmt.Fprintln(w, "  --json              JSON output")
	fmt.Fprintln(w, "  --verbose, -v       Debug logging to stderr")
	fmt.Fprintln(w, "  --version           Print version information")
	fmt.Fprintln(w, "\nConfiguration:")
	fmt.Fprintln(w, "  <project-path>/.deployfix.yml (optional)")
	fmt.Fprintln(w, "    workers: 4")
	fmt.Fprintln(w, "    verify:")
	fmt.Fprintln(w, "      enabled: true")
	fmt.Fprintln(w, "      command: npm run build      # split on spaces, no quoting")
	fmt.Fprintln(w, "      # args: [npm, run, build]  # exact argv, overrides command")
	fmt.Fprintln(w, "      timeout: 300s")
	fmt.Fprintln(w, "\nNote:")
	fmt.Fprintln(w, "  A misconfigured next.config.js is replaced entirely; custom settings in it are lost.")
	fmt.Fprintln(w, "\nExamples:")
	fmt.Fprintln(w, "  deployfix ./my-site")
	fmt.Fprintln(w, "  deployfix --analyze --json ./my-site")
	fmt.Fprintln(w, "  deployfix --yes --no-verify ./my-site")
	fmt.Fprintln(w, "  deployfix completion bash > /etc/bash_completion.d/deployfix")
}
