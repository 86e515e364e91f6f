package tui

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/EmundoT/deployfix/internal/types"
)

// captureStdout runs fn and returns everything it printed to os.Stdout.
func captureStdout(fn func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	fn()
	_ = w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// captureStderr runs fn and returns everything it printed to os.Stderr.
func captureStderr(fn func()) string {
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w
	fn()
	_ = w.Close()
	os.Stderr = old
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestPrintFunctions(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
		want []string
	}{
		{"error", func() { PrintError("Failed", "something went wrong") }, []string{"Failed", "something went wrong"}},
		{"success", func() { PrintSuccess("Fixed next.config.js") }, []string{"Fixed next.config.js"}},
		{"info", func() { PrintInfo("scanning app/") }, []string{"scanning app/"}},
		{"warning", func() { PrintWarning("Heads up", "custom config replaced") }, []string{"Heads up", "custom config replaced"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureStdout(tt.fn)
			for _, want := range tt.want {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %q, got: %q", want, output)
				}
			}
		})
	}
}

func TestRenderAnalysis(t *testing.T) {
	t.Run("with issues", func(t *testing.T) {
		a := &types.Analysis{
			Framework:       types.FrameworkNextJS,
			BuildConfig:     types.BuildConfigStatus{Exists: true, Issues: []string{"Missing static export configuration"}},
			StaticExport:    []string{"Server-side props detected in page.tsx", "Client-side routing detected in page.tsx"},
			DeploymentFiles: types.DeploymentFilesStatus{Vercel: true},
		}
		var buf bytes.Buffer
		RenderAnalysis(&buf, a)
		out := buf.String()

		for _, want := range []string{
			"framework: nextjs",
			"build_config: 1 issues",
			"static_export_issues: 2 issues",
			"Server-side props detected in page.tsx",
			"netlify.toml: missing",
			"vercel.json: present",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("missing %q in:\n%s", want, out)
			}
		}
		if strings.Contains(out, "routing_issues") {
			t.Errorf("categories without issues should be skipped:\n%s", out)
		}
	})

	t.Run("clean", func(t *testing.T) {
		var buf bytes.Buffer
		RenderAnalysis(&buf, &types.Analysis{})
		if !strings.Contains(buf.String(), "no issues found") {
			t.Errorf("expected clean message, got:\n%s", buf.String())
		}
	})
}

func TestRenderFixReport(t *testing.T) {
	t.Run("applied with failure", func(t *testing.T) {
		var buf bytes.Buffer
		RenderFixReport(&buf, &types.FixReport{
			FixesApplied: []string{"Created vercel.json configuration"},
			Success:      true,
			Failures:     []types.FixFailure{{Category: types.FixNetlify, Path: "netlify.toml", Err: "permission denied"}},
		})
		out := buf.String()
		if !strings.Contains(out, "Created vercel.json configuration") {
			t.Errorf("missing applied fix:\n%s", out)
		}
		if !strings.Contains(out, "netlify (netlify.toml): permission denied") {
			t.Errorf("missing failure:\n%s", out)
		}
		if strings.Contains(out, "Manual review required") {
			t.Errorf("successful report should not ask for manual review:\n%s", out)
		}
	})

	t.Run("nothing applied", func(t *testing.T) {
		var buf bytes.Buffer
		RenderFixReport(&buf, &types.FixReport{FixesApplied: []string{}})
		if !strings.Contains(buf.String(), "No fixes were applied. Manual review required.") {
			t.Errorf("missing manual review message:\n%s", buf.String())
		}
	})

	t.Run("dry run", func(t *testing.T) {
		var buf bytes.Buffer
		RenderFixReport(&buf, &types.FixReport{
			DryRun: true,
			Planned: []types.PlannedFix{{
				Category:    types.FixRouting,
				Description: "Created routing fallback files",
				Paths:       []string{"public/index.html", "public/404.html"},
			}},
		})
		out := buf.String()
		for _, want := range []string{"dry run", "Created routing fallback files", "public/404.html"} {
			if !strings.Contains(out, want) {
				t.Errorf("missing %q in:\n%s", want, out)
			}
		}
	})
}

func TestRenderVerification(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var buf bytes.Buffer
		RenderVerification(&buf, &types.VerificationResult{Success: true, Message: "Build successful!"})
		out := buf.String()
		for _, want := range []string{"Build successful!", "ready for deployment", "deploy:netlify", "deploy:vercel"} {
			if !strings.Contains(out, want) {
				t.Errorf("missing %q in:\n%s", want, out)
			}
		}
	})

	t.Run("failure", func(t *testing.T) {
		var buf bytes.Buffer
		RenderVerification(&buf, &types.VerificationResult{Message: "Build timed out"})
		out := buf.String()
		if !strings.Contains(out, "Build timed out") || !strings.Contains(out, "Manual intervention may be required") {
			t.Errorf("unexpected output:\n%s", out)
		}
	})
}

func TestRenderResult_SkipsMissingSections(t *testing.T) {
	var buf bytes.Buffer
	RenderResult(&buf, &types.RunResult{Analysis: &types.Analysis{}})
	out := buf.String()
	if strings.Contains(out, "Fixes Applied") || strings.Contains(out, "Next steps") {
		t.Errorf("analyze-only result rendered extra sections:\n%s", out)
	}
}

func TestPrintHelp(t *testing.T) {
	output := captureStdout(PrintHelp)
	for _, want := range []string{"deployfix [options] <project-path>", "--dry-run", "--no-verify", ".deployfix.yml", "completion"} {
		if !strings.Contains(output, want) {
			t.Errorf("help missing %q", want)
		}
	}
}
