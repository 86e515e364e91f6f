// Package main implements the deployfix CLI, which detects and repairs static-export
// deployment problems in Next.js projects.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/EmundoT/deployfix/cmd"
	"github.com/EmundoT/deployfix/internal/core"
	"github.com/EmundoT/deployfix/internal/tui"
	"github.com/EmundoT/deployfix/internal/types"
	"github.com/EmundoT/deployfix/internal/version"
)

const usageLine = "Usage: deployfix [options] <project_path>"

// cliOptions holds everything parsed from the command line
type cliOptions struct {
	flags       core.NonInteractiveFlags
	analyzeOnly bool
	dryRun      bool
	noVerify    bool
	watch       bool
	verbose     bool
}

// parseCommonFlags extracts flags from args
// Returns: options, positional args, first unknown flag (empty when none)
func parseCommonFlags(args []string) (cliOptions, []string, string) {
	var opts cliOptions
	var remaining []string

	for _, arg := range args {
		switch arg {
		case "--yes", "-y":
			opts.flags.Yes = true
		case "--quiet", "-q":
			opts.flags.Mode = core.OutputQuiet
		case "--json":
			opts.flags.Mode = core.OutputJSON
		case "--verbose", "-v":
			opts.verbose = true
		case "--analyze":
			opts.analyzeOnly = true
		case "--dry-run":
			opts.dryRun = true
		case "--no-verify":
			opts.noVerify = true
		case "--watch":
			opts.watch = true
		default:
			if strings.HasPrefix(arg, "-") && arg != "-" {
				return opts, nil, arg
			}
			remaining = append(remaining, arg)
		}
	}

	return opts, remaining, ""
}

// newLogger builds a zap logger writing to stderr. Normal runs only log warnings.
func newLogger(verbose bool, stderr io.Writer) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(stderr),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core)
}

// newUI picks the styled TUI for terminals and plain output everywhere else.
func newUI(opts cliOptions, stdout, stderr io.Writer) core.UICallback {
	if f, ok := stdout.(*os.File); ok && opts.flags.Mode == core.OutputNormal && isatty.IsTerminal(f.Fd()) {
		return tui.NewTUICallback(opts.flags.Yes)
	}
	return tui.NewNonInteractiveTUICallback(opts.flags).WithOutput(stdout, stderr)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, usageLine)
		return core.ExitGeneralError
	}

	switch args[0] {
	case "--help", "-h", "help":
		tui.WriteHelp(stdout)
		return core.ExitSuccess
	case "--version":
		fmt.Fprintf(stdout, "deployfix %s\n", version.GetFullVersion())
		return core.ExitSuccess
	case "completion":
		if len(args) != 2 {
			fmt.Fprintf(stderr, "Usage: deployfix completion <%s>\n", strings.Join(cmd.Shells, "|"))
			return core.ExitInvalidArguments
		}
		script, err := cmd.GenerateCompletion(args[1])
		if err != nil {
			fmt.Fprintln(stderr, err)
			return core.ExitInvalidArguments
		}
		fmt.Fprintln(stdout, script)
		return core.ExitSuccess
	}

	opts, positional, unknown := parseCommonFlags(args)
	if unknown != "" {
		fmt.Fprintf(stderr, "unknown option %s\n%s\n", unknown, usageLine)
		return core.ExitInvalidArguments
	}
	if len(positional) != 1 {
		fmt.Fprintln(stderr, usageLine)
		return core.ExitGeneralError
	}
	projectPath := positional[0]

	if _, err := os.Stat(projectPath); err != nil {
		err = core.NewPathNotFoundError(projectPath, err)
		if opts.flags.Mode == core.OutputJSON {
			return core.EmitCLIError(stdout, core.ErrCodePathNotFound, err.Error(), core.ExitGeneralError)
		}
		fmt.Fprintf(stderr, "❌ Project path does not exist: %s\n", projectPath)
		return core.ExitGeneralError
	}

	logger := newLogger(opts.verbose, stderr)
	defer func() { _ = logger.Sync() }()

	ui := newUI(opts, stdout, stderr)

	profile, err := core.NewProfileStore(projectPath).Load()
	if err != nil {
		ui.ShowWarning("Ignoring "+core.ProfileFile, err.Error())
		profile = types.Profile{}
	}

	engine := core.NewEngine(
		core.WithUI(ui),
		core.WithLogger(logger),
		core.WithProfile(profile),
	)

	if opts.watch {
		return runWatch(ctx, engine, projectPath, opts, stdout, stderr)
	}

	if opts.flags.Mode == core.OutputNormal {
		fmt.Fprintln(stdout, ui.StyleTitle("🚀 deployfix starting..."))
		fmt.Fprintf(stdout, "📁 Project path: %s\n\n", projectPath)
	}

	result, err := engine.Run(ctx, projectPath, core.RunOptions{
		AnalyzeOnly: opts.analyzeOnly,
		DryRun:      opts.dryRun,
		Verify:      !opts.noVerify && profile.VerifyEnabled(),
	})

	return report(result, err, opts, stdout, stderr)
}

// report prints the run outcome in the selected mode and picks the exit code.
func report(result *types.RunResult, err error, opts cliOptions, stdout, stderr io.Writer) int {
	if opts.flags.Mode == core.OutputJSON {
		if err != nil {
			var data interface{}
			if result != nil {
				data = result
			}
			return core.EmitCLIFailure(stdout, data, core.CLIErrorCodeForError(err), err.Error(), core.CLIExitCodeForError(err))
		}
		core.EmitCLISuccess(stdout, result)
		return core.ExitSuccess
	}

	if result != nil && opts.flags.Mode == core.OutputNormal {
		tui.RenderResult(stdout, result)
	}

	switch {
	case errors.Is(err, core.ErrAborted):
		fmt.Fprintln(stderr, "No files were changed.")
	case err != nil:
		fmt.Fprintf(stderr, "❌ %v\n", err)
	}
	return core.CLIExitCodeForError(err)
}

func runWatch(ctx context.Context, engine *core.Engine, projectPath string, opts cliOptions, stdout, stderr io.Writer) int {
	if opts.flags.Mode == core.OutputNormal {
		fmt.Fprintf(stdout, "👁 Watching %s for changes... (Ctrl+C to stop)\n", projectPath)
	}
	err := engine.Watch(ctx, projectPath, func(a *types.Analysis, err error) {
		if err != nil {
			fmt.Fprintf(stderr, "❌ %v\n", err)
			return
		}
		switch opts.flags.Mode {
		case core.OutputJSON:
			core.EmitCLISuccess(stdout, &types.RunResult{Analysis: a})
		case core.OutputNormal:
			fmt.Fprintln(stdout)
			tui.RenderAnalysis(stdout, a)
		}
	})
	if err != nil {
		fmt.Fprintf(stderr, "❌ %v\n", err)
		return core.CLIExitCodeForError(err)
	}
	return core.ExitSuccess
}
