package core

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/EmundoT/deployfix/internal/types"
)

// RunOptions controls one Engine.Run.
type RunOptions struct {
	// AnalyzeOnly stops after the analysis.
	AnalyzeOnly bool
	// DryRun plans fixes without writing.
	DryRun bool
	// Verify runs the build verifier after fixes were applied.
	Verify bool
}

// Engine wires Inspector, Remediator and BuildVerifier together for the CLI.
type Engine struct {
	inspector  *Inspector
	remediator *Remediator
	verifier   BuildVerifier
	ui         UICallback
	logger     *zap.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineConfig)

type engineConfig struct {
	fs       FileSystem
	ui       UICallback
	logger   *zap.Logger
	verifier BuildVerifier
	profile  types.Profile
}

// WithFileSystem replaces the OS file system for both inspection and remediation.
func WithFileSystem(fsys FileSystem) EngineOption {
	return func(c *engineConfig) { c.fs = fsys }
}

// WithUI sets the UI callback. The default is SilentUICallback.
func WithUI(ui UICallback) EngineOption {
	return func(c *engineConfig) { c.ui = ui }
}

// WithLogger sets the logger shared by all components.
func WithLogger(l *zap.Logger) EngineOption {
	return func(c *engineConfig) { c.logger = l }
}

// WithVerifier replaces the command verifier built from the profile.
func WithVerifier(v BuildVerifier) EngineOption {
	return func(c *engineConfig) { c.verifier = v }
}

// WithProfile applies a loaded .deployfix.yml.
func WithProfile(p types.Profile) EngineOption {
	return func(c *engineConfig) { c.profile = p }
}

// NewEngine creates an Engine with default dependencies
func NewEngine(opts ...EngineOption) *Engine {
	cfg := &engineConfig{
		fs:     NewOSFileSystem(),
		ui:     &SilentUICallback{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.verifier == nil {
		cfg.verifier = NewCommandVerifier(cfg.profile.Verify.CommandLine(), VerifyTimeout(cfg.profile), cfg.logger.Named("verify"))
	}

	return &Engine{
		inspector: NewInspector(
			WithInspectorFileSystem(cfg.fs),
			WithInspectorLogger(cfg.logger.Named("inspect")),
		),
		remediator: NewRemediator(
			WithRemediatorFileSystem(cfg.fs),
			WithRemediatorLogger(cfg.logger.Named("remediate")),
			WithWorkers(cfg.profile.Workers),
		),
		verifier: cfg.verifier,
		ui:       cfg.ui,
		logger:   cfg.logger,
	}
}

// Inspector returns the engine's inspector.
func (e *Engine) Inspector() *Inspector { return e.inspector }

// Remediator returns the engine's remediator.
func (e *Engine) Remediator() *Remediator { return e.remediator }

// Run analyzes root and, unless told otherwise, applies fixes and verifies the build.
// The returned result is populated as far as the run got, even when err is non-nil.
func (e *Engine) Run(ctx context.Context, root string, opts RunOptions) (*types.RunResult, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, &IOError{Path: root, Err: err}
	}

	runID := uuid.NewString()
	log := e.logger.With(zap.String("run_id", runID))
	result := &types.RunResult{RunID: runID}

	analysis, err := e.inspector.Analyze(ctx, abs)
	if err != nil {
		return nil, err
	}
	result.Analysis = analysis
	if opts.AnalyzeOnly {
		return result, nil
	}

	planned := e.remediator.Plan(abs, analysis)
	if opts.DryRun {
		report, err := e.remediator.Remediate(ctx, abs, analysis, RemediateOptions{DryRun: true})
		result.Fixes = report
		return result, err
	}
	if len(planned) == 0 {
		result.Fixes = &types.FixReport{FixesApplied: []string{}}
		return result, nil
	}

	if !e.ui.IsAutoApprove() {
		msg := fmt.Sprintf("%d fixes will be written under %s", len(planned), abs)
		if !e.ui.AskConfirmation("Apply fixes?", msg) {
			log.Info("remediation declined")
			return result, ErrAborted
		}
	}

	progress := e.ui.StartProgress(len(planned), "Applying fixes")
	report, fixErr := e.remediator.Remediate(ctx, abs, analysis, RemediateOptions{Progress: progress})
	result.Fixes = report
	if fixErr != nil {
		progress.Fail(fixErr)
	} else {
		progress.Complete()
	}

	if report.Success && opts.Verify {
		start := time.Now()
		ok, msg := e.verifier.TriggerVerification(ctx, abs)
		result.Verification = &types.VerificationResult{
			Success:  ok,
			Message:  msg,
			Duration: time.Since(start).Round(time.Millisecond).String(),
		}
		log.Info("verification finished", zap.Bool("success", ok))
	}

	return result, fixErr
}
