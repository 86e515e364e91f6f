package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/EmundoT/deployfix/internal/types"
)

// RemediateOptions controls a remediation run.
type RemediateOptions struct {
	// DryRun plans fixes without writing anything.
	DryRun bool
	// Progress receives one increment per applied fix. Nil disables reporting.
	Progress ProgressTracker
}

// Remediator rewrites project files so they match the static-export profile.
// Decisions come only from the Analysis it is given; it never re-reads files to
// decide whether a fix is needed.
type Remediator struct {
	fs      FileSystem
	logger  *zap.Logger
	workers int

	// manifestMu serializes the package.json read-modify-write.
	manifestMu sync.Mutex
}

// RemediatorOption configures a Remediator.
type RemediatorOption func(*Remediator)

// WithRemediatorFileSystem replaces the OS file system.
func WithRemediatorFileSystem(fsys FileSystem) RemediatorOption {
	return func(r *Remediator) { r.fs = fsys }
}

// WithRemediatorLogger sets the logger.
func WithRemediatorLogger(l *zap.Logger) RemediatorOption {
	return func(r *Remediator) { r.logger = l }
}

// WithWorkers sets the size of the write worker pool.
func WithWorkers(n int) RemediatorOption {
	return func(r *Remediator) { r.workers = n }
}

// NewRemediator creates a Remediator with OS file access.
func NewRemediator(opts ...RemediatorOption) *Remediator {
	r := &Remediator{
		fs:     NewOSFileSystem(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Remediate applies every fix the analysis calls for. A failed category does not
// stop the others: the returned report lists what succeeded and the error joins
// one *WriteFailedError per failed category.
func (r *Remediator) Remediate(ctx context.Context, root string, analysis *types.Analysis, opts RemediateOptions) (*types.FixReport, error) {
	report := &types.FixReport{FixesApplied: []string{}, DryRun: opts.DryRun}

	if opts.DryRun {
		report.Planned = r.Plan(root, analysis)
		return report, nil
	}

	actions := r.plan(root, analysis)
	results := NewFixExecutor(r.workers, opts.Progress).Execute(ctx, actions)

	var errs []error
	for _, res := range results {
		if res.Error != nil {
			var werr *WriteFailedError
			if !errors.As(res.Error, &werr) {
				werr = NewWriteFailedError(res.Category, firstPath(res.Paths), res.Error)
			}
			r.logger.Error("fix failed",
				zap.Stringer("category", res.Category),
				zap.String("path", werr.Path),
				zap.Error(werr.Err))
			report.Failures = append(report.Failures, types.FixFailure{
				Category: res.Category,
				Path:     werr.Path,
				Err:      werr.Err.Error(),
			})
			errs = append(errs, werr)
			continue
		}
		r.logger.Info("fix applied", zap.Stringer("category", res.Category), zap.Strings("paths", res.Paths))
		report.FixesApplied = append(report.FixesApplied, res.Description)
	}
	report.Success = len(report.FixesApplied) > 0

	return report, errors.Join(errs...)
}

// Plan lists the fixes Remediate would apply for analysis, in category order.
func (r *Remediator) Plan(root string, analysis *types.Analysis) []types.PlannedFix {
	actions := r.plan(root, analysis)
	planned := make([]types.PlannedFix, 0, len(actions))
	for _, a := range actions {
		planned = append(planned, types.PlannedFix{
			Category:    a.category,
			Description: a.description,
			Paths:       a.paths,
		})
	}
	return planned
}

// plan maps the analysis to fix actions in fixed category order.
func (r *Remediator) plan(root string, a *types.Analysis) []fixAction {
	var actions []fixAction

	if len(a.BuildConfig.Issues) > 0 {
		actions = append(actions, fixAction{
			category:    types.FixBuildConfig,
			description: FixDescBuildConfig,
			paths:       []string{NextConfigFile},
			apply: func(context.Context) error {
				return r.writeFile(types.FixBuildConfig, root, NextConfigFile, []byte(nextConfigTemplate))
			},
		})
	}

	if len(a.Routing) > 0 {
		actions = append(actions, fixAction{
			category:    types.FixRouting,
			description: FixDescRouting,
			paths:       []string{IndexFallbackPath, NotFoundFallbackPath},
			apply:       func(context.Context) error { return r.fixRouting(root) },
		})
	}

	if !a.DeploymentFiles.Netlify {
		actions = append(actions, fixAction{
			category:    types.FixNetlify,
			description: FixDescNetlify,
			paths:       []string{NetlifyConfigFile},
			apply: func(context.Context) error {
				return r.writeFile(types.FixNetlify, root, NetlifyConfigFile, []byte(netlifyTemplate))
			},
		})
	}

	if !a.DeploymentFiles.Vercel {
		actions = append(actions, fixAction{
			category:    types.FixVercel,
			description: FixDescVercel,
			paths:       []string{VercelConfigFile},
			apply: func(context.Context) error {
				data, err := vercelTemplate()
				if err != nil {
					return NewWriteFailedError(types.FixVercel, VercelConfigFile, err)
				}
				return r.writeFile(types.FixVercel, root, VercelConfigFile, data)
			},
		})
	}

	if len(a.Dependencies.Issues) > 0 {
		actions = append(actions, fixAction{
			category:    types.FixManifest,
			description: FixDescManifest,
			paths:       []string{ManifestFile},
			apply:       func(context.Context) error { return r.fixManifest(root) },
		})
	}

	return actions
}

func (r *Remediator) fixRouting(root string) error {
	dir := filepath.Join(root, PublicDir)
	if err := r.fs.MkdirAll(dir, 0o755); err != nil {
		return NewWriteFailedError(types.FixRouting, PublicDir, err)
	}
	if err := r.writeFile(types.FixRouting, root, IndexFallbackPath, []byte(indexFallbackTemplate)); err != nil {
		return err
	}
	return r.writeFile(types.FixRouting, root, NotFoundFallbackPath, []byte(notFoundTemplate))
}

// fixManifest merges CanonicalScripts into package.json as one critical section.
func (r *Remediator) fixManifest(root string) error {
	r.manifestMu.Lock()
	defer r.manifestMu.Unlock()

	path := filepath.Join(root, ManifestFile)
	data, err := r.fs.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return NewWriteFailedError(types.FixManifest, ManifestFile, err)
	}

	merged, err := mergeScripts(data)
	if err != nil {
		return NewWriteFailedError(types.FixManifest, ManifestFile, NewParseError(ManifestFile, err))
	}
	return r.writeFile(types.FixManifest, root, ManifestFile, merged)
}

func (r *Remediator) writeFile(category types.FixCategory, root, rel string, data []byte) error {
	if err := ValidateDestPath(rel); err != nil {
		return NewWriteFailedError(category, rel, err)
	}
	if err := r.fs.WriteFile(filepath.Join(root, filepath.FromSlash(rel)), data, 0o644); err != nil {
		return NewWriteFailedError(category, rel, err)
	}
	return nil
}

func firstPath(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	return paths[0]
}
