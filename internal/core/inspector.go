package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/EmundoT/deployfix/internal/types"
)

// Inspector reads a project and reports deviations from the static-export profile.
// It never writes.
type Inspector struct {
	fs      FileSystem
	matcher ConfigMatcher
	logger  *zap.Logger
}

// InspectorOption configures an Inspector.
type InspectorOption func(*Inspector)

// WithInspectorFileSystem replaces the OS file system.
func WithInspectorFileSystem(fsys FileSystem) InspectorOption {
	return func(i *Inspector) { i.fs = fsys }
}

// WithConfigMatcher replaces the substring matcher used on next.config.js.
func WithConfigMatcher(m ConfigMatcher) InspectorOption {
	return func(i *Inspector) { i.matcher = m }
}

// WithInspectorLogger sets the logger.
func WithInspectorLogger(l *zap.Logger) InspectorOption {
	return func(i *Inspector) { i.logger = l }
}

// NewInspector creates an Inspector with OS file access and substring matching.
func NewInspector(opts ...InspectorOption) *Inspector {
	i := &Inspector{
		fs:      NewOSFileSystem(),
		matcher: NewSubstringMatcher(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Analyze inspects root. It fails only when root itself is missing or unreadable;
// every missing or broken project file is reported as an issue instead.
func (i *Inspector) Analyze(ctx context.Context, root string) (*types.Analysis, error) {
	if err := i.checkRoot(root); err != nil {
		return nil, err
	}

	var (
		framework    types.FrameworkKind
		buildConfig  types.BuildConfigStatus
		routing      []string
		dependencies types.DependencyStatus
		staticExport []string
		deployFiles  types.DeploymentFilesStatus
	)

	// Each check writes only its own variable.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var rule string
		framework, rule = detectFramework(i.fs, root)
		i.logger.Debug("framework detected", zap.Stringer("framework", framework), zap.String("rule", rule))
		return nil
	})
	g.Go(func() error {
		buildConfig = i.checkBuildConfig(root)
		return nil
	})
	g.Go(func() error {
		routing = i.checkRouting(root)
		return nil
	})
	g.Go(func() error {
		dependencies = i.checkDependencies(root)
		return nil
	})
	g.Go(func() error {
		var err error
		staticExport, err = i.scanStaticExport(gctx, root)
		return err
	})
	g.Go(func() error {
		deployFiles = i.checkDeploymentFiles(root)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	analysis := &types.Analysis{
		Root:            root,
		Framework:       framework,
		BuildConfig:     buildConfig,
		Routing:         routing,
		Dependencies:    dependencies,
		StaticExport:    staticExport,
		DeploymentFiles: deployFiles,
	}
	i.logger.Info("analysis complete",
		zap.String("root", root),
		zap.Int("issues", analysis.TotalIssues()))
	return analysis, nil
}

func (i *Inspector) checkRoot(root string) error {
	info, err := i.fs.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewPathNotFoundError(root, err)
		}
		return &IOError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return &IOError{Path: root, Err: ErrNotDirectory}
	}
	return nil
}

func (i *Inspector) checkBuildConfig(root string) types.BuildConfigStatus {
	path := filepath.Join(root, NextConfigFile)
	if !exists(i.fs, path) {
		return types.BuildConfigStatus{Issues: []string{IssueMissingNextConfig}}
	}

	data, err := i.fs.ReadFile(path)
	if err != nil {
		i.logger.Warn("cannot read build config", zap.String("path", path), zap.Error(err))
		return types.BuildConfigStatus{Exists: true, Issues: []string{IssueUnreadableNextConfig}}
	}
	content := string(data)

	status := types.BuildConfigStatus{
		Exists:               true,
		HasStaticExport:      i.matcher.Has(content, MarkerStaticExport),
		HasTrailingSlash:     i.matcher.Has(content, MarkerTrailingSlash),
		HasUnoptimizedImages: i.matcher.Has(content, MarkerUnoptimizedImages),
		Issues:               []string{},
	}
	if !status.HasStaticExport {
		status.Issues = append(status.Issues, IssueMissingStaticExport)
	}
	if !status.HasTrailingSlash {
		status.Issues = append(status.Issues, IssueMissingTrailingSlash)
	}
	if !status.HasUnoptimizedImages {
		status.Issues = append(status.Issues, IssueMissingUnoptimized)
	}
	return status
}

func (i *Inspector) checkRouting(root string) []string {
	issues := []string{}
	if !exists(i.fs, filepath.Join(root, IndexFallbackPath)) {
		issues = append(issues, IssueMissingIndexFallback)
	}
	if !exists(i.fs, filepath.Join(root, NotFoundFallbackPath)) {
		issues = append(issues, IssueMissingNotFoundPage)
	}
	return issues
}

func (i *Inspector) checkDependencies(root string) types.DependencyStatus {
	path := filepath.Join(root, ManifestFile)
	data, err := i.fs.ReadFile(path)
	if err != nil {
		if !exists(i.fs, path) {
			return types.DependencyStatus{Issues: []string{IssueMissingManifest}}
		}
		i.logger.Warn("cannot read manifest", zap.String("path", path), zap.Error(err))
		return types.DependencyStatus{PackageManifestExists: true, Issues: []string{IssueMalformedManifest}}
	}

	manifest, err := parsePackageManifest(data)
	if err != nil {
		i.logger.Warn("manifest is not valid JSON", zap.Error(NewParseError(ManifestFile, err)))
		return types.DependencyStatus{PackageManifestExists: true, Issues: []string{IssueMalformedManifest}}
	}

	status := types.DependencyStatus{PackageManifestExists: true, Issues: []string{}}
	for _, script := range RequiredScripts {
		if _, ok := manifest.Scripts[script]; !ok {
			status.Issues = append(status.Issues, fmt.Sprintf(IssueMissingScriptFmt, script))
		}
	}
	return status
}

// scanStaticExport searches app/ page sources for patterns a static export cannot serve.
// Unreadable files are skipped.
func (i *Inspector) scanStaticExport(ctx context.Context, root string) ([]string, error) {
	issues := []string{}
	appDir := filepath.Join(root, AppDir)
	if !exists(i.fs, appDir) {
		return issues, nil
	}

	files, err := i.fs.WalkFiles(appDir, PageSourceExt)
	if err != nil {
		i.logger.Warn("cannot walk app directory", zap.String("path", appDir), zap.Error(err))
		return issues, nil
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := i.fs.ReadFile(file)
		if err != nil {
			i.logger.Debug("skipping unreadable source", zap.String("path", file), zap.Error(err))
			continue
		}
		content := string(data)
		name := filepath.Base(file)
		for _, p := range staticExportPatterns {
			if p.matches(content) {
				issues = append(issues, fmt.Sprintf(p.issueFmt, name))
			}
		}
	}
	return issues, nil
}

func (i *Inspector) checkDeploymentFiles(root string) types.DeploymentFilesStatus {
	return types.DeploymentFilesStatus{
		Netlify:    exists(i.fs, filepath.Join(root, NetlifyConfigFile)),
		Vercel:     exists(i.fs, filepath.Join(root, VercelConfigFile)),
		CIWorkflow: exists(i.fs, filepath.Join(root, filepath.FromSlash(WorkflowsPath))),
	}
}
