package core

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/EmundoT/deployfix/internal/types"
)

// watchDebounce collapses bursts of editor writes into one re-analysis.
const watchDebounce = 500 * time.Millisecond

// Watch re-analyzes root whenever a deployment artifact changes and hands each
// fresh Analysis to onChange. It blocks until ctx is cancelled.
func (e *Engine) Watch(ctx context.Context, root string, onChange func(*types.Analysis, error)) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return &IOError{Path: root, Err: err}
	}
	if _, err := e.inspector.Analyze(ctx, abs); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range watchDirs(abs) {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		e.logger.Debug("watching directory", zap.String("dir", dir))
	}

	var (
		debounce *time.Timer
		fire     = make(chan struct{}, 1)
	)
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isRelevantChange(abs, event) {
				continue
			}
			// Directories created under app/ or public/ need their own watch.
			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			analysis, err := e.inspector.Analyze(ctx, abs)
			if ctx.Err() != nil {
				return nil
			}
			onChange(analysis, err)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.logger.Warn("watch error", zap.Error(err))
		}
	}
}

// watchDirs returns root plus every existing directory the inspector reads from.
func watchDirs(root string) []string {
	dirs := []string{root}
	for _, rel := range []string{PublicDir, ".github", WorkflowsPath} {
		dir := filepath.Join(root, filepath.FromSlash(rel))
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}

	appDir := filepath.Join(root, AppDir)
	_ = filepath.WalkDir(appDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs
}

// isRelevantChange filters out our own temp files and files the inspector ignores.
func isRelevantChange(root string, event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") && strings.Contains(base, ".tmp-") {
		return false
	}

	rel, err := filepath.Rel(root, event.Name)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	switch rel {
	case NextConfigFile, ManifestFile, NetlifyConfigFile, VercelConfigFile, PublicDir, AppDir, ".github", WorkflowsPath:
		return true
	}
	for _, prefix := range []string{PublicDir + "/", AppDir + "/", ".github/"} {
		if strings.HasPrefix(rel, prefix) {
			return true
		}
	}
	return false
}
