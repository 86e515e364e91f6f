package core

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/EmundoT/deployfix/internal/testutil"
	"github.com/EmundoT/deployfix/internal/types"
)

func TestIsRelevantChange(t *testing.T) {
	root := "/project"
	tests := []struct {
		name string
		path string
		op   fsnotify.Op
		want bool
	}{
		{"build config", "next.config.js", fsnotify.Write, true},
		{"manifest", "package.json", fsnotify.Write, true},
		{"netlify removed", "netlify.toml", fsnotify.Remove, true},
		{"vercel created", "vercel.json", fsnotify.Create, true},
		{"fallback page", "public/404.html", fsnotify.Create, true},
		{"page source", "app/blog/page.tsx", fsnotify.Write, true},
		{"workflow", ".github/workflows/deploy.yml", fsnotify.Create, true},
		{"chmod only", "package.json", fsnotify.Chmod, false},
		{"own temp file", ".package.json.tmp-1234", fsnotify.Create, false},
		{"readme", "README.md", fsnotify.Write, false},
		{"node_modules", "node_modules/next/package.json", fsnotify.Write, false},
		{"outside root", "../other/package.json", fsnotify.Write, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := fsnotify.Event{Name: filepath.Join(root, filepath.FromSlash(tt.path)), Op: tt.op}
			if got := isRelevantChange(root, ev); got != tt.want {
				t.Errorf("isRelevantChange(%s, %v) = %v, want %v", tt.path, tt.op, got, tt.want)
			}
		})
	}
}

func TestWatchDirs(t *testing.T) {
	root := testutil.WriteProject(t, map[string]string{
		"public/index.html":        "",
		"app/page.tsx":             "",
		"app/blog/page.tsx":        "",
		".github/workflows/ci.yml": "",
		"node_modules/x/index.js":  "",
	})

	got := map[string]bool{}
	for _, d := range watchDirs(root) {
		rel, _ := filepath.Rel(root, d)
		got[filepath.ToSlash(rel)] = true
	}
	for _, want := range []string{".", "public", ".github", ".github/workflows", "app", "app/blog"} {
		if !got[want] {
			t.Errorf("expected %s to be watched, got %v", want, got)
		}
	}
	if got["node_modules"] || got["node_modules/x"] {
		t.Error("node_modules should not be watched")
	}
}

func TestEngine_Watch_ReanalyzesOnChange(t *testing.T) {
	root := testutil.WriteProject(t, testutil.BrokenProject())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	analyses := make(chan *types.Analysis, 4)
	done := make(chan error, 1)
	go func() {
		done <- NewEngine().Watch(ctx, root, func(a *types.Analysis, err error) {
			if err == nil {
				analyses <- a
			}
		})
	}()

	// Keep touching the file until the watcher is up and reports it. The
	// interval is longer than the debounce so each write can fire.
	deadline := time.After(8 * time.Second)
	tick := time.NewTicker(time.Second)
	defer tick.Stop()
	for {
		select {
		case a := <-analyses:
			if !a.BuildConfig.Exists {
				t.Errorf("analysis should see the new next.config.js: %+v", a.BuildConfig)
			}
			cancel()
			if err := <-done; err != nil {
				t.Errorf("Watch() error = %v", err)
			}
			return
		case <-tick.C:
			testutil.WriteFile(t, root, NextConfigFile, testutil.CleanNextConfig)
		case <-deadline:
			t.Fatal("no re-analysis within 8s")
		}
	}
}

func TestEngine_Watch_MissingRoot(t *testing.T) {
	err := NewEngine().Watch(context.Background(), filepath.Join(t.TempDir(), "gone"), func(*types.Analysis, error) {})
	if !IsPathNotFound(err) {
		t.Errorf("Watch() error = %v, want PathNotFoundError", err)
	}
}
