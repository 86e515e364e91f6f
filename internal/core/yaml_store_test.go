package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/EmundoT/deployfix/internal/testutil"
	"github.com/EmundoT/deployfix/internal/types"
)

func TestProfileStore_Load(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		p, err := NewProfileStore(t.TempDir()).Load()
		testutil.AssertNoError(t, err, "Load")
		testutil.AssertEqual(t, p, types.Profile{}, "profile")
		if !p.VerifyEnabled() {
			t.Error("verification should default to enabled")
		}
	})

	t.Run("full profile", func(t *testing.T) {
		root := testutil.WriteProject(t, map[string]string{
			ProfileFile: "workers: 3\nverify:\n  enabled: false\n  command: pnpm build\n  timeout: 90s\n",
		})
		p, err := NewProfileStore(root).Load()
		testutil.AssertNoError(t, err, "Load")

		want := types.Profile{
			Workers: 3,
			Verify: types.VerifyConfig{
				Enabled: testutil.BoolPtr(false),
				Command: "pnpm build",
				Timeout: "90s",
			},
		}
		testutil.AssertEqual(t, p, want, "profile")
		testutil.AssertEqual(t, VerifyTimeout(p), 90*time.Second, "timeout")
	})

	t.Run("invalid YAML", func(t *testing.T) {
		root := testutil.WriteProject(t, map[string]string{ProfileFile: "workers: [unclosed\n"})
		_, err := NewProfileStore(root).Load()
		if !IsParseError(err) {
			t.Errorf("expected ParseError, got %v", err)
		}
	})

	t.Run("invalid timeout", func(t *testing.T) {
		root := testutil.WriteProject(t, map[string]string{ProfileFile: "verify:\n  timeout: forever\n"})
		_, err := NewProfileStore(root).Load()
		if !IsParseError(err) {
			t.Fatalf("expected ParseError, got %v", err)
		}
		if !strings.Contains(err.Error(), "verify.timeout") {
			t.Errorf("error should name the field, got %v", err)
		}
	})

	t.Run("oversized file", func(t *testing.T) {
		root := t.TempDir()
		big := "# " + strings.Repeat("x", maxYAMLFileSize) + "\n"
		if err := os.WriteFile(filepath.Join(root, ProfileFile), []byte(big), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := NewProfileStore(root).Load()
		if !IsParseError(err) {
			t.Errorf("expected ParseError, got %v", err)
		}
	})
}

func TestProfileStore_Path(t *testing.T) {
	root := t.TempDir()
	store := NewProfileStore(root)
	if store.Path() != filepath.Join(root, ProfileFile) {
		t.Errorf("Path() = %s", store.Path())
	}
}

func TestYAMLStore_RequiredFileMissing(t *testing.T) {
	store := NewYAMLStore[types.Profile](t.TempDir(), "required.yml", false)
	if _, err := store.Load(); err == nil {
		t.Error("expected error for missing required file")
	}
}

func TestVerifyTimeout(t *testing.T) {
	tests := []struct {
		timeout string
		want    time.Duration
	}{
		{"", DefaultVerifyTimeout},
		{"garbage", DefaultVerifyTimeout},
		{"-5s", DefaultVerifyTimeout},
		{"45s", 45 * time.Second},
		{"10m", 10 * time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.timeout, func(t *testing.T) {
			p := types.Profile{Verify: types.VerifyConfig{Timeout: tt.timeout}}
			testutil.AssertEqual(t, VerifyTimeout(p), tt.want, "VerifyTimeout")
		})
	}
}
