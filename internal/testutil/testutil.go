// Package testutil provides shared test helpers for deployfix packages:
// on-disk project fixtures and go-cmp based assertions.
package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

// ============================================================================
// Project Fixtures
// ============================================================================

// CleanNextConfig satisfies every static-export marker.
const CleanNextConfig = `/** @type {import('next').NextConfig} */
const nextConfig = {
  output: "export",
  trailingSlash: true,
  images: { unoptimized: true },
}

module.exports = nextConfig
`

// CleanManifest carries the scripts the dependency check requires.
const CleanManifest = `{
  "name": "portfolio",
  "version": "1.0.0",
  "scripts": {
    "build": "next build",
    "start": "next start"
  },
  "dependencies": {
    "next": "14.1.0",
    "react": "18.2.0"
  }
}
`

// CleanProject returns the files of a Next.js project with no issues and both
// hosting configs present. Running fixes on it must write nothing.
func CleanProject() map[string]string {
	return map[string]string{
		"next.config.js":     CleanNextConfig,
		"package.json":       CleanManifest,
		"public/index.html":  "<html></html>",
		"public/404.html":    "<html></html>",
		"netlify.toml":       "[build]\n",
		"vercel.json":        "{}\n",
		"app/page.tsx":       "export default function Home() { return null }\n",
		"app/about/page.tsx": "export default function About() { return null }\n",
	}
}

// BrokenProject returns a bare Next.js project missing every artifact.
func BrokenProject() map[string]string {
	return map[string]string{
		"package.json": `{
  "name": "portfolio",
  "dependencies": {
    "next": "14.1.0"
  }
}
`,
	}
}

// WriteProject creates a temp directory populated with files (slash-separated
// relative paths) and returns its path.
func WriteProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		WriteFile(t, root, rel, content)
	}
	return root
}

// WriteFile writes content at root/rel, creating parent directories.
func WriteFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

// ReadFile returns the content at root/rel, failing the test if it is missing.
func ReadFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return string(data)
}

// Snapshot returns every regular file under root keyed by slash-separated
// relative path. Useful for asserting that a run wrote nothing or is idempotent.
func Snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	files := map[string]string{}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("snapshot %s: %v", root, err)
	}
	return files
}

// SortedKeys returns the keys of m in order.
func SortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ============================================================================
// Pointer Helpers
// ============================================================================

// BoolPtr creates a pointer to a bool - useful for optional profile fields.
func BoolPtr(b bool) *bool {
	return &b
}

// ============================================================================
// Assertions
// ============================================================================

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error, msg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: expected error, got nil", msg)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: expected no error, got: %v", msg, err)
	}
}

// AssertEqual fails the test with a go-cmp diff when got != want.
func AssertEqual[T any](t *testing.T, got, want T, msg string, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", msg, diff)
	}
}

// AssertYAMLRoundTrip marshals v to YAML and back, failing on any difference.
func AssertYAMLRoundTrip[T any](t *testing.T, original T) {
	t.Helper()
	data, err := yaml.Marshal(original)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var parsed T
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	AssertEqual(t, parsed, original, "yaml round-trip")
}
