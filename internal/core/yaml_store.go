package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/EmundoT/deployfix/internal/types"
)

// maxYAMLFileSize caps .deployfix.yml at 1 MB. A real profile is a few hundred bytes.
const maxYAMLFileSize = 1 << 20

// YAMLStore reads one YAML document of type T.
type YAMLStore[T any] struct {
	rootDir      string
	filename     string
	allowMissing bool // missing file loads as the zero value
}

// NewYAMLStore creates a store for rootDir/filename.
func NewYAMLStore[T any](rootDir, filename string, allowMissing bool) *YAMLStore[T] {
	return &YAMLStore[T]{
		rootDir:      rootDir,
		filename:     filename,
		allowMissing: allowMissing,
	}
}

// Path returns the full file path
func (s *YAMLStore[T]) Path() string {
	return filepath.Join(s.rootDir, s.filename)
}

// Load reads the document. Oversized or invalid files yield a *ParseError.
func (s *YAMLStore[T]) Load() (T, error) {
	var result T

	info, err := os.Stat(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && s.allowMissing {
			return result, nil
		}
		return result, err
	}
	if info.Size() > maxYAMLFileSize {
		return result, NewParseError(s.filename, fmt.Errorf("file exceeds maximum size (%d bytes > %d byte limit)", info.Size(), maxYAMLFileSize))
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		return result, err
	}

	if err := yaml.Unmarshal(data, &result); err != nil {
		return result, NewParseError(s.filename, err)
	}
	return result, nil
}

// ProfileStore loads the optional per-project .deployfix.yml.
type ProfileStore struct {
	store *YAMLStore[types.Profile]
}

// NewProfileStore creates a store rooted at the project directory.
func NewProfileStore(root string) *ProfileStore {
	return &ProfileStore{store: NewYAMLStore[types.Profile](root, ProfileFile, true)}
}

// Path returns the location of .deployfix.yml.
func (p *ProfileStore) Path() string { return p.store.Path() }

// Load returns the profile, or the zero Profile when the file is absent.
// Unknown timeout strings are a *ParseError.
func (p *ProfileStore) Load() (types.Profile, error) {
	profile, err := p.store.Load()
	if err != nil {
		return types.Profile{}, err
	}
	if profile.Verify.Timeout != "" {
		if _, err := time.ParseDuration(profile.Verify.Timeout); err != nil {
			return types.Profile{}, NewParseError(ProfileFile, fmt.Errorf("verify.timeout: %w", err))
		}
	}
	return profile, nil
}

// VerifyTimeout resolves the configured timeout, falling back to DefaultVerifyTimeout.
func VerifyTimeout(profile types.Profile) time.Duration {
	if d, err := time.ParseDuration(profile.Verify.Timeout); err == nil && d > 0 {
		return d
	}
	return DefaultVerifyTimeout
}
