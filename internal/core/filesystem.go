package core

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileSystem abstracts file system operations for testing
//
//go:generate mockgen -source=filesystem.go -destination=filesystem_mock_test.go -package=core
type FileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	// WalkFiles returns every regular file under root with the given extension, sorted.
	WalkFiles(root, ext string) ([]string, error)
}

// OSFileSystem implements FileSystem using standard os package
type OSFileSystem struct{}

// NewOSFileSystem creates a new OSFileSystem
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Stat returns file info
func (f *OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads a whole file
func (f *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile replaces path with data. The content is written to a temp file in the
// same directory and renamed over the target, so readers never see a partial file.
func (f *OSFileSystem) WriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// MkdirAll creates a directory path
func (f *OSFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// WalkFiles recursively lists files under root whose name ends in ext.
// Unreadable subdirectories are skipped rather than aborting the walk.
func (f *OSFileSystem) WalkFiles(root, ext string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && strings.HasSuffix(d.Name(), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ValidateDestPath ensures destination path is safe and doesn't allow path traversal
func ValidateDestPath(destPath string) error {
	cleaned := filepath.Clean(destPath)

	if strings.HasPrefix(destPath, "/") || strings.HasPrefix(destPath, "\\") {
		return fmt.Errorf("invalid destination path: %s (absolute paths are not allowed)", destPath)
	}

	// Windows drive letters are rejected on every platform
	if len(destPath) >= 2 && destPath[1] == ':' && destPath[0] >= 'A' && destPath[0] <= 'Z' ||
		len(destPath) >= 2 && destPath[1] == ':' && destPath[0] >= 'a' && destPath[0] <= 'z' {
		return fmt.Errorf("invalid destination path: %s (absolute paths are not allowed)", destPath)
	}

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("invalid destination path: %s (absolute paths are not allowed)", destPath)
	}

	if strings.HasPrefix(cleaned, "..") || strings.Contains(cleaned, string(filepath.Separator)+"..") {
		return fmt.Errorf("invalid destination path: %s (path traversal with .. is not allowed)", destPath)
	}

	return nil
}

// exists reports whether path exists. Any Stat error counts as absent.
func exists(fsys FileSystem, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}
