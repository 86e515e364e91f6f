package core

import (
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
)

// ============================================================================
// Gomock Test Helpers
// ============================================================================

// setupMocks creates all mock dependencies with gomock
func setupMocks(t *testing.T) (*gomock.Controller, *MockFileSystem, *MockBuildVerifier) {
	ctrl := gomock.NewController(t)
	return ctrl, NewMockFileSystem(ctrl), NewMockBuildVerifier(ctrl)
}

// fakeFileInfo is the os.FileInfo handed out by mocked Stat calls.
type fakeFileInfo struct {
	name string
	dir  bool
}

func (f fakeFileInfo) Name() string { return f.name }
func (f fakeFileInfo) Size() int64  { return 0 }
func (f fakeFileInfo) Mode() os.FileMode {
	if f.dir {
		return os.ModeDir | 0o755
	}
	return 0o644
}
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.dir }
func (f fakeFileInfo) Sys() any           { return nil }

// stubOpenDir makes Stat succeed for dir as a directory.
func stubOpenDir(fs *MockFileSystem, dir string) {
	fs.EXPECT().Stat(dir).Return(fakeFileInfo{name: dir, dir: true}, nil).AnyTimes()
}
