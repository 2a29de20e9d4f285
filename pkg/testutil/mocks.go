// Package testutil holds test doubles shared by the check packages.
package testutil

import (
	"io/fs"
	"strings"
	"time"
)

// MockFS is a path-keyed in-memory file system for read-only checks.
// Paths not present in Files return ReadErr, or fs.ErrNotExist when unset.
type MockFS struct {
	Files   map[string]string
	ReadErr error
}

func (m *MockFS) ReadFile(name string) ([]byte, error) {
	if content, ok := m.Files[name]; ok {
		return []byte(content), nil
	}
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	return nil, fs.ErrNotExist
}

func (m *MockFS) Stat(name string) (fs.FileInfo, error) {
	if _, ok := m.Files[name]; ok {
		return mockFileInfo{name: name}, nil
	}
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	return nil, fs.ErrNotExist
}

// mockFileInfo is a minimal fs.FileInfo for existence probes.
type mockFileInfo struct {
	name string
}

func (m mockFileInfo) Name() string       { return m.name }
func (m mockFileInfo) Size() int64        { return 0 }
func (m mockFileInfo) Mode() fs.FileMode  { return 0o644 }
func (m mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m mockFileInfo) IsDir() bool        { return false }
func (m mockFileInfo) Sys() interface{}   { return nil }

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}
