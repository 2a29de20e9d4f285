// Package platform carries the immutable environment context shared by
// all checks: platform identity, the relevant environment variables, and
// the Deebo installation root. Checks receive an Env at construction time
// instead of reading process-global state, so tests can inject fakes.
package platform

import (
	"os"
	"path/filepath"
	"runtime"
)

// Env is a read-only snapshot of the host environment. It is created once
// by the caller and never mutated by checks.
type Env struct {
	GOOS      string // runtime.GOOS or a fake in tests
	Home      string // user home directory
	AppData   string // %APPDATA% on Windows, empty elsewhere
	Path      string // the PATH environment variable
	DeeboPath string // Deebo installation root, default ~/.deebo
}

// FromSystem builds an Env from the running process's environment.
// deeboPath overrides the default installation root when non-empty.
func FromSystem(deeboPath string) Env {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	if deeboPath == "" {
		deeboPath = filepath.Join(home, ".deebo")
	}
	return Env{
		GOOS:      runtime.GOOS,
		Home:      home,
		AppData:   os.Getenv("APPDATA"),
		Path:      os.Getenv("PATH"),
		DeeboPath: deeboPath,
	}
}

// Windows reports whether the environment is a Windows host.
func (e Env) Windows() bool {
	return e.GOOS == "windows"
}

// PathListSeparator returns the separator used in the PATH variable.
func (e Env) PathListSeparator() string {
	if e.Windows() {
		return ";"
	}
	return ":"
}
