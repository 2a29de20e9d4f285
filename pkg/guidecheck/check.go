// Package guidecheck verifies the auxiliary guide server: its two files
// under the per-user Deebo directory, and its registration in the host
// applications that can launch it.
package guidecheck

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"

	"github.com/snagasuri/deebo-doctor/pkg/check"
	"github.com/snagasuri/deebo-doctor/pkg/platform"
)

// registrationKey is the MCP server entry the guide server registers under.
const registrationKey = "mcpServers.deebo-guide"

// FileSystem abstracts the stat and read operations for testability.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}

// RealFileSystem implements FileSystem using the actual file system.
type RealFileSystem struct{}

// Stat returns file info for the given path.
func (r *RealFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile reads a file's contents.
func (r *RealFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Check verifies the guide server's files and registrations.
type Check struct {
	Env platform.Env
	FS  FileSystem
}

// Run executes the guide server check.
func (c *Check) Run() check.Result {
	result := check.Result{Name: "guide-server"}

	subs := []check.Sub{
		c.checkFile("guide document", c.Env.GuideDoc()),
		c.checkFile("guide-server script", c.Env.GuideServerScript()),
		c.checkRegistration("cline", c.Env.ClineSettings()),
		c.checkRegistration("claude-desktop", c.Env.ClaudeDesktopConfig()),
		c.checkRegistration("cursor", c.Env.CursorMCPConfig()),
	}

	// Sub-results here are only ever pass or fail, so AllPass can in
	// practice only yield PASS or FAIL; the WARN branch stays for the
	// policy's sake.
	result.Status = check.Fold(subs, check.AllPass)
	result.Details = check.DetailLines(subs)
	if result.OK() {
		result.Message = "guide server files and registrations are in place"
	} else {
		result.Message = "guide server is not fully set up"
	}
	return result
}

func (c *Check) checkFile(name, path string) check.Sub {
	if _, err := c.FS.Stat(path); err != nil {
		return check.SubFailf(name, "missing at %s", path)
	}
	return check.SubPassf(name, "found at %s", filepath.Clean(path))
}

func (c *Check) checkRegistration(name, path string) check.Sub {
	content, err := c.FS.ReadFile(path)
	if err != nil {
		return check.SubFailf(name, "cannot read %s: %v", path, err)
	}

	doc := string(content)
	if !gjson.Valid(doc) {
		return check.SubFailf(name, "cannot parse %s: invalid JSON", path)
	}
	if !gjson.Get(doc, registrationKey).Exists() {
		return check.SubFailf(name, "deebo-guide not registered in %s", path)
	}
	return check.SubPass(name, "deebo-guide registered")
}
