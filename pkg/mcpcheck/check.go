// Package mcpcheck probes the two external MCP helper tools Deebo drives:
// desktop-commander (an npm package run through npx) and the git MCP server
// (a Python tool run through uvx).
package mcpcheck

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/snagasuri/deebo-doctor/pkg/check"
	"github.com/snagasuri/deebo-doctor/pkg/locate"
	"github.com/snagasuri/deebo-doctor/pkg/platform"
)

// DefaultTimeout is longer than the global default because npx may have to
// download the package on first invocation.
const DefaultTimeout = 60 * time.Second

const (
	desktopCommanderPkg = "@wonderwhy-er/desktop-commander@latest"
	gitMCPCommand       = "mcp-server-git"
)

// Stater abstracts file existence probes for testability.
type Stater interface {
	Stat(name string) (fs.FileInfo, error)
}

// RealStater uses the actual file system.
type RealStater struct{}

// Stat returns file info for the given path.
func (r *RealStater) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Check verifies both MCP helper tools respond.
type Check struct {
	Env     platform.Env
	Timeout time.Duration // default: DefaultTimeout
	Runner  locate.Runner
	Stater  Stater
}

// Run executes the MCP tools check.
func (c *Check) Run() check.Result {
	result := check.Result{Name: "mcp-tools"}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	subs := []check.Sub{
		c.checkDesktopCommander(timeout),
		c.checkGitMCP(timeout),
	}

	result.Status = check.Fold(subs, check.AllPass)
	result.Details = check.DetailLines(subs)
	if result.OK() {
		result.Message = "desktop-commander and git-mcp respond"
	} else {
		result.Message = "one or more MCP tools are unavailable"
	}
	return result
}

func (c *Check) checkDesktopCommander(timeout time.Duration) check.Sub {
	_, _, err := locate.Run(c.Runner, timeout, "npx", "--yes", desktopCommanderPkg, "--version")
	if err != nil {
		return check.SubFailf("desktop-commander",
			"npx invocation failed: %v (install with: npx %s setup)", err, desktopCommanderPkg)
	}
	return check.SubPass("desktop-commander", "responds via npx")
}

func (c *Check) checkGitMCP(timeout time.Duration) check.Sub {
	if c.Env.Windows() {
		return c.checkGitMCPWindows(timeout)
	}

	_, _, err := locate.Run(c.Runner, timeout, "uvx", gitMCPCommand, "--help")
	if err != nil {
		return check.SubFailf("git-mcp",
			"uvx invocation failed: %v (install uv, then: uvx %s --help)", err, gitMCPCommand)
	}
	return check.SubPass("git-mcp", "responds via uvx")
}

// checkGitMCPWindows probes the command shim instead of invoking the tool:
// spawning console shims from a non-console parent is unreliable on Windows.
func (c *Check) checkGitMCPWindows(timeout time.Duration) check.Sub {
	prefix := c.npmPrefix(timeout)
	shim := filepath.Join(prefix, gitMCPCommand+".cmd")

	if _, err := c.Stater.Stat(shim); err != nil {
		return check.SubFailf("git-mcp", "command shim not found at %s", shim)
	}
	return check.SubPassf("git-mcp", "command shim found at %s", shim)
}

// npmPrefix asks npm for its configured install prefix, falling back to the
// conventional roaming-data location when the query fails.
func (c *Check) npmPrefix(timeout time.Duration) string {
	stdout, _, err := locate.Run(c.Runner, timeout, "npm", "config", "get", "prefix")
	if err == nil {
		if prefix := strings.TrimSpace(stdout); prefix != "" {
			return prefix
		}
	}
	return filepath.Join(c.Env.AppData, "npm")
}
