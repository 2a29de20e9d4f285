// Package gitcheck verifies the git binary Deebo's git MCP tool shells out to.
package gitcheck

import (
	"strings"
	"time"

	"github.com/snagasuri/deebo-doctor/pkg/check"
	"github.com/snagasuri/deebo-doctor/pkg/locate"
)

// Check verifies that git is invocable and reports its version.
type Check struct {
	Timeout time.Duration // timeout for the version query (default: locate.DefaultTimeout)
	Runner  locate.Runner
}

// Run executes the git check.
func (c *Check) Run() check.Result {
	result := check.Result{Name: "git"}

	stdout, stderr, err := locate.Run(c.Runner, c.Timeout, "git", "--version")
	if err != nil {
		result.AddDetail("install git from https://git-scm.com/downloads")
		if strings.TrimSpace(stderr) != "" {
			result.AddDetailf("stderr: %s", strings.TrimSpace(stderr))
		}
		return result.Failf("git --version failed: %v", err)
	}

	raw := strings.TrimSpace(stdout)
	if raw == "" {
		raw = strings.TrimSpace(stderr)
	}
	if raw == "" {
		return result.Fail("git --version produced no output", nil)
	}

	return result.Pass(raw)
}
