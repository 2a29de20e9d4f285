// Package nodecheck verifies the Node.js runtime Deebo runs on.
package nodecheck

import (
	"strings"
	"time"

	"github.com/snagasuri/deebo-doctor/pkg/check"
	"github.com/snagasuri/deebo-doctor/pkg/locate"
	"github.com/snagasuri/deebo-doctor/pkg/version"
)

// SupportedMajors are the Node.js major versions Deebo is tested against.
var SupportedMajors = []int{18, 20, 22}

// Check verifies that the Node.js runtime is present and of a supported
// major version.
type Check struct {
	Timeout time.Duration // timeout for the version query (default: locate.DefaultTimeout)
	Runner  locate.Runner
}

// Run executes the Node.js version check.
func (c *Check) Run() check.Result {
	result := check.Result{Name: "node"}

	stdout, stderr, err := locate.Run(c.Runner, c.Timeout, "node", "--version")
	if err != nil {
		result.AddDetail("install Node.js 18, 20 or 22 from https://nodejs.org")
		return result.Failf("node --version failed: %v", err)
	}

	raw := strings.TrimSpace(stdout)
	if raw == "" {
		raw = strings.TrimSpace(stderr)
	}

	v, err := version.Extract(raw)
	if err != nil {
		result.AddDetail("install Node.js 18, 20 or 22 from https://nodejs.org")
		return result.Failf("could not parse node version from %q", raw)
	}

	for _, major := range SupportedMajors {
		if v.Major == major {
			return result.Passf("Node.js %s", raw)
		}
	}

	result.AddDetailf("found %s; install Node.js 18, 20 or 22 from https://nodejs.org", raw)
	return result.Failf("unsupported Node.js major version %d", v.Major)
}
