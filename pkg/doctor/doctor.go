// Package doctor wires the individual checks into the fixed ordered list a
// front end runs. Checks are independent: none reads another's output, so
// the order only affects presentation.
package doctor

import (
	"github.com/snagasuri/deebo-doctor/pkg/check"
	"github.com/snagasuri/deebo-doctor/pkg/configcheck"
	"github.com/snagasuri/deebo-doctor/pkg/gitcheck"
	"github.com/snagasuri/deebo-doctor/pkg/guidecheck"
	"github.com/snagasuri/deebo-doctor/pkg/keycheck"
	"github.com/snagasuri/deebo-doctor/pkg/locate"
	"github.com/snagasuri/deebo-doctor/pkg/mcpcheck"
	"github.com/snagasuri/deebo-doctor/pkg/nodecheck"
	"github.com/snagasuri/deebo-doctor/pkg/pathcheck"
	"github.com/snagasuri/deebo-doctor/pkg/platform"
)

// Checks returns the full ordered list of doctor checks for env.
func Checks(env platform.Env) []check.Checker {
	runner := &locate.RealRunner{}
	return []check.Checker{
		&nodecheck.Check{Runner: runner},
		&gitcheck.Check{Runner: runner},
		&pathcheck.Check{Env: env, Runner: runner},
		&mcpcheck.Check{Env: env, Runner: runner, Stater: &mcpcheck.RealStater{}},
		&configcheck.Check{Env: env, FS: &configcheck.RealFileSystem{}},
		&keycheck.Check{Env: env, FS: &keycheck.RealFileSystem{}},
		&guidecheck.Check{Env: env, FS: &guidecheck.RealFileSystem{}},
	}
}

// RunAll runs every check in order and collects one result per check.
func RunAll(checks []check.Checker) []check.Result {
	results := make([]check.Result, 0, len(checks))
	for _, c := range checks {
		results = append(results, c.Run())
	}
	return results
}

// HasFailures reports whether any result failed outright.
func HasFailures(results []check.Result) bool {
	for _, r := range results {
		if r.Failed() {
			return true
		}
	}
	return false
}
