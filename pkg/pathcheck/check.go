// Package pathcheck resolves the tool executables Deebo invokes at runtime
// and inspects the PATH variable for the directories they usually live in.
package pathcheck

import (
	"strings"
	"time"

	"github.com/snagasuri/deebo-doctor/pkg/check"
	"github.com/snagasuri/deebo-doctor/pkg/locate"
	"github.com/snagasuri/deebo-doctor/pkg/platform"
)

// tool pairs an executable name with its platform-specific install hints.
type tool struct {
	name     string
	hintUnix string
	hintWin  string
}

// tools are resolved in this order; their names appear verbatim in details.
var tools = []tool{
	{"node", "install Node.js via your package manager or https://nodejs.org", "install Node.js from https://nodejs.org (check 'Add to PATH' in the installer)"},
	{"npm", "npm ships with Node.js; reinstall Node.js", "npm ships with Node.js; reinstall Node.js"},
	{"npx", "npx ships with npm >= 5.2; update npm", "npx ships with npm >= 5.2; update npm"},
	{"uvx", "install uv: curl -LsSf https://astral.sh/uv/install.sh | sh", "install uv: powershell -c \"irm https://astral.sh/uv/install.ps1 | iex\""},
	{"git", "install git via your package manager or https://git-scm.com", "install Git for Windows from https://git-scm.com/download/win"},
}

// expectedFragments lists directory fragments the PATH variable should
// contain for the tools above to resolve.
func expectedFragments(windows bool) []string {
	if windows {
		return []string{"nodejs", "npm"}
	}
	return []string{"/usr/local/bin", "/usr/bin", ".local/bin"}
}

// troubleshooting is appended to every aggregate result.
const troubleshooting = `If a tool is missing, install it and open a new terminal so PATH changes take effect.
If a tool is installed but not found, add its directory to PATH in your shell profile.
Run 'deebo-doctor paths' again afterwards to re-verify.`

// Check resolves Deebo's helper executables and inspects PATH.
type Check struct {
	Env     platform.Env
	Timeout time.Duration
	Runner  locate.Runner
}

// Run executes the tool paths check.
func (c *Check) Run() check.Result {
	result := check.Result{Name: "tool-paths"}

	locator := &locate.Locator{Windows: c.Env.Windows(), Timeout: c.Timeout, Runner: c.Runner}

	var subs []check.Sub
	for _, t := range tools {
		path, err := locator.Resolve(t.name)
		if err != nil {
			hint := t.hintUnix
			if c.Env.Windows() {
				hint = t.hintWin
			}
			subs = append(subs, check.SubFailf(t.name, "not found (%s)", hint))
			continue
		}
		subs = append(subs, check.SubPass(t.name, path))
	}

	subs = append(subs, c.inspectPath())

	result.Status = check.Fold(subs, check.AllPass)
	result.Details = check.DetailLines(subs)
	for _, line := range strings.Split(troubleshooting, "\n") {
		result.AddDetail(line)
	}

	switch result.Status {
	case check.StatusPass:
		result.Message = "all tools resolved"
	case check.StatusWarn:
		result.Message = "tools resolved, but PATH is missing expected directories"
	default:
		result.Message = "one or more tools could not be resolved"
	}
	return result
}

// inspectPath checks PATH for the expected directory fragments.
func (c *Check) inspectPath() check.Sub {
	entries := strings.Split(c.Env.Path, c.Env.PathListSeparator())

	var missing []string
	for _, fragment := range expectedFragments(c.Env.Windows()) {
		found := false
		for _, entry := range entries {
			if strings.Contains(entry, fragment) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, fragment)
		}
	}

	if len(missing) > 0 {
		return check.SubWarnf("PATH", "missing expected directories: %s", strings.Join(missing, ", "))
	}
	return check.SubPass("PATH", "contains all expected directories")
}
