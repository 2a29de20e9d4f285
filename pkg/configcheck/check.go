// Package configcheck validates the configuration files of the host
// applications Deebo integrates with, plus Deebo's own .env file and tools
// manifest. All files are read-only to the doctor.
package configcheck

import (
	"github.com/tidwall/gjson"

	"github.com/snagasuri/deebo-doctor/pkg/check"
	"github.com/snagasuri/deebo-doctor/pkg/envfile"
	"github.com/snagasuri/deebo-doctor/pkg/platform"
)

// kind selects the validation rule applied to a target after reading it.
type kind int

const (
	kindRegistered kind = iota // JSON containing mcpServers.deebo
	kindParseOnly              // any valid JSON
	kindEnvFile                // dotenv syntax
	kindManifest               // tools.json with both tool entries
)

// target is one named config file with its validation rule. The mcp field
// marks the MCP-capable subset used by the aggregate rule.
type target struct {
	name string
	path string
	kind kind
	mcp  bool
}

// Check validates the fixed set of configuration targets.
type Check struct {
	Env platform.Env
	FS  FileSystem
}

// targets builds the fixed per-platform target table in display order.
func (c *Check) targets() []target {
	return []target{
		{"cline", c.Env.ClineSettings(), kindRegistered, true},
		{"roo-code", c.Env.RooSettings(), kindParseOnly, true},
		{"claude-desktop", c.Env.ClaudeDesktopConfig(), kindRegistered, true},
		{"vscode-settings", c.Env.VSCodeSettings(), kindParseOnly, true},
		{".env", c.Env.EnvFile(), kindEnvFile, false},
		{"tools.json", c.Env.ToolsManifest(), kindManifest, false},
	}
}

// Run executes the config files check.
func (c *Check) Run() check.Result {
	result := check.Result{Name: "config-files"}

	var mcpSubs, coreSubs []check.Sub
	for _, t := range c.targets() {
		sub := c.checkTarget(t)
		if t.mcp {
			mcpSubs = append(mcpSubs, sub)
		} else {
			coreSubs = append(coreSubs, sub)
		}
	}

	// At least one host application must have Deebo registered, and both
	// of Deebo's own files must be intact.
	mcpStatus := check.Fold(mcpSubs, check.AnyPass)
	coreStatus := check.Fold(coreSubs, check.AllPass)

	result.Details = check.DetailLines(append(mcpSubs, coreSubs...))

	if mcpStatus == check.StatusPass && coreStatus == check.StatusPass {
		return result.Pass("configuration files are in place")
	}
	if coreStatus != check.StatusPass {
		return result.Fail("Deebo's own config files are missing or invalid", nil)
	}
	return result.Fail("no host application has Deebo configured", nil)
}

func (c *Check) checkTarget(t target) check.Sub {
	content, err := c.FS.ReadFile(t.path)
	if err != nil {
		return check.SubFailf(t.name, "cannot read %s: %v", t.path, err)
	}

	if t.kind == kindEnvFile {
		if err := envfile.Validate(string(content)); err != nil {
			return check.SubFailf(t.name, "cannot parse %s: %v", t.path, err)
		}
		return check.SubPassf(t.name, "found at %s", t.path)
	}

	doc := string(content)
	if !gjson.Valid(doc) {
		return check.SubFailf(t.name, "cannot parse %s: invalid JSON", t.path)
	}

	switch t.kind {
	case kindRegistered:
		if !gjson.Get(doc, "mcpServers.deebo").Exists() {
			return check.SubFailf(t.name, "deebo not configured in %s", t.path)
		}
	case kindManifest:
		for _, key := range []string{"tools.desktopCommander", "tools.git-mcp"} {
			if !gjson.Get(doc, key).Exists() {
				return check.SubFailf(t.name, "missing %s in %s", key, t.path)
			}
		}
	}

	return check.SubPassf(t.name, "found at %s", t.path)
}
