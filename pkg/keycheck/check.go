// Package keycheck verifies that Deebo's .env file holds at least one
// usable LLM API credential. Values are never printed, only their shape
// is validated against each provider's known key prefix.
package keycheck

import (
	"os"
	"strings"

	"github.com/snagasuri/deebo-doctor/pkg/check"
	"github.com/snagasuri/deebo-doctor/pkg/envfile"
	"github.com/snagasuri/deebo-doctor/pkg/platform"
)

// credential pairs a recognized variable name with its provider's key prefix.
type credential struct {
	name   string
	prefix string
}

// credentials are scanned in this order; one valid key is enough.
var credentials = []credential{
	{"OPENROUTER_API_KEY", "sk-or-"},
	{"ANTHROPIC_API_KEY", "sk-ant-"},
	{"OPENAI_API_KEY", "sk-"},
	{"GEMINI_API_KEY", "AIza"},
}

// FileSystem abstracts file reads for testability.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
}

// RealFileSystem implements FileSystem using the actual file system.
type RealFileSystem struct{}

// ReadFile reads a file's contents.
func (r *RealFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Check scans the .env file for recognized API credentials.
type Check struct {
	Env platform.Env
	FS  FileSystem
}

// Run executes the API keys check.
func (c *Check) Run() check.Result {
	result := check.Result{Name: "api-keys"}

	path := c.Env.EnvFile()
	content, err := c.FS.ReadFile(path)
	if err != nil {
		result.AddDetailf("expected env file at %s", path)
		return result.Failf("cannot read env file: %v", err)
	}

	var subs []check.Sub
	for _, cred := range credentials {
		subs = append(subs, scan(string(content), cred))
	}

	result.Status = check.Fold(subs, check.AnyPass)
	result.Details = check.DetailLines(subs)
	if result.OK() {
		result.Message = "at least one API key is configured"
	} else {
		result.Message = "no valid API key found in " + path
	}
	return result
}

func scan(content string, cred credential) check.Sub {
	value, found := envfile.First(content, cred.name)
	if !found {
		return check.SubWarn(cred.name, "not found")
	}
	if !strings.HasPrefix(value, cred.prefix) {
		return check.SubWarnf(cred.name, "may be invalid (expected prefix %q)", cred.prefix)
	}
	return check.SubPass(cred.name, "configured")
}
