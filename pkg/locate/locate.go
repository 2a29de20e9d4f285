package locate

import (
	"fmt"
	"strings"
	"time"
)

// Locator resolves executables on PATH by invoking the platform's search
// command ("where" on Windows, "which" elsewhere), the same way a user
// would at a shell prompt. The first line of output is the resolved path.
type Locator struct {
	Windows bool
	Timeout time.Duration // defaults to DefaultTimeout
	Runner  Runner
}

// searchCommand returns the platform's executable-search command.
func (l *Locator) searchCommand() string {
	if l.Windows {
		return "where"
	}
	return "which"
}

// Resolve returns the absolute path of the named executable, or an error
// if the search command fails or produces no output.
func (l *Locator) Resolve(name string) (string, error) {
	stdout, stderr, err := Run(l.Runner, l.Timeout, l.searchCommand(), name)
	if err != nil {
		if stderr != "" {
			return "", fmt.Errorf("%s %s: %v: %s", l.searchCommand(), name, err, strings.TrimSpace(stderr))
		}
		return "", fmt.Errorf("%s %s: %w", l.searchCommand(), name, err)
	}

	line := firstLine(stdout)
	if line == "" {
		return "", fmt.Errorf("%s %s: no output", l.searchCommand(), name)
	}
	return line, nil
}

// firstLine returns the first non-empty trimmed line of s.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
