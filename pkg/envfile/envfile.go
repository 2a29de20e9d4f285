// Package envfile reads dotenv files the way the doctor needs them:
// line-oriented first-match scanning for credential checks, plus a
// godotenv-backed syntax validation for the config file check.
package envfile

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
)

// First scans line-oriented KEY=value content for the first line starting
// with key and returns the trimmed value after the first '='. The second
// return value reports whether such a line was found.
func First(content, key string) (string, bool) {
	for _, line := range strings.Split(content, "\n") {
		if !strings.HasPrefix(line, key) {
			continue
		}
		rest := line[len(key):]
		// "OPENAI_API_KEY_BACKUP=..." must not match "OPENAI_API_KEY".
		rest = strings.TrimLeft(rest, " \t")
		if !strings.HasPrefix(rest, "=") {
			continue
		}
		return strings.TrimSpace(rest[1:]), true
	}
	return "", false
}

// Validate parses content as a dotenv document and returns the parse error,
// if any. Used to verify the .env file's shape without exposing its values.
// godotenv maps a trailing line with no '=' to an empty-key entry instead
// of erroring, so empty keys are rejected here as malformed.
func Validate(content string) error {
	vars, err := godotenv.Unmarshal(content)
	if err != nil {
		return err
	}
	for key := range vars {
		if key == "" {
			return fmt.Errorf("malformed line: missing key before '='")
		}
	}
	return nil
}
