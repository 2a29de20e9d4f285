package check

import "fmt"

// Sub is a named sub-result inside a composite check. Subs have no
// identity beyond their parent check's invocation; composite checks
// build an ordered list of them and fold it into one Result.
type Sub struct {
	Name    string
	Status  Status
	Message string
}

// SubPass builds a passing sub-result.
func SubPass(name, message string) Sub {
	return Sub{Name: name, Status: StatusPass, Message: message}
}

// SubPassf builds a passing sub-result with a formatted message.
func SubPassf(name, format string, args ...interface{}) Sub {
	return SubPass(name, fmt.Sprintf(format, args...))
}

// SubWarn builds a warning sub-result.
func SubWarn(name, message string) Sub {
	return Sub{Name: name, Status: StatusWarn, Message: message}
}

// SubWarnf builds a warning sub-result with a formatted message.
func SubWarnf(name, format string, args ...interface{}) Sub {
	return SubWarn(name, fmt.Sprintf(format, args...))
}

// SubFail builds a failing sub-result.
func SubFail(name, message string) Sub {
	return Sub{Name: name, Status: StatusFail, Message: message}
}

// SubFailf builds a failing sub-result with a formatted message.
func SubFailf(name, format string, args ...interface{}) Sub {
	return SubFail(name, fmt.Sprintf(format, args...))
}

// Policy selects how a list of sub-results folds into one aggregate status.
type Policy int

const (
	// AllPass yields PASS only if every sub-result passed, FAIL if any
	// sub-result failed, and WARN otherwise.
	AllPass Policy = iota
	// AnyPass yields PASS if at least one sub-result passed, FAIL if
	// nothing passed and something failed, and WARN otherwise.
	AnyPass
)

// Fold reduces an ordered list of sub-results to an aggregate status.
func Fold(subs []Sub, policy Policy) Status {
	var passed, failed int
	for _, s := range subs {
		switch s.Status {
		case StatusPass:
			passed++
		case StatusFail:
			failed++
		}
	}

	switch policy {
	case AnyPass:
		if passed > 0 {
			return StatusPass
		}
		if failed > 0 {
			return StatusFail
		}
		return StatusWarn
	default: // AllPass
		if failed > 0 {
			return StatusFail
		}
		if passed == len(subs) {
			return StatusPass
		}
		return StatusWarn
	}
}

// DetailLines renders sub-results as "name: message" detail lines.
func DetailLines(subs []Sub) []string {
	lines := make([]string, 0, len(subs))
	for _, s := range subs {
		lines = append(lines, fmt.Sprintf("%s: %s", s.Name, s.Message))
	}
	return lines
}
