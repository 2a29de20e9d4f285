package check

// Status represents the outcome of a check.
type Status string

const (
	StatusPass Status = "PASS"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // e.g., "node", "api-keys"
	Status  Status   // PASS, WARN or FAIL
	Message string   // one-line human-readable summary
	Details []string // optional per-item or remediation details
	Err     error    // underlying error for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusPass
}

// Failed returns true if the check failed outright. Warnings do not count.
func (r Result) Failed() bool {
	return r.Status == StatusFail
}
