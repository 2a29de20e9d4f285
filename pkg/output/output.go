package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jwalton/go-supportscolor"

	"github.com/snagasuri/deebo-doctor/pkg/check"
)

var (
	green  = "\033[32m"
	yellow = "\033[33m"
	red    = "\033[31m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, yellow, red, reset = "", "", "", ""
	}
}

func color(status check.Status) string {
	switch status {
	case check.StatusPass:
		return green
	case check.StatusWarn:
		return yellow
	default:
		return red
	}
}

// PrintResult outputs a check result with colored status. Detail lines are
// printed only when verbose is set.
func PrintResult(w io.Writer, r check.Result, verbose bool) {
	fmt.Fprintf(w, "%s[%s]%s %s: %s\n", color(r.Status), r.Status, reset, r.Name, r.Message)
	if !verbose {
		return
	}
	for _, d := range r.Details {
		fmt.Fprintf(w, "      %s\n", d)
	}
}

// PrintSummary outputs a recap of failures and warnings after all results.
func PrintSummary(w io.Writer, results []check.Result) {
	var failures, warnings []string
	for _, r := range results {
		switch r.Status {
		case check.StatusFail:
			failures = append(failures, r.Name+": "+r.Message)
		case check.StatusWarn:
			warnings = append(warnings, r.Name+": "+r.Message)
		}
	}

	fmt.Fprintln(w)
	switch {
	case len(failures) > 0:
		fmt.Fprintf(w, "%d check(s) failed:\n", len(failures))
		for _, f := range failures {
			fmt.Fprintf(w, "  - %s\n", f)
		}
	case len(warnings) > 0:
		fmt.Fprintln(w, "Environment is ready, with warnings.")
	default:
		fmt.Fprintln(w, "Environment is ready.")
	}

	if len(warnings) > 0 {
		fmt.Fprintf(w, "%d warning(s):\n", len(warnings))
		for _, warning := range warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}
}

// jsonResult is the machine-readable form of a check result.
type jsonResult struct {
	Name    string   `json:"name"`
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// jsonReport is the machine-readable form of a full run.
type jsonReport struct {
	Status string       `json:"status"`
	Checks []jsonResult `json:"checks"`
}

// PrintJSON encodes all results as a single JSON document.
func PrintJSON(w io.Writer, results []check.Result) error {
	report := jsonReport{Status: "ready", Checks: make([]jsonResult, len(results))}
	for i, r := range results {
		report.Checks[i] = jsonResult{
			Name:    r.Name,
			Status:  string(r.Status),
			Message: r.Message,
			Details: r.Details,
		}
		switch r.Status {
		case check.StatusFail:
			report.Status = "failed"
		case check.StatusWarn:
			if report.Status == "ready" {
				report.Status = "ready_with_warnings"
			}
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
