package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/snagasuri/deebo-doctor/pkg/check"
	"github.com/snagasuri/deebo-doctor/pkg/output"
)

// ErrCheckFailed is returned when a check fails.
// The returned error causes Cobra to exit with code 1.
var ErrCheckFailed = errors.New("check failed")

// runCheck executes a single check, prints the result, and returns
// ErrCheckFailed if it failed. Warnings exit cleanly.
func runCheck(cmd *cobra.Command, c check.Checker) error {
	result := c.Run()

	out := cmd.OutOrStdout()
	if jsonOutput {
		if err := output.PrintJSON(out, []check.Result{result}); err != nil {
			return err
		}
	} else {
		output.PrintResult(out, result, verbose)
	}

	if result.Failed() {
		return ErrCheckFailed
	}
	return nil
}
