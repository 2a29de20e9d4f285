// Package locate is the single place where the doctor touches external
// processes: a context-aware command runner with a uniform timeout, and a
// PATH lookup that shells out to the platform's search command.
package locate

import (
	"bytes"
	"context"
	"os/exec"
	"time"
)

// DefaultTimeout bounds every external process invocation. A probe that
// exceeds it is reported as a failure, never left hanging.
const DefaultTimeout = 30 * time.Second

// Runner abstracts command execution for testability.
type Runner interface {
	RunContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
}

// RealRunner implements Runner using actual OS commands.
type RealRunner struct{}

// RunContext executes a command under the given context and returns its output.
func (r *RealRunner) RunContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}

// MockRunner is a test double for Runner.
type MockRunner struct {
	RunContextFunc func(ctx context.Context, name string, args ...string) (string, string, error)
}

// RunContext calls the mock function.
func (m *MockRunner) RunContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	return m.RunContextFunc(ctx, name, args...)
}

// Run executes a command under a fresh DefaultTimeout context.
func Run(r Runner, timeout time.Duration, name string, args ...string) (stdout, stderr string, err error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return r.RunContext(ctx, name, args...)
}
