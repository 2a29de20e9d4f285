package locate

import (
	"context"
	"errors"
	"testing"
)

func TestLocatorResolve(t *testing.T) {
	tests := []struct {
		name        string
		windows     bool
		stdout      string
		err         error
		wantCommand string
		wantPath    string
		wantErr     bool
	}{
		{
			name:        "resolves via which on unix",
			stdout:      "/usr/local/bin/node\n",
			wantCommand: "which",
			wantPath:    "/usr/local/bin/node",
		},
		{
			name:        "resolves via where on windows",
			windows:     true,
			stdout:      "C:\\Program Files\\nodejs\\node.exe\r\nC:\\other\\node.exe\r\n",
			wantCommand: "where",
			wantPath:    "C:\\Program Files\\nodejs\\node.exe",
		},
		{
			name:        "takes first non-empty line",
			stdout:      "\n\n/usr/bin/git\n",
			wantCommand: "which",
			wantPath:    "/usr/bin/git",
		},
		{
			name:        "search command error",
			err:         errors.New("exit status 1"),
			wantCommand: "which",
			wantErr:     true,
		},
		{
			name:        "no output",
			stdout:      "\n",
			wantCommand: "which",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotCommand string
			runner := &MockRunner{
				RunContextFunc: func(_ context.Context, name string, args ...string) (string, string, error) {
					gotCommand = name
					return tt.stdout, "", tt.err
				},
			}

			l := &Locator{Windows: tt.windows, Runner: runner}
			path, err := l.Resolve("node")

			if gotCommand != tt.wantCommand {
				t.Errorf("search command = %q, want %q", gotCommand, tt.wantCommand)
			}
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && path != tt.wantPath {
				t.Errorf("path = %q, want %q", path, tt.wantPath)
			}
		})
	}
}

func TestRunAppliesTimeout(t *testing.T) {
	runner := &MockRunner{
		RunContextFunc: func(ctx context.Context, _ string, _ ...string) (string, string, error) {
			if _, ok := ctx.Deadline(); !ok {
				t.Error("context has no deadline")
			}
			return "", "", nil
		},
	}

	if _, _, err := Run(runner, 0, "node", "--version"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestRealRunnerTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &RealRunner{}
	if _, _, err := r.RunContext(ctx, "sleep", "5"); err == nil {
		t.Error("expected error from canceled context")
	}
}
