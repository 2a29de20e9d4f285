package check

import "testing"

func TestFold(t *testing.T) {
	tests := []struct {
		name   string
		subs   []Sub
		policy Policy
		want   Status
	}{
		{
			name:   "all pass with AllPass",
			subs:   []Sub{SubPass("a", "ok"), SubPass("b", "ok")},
			policy: AllPass,
			want:   StatusPass,
		},
		{
			name:   "one fail forces fail with AllPass",
			subs:   []Sub{SubPass("a", "ok"), SubFail("b", "missing")},
			policy: AllPass,
			want:   StatusFail,
		},
		{
			name:   "warn without fail yields warn with AllPass",
			subs:   []Sub{SubPass("a", "ok"), SubWarn("b", "missing dirs")},
			policy: AllPass,
			want:   StatusWarn,
		},
		{
			name:   "one pass is enough with AnyPass",
			subs:   []Sub{SubWarn("a", "not found"), SubPass("b", "configured")},
			policy: AnyPass,
			want:   StatusPass,
		},
		{
			name:   "all warn yields warn with AnyPass",
			subs:   []Sub{SubWarn("a", "not found"), SubWarn("b", "may be invalid")},
			policy: AnyPass,
			want:   StatusWarn,
		},
		{
			name:   "fail without pass yields fail with AnyPass",
			subs:   []Sub{SubWarn("a", "not found"), SubFail("b", "broken")},
			policy: AnyPass,
			want:   StatusFail,
		},
		{
			name:   "empty list with AllPass yields pass",
			subs:   nil,
			policy: AllPass,
			want:   StatusPass,
		},
		{
			name:   "empty list with AnyPass yields warn",
			subs:   nil,
			policy: AnyPass,
			want:   StatusWarn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fold(tt.subs, tt.policy); got != tt.want {
				t.Errorf("Fold() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetailLines(t *testing.T) {
	subs := []Sub{
		SubPass("node", "/usr/bin/node"),
		SubFailf("uvx", "not found (%s)", "install uv"),
	}

	lines := DetailLines(subs)
	want := []string{"node: /usr/bin/node", "uvx: not found (install uv)"}
	if len(lines) != len(want) {
		t.Fatalf("DetailLines() returned %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
