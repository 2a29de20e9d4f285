package platform

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigPathsPerPlatform(t *testing.T) {
	tests := []struct {
		name string
		env  Env
		get  func(Env) string
		want string
	}{
		{
			name: "cline settings on darwin",
			env:  Env{GOOS: "darwin", Home: "/Users/deebo"},
			get:  Env.ClineSettings,
			want: "/Users/deebo/Library/Application Support/Code/User/globalStorage/saoudrizwan.claude-dev/settings/cline_mcp_settings.json",
		},
		{
			name: "cline settings on linux",
			env:  Env{GOOS: "linux", Home: "/home/deebo"},
			get:  Env.ClineSettings,
			want: "/home/deebo/.config/Code/User/globalStorage/saoudrizwan.claude-dev/settings/cline_mcp_settings.json",
		},
		{
			name: "cline settings on windows",
			env:  Env{GOOS: "windows", Home: `C:\Users\deebo`, AppData: `C:\Users\deebo\AppData\Roaming`},
			get:  Env.ClineSettings,
			want: filepath.Join(`C:\Users\deebo\AppData\Roaming`, "Code", "User", "globalStorage", "saoudrizwan.claude-dev", "settings", "cline_mcp_settings.json"),
		},
		{
			name: "roo settings on linux",
			env:  Env{GOOS: "linux", Home: "/home/deebo"},
			get:  Env.RooSettings,
			want: "/home/deebo/.config/Code/User/globalStorage/rooveterinaryinc.roo-cline/settings/mcp_settings.json",
		},
		{
			name: "claude desktop on darwin",
			env:  Env{GOOS: "darwin", Home: "/Users/deebo"},
			get:  Env.ClaudeDesktopConfig,
			want: "/Users/deebo/Library/Application Support/Claude/claude_desktop_config.json",
		},
		{
			name: "claude desktop on linux",
			env:  Env{GOOS: "linux", Home: "/home/deebo"},
			get:  Env.ClaudeDesktopConfig,
			want: "/home/deebo/.config/Claude/claude_desktop_config.json",
		},
		{
			name: "vscode settings on linux",
			env:  Env{GOOS: "linux", Home: "/home/deebo"},
			get:  Env.VSCodeSettings,
			want: "/home/deebo/.config/Code/User/settings.json",
		},
		{
			name: "cursor config is home-relative on all platforms",
			env:  Env{GOOS: "linux", Home: "/home/deebo"},
			get:  Env.CursorMCPConfig,
			want: "/home/deebo/.cursor/mcp.json",
		},
		{
			name: "env file under installation root",
			env:  Env{GOOS: "linux", Home: "/home/deebo", DeeboPath: "/home/deebo/.deebo"},
			get:  Env.EnvFile,
			want: "/home/deebo/.deebo/.env",
		},
		{
			name: "tools manifest under installation root",
			env:  Env{GOOS: "linux", Home: "/home/deebo", DeeboPath: "/opt/deebo"},
			get:  Env.ToolsManifest,
			want: "/opt/deebo/config/tools.json",
		},
		{
			name: "guide doc is home-relative, not deebo-path-relative",
			env:  Env{GOOS: "linux", Home: "/home/deebo", DeeboPath: "/opt/deebo"},
			get:  Env.GuideDoc,
			want: "/home/deebo/.deebo/deebo_guide.md",
		},
		{
			name: "guide server script is home-relative",
			env:  Env{GOOS: "linux", Home: "/home/deebo", DeeboPath: "/opt/deebo"},
			get:  Env.GuideServerScript,
			want: "/home/deebo/.deebo/guide-server.js",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.get(tt.env)
			// filepath.Join normalizes separators per the host OS running
			// the tests, so compare path elements rather than raw strings.
			if filepath.ToSlash(got) != filepath.ToSlash(tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPathListSeparator(t *testing.T) {
	if sep := (Env{GOOS: "windows"}).PathListSeparator(); sep != ";" {
		t.Errorf("windows separator = %q, want ;", sep)
	}
	if sep := (Env{GOOS: "linux"}).PathListSeparator(); sep != ":" {
		t.Errorf("linux separator = %q, want :", sep)
	}
}

func TestFromSystemDefaultsDeeboPath(t *testing.T) {
	env := FromSystem("")
	if env.DeeboPath == "" {
		t.Fatal("DeeboPath is empty")
	}
	if !strings.HasSuffix(filepath.ToSlash(env.DeeboPath), "/.deebo") {
		t.Errorf("DeeboPath = %q, want ~/.deebo default", env.DeeboPath)
	}

	override := FromSystem("/opt/deebo")
	if override.DeeboPath != "/opt/deebo" {
		t.Errorf("DeeboPath = %q, want override", override.DeeboPath)
	}
}
