package platform

import "path/filepath"

// Host-application config files inspected by the doctor. These are owned
// by other applications; the doctor only ever reads them.

// vscodeUserDir returns the VS Code per-user configuration directory.
func (e Env) vscodeUserDir() string {
	switch e.GOOS {
	case "darwin":
		return filepath.Join(e.Home, "Library", "Application Support", "Code", "User")
	case "windows":
		return filepath.Join(e.AppData, "Code", "User")
	default:
		return filepath.Join(e.Home, ".config", "Code", "User")
	}
}

// ClineSettings returns the Cline extension's MCP settings file.
func (e Env) ClineSettings() string {
	return filepath.Join(e.vscodeUserDir(), "globalStorage",
		"saoudrizwan.claude-dev", "settings", "cline_mcp_settings.json")
}

// RooSettings returns the Roo Code extension's MCP settings file.
func (e Env) RooSettings() string {
	return filepath.Join(e.vscodeUserDir(), "globalStorage",
		"rooveterinaryinc.roo-cline", "settings", "mcp_settings.json")
}

// ClaudeDesktopConfig returns the Claude Desktop application config file.
func (e Env) ClaudeDesktopConfig() string {
	switch e.GOOS {
	case "darwin":
		return filepath.Join(e.Home, "Library", "Application Support", "Claude", "claude_desktop_config.json")
	case "windows":
		return filepath.Join(e.AppData, "Claude", "claude_desktop_config.json")
	default:
		return filepath.Join(e.Home, ".config", "Claude", "claude_desktop_config.json")
	}
}

// VSCodeSettings returns the VS Code user settings file.
func (e Env) VSCodeSettings() string {
	return filepath.Join(e.vscodeUserDir(), "settings.json")
}

// CursorMCPConfig returns Cursor's per-user MCP config file.
func (e Env) CursorMCPConfig() string {
	return filepath.Join(e.Home, ".cursor", "mcp.json")
}

// EnvFile returns the project-local .env file under the installation root.
func (e Env) EnvFile() string {
	return filepath.Join(e.DeeboPath, ".env")
}

// ToolsManifest returns the project-local tools manifest.
func (e Env) ToolsManifest() string {
	return filepath.Join(e.DeeboPath, "config", "tools.json")
}

// GuideDoc returns the per-user guide document.
func (e Env) GuideDoc() string {
	return filepath.Join(e.Home, ".deebo", "deebo_guide.md")
}

// GuideServerScript returns the per-user guide server script.
func (e Env) GuideServerScript() string {
	return filepath.Join(e.Home, ".deebo", "guide-server.js")
}
