package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Dex.BaseURL != "https://api.getdex.com/api/rest" {
		t.Errorf("Dex.BaseURL default = %q, want the Dex REST endpoint", cfg.Dex.BaseURL)
	}
	if cfg.Dex.Timeout != "30s" {
		t.Errorf("Dex.Timeout default = %q, want %q", cfg.Dex.Timeout, "30s")
	}
	if cfg.Server.Port != "4280" {
		t.Errorf("Server.Port default = %q, want %q", cfg.Server.Port, "4280")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level default = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestLoadConfig_FromTOML(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "dex-mcp.toml")
	content := `
[server]
name = "Dex-MCP-Test"
port = "9999"

[dex]
base_url = "http://localhost:8080/api/rest"
api_key = "file-key"
timeout = "10s"

[logging]
level = "debug"
outputs = ["console"]
`
	if err := os.WriteFile(tomlPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(tomlPath)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Name != "Dex-MCP-Test" {
		t.Errorf("Server.Name = %q, want %q", cfg.Server.Name, "Dex-MCP-Test")
	}
	if cfg.Server.Port != "9999" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "9999")
	}
	if cfg.Dex.BaseURL != "http://localhost:8080/api/rest" {
		t.Errorf("Dex.BaseURL = %q, want the file value", cfg.Dex.BaseURL)
	}
	if cfg.Dex.APIKey != "file-key" {
		t.Errorf("Dex.APIKey = %q, want %q", cfg.Dex.APIKey, "file-key")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nonexistent.toml"))
	if err != nil {
		t.Fatalf("LoadConfig with missing file: %v", err)
	}
	if cfg.Dex.BaseURL != "https://api.getdex.com/api/rest" {
		t.Errorf("Dex.BaseURL = %q, want the default", cfg.Dex.BaseURL)
	}
}

func TestLoadConfig_LaterFileOverridesEarlier(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.toml")
	second := filepath.Join(dir, "second.toml")
	if err := os.WriteFile(first, []byte("[dex]\napi_key = \"first\"\ntimeout = \"5s\"\n"), 0644); err != nil {
		t.Fatalf("write first config: %v", err)
	}
	if err := os.WriteFile(second, []byte("[dex]\napi_key = \"second\"\n"), 0644); err != nil {
		t.Fatalf("write second config: %v", err)
	}

	cfg, err := LoadConfig(first, second)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Dex.APIKey != "second" {
		t.Errorf("Dex.APIKey = %q, want the later file's value %q", cfg.Dex.APIKey, "second")
	}
	// Fields untouched by the second file keep the first file's values
	if cfg.Dex.Timeout != "5s" {
		t.Errorf("Dex.Timeout = %q, want %q from the first file", cfg.Dex.Timeout, "5s")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DEX_API_KEY", "env-key")
	t.Setenv("DEX_BASE_URL", "http://localhost:4444")
	t.Setenv("DEX_MCP_PORT", "5555")
	t.Setenv("DEX_LOG_LEVEL", "warn")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Dex.APIKey != "env-key" {
		t.Errorf("Dex.APIKey = %q after env override, want %q", cfg.Dex.APIKey, "env-key")
	}
	if cfg.Dex.BaseURL != "http://localhost:4444" {
		t.Errorf("Dex.BaseURL = %q after env override, want %q", cfg.Dex.BaseURL, "http://localhost:4444")
	}
	if cfg.Server.Port != "5555" {
		t.Errorf("Server.Port = %q after env override, want %q", cfg.Server.Port, "5555")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q after env override, want %q", cfg.Logging.Level, "warn")
	}
}

func TestLoadConfig_EnvOverridesBeatFile(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "dex-mcp.toml")
	if err := os.WriteFile(tomlPath, []byte("[dex]\napi_key = \"file-key\"\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DEX_API_KEY", "env-key")

	cfg, err := LoadConfig(tomlPath)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Dex.APIKey != "env-key" {
		t.Errorf("Dex.APIKey = %q, want env override %q to beat the file", cfg.Dex.APIKey, "env-key")
	}
}

func TestDexConfig_GetTimeout(t *testing.T) {
	cfg := DexConfig{Timeout: "45s"}
	if got := cfg.GetTimeout(); got != 45*time.Second {
		t.Errorf("GetTimeout() = %v, want 45s", got)
	}
}

func TestDexConfig_GetTimeout_InvalidFallsBack(t *testing.T) {
	for _, timeout := range []string{"", "not-a-duration", "30"} {
		cfg := DexConfig{Timeout: timeout}
		if got := cfg.GetTimeout(); got != 30*time.Second {
			t.Errorf("GetTimeout() with %q = %v, want 30s fallback", timeout, got)
		}
	}
}
