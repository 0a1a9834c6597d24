package common

import (
	"fmt"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all dex-mcp configuration
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Dex     DexConfig     `toml:"dex"`
	Logging LoggingConfig `toml:"logging"`
}

// ServerConfig holds MCP server settings
type ServerConfig struct {
	Name string `toml:"name"`
	Port string `toml:"port"`
}

// DexConfig holds Dex API client configuration
type DexConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
	Timeout string `toml:"timeout"`
}

// GetTimeout parses and returns the request timeout duration
func (c *DexConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Format     string   `toml:"format"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "Dex-MCP",
			Port: "4280",
		},
		Dex: DexConfig{
			BaseURL: "https://api.getdex.com/api/rest",
			Timeout: "30s",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/dex-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// Apply environment overrides
	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if key := os.Getenv("DEX_API_KEY"); key != "" {
		config.Dex.APIKey = key
	}

	if url := os.Getenv("DEX_BASE_URL"); url != "" {
		config.Dex.BaseURL = url
	}

	if port := os.Getenv("DEX_MCP_PORT"); port != "" {
		config.Server.Port = port
	}

	if level := os.Getenv("DEX_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}
