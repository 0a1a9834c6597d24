package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"

	"github.com/jamesbinford/mcpservers/internal/common"
	"github.com/jamesbinford/mcpservers/internal/dex"
)

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for Claude Desktop)")
	configFile := flag.String("config", "", "Path to config file")
	showVersion := flag.Bool("version", false, "Print version information")
	flag.Parse()

	// Load version
	common.LoadVersionFromFile()

	if *showVersion {
		fmt.Printf("dex-mcp version %s\n", common.GetFullVersion())
		os.Exit(0)
	}

	configPath := *configFile
	if configPath == "" {
		configPath = findConfigFile()
	}

	cfg, err := common.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Setup logging
	logger := common.NewLoggerFromConfig(cfg.Logging)

	if cfg.Dex.APIKey == "" {
		logger.Warn().Msg("no Dex API key configured; set DEX_API_KEY or dex.api_key in the config file")
	}

	client := dex.NewClient(cfg.Dex, logger)

	// Create MCP server with tool definitions
	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	// Register all MCP tools
	registerTools(mcpServer, client, logger)

	logger.Info().
		Str("version", common.GetVersion()).
		Str("base_url", client.BaseURL()).
		Msg("dex-mcp starting")

	if *stdio {
		// Stdio transport reads stdin and writes stdout
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	port := cfg.Server.Port

	// Streamable HTTP transport listens on the configured port
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	log.Printf("Starting MCP Streamable HTTP on :%s", port)

	if err := httpServer.Start(":" + port); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}

// findConfigFile returns the first config file that exists, trying
// binary-relative paths before the working directory. Returns "" when none
// exist, which leaves the defaults and environment overrides in effect.
func findConfigFile() string {
	candidates := []string{
		"dex-mcp.toml",
		"config/dex-mcp.toml",
	}

	if exe, err := os.Executable(); err == nil {
		binDir := filepath.Dir(exe)
		candidates = append([]string{
			filepath.Join(binDir, "dex-mcp.toml"),
			filepath.Join(binDir, "config", "dex-mcp.toml"),
		}, candidates...)
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
