package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"

	"github.com/secmap/capmap-agent/internal/mcpadapter"
	"github.com/secmap/capmap-agent/internal/setup"
	"github.com/secmap/capmap-agent/internal/setup/logger"
)

func main() {
	// Setup logging
	appLogger := logger.New(os.Getenv("LOG_LEVEL"))
	log.Logger = appLogger

	// Load env
	_ = godotenv.Load()

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load Config
	cfg := setup.LoadConfig()

	// Wire dependencies
	deps, err := setup.Wire(ctx, cfg, &appLogger)
	if err != nil {
		appLogger.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}

	// Create MCP Server
	server := createMCPServer(deps)

	// Run over stdio
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes (e.g. echo | ./bin/capmap-mcp)
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			appLogger.Debug().Err(err).Msg("MCP server stopped")
			return
		}
		appLogger.Error().Err(err).Msg("Failed to run mcp server")
		os.Exit(1)
	}
}

func createMCPServer(deps *setup.Dependencies) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "capmap-agent",
			Version: "1.0.0",
		}, nil,
	)

	// Add Tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_capability",
		Description: "Classify a vendor capability description: detected tool type, capability role, role breakdown, confidence, and evidence",
	}, mcpadapter.NewAnalyzeHandler(deps.AnalyzeExecutor))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_mapping",
		Description: "Validate a vendor's claimed capability role for a safeguard against evidence derived from the description",
	}, mcpadapter.NewValidateHandler(deps.ValidateExecutor))
	return server
}
