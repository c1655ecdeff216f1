// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to use doctalk's document tools via stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harper/doctalk/internal/config"
	"github.com/harper/doctalk/internal/core"
	"github.com/harper/doctalk/internal/mcp"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs doctalk as an MCP (Model Context Protocol) server, exposing
document upload, query, comparison, and writing tools via stdio.
Documents live for the lifetime of the server process.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  doctalk mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "doctalk": {
  #       "command": "doctalk",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && verbose {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	if os.Getenv("OPENAI_API_KEY") == "" {
		log.Println("Warning: OPENAI_API_KEY not set - answers and embeddings will not work")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	engine, err := core.NewEngine(cfg)
	if err != nil {
		return fmt.Errorf("initializing engine: %w", err)
	}
	defer engine.Close()

	server := mcpserver.NewMCPServer(
		"Doctalk Document Server",
		"0.1.0",
	)

	mcp.RegisterTools(server, engine)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Println("Doctalk MCP server starting on stdio...")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, shutting down...")
		}
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
