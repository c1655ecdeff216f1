// ABOUTME: Main entry point for the doctalk MCP server with stdio transport
// ABOUTME: Initializes the engine and MCP server with all document tools
package main

import (
	"log"
	"os"

	"github.com/harper/doctalk/internal/config"
	"github.com/harper/doctalk/internal/core"
	"github.com/harper/doctalk/internal/mcp"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	if os.Getenv("OPENAI_API_KEY") == "" {
		log.Println("Warning: OPENAI_API_KEY not set - answers and embeddings will not work")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	engine, err := core.NewEngine(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize engine: %v", err)
	}
	defer engine.Close()

	server := mcpserver.NewMCPServer(
		"Doctalk Document Server",
		"0.1.0",
	)

	mcp.RegisterTools(server, engine)

	log.Println("Doctalk MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
