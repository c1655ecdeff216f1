// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Engine setup, document loading, and output helpers
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/harper/doctalk/internal/config"
	"github.com/harper/doctalk/internal/core"
	"github.com/harper/doctalk/internal/models"
	"github.com/joho/godotenv"
)

// newEngine loads configuration and builds the document engine.
// .env is loaded first so CLI sessions pick up local API keys.
func newEngine() (*core.Engine, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return core.NewEngine(cfg)
}

// uploadFiles reads and uploads each path, returning the documents in order.
func uploadFiles(ctx context.Context, engine *core.Engine, paths []string) ([]models.Document, error) {
	docs := make([]models.Document, 0, len(paths))
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		doc, err := engine.UploadDocument(ctx, filepath.Base(path), f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("uploading %s: %w", path, err)
		}
		docs = append(docs, *doc)
	}
	return docs, nil
}

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v interface{}) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	fmt.Fprintf(w, "%s\n", jsonData)
	return nil
}

// printList writes a labeled bullet list, skipping the section when empty
func printList(w io.Writer, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", label)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
	fmt.Fprintln(w)
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return string(runes[:maxLen-3]) + "..."
}
