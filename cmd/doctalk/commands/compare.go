// ABOUTME: CLI command to compare two or more documents
// ABOUTME: Prints similarities, differences, and a summary
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCompareCmd creates the compare command
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <file> <file>...",
		Short: "Compare documents",
		Long: `Compare two or more documents.

Each document is summarized individually, then a synthesis pass
extracts similarities, differences, and an overall summary.

Examples:
  doctalk compare draft_v1.md draft_v2.md
  doctalk compare --format json a.txt b.txt c.txt`,
		Args: cobra.MinimumNArgs(2),
		RunE: runCompare,
	}

	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}
	defer engine.Close()

	ctx := cmd.Context()
	docs, err := uploadFiles(ctx, engine, args)
	if err != nil {
		return err
	}

	result, err := engine.CompareDocuments(ctx, docs)
	if err != nil {
		return fmt.Errorf("comparing documents: %w", err)
	}

	out := cmd.OutOrStdout()
	if outputFormat == "json" {
		return printJSON(out, result)
	}

	printList(out, "Similarities", result.Similarities)
	printList(out, "Differences", result.Differences)
	fmt.Fprintf(out, "Summary:\n  %s\n", result.Summary)
	return nil
}
