// ABOUTME: CLI command to find contradictions between documents
// ABOUTME: Prints conflicting claims, coverage gaps, and a summary
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewContradictCmd creates the contradict command
func NewContradictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contradict <file> <file>...",
		Short: "Find contradictions between documents",
		Long: `Find contradictions between two or more documents.

Reports claims where the documents disagree and coverage gaps
where one document addresses something the others do not.

Examples:
  doctalk contradict spec.md implementation-notes.md
  doctalk contradict --format json a.txt b.txt`,
		Args: cobra.MinimumNArgs(2),
		RunE: runContradict,
	}

	return cmd
}

func runContradict(cmd *cobra.Command, args []string) error {
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

	result, err := engine.DetectContradictions(ctx, docs)
	if err != nil {
		return fmt.Errorf("detecting contradictions: %w", err)
	}

	out := cmd.OutOrStdout()
	if outputFormat == "json" {
		return printJSON(out, result)
	}

	if len(result.Contradictions) == 0 && !quiet {
		fmt.Fprintln(out, "No contradictions found.")
	}
	printList(out, "Contradictions", result.Contradictions)
	printList(out, "Gaps", result.Gaps)
	fmt.Fprintf(out, "Summary:\n  %s\n", result.Summary)
	return nil
}
