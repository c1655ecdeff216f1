// ABOUTME: CLI command to suggest questions about documents
// ABOUTME: Prints questions a reader could productively ask
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSuggestCmd creates the suggest command
func NewSuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest <file>...",
		Short: "Suggest questions about documents",
		Long: `Suggest questions a reader could ask about the given documents.

Examples:
  doctalk suggest report.md
  doctalk suggest --format json a.txt b.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSuggest,
	}

	return cmd
}

func runSuggest(cmd *cobra.Command, args []string) error {
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

	questions, err := engine.GenerateSuggestedQuestions(ctx, docs)
	if err != nil {
		return fmt.Errorf("suggesting questions: %w", err)
	}

	out := cmd.OutOrStdout()
	if outputFormat == "json" {
		return printJSON(out, map[string]interface{}{"questions": questions})
	}

	if len(questions) == 0 {
		if !quiet {
			fmt.Fprintln(out, "No questions suggested.")
		}
		return nil
	}
	for i, q := range questions {
		fmt.Fprintf(out, "%d. %s\n", i+1, q)
	}
	return nil
}
