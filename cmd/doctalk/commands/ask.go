// ABOUTME: CLI command to ask a question of one or more documents
// ABOUTME: Uploads the files, retrieves passages, and prints the grounded answer
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question> <file>...",
		Short: "Answer a question from documents",
		Long: `Answer a question grounded in the given documents.

Each file is uploaded, chunked, and indexed; the most relevant
passages are retrieved and handed to the model as context.

Examples:
  doctalk ask "What are the main findings?" report.md
  doctalk ask --format json "Who is the author?" a.txt b.txt`,
		Args: cobra.MinimumNArgs(2),
		RunE: runAsk,
	}

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}
	defer engine.Close()

	ctx := cmd.Context()
	question := args[0]

	docs, err := uploadFiles(ctx, engine, args[1:])
	if err != nil {
		return err
	}

	result, err := engine.QueryDocuments(ctx, question, docs)
	if err != nil {
		return fmt.Errorf("answering question: %w", err)
	}

	out := cmd.OutOrStdout()
	if outputFormat == "json" {
		return printJSON(out, result)
	}

	fmt.Fprintf(out, "%s\n", result.Answer)
	if !quiet && len(result.Sources) > 0 {
		fmt.Fprintln(out, "\nSources:")
		for _, s := range result.Sources {
			fmt.Fprintf(out, "  [%.3f] %s: %s\n", s.Score, s.DocumentName, truncate(s.Text, 80))
		}
	}
	return nil
}
