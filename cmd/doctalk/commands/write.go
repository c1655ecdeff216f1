// ABOUTME: CLI command for grounded writing assistance
// ABOUTME: Generates drafts, outlines, or continuations from documents
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var writeMode string

// NewWriteCmd creates the write command
func NewWriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "write <prompt> <file>...",
		Short: "Generate text grounded in documents",
		Long: `Generate text grounded in the given documents.

The mode controls the shape of the output: a full draft, an
outline, or a continuation of the documents' text.

Examples:
  doctalk write "summarize for executives" report.md
  doctalk write --mode outline "blog post about the findings" study.txt`,
		Args: cobra.MinimumNArgs(2),
		RunE: runWrite,
	}

	cmd.Flags().StringVar(&writeMode, "mode", "draft", "Writing mode: draft, outline, or continue")

	return cmd
}

func runWrite(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}
	defer engine.Close()

	ctx := cmd.Context()
	prompt := args[0]

	docs, err := uploadFiles(ctx, engine, args[1:])
	if err != nil {
		return err
	}

	result, err := engine.AssistWriting(ctx, docs, prompt, writeMode)
	if err != nil {
		return fmt.Errorf("generating text: %w", err)
	}

	out := cmd.OutOrStdout()
	if outputFormat == "json" {
		return printJSON(out, result)
	}

	fmt.Fprintf(out, "%s\n", result.GeneratedText)
	if !quiet {
		fmt.Fprintln(out)
		printList(out, "Suggestions", result.Suggestions)
		if result.StyleNotes != "" {
			fmt.Fprintf(out, "Style notes:\n  %s\n", result.StyleNotes)
		}
	}
	return nil
}
