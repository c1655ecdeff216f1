// ABOUTME: CLI command to run a simulated debate between documents
// ABOUTME: Prints each document's argument rounds and the conclusion
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDebateCmd creates the debate command
func NewDebateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debate <topic> <file> <file>...",
		Short: "Debate a topic between documents",
		Long: `Simulate a debate where each document argues its perspective
on the given topic, ending with a conclusion.

Examples:
  doctalk debate "remote work" policy_2019.md policy_2024.md
  doctalk debate --format json "pricing" plan_a.txt plan_b.txt`,
		Args: cobra.MinimumNArgs(3),
		RunE: runDebate,
	}

	return cmd
}

func runDebate(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}
	defer engine.Close()

	ctx := cmd.Context()
	topic := args[0]

	docs, err := uploadFiles(ctx, engine, args[1:])
	if err != nil {
		return err
	}

	result, err := engine.DebateDocuments(ctx, docs, topic)
	if err != nil {
		return fmt.Errorf("running debate: %w", err)
	}

	out := cmd.OutOrStdout()
	if outputFormat == "json" {
		return printJSON(out, result)
	}

	fmt.Fprintf(out, "Debate: %s\n\n", result.Topic)
	for _, round := range result.Rounds {
		fmt.Fprintf(out, "%s:\n  %s\n\n", round.DocumentName, round.Argument)
	}
	fmt.Fprintf(out, "Conclusion:\n  %s\n", result.Conclusion)
	return nil
}
