// ABOUTME: Root CLI command with global flags for the doctalk tool
// ABOUTME: Wires all subcommands and shared output settings
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
██████╗  ██████╗  ██████╗████████╗ █████╗ ██╗     ██╗  ██╗
██╔══██╗██╔═══██╗██╔════╝╚══██╔══╝██╔══██╗██║     ██║ ██╔╝
██║  ██║██║   ██║██║        ██║   ███████║██║     █████╔╝
██║  ██║██║   ██║██║        ██║   ██╔══██║██║     ██╔═██╗
██████╔╝╚██████╔╝╚██████╗   ██║   ██║  ██║███████╗██║  ██╗
╚═════╝  ╚═════╝  ╚═════╝   ╚═╝   ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝
`

// NewRootCmd creates the root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctalk",
		Short: "Ask questions of your documents",
		Long: banner + `
Doctalk uploads documents, retrieves the passages relevant to a
question, and orchestrates LLM calls to answer, compare, debate,
and draft from them.

Set OPENAI_API_KEY for answers and embeddings; set
DOCTALK_FAST_API_KEY for the fast synthesis provider.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, json, or text")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(
		NewAskCmd(),
		NewCompareCmd(),
		NewContradictCmd(),
		NewDebateCmd(),
		NewWriteCmd(),
		NewSuggestCmd(),
		NewMCPCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
