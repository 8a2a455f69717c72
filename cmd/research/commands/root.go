// ABOUTME: Root command and global flags for the research CLI
// ABOUTME: With no subcommand it runs the interactive research loop
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Output formats accepted by --format
const (
	formatAuto  = "auto"
	formatPlain = "plain"
	formatJSON  = "json"
)

var (
	verbose    bool
	quiet      bool
	format     string
	outputFile string
)

const banner = `
██████╗ ███████╗███████╗███████╗ █████╗ ██████╗  ██████╗██╗  ██╗
██╔══██╗██╔════╝██╔════╝██╔════╝██╔══██╗██╔══██╗██╔════╝██║  ██║
██████╔╝█████╗  ███████╗█████╗  ███████║██████╔╝██║     ███████║
██╔══██╗██╔══╝  ╚════██║██╔══╝  ██╔══██║██╔══██╗██║     ██╔══██║
██║  ██║███████╗███████║███████╗██║  ██║██║  ██║╚██████╗██║  ██║
╚═╝  ╚═╝╚══════╝╚══════╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝`

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "research",
		Short: "Conversational research assistant",
		Long: banner + `

A conversational research assistant. Describe what you want and the
assistant decides whether to search Wikipedia and DuckDuckGo or to save
text to your research file.

Say "save that" (or anything meaning "save the previous response") to
store the last answer. Type 'exit' to quit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return validateFormat(format)
		},
		RunE: runInteractive,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logging")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log errors")
	cmd.PersistentFlags().StringVar(&format, "format", formatAuto, "Output format: auto, plain or json")
	cmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Research output file (default: $RESEARCH_OUTPUT_FILE or research_output.txt)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(
		NewAskCmd(),
		NewSearchCmd(),
		NewSaveCmd(),
		NewMCPCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func validateFormat(f string) error {
	switch f {
	case formatAuto, formatPlain, formatJSON:
		return nil
	default:
		return fmt.Errorf("--format must be one of auto, plain, json; got %q", f)
	}
}

// runInteractive runs the read-plan-act loop until "exit" or end of input
func runInteractive(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, true)
	if err != nil {
		return err
	}

	return s.app.Dispatcher.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
}
