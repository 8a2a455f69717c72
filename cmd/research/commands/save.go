// ABOUTME: CLI command appending text to the research output file
// ABOUTME: Reads text from an argument, a file or stdin
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var saveFile string

// NewSaveCmd creates the save command
func NewSaveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save [text]",
		Short: "Save text to the research file",
		Long: `Append text to the research file as a timestamped block.

Text comes from the argument, from --file, or from stdin.`,
		Example: `  research save "Sea otters use rocks as tools"
  research save --file notes.txt
  echo "from a pipe" | research save -o otters.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSave,
	}

	cmd.Flags().StringVar(&saveFile, "file", "", "Read text from file")

	return cmd
}

func runSave(cmd *cobra.Command, args []string) error {
	text, err := readText(args, saveFile, cmd.InOrStdin())
	if err != nil {
		return err
	}

	s, err := newSession(cmd, false)
	if err != nil {
		return err
	}

	message, err := s.app.File.Save(cmd.Context(), text)
	if err != nil {
		return fmt.Errorf("saving: %w", err)
	}

	if !quiet {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ %s (%q)\n", message, truncate(text, 40))
	}
	return nil
}
