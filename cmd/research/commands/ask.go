// ABOUTME: CLI command running a single research turn
// ABOUTME: Plans, searches or saves, then prints the answer or confirmation
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <request>",
		Short: "Handle one research request and exit",
		Long: `Handle one research request and exit.

The assistant plans an action for the request, then either searches
Wikipedia and DuckDuckGo and writes a detailed answer, or appends the
given text to the research file.

Each invocation starts with an empty result store, so "save that" only
works inside the interactive loop or the MCP server.`,
		Example: `  research ask "tell me about sea otters"
  research ask save "otters hold hands while sleeping"
  research ask --format json "what is the capital of Mongolia"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAsk,
	}

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	request := strings.TrimSpace(strings.Join(args, " "))
	if request == "" {
		return fmt.Errorf("no request provided")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := newSession(cmd, true)
	if err != nil {
		return err
	}

	turn, err := s.app.Dispatcher.Turn(ctx, request)
	if err != nil {
		return err
	}

	if format == formatJSON {
		data, err := json.MarshalIndent(turn, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding turn: %w", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), turn.Output())
	return nil
}
