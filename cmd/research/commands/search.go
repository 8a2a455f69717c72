// ABOUTME: CLI command querying Wikipedia and DuckDuckGo directly
// ABOUTME: Prints the combined search text without involving the LLM
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

// NewSearchCmd creates the search command
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search Wikipedia and DuckDuckGo",
		Long: `Search Wikipedia and DuckDuckGo and print the combined result text.

No LLM is involved, so no API key is needed.`,
		Example: `  research search "sea otter"
  research search --format json golang generics`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSearch,
	}

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return fmt.Errorf("no query provided")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := newSession(cmd, false)
	if err != nil {
		return err
	}

	results, err := s.app.Searcher.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("searching: %w", err)
	}

	if format == formatJSON {
		data, err := json.Marshal(map[string]string{"query": query, "results": results})
		if err != nil {
			return fmt.Errorf("encoding results: %w", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), results)
	return nil
}
