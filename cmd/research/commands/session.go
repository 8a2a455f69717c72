// ABOUTME: Per-command setup shared by every subcommand
// ABOUTME: Loads .env and config, builds the logger and wires collaborators
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/harper/research/internal/app"
	"github.com/harper/research/internal/config"
	"github.com/harper/research/internal/core"
	"github.com/harper/research/internal/logging"
)

type session struct {
	app *app.App
}

// newSession loads configuration and wires collaborators. The LLM client is
// only created when withLLM is set so search and save work without API keys.
func newSession(cmd *cobra.Command, withLLM bool) (*session, error) {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if outputFile != "" {
		cfg.OutputFile = outputFile
	}

	logger := logging.New(cmd.ErrOrStderr(), logLevel(cfg.LogLevel))

	a := app.New(cfg, logger)
	if withLLM {
		if err := a.Connect(cmd.Context(), core.WithStyles(styles())); err != nil {
			return nil, err
		}
	}

	return &session{app: a}, nil
}

// logLevel applies --verbose and --quiet on top of the configured level
func logLevel(configured string) string {
	switch {
	case verbose:
		return "debug"
	case quiet:
		return "error"
	default:
		return configured
	}
}

// styles picks section header styles for --format
func styles() core.Styles {
	if format == formatAuto {
		return core.DefaultStyles()
	}
	return core.PlainStyles()
}
