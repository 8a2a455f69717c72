// ABOUTME: Assembles collaborators from configuration for the CLI and MCP server
// ABOUTME: Search and save work offline; the dispatcher needs an LLM client
package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/harper/research/internal/config"
	"github.com/harper/research/internal/core"
	"github.com/harper/research/internal/llm"
	"github.com/harper/research/internal/search"
	"github.com/harper/research/internal/storage"
)

// App holds the wired collaborators
type App struct {
	Config     *config.Config
	Logger     *log.Logger
	Searcher   search.Searcher
	File       *storage.ResearchFile
	Dispatcher *core.Dispatcher
}

// New wires the search and save collaborators. Dispatcher stays nil until Connect.
func New(cfg *config.Config, logger *log.Logger) *App {
	searcher := search.New(
		search.WikipediaConfig{
			Language: cfg.WikiLanguage,
			TopK:     cfg.WikiTopK,
			MaxChars: cfg.WikiMaxChars,
			Timeout:  cfg.SearchTimeout,
		},
		search.DuckDuckGoConfig{
			MaxResults: cfg.DuckDuckGoResults,
			Timeout:    cfg.SearchTimeout,
		},
		cfg.SearchCacheTTL,
	)

	return &App{
		Config:   cfg,
		Logger:   logger,
		Searcher: searcher,
		File:     storage.NewResearchFile(cfg.OutputFile),
	}
}

// Connect creates the LLM client and the dispatcher
func (a *App) Connect(ctx context.Context, opts ...core.Option) error {
	client, err := llm.New(ctx, a.Config)
	if err != nil {
		return fmt.Errorf("initializing %s client: %w", a.Config.Provider, err)
	}
	a.Logger.Debug("llm client ready", "provider", a.Config.Provider, "model", client.Model())

	opts = append([]core.Option{
		core.WithLogger(a.Logger),
		core.WithParser(core.Parser{Repair: true}),
	}, opts...)
	a.Dispatcher = core.NewDispatcher(client, a.Searcher, a.File, opts...)
	return nil
}
