// ABOUTME: LLM collaborator interface and provider factory
// ABOUTME: Picks the Gemini or OpenAI client from configuration
package llm

import (
	"context"
	"fmt"

	"github.com/harper/research/internal/config"
	"github.com/harper/research/internal/models"
)

// Client completes a role-tagged conversation with a single blocking call
type Client interface {
	Complete(ctx context.Context, messages []models.Message) (string, error)
	Model() string
}

// New builds the client for the configured provider
func New(ctx context.Context, cfg *config.Config) (Client, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		client, err := NewOpenAIClientWithConfig(&ClientConfig{
			APIKey:      cfg.APIKey(),
			BaseURL:     cfg.OpenAIURL,
			ChatModel:   cfg.Model(),
			Temperature: float32(cfg.Temperature),
			Timeout:     cfg.Timeout,
			MaxRetries:  cfg.MaxRetries,
			RetryDelay:  cfg.RetryDelay,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.ProviderGemini:
		client, err := NewGeminiClient(ctx, &ClientConfig{
			APIKey:      cfg.APIKey(),
			ChatModel:   cfg.Model(),
			Temperature: float32(cfg.Temperature),
			Timeout:     cfg.Timeout,
			MaxRetries:  cfg.MaxRetries,
			RetryDelay:  cfg.RetryDelay,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}
