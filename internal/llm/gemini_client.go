// ABOUTME: Gemini chat client built on google.golang.org/genai
// ABOUTME: Maps system messages to the system instruction and retries transport failures
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harper/research/internal/models"
	"github.com/harper/research/internal/util"
	"google.golang.org/genai"
)

// DefaultGeminiModel is the default model for Gemini completions
const DefaultGeminiModel = "gemini-2.5-flash-lite"

// GeminiClient wraps the genai client with retry logic
type GeminiClient struct {
	client      *genai.Client
	model       string
	temperature float32
	timeout     time.Duration
	maxRetries  int
	retryDelay  time.Duration
}

// NewGeminiClient creates a Gemini API client
func NewGeminiClient(ctx context.Context, cfg *ClientConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key is required (set GOOGLE_API_KEY)")
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}

	model := cfg.ChatModel
	if model == "" {
		model = DefaultGeminiModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &GeminiClient{
		client:      client,
		model:       model,
		temperature: cfg.Temperature,
		timeout:     timeout,
		maxRetries:  cfg.MaxRetries,
		retryDelay:  cfg.RetryDelay,
	}, nil
}

// Model returns the Gemini model used for completions
func (c *GeminiClient) Model() string {
	return c.model
}

// Complete sends the conversation and returns the concatenated text of the first candidate
func (c *GeminiClient) Complete(ctx context.Context, messages []models.Message) (string, error) {
	system, contents := toGeminiContents(messages)
	if len(contents) == 0 {
		return "", fmt.Errorf("gemini completion needs at least one user message")
	}

	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: system,
		Temperature:       genai.Ptr(c.temperature),
	}

	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			if err := util.Wait(ctx, c.retryDelay, attempt); err != nil {
				return "", err
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		resp, err := c.client.Models.GenerateContent(attemptCtx, c.model, contents, genCfg)
		cancel()

		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			if !geminiRetryable(err) || ctx.Err() != nil {
				break
			}
			continue
		}

		text, ok := candidateText(resp)
		if !ok {
			lastErr = fmt.Errorf("attempt %d: no candidates returned", attempt+1)
			continue
		}
		return text, nil
	}

	return "", fmt.Errorf("gemini completion failed: %w", lastErr)
}

// toGeminiContents splits system messages into the system instruction and
// turns the rest into user contents, preserving order.
func toGeminiContents(messages []models.Message) (*genai.Content, []*genai.Content) {
	var systemParts []*genai.Part
	var contents []*genai.Content
	for _, m := range messages {
		if m.Role == models.RoleSystem {
			systemParts = append(systemParts, genai.NewPartFromText(m.Content))
			continue
		}
		contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
	}

	var system *genai.Content
	if len(systemParts) > 0 {
		system = &genai.Content{Parts: systemParts}
	}
	return system, contents
}

func candidateText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", false
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), true
}

func geminiRetryable(err error) bool {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == 429 || apiErr.Code >= 500
	}
	return true
}
