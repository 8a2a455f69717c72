// ABOUTME: Combined search collaborator querying Wikipedia and DuckDuckGo
// ABOUTME: Renders both backends' results as one readable block for the LLM
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Backend is a single search source rendering its results as text
type Backend interface {
	Name() string
	Search(ctx context.Context, query string) (string, error)
}

// ErrEmptyQuery is returned for blank queries
var ErrEmptyQuery = errors.New("query is empty")

// Combined queries the encyclopedia and the web backend in turn
type Combined struct {
	encyclopedia Backend
	web          Backend
}

// NewCombined creates a combined searcher
func NewCombined(encyclopedia, web Backend) *Combined {
	return &Combined{encyclopedia: encyclopedia, web: web}
}

// Search runs both backends sequentially and joins their output.
// Either backend failing fails the whole search.
func (c *Combined) Search(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", ErrEmptyQuery
	}

	webResult, err := c.web.Search(ctx, query)
	if err != nil {
		return "", fmt.Errorf("%s search: %w", c.web.Name(), err)
	}

	wikiResult, err := c.encyclopedia.Search(ctx, query)
	if err != nil {
		return "", fmt.Errorf("%s search: %w", c.encyclopedia.Name(), err)
	}

	return fmt.Sprintf("%s Result:\n%s\n\n%s Result:\n%s",
		c.encyclopedia.Name(), wikiResult, c.web.Name(), webResult), nil
}
