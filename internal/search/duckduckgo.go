// ABOUTME: DuckDuckGo web backend scraping the HTML results page
// ABOUTME: Joins result snippets into one paragraph and rate limits to one query per second
package search

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"
)

// NoDuckDuckGoResult is returned as text when nothing matches
const NoDuckDuckGoResult = "No good DuckDuckGo Search Result was found"

const defaultDuckDuckGoURL = "https://html.duckduckgo.com/html/"

var (
	ddgSnippetPattern = regexp.MustCompile(`(?s)<(?:a|td|div)[^>]*class=['"][^'"]*result__snippet[^'"]*['"][^>]*>(.*?)</(?:a|td|div)>`)
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
)

// DuckDuckGoConfig configures the DuckDuckGo backend
type DuckDuckGoConfig struct {
	// BaseURL overrides the HTML endpoint
	BaseURL    string
	MaxResults int
	Timeout    time.Duration
	// MinInterval spaces consecutive queries; zero means one second
	MinInterval time.Duration
}

// DuckDuckGo searches the web through DuckDuckGo's HTML interface
type DuckDuckGo struct {
	client      *http.Client
	endpoint    string
	maxResults  int
	minInterval time.Duration

	mu   sync.Mutex
	last time.Time
}

// NewDuckDuckGo creates a DuckDuckGo backend
func NewDuckDuckGo(cfg DuckDuckGoConfig) *DuckDuckGo {
	endpoint := cfg.BaseURL
	if endpoint == "" {
		endpoint = defaultDuckDuckGoURL
	}
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 5
	}
	interval := cfg.MinInterval
	if interval == 0 {
		interval = time.Second
	}
	return &DuckDuckGo{
		client:      newHTTPClient(cfg.Timeout),
		endpoint:    endpoint,
		maxResults:  maxResults,
		minInterval: interval,
	}
}

// Name identifies the backend in combined output
func (d *DuckDuckGo) Name() string {
	return "DuckDuckGo"
}

// Search posts the query and returns the snippets joined by spaces
func (d *DuckDuckGo) Search(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", ErrEmptyQuery
	}
	if err := d.throttle(ctx); err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("q", query)

	req, err := http.NewRequest(http.MethodPost, d.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "text/html")

	body, err := fetch(ctx, d.client, req)
	if err != nil {
		return "", fmt.Errorf("duckduckgo: %w", err)
	}

	snippets := parseSnippets(string(body), d.maxResults)
	if len(snippets) == 0 {
		return NoDuckDuckGoResult, nil
	}
	return strings.Join(snippets, " "), nil
}

// throttle waits until minInterval has passed since the previous query
func (d *DuckDuckGo) throttle(ctx context.Context) error {
	if d.minInterval < 0 {
		return nil
	}
	d.mu.Lock()
	wait := time.Until(d.last.Add(d.minInterval))
	if wait <= 0 {
		d.last = time.Now()
		d.mu.Unlock()
		return nil
	}
	d.last = time.Now().Add(wait)
	d.mu.Unlock()

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// parseSnippets extracts up to max result snippets from the results page
func parseSnippets(page string, max int) []string {
	var snippets []string
	for _, match := range ddgSnippetPattern.FindAllStringSubmatch(page, -1) {
		snippet := cleanHTML(match[1])
		if snippet == "" {
			continue
		}
		snippets = append(snippets, snippet)
		if len(snippets) >= max {
			break
		}
	}
	return snippets
}

// cleanHTML strips tags, decodes entities and collapses whitespace
func cleanHTML(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.Join(strings.Fields(s), " ")
}
