// ABOUTME: Wikipedia backend using the MediaWiki search API and page summaries
// ABOUTME: Returns "Page/Summary" blocks for the top hits, truncated to a character budget
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// NoWikipediaResult is returned as text when nothing matches
const NoWikipediaResult = "No good Wikipedia Search Result was found"

// WikipediaConfig configures the Wikipedia backend
type WikipediaConfig struct {
	// BaseURL overrides https://<language>.wikipedia.org
	BaseURL  string
	Language string
	TopK     int
	MaxChars int
	Timeout  time.Duration
}

// Wikipedia looks queries up in the encyclopedia
type Wikipedia struct {
	client   *http.Client
	baseURL  string
	topK     int
	maxChars int
}

// NewWikipedia creates a Wikipedia backend
func NewWikipedia(cfg WikipediaConfig) *Wikipedia {
	lang := cfg.Language
	if lang == "" {
		lang = "en"
	}
	base := cfg.BaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.wikipedia.org", lang)
	}
	topK := cfg.TopK
	if topK <= 0 {
		topK = 1
	}
	return &Wikipedia{
		client:   newHTTPClient(cfg.Timeout),
		baseURL:  strings.TrimRight(base, "/"),
		topK:     topK,
		maxChars: cfg.MaxChars,
	}
}

// Name identifies the backend in combined output
func (w *Wikipedia) Name() string {
	return "Wikipedia"
}

type wikiSearchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

const disambiguationType = "disambiguation"

type wikiSummary struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Extract string `json:"extract"`
}

// isMissingPage reports a summary lookup for a page that does not exist
func isMissingPage(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound
}

// Search finds the top titles for query and renders their summaries
func (w *Wikipedia) Search(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", ErrEmptyQuery
	}

	titles, err := w.searchTitles(ctx, query)
	if err != nil {
		return "", err
	}

	var pages []string
	for _, title := range titles {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		summary, err := w.summary(ctx, title)
		if err != nil {
			if isMissingPage(err) {
				continue
			}
			return "", err
		}
		if summary.Type == disambiguationType || summary.Extract == "" {
			continue
		}
		pages = append(pages, fmt.Sprintf("Page: %s\nSummary: %s", summary.Title, summary.Extract))
	}

	if len(pages) == 0 {
		return NoWikipediaResult, nil
	}

	text := strings.Join(pages, "\n\n")
	if w.maxChars > 0 {
		text = truncate(text, w.maxChars)
	}
	return text, nil
}

func (w *Wikipedia) searchTitles(ctx context.Context, query string) ([]string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", strconv.Itoa(w.topK))
	params.Set("format", "json")
	params.Set("utf8", "1")

	req, err := http.NewRequest(http.MethodGet, w.baseURL+"/w/api.php?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	body, err := fetch(ctx, w.client, req)
	if err != nil {
		return nil, fmt.Errorf("wikipedia search: %w", err)
	}

	var resp wikiSearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse wikipedia search response: %w", err)
	}

	titles := make([]string, 0, len(resp.Query.Search))
	for _, hit := range resp.Query.Search {
		titles = append(titles, hit.Title)
		if len(titles) >= w.topK {
			break
		}
	}
	return titles, nil
}

func (w *Wikipedia) summary(ctx context.Context, title string) (*wikiSummary, error) {
	path := url.PathEscape(strings.ReplaceAll(title, " ", "_"))
	req, err := http.NewRequest(http.MethodGet, w.baseURL+"/api/rest_v1/page/summary/"+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	body, err := fetch(ctx, w.client, req)
	if err != nil {
		return nil, fmt.Errorf("wikipedia summary %q: %w", title, err)
	}

	var summary wikiSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("failed to parse wikipedia summary: %w", err)
	}
	if summary.Title == "" {
		summary.Title = title
	}
	return &summary, nil
}
