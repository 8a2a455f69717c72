// ABOUTME: Tests for the DuckDuckGo backend against a fake HTML results page
// ABOUTME: Verifies snippet extraction, result limits and throttling
package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const ddgPage = `<html><body>
<div class="result results_links results_links_deep web-result">
  <h2 class="result__title"><a rel="nofollow" class="result__a" href="https://en.wikipedia.org/wiki/Otter">Otter - Wikipedia</a></h2>
  <a class="result__snippet" href="https://en.wikipedia.org/wiki/Otter">Otters are <b>carnivorous</b> mammals &amp; swimmers.</a>
</div>
<div class="result results_links results_links_deep web-result">
  <a class="result__snippet" href="https://example.com/otters">Sea otters hold
     hands while sleeping.</a>
</div>
<div class="result results_links results_links_deep web-result">
  <a class="result__snippet" href="https://example.com/third">Third snippet.</a>
</div>
</body></html>`

func newDDGServer(t *testing.T, page string, queries *[]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm() error = %v", err)
		}
		if queries != nil {
			*queries = append(*queries, r.PostForm.Get("q"))
		}
		if !strings.Contains(r.Header.Get("User-Agent"), "Mozilla") {
			t.Errorf("User-Agent = %q, want browser-like agent", r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(page))
	}))
}

func TestDuckDuckGo_Search(t *testing.T) {
	var queries []string
	server := newDDGServer(t, ddgPage, &queries)
	defer server.Close()

	ddg := NewDuckDuckGo(DuckDuckGoConfig{BaseURL: server.URL, MinInterval: -1})
	got, err := ddg.Search(context.Background(), "otters")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	want := "Otters are carnivorous mammals & swimmers. Sea otters hold hands while sleeping. Third snippet."
	if got != want {
		t.Errorf("Search() = %q, want %q", got, want)
	}
	if len(queries) != 1 || queries[0] != "otters" {
		t.Errorf("queries = %v, want [otters]", queries)
	}
}

func TestDuckDuckGo_MaxResults(t *testing.T) {
	server := newDDGServer(t, ddgPage, nil)
	defer server.Close()

	ddg := NewDuckDuckGo(DuckDuckGoConfig{BaseURL: server.URL, MaxResults: 1, MinInterval: -1})
	got, err := ddg.Search(context.Background(), "otters")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if got != "Otters are carnivorous mammals & swimmers." {
		t.Errorf("Search() = %q, want only the first snippet", got)
	}
}

func TestDuckDuckGo_NoResults(t *testing.T) {
	server := newDDGServer(t, "<html><body>No results.</body></html>", nil)
	defer server.Close()

	ddg := NewDuckDuckGo(DuckDuckGoConfig{BaseURL: server.URL, MinInterval: -1})
	got, err := ddg.Search(context.Background(), "qwxzzy")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if got != NoDuckDuckGoResult {
		t.Errorf("Search() = %q, want %q", got, NoDuckDuckGoResult)
	}
}

func TestDuckDuckGo_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	ddg := NewDuckDuckGo(DuckDuckGoConfig{BaseURL: server.URL, MinInterval: -1})
	_, err := ddg.Search(context.Background(), "otters")
	if err == nil || !strings.Contains(err.Error(), "429") {
		t.Errorf("Search() error = %v, want http 429", err)
	}
}

func TestDuckDuckGo_Throttle(t *testing.T) {
	server := newDDGServer(t, ddgPage, nil)
	defer server.Close()

	ddg := NewDuckDuckGo(DuckDuckGoConfig{BaseURL: server.URL, MinInterval: 50 * time.Millisecond})

	start := time.Now()
	for i := 0; i < 2; i++ {
		if _, err := ddg.Search(context.Background(), "otters"); err != nil {
			t.Fatalf("Search() error = %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("two searches took %v, want >= 50ms between them", elapsed)
	}
}

func TestDuckDuckGo_ThrottleHonoursContext(t *testing.T) {
	ddg := NewDuckDuckGo(DuckDuckGoConfig{BaseURL: "http://127.0.0.1:1", MinInterval: time.Hour})
	ddg.last = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := ddg.Search(ctx, "otters"); err != context.DeadlineExceeded {
		t.Errorf("Search() error = %v, want context.DeadlineExceeded", err)
	}
}

func TestCleanHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"<b>bold</b> text", "bold text"},
		{"a &amp; b &quot;c&quot; &#x27;d&#x27;", `a & b "c" 'd'`},
		{"  spread\n\tout  ", "spread out"},
	}

	for _, tt := range tests {
		if got := cleanHTML(tt.in); got != tt.want {
			t.Errorf("cleanHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
