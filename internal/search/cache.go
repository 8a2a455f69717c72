// ABOUTME: TTL cache in front of a searcher so repeated queries skip the network
// ABOUTME: Keys are case- and whitespace-normalised; failures are never cached
package search

import (
	"context"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// Searcher is anything that turns a query into result text
type Searcher interface {
	Search(ctx context.Context, query string) (string, error)
}

// Cached wraps a Searcher with an in-memory TTL cache
type Cached struct {
	next  Searcher
	store *cache.Cache
}

// NewCached caches results of next for ttl
func NewCached(next Searcher, ttl time.Duration) *Cached {
	return &Cached{
		next:  next,
		store: cache.New(ttl, 2*ttl),
	}
}

// Search returns a cached result when one is live, otherwise delegates
func (c *Cached) Search(ctx context.Context, query string) (string, error) {
	key := cacheKey(query)
	if v, ok := c.store.Get(key); ok {
		return v.(string), nil
	}

	result, err := c.next.Search(ctx, query)
	if err != nil {
		return "", err
	}
	c.store.Set(key, result, cache.DefaultExpiration)
	return result, nil
}

// Len reports the number of cached queries, expired entries included
func (c *Cached) Len() int {
	return c.store.ItemCount()
}

func cacheKey(query string) string {
	return strings.ToLower(strings.Join(strings.Fields(query), " "))
}

// New assembles the default Wikipedia + DuckDuckGo searcher, cached when ttl > 0
func New(wiki WikipediaConfig, ddg DuckDuckGoConfig, ttl time.Duration) Searcher {
	combined := NewCombined(NewWikipedia(wiki), NewDuckDuckGo(ddg))
	if ttl <= 0 {
		return combined
	}
	return NewCached(combined, ttl)
}
