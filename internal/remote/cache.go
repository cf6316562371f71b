package remote

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/repomedia/repomedia/internal/model"
)

// Lister is the contract the cache memoizes. *Client satisfies it.
type Lister interface {
	List(ctx context.Context, path string) (model.Listing, error)
}

// ListingCache memoizes listings keyed by path for the lifetime of the
// process. There is no eviction: the dataset is one repository tree browsed
// interactively. Concurrent misses for the same path are collapsed into a
// single fetch.
type ListingCache struct {
	lister   Lister
	mu       sync.RWMutex
	listings map[string]model.Listing
	group    singleflight.Group
}

// NewListingCache creates a cache in front of the given lister.
func NewListingCache(lister Lister) *ListingCache {
	return &ListingCache{
		lister:   lister,
		listings: make(map[string]model.Listing),
	}
}

// GetOrFetch returns the cached listing for path, fetching and storing it on
// first use. Unavailable results are not cached so a later attempt can
// succeed once throttling clears.
func (c *ListingCache) GetOrFetch(ctx context.Context, path string) (model.Listing, error) {
	c.mu.RLock()
	listing, ok := c.listings[path]
	c.mu.RUnlock()
	if ok {
		return listing, nil
	}

	v, err, _ := c.group.Do(path, func() (interface{}, error) {
		// A concurrent caller may have populated the entry while this
		// one waited on the flight group.
		c.mu.RLock()
		cached, ok := c.listings[path]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		fetched, err := c.lister.List(ctx, path)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.listings[path] = fetched
		c.mu.Unlock()
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(model.Listing), nil
}

// Len reports how many paths are cached.
func (c *ListingCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.listings)
}
