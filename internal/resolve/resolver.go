package resolve

import (
	"context"
	"strings"
	"sync"

	"github.com/repomedia/repomedia/internal/logging"
	"github.com/repomedia/repomedia/internal/model"
	"github.com/repomedia/repomedia/internal/remote"
)

// ListingSource provides cached directory listings. *remote.ListingCache
// satisfies it.
type ListingSource interface {
	GetOrFetch(ctx context.Context, path string) (model.Listing, error)
}

// Poster candidates for a video, tried in this order against the video's
// base name.
var posterExtensions = []string{"jpg", "jpeg", "webp", "png"}

// Resolver derives media sets from directory listings.
type Resolver struct {
	listings     ListingSource
	manifestPath string

	mu   sync.RWMutex
	sets map[string]model.MediaSet
}

// NewResolver creates a resolver over the given listing source.
// manifestPath names the static fallback manifest used when a directory
// yields no media at all.
func NewResolver(listings ListingSource, manifestPath string) *Resolver {
	return &Resolver{
		listings:     listings,
		manifestPath: manifestPath,
		sets:         make(map[string]model.MediaSet),
	}
}

// Resolve produces the ordered media set for a directory path: direct media
// files first (listing order), then one level of media from each
// subdirectory (subdirectories in listing order). Poster images are matched
// for direct videos only; the one-level descent deliberately skips poster
// resolution. An empty result falls back to the static manifest. A set
// assembled while any subdirectory was unavailable is returned but not
// cached, so a later resolution can pick up the missing items.
func (r *Resolver) Resolve(ctx context.Context, path string) (model.MediaSet, error) {
	r.mu.RLock()
	set, ok := r.sets[path]
	r.mu.RUnlock()
	if ok {
		return set, nil
	}

	listing, err := r.listings.GetOrFetch(ctx, path)
	if err != nil {
		return nil, err
	}

	set = model.MediaSet{}
	degraded := false
	var siblings []model.Entry
	for _, e := range listing {
		if !e.Type.IsDir() {
			siblings = append(siblings, e)
		}
	}

	for _, e := range listing {
		if e.Type.IsDir() || !model.IsMedia(e.Name) {
			continue
		}
		set = append(set, r.buildItem(e, siblings))
	}

	for _, e := range listing {
		if !e.Type.IsDir() {
			continue
		}
		sub, err := r.listings.GetOrFetch(ctx, e.Path)
		if err != nil {
			// A throttled-out subdirectory costs its items, not the
			// whole resolution. The partial set must not be cached,
			// or the missing items could never appear this session.
			logging.Warn().Err(err).Str("path", e.Path).Msg("skipping subdirectory")
			degraded = true
			continue
		}
		for _, child := range sub {
			if child.Type.IsDir() || !model.IsMedia(child.Name) {
				continue
			}
			// No poster matching at this depth.
			set = append(set, model.MediaItem{
				Name:       child.Name,
				Path:       child.Path,
				Kind:       model.KindOf(child.Name),
				ContentURL: remote.RawContentURL(child.Path),
			})
		}
	}

	if len(set) == 0 {
		set = r.loadFallback()
	}

	if degraded {
		return set, nil
	}

	r.mu.Lock()
	r.sets[path] = set
	r.mu.Unlock()
	return set, nil
}

// buildItem constructs the media item for a direct file entry, matching a
// poster among its sibling files when the entry is a video.
func (r *Resolver) buildItem(e model.Entry, siblings []model.Entry) model.MediaItem {
	item := model.MediaItem{
		Name:       e.Name,
		Path:       e.Path,
		Kind:       model.KindOf(e.Name),
		ContentURL: remote.RawContentURL(e.Path),
	}
	if item.Kind == model.KindVideo {
		if poster := findPoster(e.Name, siblings); poster != "" {
			item.PosterURL = remote.RawContentURL(poster)
		}
	}
	return item
}

// findPoster returns the path of the first sibling image sharing the video's
// base name, trying poster extensions in preference order. Extension matching
// is case-insensitive; the base name must match exactly.
func findPoster(videoName string, siblings []model.Entry) string {
	base := model.BaseName(videoName)
	for _, ext := range posterExtensions {
		for _, s := range siblings {
			if model.BaseName(s.Name) != base {
				continue
			}
			if strings.EqualFold(strings.TrimPrefix(s.Name, base), "."+ext) {
				return s.Path
			}
		}
	}
	return ""
}

// CachedPaths reports how many paths have resolved sets.
func (r *Resolver) CachedPaths() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sets)
}
