package model

import "strings"

// MediaItem is one gallery entry, derived from a repository file entry. The
// JSON tags match the fallback manifest format, so a manifest unmarshals
// straight into a MediaSet.
type MediaItem struct {
	Name       string    `json:"name"`
	Path       string    `json:"path"`
	Kind       MediaKind `json:"kind"`
	ContentURL string    `json:"contentUrl"`
	PosterURL  string    `json:"posterUrl,omitempty"`
}

// MediaSet is the ordered sequence of media items resolved for one
// directory path.
type MediaSet []MediaItem

// FilterByName returns the items whose name contains query as a
// case-insensitive substring. An empty query returns a copy of the whole
// set. The receiver is never mutated.
func (ms MediaSet) FilterByName(query string) MediaSet {
	out := make(MediaSet, 0, len(ms))
	if query == "" {
		out = append(out, ms...)
		return out
	}
	q := strings.ToLower(query)
	for _, item := range ms {
		if strings.Contains(strings.ToLower(item.Name), q) {
			out = append(out, item)
		}
	}
	return out
}
