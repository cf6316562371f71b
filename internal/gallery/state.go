// Package gallery holds the view state behind the media grid: the base set
// of the most recent resolution, the live search query, and the filtered
// list the grid actually renders.
package gallery

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/repomedia/repomedia/internal/model"
)

// State derives the visible media list from the last committed base set and
// the live query. Resolutions are tagged so a slow result for an older
// selection can never overwrite a newer one.
type State struct {
	mu          sync.Mutex
	base        model.MediaSet
	visible     model.MediaSet
	query       string
	activeToken string
	activePath  string
	onChange    func(model.MediaSet)
}

// NewState creates an empty gallery state.
func NewState() *State {
	return &State{}
}

// SetOnChange registers the render callback invoked whenever the visible
// list changes. The callback runs while no internal lock is held.
func (s *State) SetOnChange(fn func(model.MediaSet)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Begin marks path as the active selection and returns the token a
// subsequent SetBase must present. Any token handed out earlier goes stale.
func (s *State) Begin(path string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeToken = uuid.NewString()
	s.activePath = path
	return s.activeToken
}

// SetBase replaces the base list if token is still the active one, reports
// whether it was applied. Stale tokens change nothing.
func (s *State) SetBase(token string, set model.MediaSet) bool {
	s.mu.Lock()
	if token != s.activeToken {
		s.mu.Unlock()
		return false
	}
	s.base = set
	s.refilterLocked()
	visible, fn := s.visible, s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn(visible)
	}
	return true
}

// ApplyQuery updates the live search query and re-derives the visible list.
// It never mutates the base list and never triggers a fetch.
func (s *State) ApplyQuery(query string) {
	s.mu.Lock()
	s.query = strings.TrimSpace(strings.ToLower(query))
	s.refilterLocked()
	visible, fn := s.visible, s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn(visible)
	}
}

func (s *State) refilterLocked() {
	s.visible = s.base.FilterByName(s.query)
}

// Visible returns the currently displayed list.
func (s *State) Visible() model.MediaSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// ActivePath returns the path of the most recent selection.
func (s *State) ActivePath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activePath
}
