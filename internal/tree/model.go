package tree

import (
	"context"
	"sync"

	"github.com/repomedia/repomedia/internal/logging"
	"github.com/repomedia/repomedia/internal/model"
)

// NodeState represents the expansion state of a directory node
type NodeState int

const (
	// StateCollapsed means the node's children are hidden (initial state)
	StateCollapsed NodeState = iota

	// StateExpanding means the node's first expansion is fetching children
	StateExpanding

	// StateExpanded means the node's children are visible
	StateExpanded
)

// String returns the string representation of NodeState
func (ns NodeState) String() string {
	switch ns {
	case StateCollapsed:
		return "Collapsed"
	case StateExpanding:
		return "Expanding"
	case StateExpanded:
		return "Expanded"
	default:
		return "Unknown"
	}
}

// Node mirrors one repository entry in the tree. Directory nodes carry
// expansion state and a child list that is populated on first expansion and
// kept for the rest of the session.
type Node struct {
	Entry    model.Entry
	State    NodeState
	Children []*Node

	// NonMedia marks file nodes the gallery has no use for; the UI
	// de-emphasizes them.
	NonMedia bool

	fetched bool
}

// IsDir returns true for directory nodes.
func (n *Node) IsDir() bool {
	return n.Entry.Type.IsDir()
}

// ListingSource provides cached directory listings.
type ListingSource interface {
	GetOrFetch(ctx context.Context, path string) (model.Listing, error)
}

// Model owns the tree of nodes and their expansion lifecycle.
type Model struct {
	listings ListingSource

	mu    sync.RWMutex
	root  *Node
	index map[string]*Node
}

// NewModel creates a tree rooted at the repository root ("").
func NewModel(listings ListingSource) *Model {
	root := &Node{
		Entry: model.Entry{Name: "/", Path: "", Type: model.EntryTypeDir},
	}
	m := &Model{
		listings: listings,
		root:     root,
		index:    map[string]*Node{"": root},
	}
	return m
}

// Root returns the synthetic root node.
func (m *Model) Root() *Node {
	return m.root
}

// NodeByPath looks up a node by its entry path. The root is "".
func (m *Model) NodeByPath(path string) (*Node, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, ok := m.index[path]
	return n, ok
}

// Toggle drives a directory node through its state machine. Collapsing an
// expanded node keeps its children. The first expansion fetches the node's
// listing, which may block; callers off the UI thread only. A fetch failure
// leaves the node expanded with no children.
func (m *Model) Toggle(ctx context.Context, node *Node) {
	if node == nil || !node.IsDir() {
		return
	}

	m.mu.Lock()
	switch node.State {
	case StateExpanded:
		node.State = StateCollapsed
		m.mu.Unlock()
		return
	case StateExpanding:
		// Expansion already underway.
		m.mu.Unlock()
		return
	}
	if node.fetched {
		node.State = StateExpanded
		m.mu.Unlock()
		return
	}
	node.State = StateExpanding
	m.mu.Unlock()

	listing, err := m.listings.GetOrFetch(ctx, node.Entry.Path)
	if err != nil {
		logging.Warn().Err(err).Str("path", node.Entry.Path).Msg("expansion fetch failed")
		listing = model.Listing{}
	}

	dirs, files := listing.PartitionSorted()
	children := make([]*Node, 0, len(dirs)+len(files))
	for _, e := range dirs {
		children = append(children, &Node{Entry: e})
	}
	for _, e := range files {
		children = append(children, &Node{Entry: e, NonMedia: !model.IsMedia(e.Name)})
	}

	m.mu.Lock()
	node.Children = children
	node.fetched = true
	node.State = StateExpanded
	for _, c := range children {
		m.index[c.Entry.Path] = c
	}
	m.mu.Unlock()
}

// ChildPaths returns the entry paths of a node's children when they are
// visible, in render order (directories first, each group alphabetical).
// Collapsed and unfetched nodes report none.
func (m *Model) ChildPaths(path string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, ok := m.index[path]
	if !ok || node.State != StateExpanded {
		return nil
	}
	paths := make([]string, 0, len(node.Children))
	for _, c := range node.Children {
		paths = append(paths, c.Entry.Path)
	}
	return paths
}

// State reports a node's current expansion state.
func (m *Model) State(path string) NodeState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if node, ok := m.index[path]; ok {
		return node.State
	}
	return StateCollapsed
}
