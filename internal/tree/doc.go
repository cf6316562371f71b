package tree

// Package tree models the lazily expandable directory hierarchy shown in the
// left pane. Directory nodes move Collapsed -> Expanding -> Expanded; children
// are fetched and built at most once per node, and a failed fetch simply
// leaves a node with no children.
