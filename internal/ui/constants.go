package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Kind badges shown on gallery cards
const (
	BadgeImage = "IMG"
	BadgeVideo = "VID"
)

// Tree pane
const (
	RootNodeLabel     = "/"
	TreeLoadingSuffix = " (loading)"
)

// Layout sizing
const (
	ThumbnailSize float32 = 128

	ViewerImageMinWidth  float32 = 640
	ViewerImageMinHeight float32 = 480

	// Fraction of the split given to the tree pane.
	TreePaneSplit = 0.3
)

// Text fragments
const (
	SearchPlaceholder = "Filter by filename"
	StatusIdle        = "Select a file to browse its folder's media"
	StatusUnavailable = "Listing service unavailable, expand or select again later"
)

// Thumbnail queue bound; oldest pending requests are dropped first.
const (
	ThumbnailQueueLimit = 100
)
