package ui

// Package ui implements the Fyne interface: the two-pane layout with the
// repository tree on the left and the searchable media gallery on the right,
// plus the modal viewer and the HTTP thumbnail loader behind the cards.
