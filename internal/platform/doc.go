package platform

// Package platform contains the OS integration points: handing a media URL
// to the system default player or browser on each supported desktop.
