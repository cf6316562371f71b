package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyFallbackManifest = "fallback_manifest_path"
	KeyRequestTimeout   = "request_timeout_seconds"
	KeyThumbnailWorkers = "thumbnail_workers"
)

// Default values
const (
	DefaultFallbackManifest      = "media_fallback.json"
	DefaultRequestTimeoutSeconds = 15
	DefaultThumbnailWorkers      = 4
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetFallbackManifestPath returns the path of the static fallback manifest
func (s *Settings) GetFallbackManifestPath() string {
	path := s.app.Preferences().String(KeyFallbackManifest)
	if path == "" {
		s.SetFallbackManifestPath(DefaultFallbackManifest)
		return DefaultFallbackManifest
	}
	return path
}

// SetFallbackManifestPath sets the path of the static fallback manifest
func (s *Settings) SetFallbackManifestPath(path string) {
	if path == "" {
		path = DefaultFallbackManifest
	}
	s.app.Preferences().SetString(KeyFallbackManifest, path)
}

// GetRequestTimeout returns the per-request HTTP timeout
func (s *Settings) GetRequestTimeout() time.Duration {
	seconds := s.app.Preferences().Int(KeyRequestTimeout)
	if seconds <= 0 {
		s.SetRequestTimeout(DefaultRequestTimeoutSeconds)
		return DefaultRequestTimeoutSeconds * time.Second
	}
	return time.Duration(seconds) * time.Second
}

// SetRequestTimeout sets the per-request HTTP timeout in whole seconds
func (s *Settings) SetRequestTimeout(seconds int) {
	if seconds < 1 {
		seconds = 1
	}
	if seconds > 120 {
		seconds = 120
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, seconds)
}

// GetThumbnailWorkers returns the number of concurrent thumbnail fetchers
func (s *Settings) GetThumbnailWorkers() int {
	value := s.app.Preferences().Int(KeyThumbnailWorkers)
	if value <= 0 {
		s.SetThumbnailWorkers(DefaultThumbnailWorkers)
		return DefaultThumbnailWorkers
	}
	return value
}

// SetThumbnailWorkers sets the number of concurrent thumbnail fetchers
func (s *Settings) SetThumbnailWorkers(count int) {
	if count < 1 {
		count = 1
	}
	if count > 8 {
		count = 8
	}
	s.app.Preferences().SetInt(KeyThumbnailWorkers, count)
}
