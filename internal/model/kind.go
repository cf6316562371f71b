package model

import "strings"

// MediaKind classifies a file by what the gallery can do with it
type MediaKind string

const (
	// KindImage means the file renders as a static image
	KindImage MediaKind = "image"

	// KindVideo means the file plays as a video
	KindVideo MediaKind = "video"

	// KindOther means the file is not gallery material
	KindOther MediaKind = "other"
)

// String returns the string representation of MediaKind
func (mk MediaKind) String() string {
	return string(mk)
}

// Extension sets recognised by the classifier. Extensions are matched
// case-insensitively on the substring after the last dot.
var (
	imageExtensions = map[string]bool{
		"png": true, "jpg": true, "jpeg": true, "webp": true, "gif": true,
	}
	videoExtensions = map[string]bool{
		"mp4": true, "webm": true, "ogv": true,
	}
)

// KindOf classifies a filename by extension. It is total: names without an
// extension, or with an unknown one, classify as KindOther.
func KindOf(name string) MediaKind {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return KindOther
	}
	ext := strings.ToLower(name[idx+1:])
	switch {
	case imageExtensions[ext]:
		return KindImage
	case videoExtensions[ext]:
		return KindVideo
	default:
		return KindOther
	}
}

// IsMedia returns true if the filename classifies as image or video
func IsMedia(name string) bool {
	return KindOf(name) != KindOther
}

// BaseName returns the filename with its extension stripped. Names without
// a dot are returned unchanged.
func BaseName(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return name
	}
	return name[:idx]
}
