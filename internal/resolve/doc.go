package resolve

// Package resolve turns a directory path into the ordered media set shown in
// the gallery: media files directly in the directory, then media files one
// level into each subdirectory, with poster images matched for direct videos.
// Results are memoized per path for the lifetime of the process.
