package model

// Package model defines domain data structures used across the app: repository
// entries and listings, media items and sets, and the file-kind classifier.
// Structures are designed for direct binding in the UI and for decoding both
// the remote listing API and the fallback manifest.
