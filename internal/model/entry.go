package model

import (
	"sort"
	"strings"
)

// EntryType represents the type of a repository entry
type EntryType string

const (
	// EntryTypeDir means the entry is a directory
	EntryTypeDir EntryType = "dir"

	// EntryTypeFile means the entry is a regular file
	EntryTypeFile EntryType = "file"
)

// String returns the string representation of EntryType
func (et EntryType) String() string {
	return string(et)
}

// IsDir returns true if the entry type is a directory
func (et EntryType) IsDir() bool {
	return et == EntryTypeDir
}

// Entry represents a single child of a repository directory.
// Path is slash-separated and relative to the repository root; it is the
// entry's identity. Entries are immutable once fetched.
type Entry struct {
	Name string    `json:"name"`
	Path string    `json:"path"`
	Type EntryType `json:"type"`
}

// Listing is the ordered set of entries under one directory path, in the
// order the remote API produced them.
type Listing []Entry

// PartitionSorted splits the listing into directories and files, each group
// sorted alphabetically by name. The listing itself is left untouched.
func (l Listing) PartitionSorted() (dirs, files []Entry) {
	for _, e := range l {
		if e.Type.IsDir() {
			dirs = append(dirs, e)
		} else {
			files = append(files, e)
		}
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].Name < dirs[j].Name })
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return dirs, files
}

// ParentPath returns the directory portion of a slash-separated entry path,
// or "" when the entry sits at the repository root.
func ParentPath(path string) string {
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return ""
	}
	return path[:idx]
}
