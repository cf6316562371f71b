package model

import "testing"

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		expected MediaKind
	}{
		{"photo.png", KindImage},
		{"A.PNG", KindImage},
		{"pic.JpEg", KindImage},
		{"anim.gif", KindImage},
		{"still.webp", KindImage},
		{"clip.mp4", KindVideo},
		{"clip.MP4", KindVideo},
		{"clip.webm", KindVideo},
		{"clip.ogv", KindVideo},
		{"readme", KindOther},
		{"README.md", KindOther},
		{"archive.tar.gz", KindOther},
		{"trailing.", KindOther},
		{"", KindOther},
		{".hidden", KindOther},
	}

	for _, test := range tests {
		result := KindOf(test.name)
		if result != test.expected {
			t.Errorf("KindOf(%q) = %s, expected %s", test.name, result, test.expected)
		}
	}
}

func TestIsMedia(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"a.png", true},
		{"b.mp4", true},
		{"c.txt", false},
		{"noext", false},
	}

	for _, test := range tests {
		result := IsMedia(test.name)
		if result != test.expected {
			t.Errorf("IsMedia(%q) = %v, expected %v", test.name, result, test.expected)
		}
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"clip.mp4", "clip"},
		{"clip.backup.mp4", "clip.backup"},
		{"noext", "noext"},
		{".hidden", ""},
	}

	for _, test := range tests {
		result := BaseName(test.name)
		if result != test.expected {
			t.Errorf("BaseName(%q) = %q, expected %q", test.name, result, test.expected)
		}
	}
}
