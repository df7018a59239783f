package domain

import "path/filepath"

// ImagePath identifies a candidate image file.
// The zero value means the image is unknown.
type ImagePath string

// NewImagePath returns the normalized form of p.
// An empty p stays empty (unknown).
func NewImagePath(p string) ImagePath {
	if p == "" {
		return ""
	}
	return ImagePath(filepath.Clean(p))
}

// Known reports whether the path identifies an image.
func (p ImagePath) Known() bool {
	return p != ""
}

// Equal compares two paths after normalization.
func (p ImagePath) Equal(other ImagePath) bool {
	return NewImagePath(string(p)) == NewImagePath(string(other))
}

// String returns the path, or "unknown" for the zero value.
func (p ImagePath) String() string {
	if !p.Known() {
		return "unknown"
	}
	return string(p)
}
