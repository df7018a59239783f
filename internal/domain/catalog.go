package domain

// Catalog is the ordered, read-only set of images built once at startup.
type Catalog struct {
	images []ImagePath
}

// NewCatalog copies images into a new catalog.
// Unknown (empty) paths are dropped.
func NewCatalog(images []ImagePath) Catalog {
	c := Catalog{images: make([]ImagePath, 0, len(images))}
	for _, img := range images {
		if img.Known() {
			c.images = append(c.images, NewImagePath(string(img)))
		}
	}
	return c
}

// Len returns the number of images in the catalog.
func (c Catalog) Len() int {
	return len(c.images)
}

// Empty returns true if the catalog holds no images.
func (c Catalog) Empty() bool {
	return len(c.images) == 0
}

// At returns the image at index i.
func (c Catalog) At(i int) ImagePath {
	return c.images[i]
}

// Images returns a copy of the catalog entries in discovery order.
func (c Catalog) Images() []ImagePath {
	return append([]ImagePath(nil), c.images...)
}

// Contains reports whether img is part of the catalog.
func (c Catalog) Contains(img ImagePath) bool {
	for _, candidate := range c.images {
		if candidate.Equal(img) {
			return true
		}
	}
	return false
}
