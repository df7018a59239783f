package app

import (
	"math/rand/v2"

	"github.com/bft-labs/wallcycle/internal/domain"
)

// Selector picks the next wallpaper, avoiding the one currently shown.
type Selector struct {
	intn func(n int) int
}

// NewSelector creates a selector backed by the auto-seeded math/rand/v2 source.
func NewSelector() *Selector {
	return &Selector{intn: rand.IntN}
}

// Select returns a uniformly random catalog entry different from current.
//
// With at most one entry, or an unknown current image, any entry may be
// returned. If every entry equals current, current is returned unchanged.
// The boolean is false only for an empty catalog.
func (s *Selector) Select(catalog domain.Catalog, current domain.ImagePath) (domain.ImagePath, bool) {
	if catalog.Empty() {
		return "", false
	}

	if catalog.Len() <= 1 || !current.Known() {
		return catalog.At(s.intn(catalog.Len())), true
	}

	candidates := make([]domain.ImagePath, 0, catalog.Len())
	for _, img := range catalog.Images() {
		if !img.Equal(current) {
			candidates = append(candidates, img)
		}
	}
	if len(candidates) == 0 {
		return current, true
	}
	return candidates[s.intn(len(candidates))], true
}
