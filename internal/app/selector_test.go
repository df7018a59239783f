package app

import (
	"testing"

	"github.com/bft-labs/wallcycle/internal/domain"
)

const trials = 1000

func TestSelector_NeverReturnsCurrent(t *testing.T) {
	s := NewSelector()
	c := catalogOf("/p/a.jpg", "/p/b.jpg", "/p/c.jpg")

	for i := 0; i < trials; i++ {
		got, ok := s.Select(c, "/p/a.jpg")
		if !ok {
			t.Fatal("Select() ok = false for non-empty catalog")
		}
		if got == "/p/a.jpg" {
			t.Fatalf("trial %d: Select() returned the current image", i)
		}
	}
}

func TestSelector_ComparesNormalizedPaths(t *testing.T) {
	s := NewSelector()
	c := catalogOf("/p/a.jpg", "/p/b.jpg")

	for i := 0; i < trials; i++ {
		got, _ := s.Select(c, "/p/./sub/../a.jpg")
		if got != "/p/b.jpg" {
			t.Fatalf("Select() = %s, want /p/b.jpg", got)
		}
	}
}

func TestSelector_SingleEntry(t *testing.T) {
	s := NewSelector()
	c := catalogOf("/p/only.png")

	for _, current := range []domain.ImagePath{"", "/p/only.png", "/elsewhere/x.jpg"} {
		got, ok := s.Select(c, current)
		if !ok || got != "/p/only.png" {
			t.Errorf("Select(current=%q) = %q, %v, want /p/only.png, true", current, got, ok)
		}
	}
}

func TestSelector_UnknownCurrentReachesEveryEntry(t *testing.T) {
	s := NewSelector()
	c := catalogOf("/p/a.jpg", "/p/b.jpg", "/p/c.jpg", "/p/d.jpg")

	counts := map[domain.ImagePath]int{}
	for i := 0; i < trials; i++ {
		got, _ := s.Select(c, "")
		counts[got]++
	}

	for _, img := range c.Images() {
		if counts[img] == 0 {
			t.Errorf("image %s was never selected in %d trials", img, trials)
		}
	}
}

func TestSelector_CurrentOutsideCatalogIsIgnored(t *testing.T) {
	s := NewSelector()
	c := catalogOf("/p/a.jpg", "/p/b.jpg")

	counts := map[domain.ImagePath]int{}
	for i := 0; i < trials; i++ {
		got, _ := s.Select(c, "/set/by/another/program.jpg")
		counts[got]++
	}
	if counts["/p/a.jpg"] == 0 || counts["/p/b.jpg"] == 0 {
		t.Errorf("selection excluded a catalog entry: %v", counts)
	}
}

func TestSelector_AllEntriesEqualCurrent(t *testing.T) {
	s := NewSelector()
	c := catalogOf("/p/a.jpg", "/p/a.jpg")

	got, ok := s.Select(c, "/p/a.jpg")
	if !ok || got != "/p/a.jpg" {
		t.Errorf("Select() = %q, %v, want current unchanged", got, ok)
	}
}

func TestSelector_EmptyCatalog(t *testing.T) {
	got, ok := NewSelector().Select(domain.NewCatalog(nil), "/p/a.jpg")
	if ok || got != "" {
		t.Errorf("Select() = %q, %v, want \"\", false", got, ok)
	}
}

func TestSelector_UsesInjectedSource(t *testing.T) {
	s := &Selector{intn: func(n int) int { return n - 1 }}
	c := catalogOf("/p/a.jpg", "/p/b.jpg", "/p/c.jpg")

	got, _ := s.Select(c, "/p/c.jpg")
	if got != "/p/b.jpg" {
		t.Errorf("Select() = %s, want last candidate /p/b.jpg", got)
	}
}
