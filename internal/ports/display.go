package ports

import (
	"context"

	"github.com/bft-labs/wallcycle/internal/domain"
)

// WallpaperProber reports the wallpaper currently shown by the display tool.
type WallpaperProber interface {
	// ProbeCurrent returns the active image, or the zero ImagePath when it
	// cannot be determined. Query failures are logged, never returned.
	ProbeCurrent(ctx context.Context) domain.ImagePath
}

// WallpaperSetter applies a wallpaper through the display tool.
type WallpaperSetter interface {
	// ApplyImage shows image using the given transition.
	// Returns a *domain.SetError when the tool cannot be launched or fails.
	// Implementations must not keep any belief about the current image.
	ApplyImage(ctx context.Context, image domain.ImagePath, transition domain.Transition) error
}

// Display is a display tool able to both query and set the wallpaper.
type Display interface {
	WallpaperProber
	WallpaperSetter
}
