// Package fs discovers wallpaper candidates on a filesystem.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/bft-labs/wallcycle/internal/domain"
	"github.com/bft-labs/wallcycle/internal/ports"
)

const (
	// maxDepth stops runaway recursion through symlinks that escape loop detection.
	maxDepth = 128

	maxLinkHops = 40
)

// imageExtensions are matched case-insensitively, without the leading dot.
var imageExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"gif":  {},
	"bmp":  {},
	"webp": {},
	"tiff": {},
	"tif":  {},
}

// IsImage reports whether name carries a recognized image extension.
func IsImage(name string) bool {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return false
	}
	_, ok := imageExtensions[strings.ToLower(ext)]
	return ok
}

// CatalogBuilder walks directory trees and collects image files.
type CatalogBuilder struct {
	fs     billy.Filesystem
	logger ports.Logger
}

// NewCatalogBuilder creates a builder reading from fs.
func NewCatalogBuilder(fs billy.Filesystem, logger ports.Logger) *CatalogBuilder {
	return &CatalogBuilder{
		fs:     fs,
		logger: logger,
	}
}

// Discover recursively collects images below every root, following symbolic
// links. Invalid roots and unreadable entries are logged and skipped, so the
// returned catalog may be empty.
func (b *CatalogBuilder) Discover(roots []string) domain.Catalog {
	var images []domain.ImagePath

	for _, root := range roots {
		root = filepath.Clean(root)

		info, err := b.fs.Stat(root)
		if err != nil {
			if os.IsNotExist(err) {
				b.logger.Warn("path does not exist", ports.String("path", root))
			} else {
				b.logger.Warn("cannot access path", ports.String("path", root), ports.Err(err))
			}
			continue
		}
		if !info.IsDir() {
			b.logger.Warn("path is not a directory", ports.String("path", root))
			continue
		}

		w := walker{b: b}
		w.walk(root, root, 0)
		images = append(images, w.images...)
	}

	c := domain.NewCatalog(images)
	b.logger.Info("discovered images", ports.Int("count", c.Len()))
	return c
}

// walker holds the state of a single root traversal.
type walker struct {
	b *CatalogBuilder

	// parents holds the resolved paths of the directories currently being
	// walked, outermost first. Only these count as loops.
	parents []string
	images  []domain.ImagePath
}

// walk lists dir, reached as realDir once symlinks along the way are resolved.
func (w *walker) walk(dir, realDir string, depth int) {
	if depth > maxDepth {
		w.b.logger.Warn("directory nesting too deep, skipping", ports.String("path", dir))
		return
	}

	entries, err := w.b.fs.ReadDir(dir)
	if err != nil {
		w.b.logger.Warn("error accessing directory", ports.String("path", dir), ports.Err(err))
		return
	}

	w.parents = append(w.parents, realDir)
	defer func() { w.parents = w.parents[:len(w.parents)-1] }()

	for _, entry := range entries {
		p := w.b.fs.Join(dir, entry.Name())
		childReal := filepath.Join(realDir, entry.Name())
		info := entry

		if entry.Mode()&os.ModeSymlink != 0 {
			target, err := w.b.fs.Stat(p)
			if err != nil {
				w.b.logger.Warn("error accessing file", ports.String("path", p), ports.Err(err))
				continue
			}
			if target.IsDir() {
				resolved, err := w.resolve(childReal)
				if err != nil {
					w.b.logger.Warn("error reading link", ports.String("path", p), ports.Err(err))
					continue
				}
				if w.isParent(resolved) {
					w.b.logger.Warn("symlink loop detected, skipping", ports.String("path", p), ports.String("target", resolved))
					continue
				}
				childReal = resolved
			}
			info = target
		}

		switch {
		case info.IsDir():
			w.walk(p, childReal, depth+1)
		case info.Mode().IsRegular() && IsImage(entry.Name()):
			w.images = append(w.images, domain.NewImagePath(p))
		}
	}
}

// resolve follows the link chain starting at p and returns the final target.
func (w *walker) resolve(p string) (string, error) {
	for hops := 0; hops < maxLinkHops; hops++ {
		info, err := w.b.fs.Lstat(p)
		if err != nil {
			return "", err
		}
		if info.Mode()&os.ModeSymlink == 0 {
			return p, nil
		}

		target, err := w.b.fs.Readlink(p)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(p), target)
		}
		p = filepath.Clean(target)
	}
	return "", fmt.Errorf("%s: too many levels of symbolic links", p)
}

func (w *walker) isParent(p string) bool {
	for _, parent := range w.parents {
		if parent == p {
			return true
		}
	}
	return false
}
