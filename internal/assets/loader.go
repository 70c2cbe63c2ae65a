package assets

import (
	"image"

	"github.com/ytget/clubhub/internal/platform"
)

// DiskLoader resolves thumbnail names against a base directory
type DiskLoader struct {
	dir string
}

// NewDiskLoader creates a loader reading images relative to dir
func NewDiskLoader(dir string) *DiskLoader {
	return &DiskLoader{dir: dir}
}

// Dir returns the directory images are resolved against
func (l *DiskLoader) Dir() string {
	return l.dir
}

// SetDir changes the directory used for subsequent loads
func (l *DiskLoader) SetDir(dir string) {
	l.dir = dir
}

// Thumbnail loads a circular thumbnail for the named asset
func (l *DiskLoader) Thumbnail(name string, size int) image.Image {
	return LoadCircularThumbnail(platform.ResolveAssetPath(l.dir, name), size)
}
