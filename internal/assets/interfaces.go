package assets

import "image"

// Loader defines how the UI obtains row thumbnails.
type Loader interface {
	Thumbnail(name string, size int) image.Image
}

// DirLoader is a Loader whose base directory can be changed at runtime.
type DirLoader interface {
	Loader
	SetDir(dir string)
}
