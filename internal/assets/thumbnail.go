package assets

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// DefaultThumbnailSize is used when a non-positive size is requested
const DefaultThumbnailSize = 50

// PlaceholderColor fills thumbnails whose image could not be loaded
var PlaceholderColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// LoadCircularThumbnail decodes the image at path, crops it to a size x size
// square and masks it to the inscribed circle. Any failure yields a
// placeholder of the same size.
func LoadCircularThumbnail(path string, size int) image.Image {
	if size <= 0 {
		size = DefaultThumbnailSize
	}

	src, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return Placeholder(size)
	}

	square := imaging.Fill(src, size, size, imaging.Center, imaging.Lanczos)

	out := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.DrawMask(out, out.Bounds(), square, image.Point{}, &circleMask{size: size}, image.Point{}, draw.Over)
	return out
}

// Placeholder returns the flat square used in place of a missing image
func Placeholder(size int) image.Image {
	if size <= 0 {
		size = DefaultThumbnailSize
	}
	return imaging.New(size, size, PlaceholderColor)
}

// circleMask is an alpha mask that is opaque inside the circle inscribed in a
// size x size square.
type circleMask struct {
	size int
}

func (m *circleMask) ColorModel() color.Model {
	return color.AlphaModel
}

func (m *circleMask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.size, m.size)
}

func (m *circleMask) At(x, y int) color.Color {
	r := float64(m.size) / 2
	dx := float64(x) + 0.5 - r
	dy := float64(y) + 0.5 - r
	if dx*dx+dy*dy <= r*r {
		return color.Alpha{A: 255}
	}
	return color.Alpha{A: 0}
}
