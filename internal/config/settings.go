package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/clubhub/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyAssetDir        = "asset_directory"
	KeyThumbnailSize   = "thumbnail_size"
	KeySeedFile        = "seed_file"
	KeyDetailWrapWidth = "detail_wrap_width"
)

// Default values and bounds
const (
	DefaultThumbnailSize   = 50
	MinThumbnailSize       = 24
	MaxThumbnailSize       = 128
	DefaultDetailWrapWidth = 280
	MinDetailWrapWidth     = 120
	MaxDetailWrapWidth     = 600
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAssetDirectory returns the directory record images are loaded from
func (s *Settings) GetAssetDirectory() string {
	dir := s.app.Preferences().String(KeyAssetDir)
	if dir == "" {
		return platform.DefaultAssetDirectory()
	}
	return dir
}

// SetAssetDirectory sets the image directory. An empty value restores the default lookup.
func (s *Settings) SetAssetDirectory(dir string) {
	s.app.Preferences().SetString(KeyAssetDir, dir)
}

// GetThumbnailSize returns the row thumbnail edge length in pixels
func (s *Settings) GetThumbnailSize() int {
	value := s.app.Preferences().Int(KeyThumbnailSize)
	if value <= 0 {
		s.SetThumbnailSize(DefaultThumbnailSize)
		return DefaultThumbnailSize
	}
	return value
}

// SetThumbnailSize sets the thumbnail size, clamped to the supported range
func (s *Settings) SetThumbnailSize(size int) {
	s.app.Preferences().SetInt(KeyThumbnailSize, clamp(size, MinThumbnailSize, MaxThumbnailSize))
}

// GetSeedFile returns the YAML seed path, or "" for the built-in data
func (s *Settings) GetSeedFile() string {
	return s.app.Preferences().String(KeySeedFile)
}

// SetSeedFile sets the seed path used on next launch
func (s *Settings) SetSeedFile(path string) {
	s.app.Preferences().SetString(KeySeedFile, path)
}

// GetDetailWrapWidth returns the wrap width of detail window bodies
func (s *Settings) GetDetailWrapWidth() int {
	return s.app.Preferences().IntWithFallback(KeyDetailWrapWidth, DefaultDetailWrapWidth)
}

// SetDetailWrapWidth sets the detail body wrap width, clamped to the supported range
func (s *Settings) SetDetailWrapWidth(width int) {
	s.app.Preferences().SetInt(KeyDetailWrapWidth, clamp(width, MinDetailWrapWidth, MaxDetailWrapWidth))
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
