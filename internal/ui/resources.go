package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/clubhub/internal/platform"
)

const (
	AppIcon = "club-app.png"
)

// LoadAppIcon loads the window icon from the asset directory
func LoadAppIcon(assetDir string) (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(platform.ResolveAssetPath(assetDir, AppIcon))
}
