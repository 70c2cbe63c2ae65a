package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/clubhub/internal/assets"
	"github.com/ytget/clubhub/internal/config"
	"github.com/ytget/clubhub/internal/store"
	"github.com/ytget/clubhub/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.clubhub"
)

func main() {
	log.Printf("clubhub v%s starting...", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow("")
	myWindow.Resize(fyne.NewSize(ui.MainWindowWidth, ui.MainWindowHeight))

	settings := config.NewSettings(myApp)
	assetDir := settings.GetAssetDirectory()

	if icon, err := ui.LoadAppIcon(assetDir); err == nil {
		myWindow.SetIcon(icon)
	}

	records := loadStore(settings)
	loader := assets.NewDiskLoader(assetDir)

	ui.NewRootUI(myWindow, myApp, records, loader, settings)

	myWindow.ShowAndRun()
}

// loadStore reads the configured seed file, falling back to the built-in data
func loadStore(settings *config.Settings) *store.Store {
	path := settings.GetSeedFile()
	if path == "" {
		return store.Default()
	}

	records, err := store.LoadFile(path)
	if err != nil {
		log.Printf("failed to load seed, using built-in data: %v", err)
		return store.Default()
	}
	log.Printf("Loaded seed from %s", path)
	return records
}
