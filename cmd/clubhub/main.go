package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/clubhub/internal/assets"
	"github.com/ytget/clubhub/internal/config"
	"github.com/ytget/clubhub/internal/store"
	"github.com/ytget/clubhub/internal/ui"
)

// Minimal launcher: built-in data, default settings.
func main() {
	myApp := app.NewWithID("com.ytget.clubhub")
	myWindow := myApp.NewWindow("")
	myWindow.Resize(fyne.NewSize(ui.MainWindowWidth, ui.MainWindowHeight))

	settings := config.NewSettings(myApp)
	ui.NewRootUI(myWindow, myApp, store.Default(), assets.NewDiskLoader(settings.GetAssetDirectory()), settings)

	myWindow.ShowAndRun()
}
