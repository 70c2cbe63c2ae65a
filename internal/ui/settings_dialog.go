package ui

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/pkg/errors"

	"github.com/ytget/clubhub/internal/config"
	"github.com/ytget/clubhub/internal/platform"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	texts    *Texts
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	assetDirEntry  *widget.Entry
	thumbnailEntry *widget.Entry
	wrapWidthEntry *widget.Entry
	seedFileEntry  *widget.Entry
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values have been stored.
func NewSettingsDialog(settings *config.Settings, texts *Texts, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		texts:    texts,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.assetDirEntry = widget.NewEntry()
	sd.assetDirEntry.Validator = sd.validateDirectory
	browseDirBtn := widget.NewButton(sd.texts.GetText(KeyBrowse), sd.onBrowseDirectory)
	assetDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.assetDirEntry)

	sd.thumbnailEntry = widget.NewEntry()
	sd.thumbnailEntry.SetPlaceHolder(strconv.Itoa(config.MinThumbnailSize) + "-" + strconv.Itoa(config.MaxThumbnailSize))

	sd.wrapWidthEntry = widget.NewEntry()
	sd.wrapWidthEntry.SetPlaceHolder(strconv.Itoa(config.MinDetailWrapWidth) + "-" + strconv.Itoa(config.MaxDetailWrapWidth))

	sd.seedFileEntry = widget.NewEntry()
	sd.seedFileEntry.SetPlaceHolder(sd.texts.GetText(KeySeedFileHint))
	browseSeedBtn := widget.NewButton(sd.texts.GetText(KeyBrowse), sd.onBrowseSeedFile)
	seedFileRow := container.NewBorder(nil, nil, nil, browseSeedBtn, sd.seedFileEntry)

	form := container.NewVBox(
		widget.NewLabel(sd.texts.GetText(KeyAssetDirectory)),
		assetDirRow,

		widget.NewLabel(sd.texts.GetText(KeyThumbnailSize)),
		sd.thumbnailEntry,

		widget.NewLabel(sd.texts.GetText(KeyDetailWrapWidth)),
		sd.wrapWidthEntry,

		widget.NewSeparator(),

		widget.NewLabel(sd.texts.GetText(KeySeedFile)),
		seedFileRow,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.texts.GetText(KeySettings),
		sd.texts.GetText(KeySave),
		sd.texts.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(MainWindowWidth, MainWindowHeight*0.8))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.assetDirEntry.SetText(sd.settings.GetAssetDirectory())
	sd.thumbnailEntry.SetText(strconv.Itoa(sd.settings.GetThumbnailSize()))
	sd.wrapWidthEntry.SetText(strconv.Itoa(sd.settings.GetDetailWrapWidth()))
	sd.seedFileEntry.SetText(sd.settings.GetSeedFile())
}

func (sd *SettingsDialog) validateDirectory(dir string) error {
	if strings.TrimSpace(dir) == "" || platform.DirectoryExists(dir) {
		return nil
	}
	return errors.New(sd.texts.GetText(KeyInvalidDirectory))
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.assetDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onBrowseSeedFile handles seed file browsing
func (sd *SettingsDialog) onBrowseSeedFile() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.seedFileEntry.SetText(reader.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()
	dialog.ShowInformation(sd.texts.GetText(KeySettings), sd.texts.GetText(KeySettingsSaved), sd.window)
}

// save stores the entered values and notifies the owner
func (sd *SettingsDialog) save() {
	assetDir := strings.TrimSpace(sd.assetDirEntry.Text)
	if sd.validateDirectory(assetDir) == nil {
		sd.settings.SetAssetDirectory(assetDir)
	}

	if size, err := strconv.Atoi(strings.TrimSpace(sd.thumbnailEntry.Text)); err == nil {
		sd.settings.SetThumbnailSize(size)
	}

	if width, err := strconv.Atoi(strings.TrimSpace(sd.wrapWidthEntry.Text)); err == nil {
		sd.settings.SetDetailWrapWidth(width)
	}

	sd.settings.SetSeedFile(strings.TrimSpace(sd.seedFileEntry.Text))

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
