package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/clubhub/internal/assets"
	"github.com/ytget/clubhub/internal/config"
	"github.com/ytget/clubhub/internal/model"
	"github.com/ytget/clubhub/internal/store"
	"github.com/ytget/clubhub/internal/view"
)

// RootUI represents the main UI structure: the window and its three tabs.
// It implements view.Surface for the presenter.
type RootUI struct {
	window   fyne.Window
	app      fyne.App
	records  store.Records
	loader   assets.Loader
	settings *config.Settings
	texts    *Texts

	presenter *view.Presenter

	tabs             *container.AppTabs
	notificationsTab *container.TabItem
	lists            map[view.Tab]*fyne.Container

	// Member page filter chrome
	filterButtons map[model.Category]*widget.Button
	searchEntry   *widget.Entry

	details []*DetailWindow
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, records store.Records, loader assets.Loader, settings *config.Settings) *RootUI {
	ui := &RootUI{
		window:        window,
		app:           app,
		records:       records,
		loader:        loader,
		settings:      settings,
		texts:         NewTexts(),
		lists:         make(map[view.Tab]*fyne.Container),
		filterButtons: make(map[model.Category]*widget.Button),
	}

	window.SetTitle(ui.texts.GetText(KeyAppTitle))

	ui.presenter = view.NewPresenter(records, ui)
	ui.setupUI()
	ui.presenter.RenderAll()

	log.Printf("UI setup completed: %d notifications (%d unread), %d resources, %d clubs",
		len(records.Notifications()), records.UnreadCount(), len(records.Resources()), records.Clubs().Len())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	notificationsBox, notificationsScroll := newScrollableList()
	resourcesBox, resourcesScroll := newScrollableList()
	myPageBox, myPageScroll := newScrollableList()

	ui.lists[view.TabNotifications] = notificationsBox
	ui.lists[view.TabResources] = resourcesBox
	ui.lists[view.TabMyPage] = myPageBox

	myPage := container.NewBorder(
		ui.createFilterBar(), // top
		nil,                  // bottom
		nil,                  // left
		nil,                  // right
		myPageScroll,         // center
	)

	ui.notificationsTab = container.NewTabItem(ui.texts.GetText(KeyTabNotifications), notificationsScroll)
	ui.tabs = container.NewAppTabs(
		ui.notificationsTab,
		container.NewTabItem(ui.texts.GetText(KeyTabResources), resourcesScroll),
		container.NewTabItem(ui.texts.GetText(KeyTabMyPage), myPage),
	)

	ui.window.SetContent(ui.tabs)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.texts.GetText(KeySettings), ui.onShowSettings)
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.texts.GetText(KeyFile), settingsItem),
	)
	ui.window.SetMainMenu(mainMenu)
}

// createFilterBar builds one button per category plus the name search entry
func (ui *RootUI) createFilterBar() fyne.CanvasObject {
	buttons := container.NewHBox()
	for _, option := range ui.presenter.Filter().Options() {
		category := option
		btn := widget.NewButton(category.String(), func() {
			ui.presenter.SelectCategory(category)
		})
		ui.filterButtons[category] = btn
		buttons.Add(btn)
	}

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.texts.GetText(KeySearchPlaceholder))
	ui.searchEntry.OnChanged = ui.presenter.Search

	return container.NewVBox(container.NewHScroll(buttons), ui.searchEntry)
}

// RenderList implements view.Surface
func (ui *RootUI) RenderList(tab view.Tab, rows []view.Row) {
	box, exists := ui.lists[tab]
	if !exists {
		log.Printf("RenderList called for unknown tab %s", tab)
		return
	}

	RenderList(box, rows, ui.loader, ui.settings.GetThumbnailSize())

	switch tab {
	case view.TabNotifications:
		ui.updateNotificationsTitle(view.BadgeCount(rows))
	case view.TabMyPage:
		ui.highlightFilter(ui.presenter.Filter().Current())
	}
}

// ShowModal implements view.Surface
func (ui *RootUI) ShowModal(title, body string) {
	dw := ShowDetail(ui.app, ui.texts, title, body, ui.settings.GetDetailWrapWidth())
	ui.details = append(ui.details, dw)
}

// updateNotificationsTitle shows the unread count on the notifications tab
func (ui *RootUI) updateNotificationsTitle(unread int) {
	if ui.notificationsTab == nil {
		return
	}
	title := ui.texts.GetText(KeyTabNotifications)
	if unread > 0 {
		title = fmt.Sprintf("%s (%d)", title, unread)
	}
	if ui.notificationsTab.Text != title {
		ui.notificationsTab.Text = title
		ui.tabs.Refresh()
	}
}

// highlightFilter marks the selected category button
func (ui *RootUI) highlightFilter(current model.Category) {
	for category, btn := range ui.filterButtons {
		importance := widget.MediumImportance
		if category == current {
			importance = widget.HighImportance
		}
		if btn.Importance != importance {
			btn.Importance = importance
			btn.Refresh()
		}
	}
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.texts, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies settings that take effect immediately
func (ui *RootUI) onSettingsSaved() {
	if dl, ok := ui.loader.(assets.DirLoader); ok {
		dl.SetDir(ui.settings.GetAssetDirectory())
	}
	log.Printf("Settings saved: assets=%s thumbnail=%d wrap=%d seed=%q",
		ui.settings.GetAssetDirectory(), ui.settings.GetThumbnailSize(),
		ui.settings.GetDetailWrapWidth(), ui.settings.GetSeedFile())
	ui.presenter.RenderAll()
}

// Presenter returns the presenter driving the tabs
func (ui *RootUI) Presenter() *view.Presenter {
	return ui.presenter
}

// List returns the rendered rows of a tab
func (ui *RootUI) List(tab view.Tab) []*RecordRow {
	box, exists := ui.lists[tab]
	if !exists {
		return nil
	}
	return RowsOf(box)
}

// Tabs returns the tab container
func (ui *RootUI) Tabs() *container.AppTabs {
	return ui.tabs
}

// Details returns every detail window opened so far
func (ui *RootUI) Details() []*DetailWindow {
	return ui.details
}
