package ui

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/spotmobile/internal/config"
	"github.com/ytget/spotmobile/internal/navigation"
	"github.com/ytget/spotmobile/internal/playlist"
	"github.com/ytget/spotmobile/internal/spotify"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	nav          *navigation.Navigator
	logger       *zap.Logger

	linkEntry  *widget.Entry
	openBtn    *widget.Button
	libraryBtn *widget.Button

	// Route content
	content        *fyne.Container
	playlistScreen *PlaylistScreen
	libraryScreen  *LibraryScreen

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label

	toast *widget.PopUp
}

// NewRootUI creates and initializes the main UI
func NewRootUI(
	window fyne.Window,
	app fyne.App,
	settings *config.Settings,
	nav *navigation.Navigator,
	controller *playlist.Controller,
	logger *zap.Logger,
) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		nav:          nav,
		logger:       logger.Named("ui"),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.libraryScreen = NewLibraryScreen(localization)
	ui.playlistScreen = NewPlaylistScreen(window, nav, controller, settings, localization, ui.mobile, ui, logger)

	ui.setupUI()

	nav.OnRouteChange(func(route navigation.Route) {
		fyne.Do(func() { ui.showRoute(route) })
	})
	ui.playlistScreen.Mount()
	window.SetOnClosed(ui.Close)

	ui.logger.Debug("UI setup completed")
	return ui
}

// Start focuses the library and opens playlistID, or the last opened
// playlist when reopening is enabled
func (ui *RootUI) Start(playlistID string) {
	ui.nav.Reset(RouteLibrary, nil)

	id := strings.TrimSpace(playlistID)
	if id == "" && ui.settings.GetReopenLastPlaylist() {
		id = ui.settings.GetLastPlaylistID()
	}
	if id != "" {
		ui.logger.Info("Opening playlist", zap.String("playlist_id", id))
		ui.OpenPlaylist(id)
	}
}

// OpenPlaylist navigates to the playlist screen for id
func (ui *RootUI) OpenPlaylist(id string) {
	ui.nav.Navigate(RoutePlaylist, map[string]string{ParamPlaylistID: id})
}

// Close unmounts screens
func (ui *RootUI) Close() {
	ui.playlistScreen.Unmount()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.linkEntry = ui.mobile.CreateMobileEntry(ui.localization.GetText(KeyEnterLink))
	ui.linkEntry.Validator = ui.validateLink
	ui.linkEntry.OnSubmitted = func(string) {
		ui.onOpenClick()
	}

	ui.openBtn = widget.NewButton(ui.localization.GetText(KeyOpen), ui.onOpenClick)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, settingsBtn, ui.openBtn, ui.linkEntry)

	// Notification panel under the link entry (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationContainer = container.NewPadded(ui.notificationLabel)
	ui.notificationContainer.Hide()

	topCombined := container.NewVBox(topPanel, ui.notificationContainer)

	ui.libraryBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyLibrary), theme.StorageIcon(), func() {
		ui.nav.Reset(RouteLibrary, nil)
	})
	ui.libraryBtn.Importance = widget.LowImportance

	ui.content = container.NewStack()

	ui.window.SetContent(container.NewBorder(
		topCombined,
		ui.libraryBtn,
		nil,
		nil,
		ui.content,
	))
}

// showRoute swaps the visible screen. It must run on the UI thread.
func (ui *RootUI) showRoute(route navigation.Route) {
	var screen fyne.CanvasObject
	switch route.Name {
	case RoutePlaylist:
		screen = ui.playlistScreen.Content()
	default:
		screen = ui.libraryScreen.Content()
	}
	ui.content.Objects = []fyne.CanvasObject{screen}
	ui.content.Refresh()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	availableLanguages := ui.localization.GetAvailableLanguages()
	for _, code := range ui.localization.SortedLanguageCodes() {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.linkEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterLink))
	ui.openBtn.SetText(ui.localization.GetText(KeyOpen))
	ui.libraryBtn.SetText(ui.localization.GetText(KeyLibrary))
	ui.libraryScreen.RefreshTexts()
	ui.playlistScreen.RefreshTexts()
}

// validateLink accepts empty input and anything that resolves to a playlist
func (ui *RootUI) validateLink(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	_, err := spotify.ParsePlaylistLink(input)
	return err
}

// onOpenClick opens the playlist from the link entry
func (ui *RootUI) onOpenClick() {
	text := strings.TrimSpace(ui.linkEntry.Text)
	if text == "" {
		ui.showNotification(ui.localization.GetText(KeyPleaseEnterLink))
		return
	}

	id, err := spotify.ParsePlaylistLink(text)
	if err != nil {
		ui.logger.Debug("Rejected playlist link", zap.String("input", text), zap.Error(err))
		ui.showNotification(ui.localization.GetText(KeyInvalidLink))
		return
	}

	ui.hideNotification()
	ui.linkEntry.SetText("")
	ui.OpenPlaylist(id)
}

// showNotification displays a message in the notification panel under the link entry
func (ui *RootUI) showNotification(message string) {
	ui.notificationLabel.SetText(message)
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	ui.notificationContainer.Hide()
}

// ShowToast shows message in a short-lived popup at the top of the window
func (ui *RootUI) ShowToast(message string) {
	if ui.toast != nil {
		ui.toast.Hide()
	}

	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord
	toast := widget.NewPopUp(container.NewPadded(label), ui.window.Canvas())

	canvasSize := ui.window.Canvas().Size()
	width := ToastWidth
	if canvasSize.Width-2*ToastMargin < width {
		width = canvasSize.Width - 2*ToastMargin
	}
	toast.Resize(fyne.NewSize(width, ToastHeight))
	toast.ShowAtPosition(fyne.NewPos((canvasSize.Width-width)/2, ToastMargin))
	ui.toast = toast

	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(func() {
			toast.Hide()
			if ui.toast == toast {
				ui.toast = nil
			}
		})
	}()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
		ui.ShowToast(ui.localization.GetText(KeySettingsSaved))
	})
}
