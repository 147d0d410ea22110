package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"go.uber.org/zap"

	"github.com/ytget/spotmobile/internal/config"
	"github.com/ytget/spotmobile/internal/navigation"
	"github.com/ytget/spotmobile/internal/playlist"
)

func newTestRootUI(t *testing.T, svc *stubService) (*RootUI, *config.Settings) {
	t.Helper()
	a := test.NewApp()
	w := a.NewWindow("root")
	w.Resize(fyne.NewSize(360, 640))

	settings := config.NewSettings(a)
	nav := navigation.New(zap.NewNop())
	controller := playlist.NewController(svc, zap.NewNop())
	ui := NewRootUI(w, a, settings, nav, controller, zap.NewNop())
	t.Cleanup(ui.Close)
	return ui, settings
}

func (ui *RootUI) shownScreen() fyne.CanvasObject {
	if len(ui.content.Objects) == 0 {
		return nil
	}
	return ui.content.Objects[0]
}

func TestRootUI_StartShowsLibrary(t *testing.T) {
	ui, settings := newTestRootUI(t, newStubService())
	settings.SetReopenLastPlaylist(false)

	ui.Start("")

	if ui.shownScreen() != ui.libraryScreen.Content() {
		t.Error("library should be shown at start")
	}
	if got := ui.libraryScreen.heading.Text; got != "Library" {
		t.Errorf("heading = %q, want Library", got)
	}
}

func TestRootUI_StartOpensPlaylist(t *testing.T) {
	svc := newStubService(testPlaylist("37i9dQZF1", 12))
	ui, _ := newTestRootUI(t, svc)

	ui.Start("37i9dQZF1")

	if ui.shownScreen() != ui.playlistScreen.Content() {
		t.Fatal("playlist screen should be shown")
	}
	waitFor(t, "playlist loaded", func() bool { return ui.playlistScreen.view == viewLoaded })
	if ui.nav.Depth() != 2 {
		t.Errorf("stack depth = %d, want 2", ui.nav.Depth())
	}
}

func TestRootUI_ReopensLastPlaylist(t *testing.T) {
	svc := newStubService(testPlaylist("B", 1))
	ui, settings := newTestRootUI(t, svc)
	settings.SetLastPlaylistID("B")
	settings.SetReopenLastPlaylist(true)

	ui.Start("")

	if got := ui.nav.GetParam(ParamPlaylistID); got != "B" {
		t.Errorf("opened playlist %q, want B", got)
	}
}

func TestRootUI_OpenLink(t *testing.T) {
	svc := newStubService(testPlaylist("37i9dQZF1DXcBWIGoYBM5M", 3))
	ui, settings := newTestRootUI(t, svc)
	settings.SetReopenLastPlaylist(false)
	ui.Start("")

	ui.linkEntry.SetText("")
	ui.onOpenClick()
	if !ui.notificationContainer.Visible() || ui.notificationLabel.Text != ui.localization.GetText(KeyPleaseEnterLink) {
		t.Errorf("empty link notification = %q", ui.notificationLabel.Text)
	}

	ui.linkEntry.SetText("https://example.com/watch?v=1")
	ui.onOpenClick()
	if ui.notificationLabel.Text != ui.localization.GetText(KeyInvalidLink) {
		t.Errorf("invalid link notification = %q", ui.notificationLabel.Text)
	}

	ui.linkEntry.SetText("https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M?si=abc")
	ui.onOpenClick()
	if ui.notificationContainer.Visible() {
		t.Error("notification should hide after a valid link")
	}
	if got := ui.nav.GetParam(ParamPlaylistID); got != "37i9dQZF1DXcBWIGoYBM5M" {
		t.Errorf("opened playlist %q", got)
	}
	if ui.linkEntry.Text != "" {
		t.Error("link entry should be cleared")
	}
	waitFor(t, "playlist loaded", func() bool { return ui.playlistScreen.view == viewLoaded })
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, settings := newTestRootUI(t, newStubService())

	ui.onLanguageChange("pt")

	if got := settings.GetLanguage(); got != "pt" {
		t.Errorf("saved language = %q, want pt", got)
	}
	if got := ui.openBtn.Text; got != "Abrir" {
		t.Errorf("open button = %q, want Abrir", got)
	}
	if got := ui.libraryScreen.heading.Text; got != "Biblioteca" {
		t.Errorf("library heading = %q, want Biblioteca", got)
	}
}

func TestRootUI_ShowToast(t *testing.T) {
	ui, _ := newTestRootUI(t, newStubService())

	ui.ShowToast("first")
	first := ui.toast
	ui.ShowToast("second")

	if first.Visible() {
		t.Error("a new toast should replace the previous one")
	}
	if ui.toast == nil || !ui.toast.Visible() {
		t.Error("latest toast should be visible")
	}
}
