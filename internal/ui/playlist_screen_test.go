package ui

import (
	"fmt"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"go.uber.org/zap"

	"github.com/ytget/spotmobile/internal/config"
	"github.com/ytget/spotmobile/internal/model"
	"github.com/ytget/spotmobile/internal/navigation"
	"github.com/ytget/spotmobile/internal/playlist"
)

type screenFixture struct {
	screen   *PlaylistScreen
	nav      *navigation.Navigator
	svc      *stubService
	settings *config.Settings
	toasts   *toastRecorder
	loc      *Localization
}

func newScreenFixture(t *testing.T, svc *stubService) *screenFixture {
	t.Helper()
	a := test.NewApp()
	w := a.NewWindow("playlist")
	w.Resize(fyne.NewSize(360, 640))

	f := &screenFixture{
		nav:      navigation.New(zap.NewNop()),
		svc:      svc,
		settings: config.NewSettings(a),
		toasts:   &toastRecorder{},
		loc:      NewLocalization(),
	}
	controller := playlist.NewController(svc, zap.NewNop())
	f.screen = NewPlaylistScreen(w, f.nav, controller, f.settings, f.loc, NewMobileUI(a), f.toasts, zap.NewNop())
	w.SetContent(f.screen.Content())
	f.screen.Mount()
	t.Cleanup(f.screen.Unmount)

	f.nav.Reset(RouteLibrary, nil)
	return f
}

func (f *screenFixture) open(id string) {
	f.nav.Navigate(RoutePlaylist, map[string]string{ParamPlaylistID: id})
}

func (f *screenFixture) waitView(t *testing.T, view screenView) {
	t.Helper()
	waitFor(t, fmt.Sprintf("view %d", view), func() bool { return f.screen.view == view })
}

func TestPlaylistScreen_InitialLoadingView(t *testing.T) {
	f := newScreenFixture(t, newStubService())

	if f.screen.view != viewLoading {
		t.Errorf("view = %d, want loading", f.screen.view)
	}
	if len(f.screen.root.Objects) != 1 {
		t.Errorf("root objects = %d, want 1", len(f.screen.root.Objects))
	}
}

func TestPlaylistScreen_LoadsOnFocus(t *testing.T) {
	f := newScreenFixture(t, newStubService(testPlaylist("37i9dQZF1", 12)))

	f.open("37i9dQZF1")
	f.waitView(t, viewLoaded)

	if got := f.screen.titleLabel.Text; got != "Today's Top Hits" {
		t.Errorf("title = %q", got)
	}
	if got := f.screen.bylineLabel.Text; got != "Playlist by Spotify" {
		t.Errorf("byline = %q", got)
	}
	if got := len(f.screen.visible); got != 12 {
		t.Errorf("visible tracks = %d, want 12", got)
	}
	if got := f.settings.GetLastPlaylistID(); got != "37i9dQZF1" {
		t.Errorf("last playlist = %q", got)
	}

	// Refocusing the same playlist is served from memory
	if !f.nav.GoBack() {
		t.Fatal("GoBack should pop the playlist route")
	}
	f.open("37i9dQZF1")
	if f.screen.view != viewLoaded {
		t.Errorf("refocus view = %d, want loaded without loading flash", f.screen.view)
	}
	if got := f.svc.calls(); got != 1 {
		t.Errorf("GetPlaylist calls = %d, want 1", got)
	}
}

func TestPlaylistScreen_Failure(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		textKey   string
		retryable bool
	}{
		{name: "transient", err: model.ErrTransient, textKey: KeyLoadFailed, retryable: true},
		{name: "not found", err: model.ErrNotFound, textKey: KeyPlaylistNotFound},
		{name: "unauthorized", err: model.ErrUnauthorized, textKey: KeySessionExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newStubService(testPlaylist("A", 3))
			svc.errs["A"] = fmt.Errorf("get playlist: %w", tt.err)
			f := newScreenFixture(t, svc)

			f.open("A")
			f.waitView(t, viewFailed)

			if got, want := f.screen.errorLabel.Text, f.loc.GetText(tt.textKey); got != want {
				t.Errorf("error text = %q, want %q", got, want)
			}
			if got := f.screen.retryBtn.Visible(); got != tt.retryable {
				t.Errorf("retry visible = %v, want %v", got, tt.retryable)
			}
		})
	}
}

func TestPlaylistScreen_Retry(t *testing.T) {
	svc := newStubService(testPlaylist("A", 3))
	svc.errs["A"] = model.ErrTransient
	f := newScreenFixture(t, svc)

	f.open("A")
	f.waitView(t, viewFailed)

	svc.mu.Lock()
	delete(svc.errs, "A")
	svc.mu.Unlock()

	test.Tap(f.screen.retryBtn)
	f.waitView(t, viewLoaded)

	if got := len(f.screen.visible); got != 3 {
		t.Errorf("visible tracks = %d, want 3", got)
	}
}

func TestPlaylistScreen_Filter(t *testing.T) {
	f := newScreenFixture(t, newStubService(testPlaylist("A", 12)))
	f.open("A")
	f.waitView(t, viewLoaded)

	f.screen.filterEntry.SetText("Song 1")

	want := []int{1, 10, 11}
	if len(f.screen.visible) != len(want) {
		t.Fatalf("visible = %d entries, want %d", len(f.screen.visible), len(want))
	}
	for i, entry := range f.screen.visible {
		if entry.Index != want[i] {
			t.Errorf("visible[%d].Index = %d, want %d", i, entry.Index, want[i])
		}
	}

	f.screen.filterEntry.SetText("zzz")
	if len(f.screen.visible) != 0 || !f.screen.emptyLabel.Visible() {
		t.Error("no-match filter should show the empty label")
	}

	f.screen.filterEntry.SetText("")
	if len(f.screen.visible) != 12 || f.screen.emptyLabel.Visible() {
		t.Error("clearing the filter should show every track")
	}
}

func TestPlaylistScreen_Play(t *testing.T) {
	svc := newStubService(testPlaylist("A", 12))
	f := newScreenFixture(t, svc)
	f.open("A")
	f.waitView(t, viewLoaded)

	test.Tap(f.screen.playBtn)
	waitFor(t, "play all", func() bool { return len(svc.playPositions()) == 1 })
	started := f.loc.GetText(KeyPlaybackStarted)
	waitFor(t, "playback toast", func() bool { return f.toasts.last() == started })

	f.screen.onPlayFrom(7)
	waitFor(t, "play from row", func() bool { return len(svc.playPositions()) == 2 })

	if got := svc.playPositions(); got[0] != 0 || got[1] != 7 {
		t.Errorf("play positions = %v, want [0 7]", got)
	}

	svc.mu.Lock()
	svc.playErr = fmt.Errorf("no active device: %w", model.ErrNotFound)
	svc.mu.Unlock()

	f.screen.onPlayFrom(2)
	want := f.loc.GetText(KeyNoActiveDevice)
	waitFor(t, "playback failure toast", func() bool { return f.toasts.last() == want })
}

func TestPlaylistScreen_Follow(t *testing.T) {
	svc := newStubService(testPlaylist("A", 2))
	f := newScreenFixture(t, svc)
	f.open("A")
	f.waitView(t, viewLoaded)

	f.screen.onMore()
	sheet := f.screen.actionSheet
	if sheet == nil || !sheet.Visible() {
		t.Fatal("overflow should show the action sheet")
	}

	test.Tap(sheet.Buttons()[0])
	want := f.loc.GetText(KeyFollowed)
	waitFor(t, "follow toast", func() bool { return f.toasts.last() == want })

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if len(svc.followed) != 1 || svc.followed[0] != "A" {
		t.Errorf("followed = %v, want [A]", svc.followed)
	}
}

func TestPlaylistScreen_SwipeRightGoesBack(t *testing.T) {
	f := newScreenFixture(t, newStubService(testPlaylist("A", 1)))
	f.open("A")
	f.waitView(t, viewLoaded)

	f.screen.onGesture(GestureSwipeRight)

	current, ok := f.nav.Current()
	if !ok || current.Route.Name != RouteLibrary {
		t.Errorf("current route = %+v, want library", current.Route)
	}
}

func TestPlaylistScreen_SwipeDownRefreshes(t *testing.T) {
	svc := newStubService(testPlaylist("A", 1))
	f := newScreenFixture(t, svc)
	f.open("A")
	f.waitView(t, viewLoaded)

	f.screen.onGesture(GestureSwipeDown)
	waitFor(t, "refetch", func() bool { return svc.calls() == 2 })
	f.waitView(t, viewLoaded)
}

func TestPlaylistScreen_Unmount(t *testing.T) {
	svc := newStubService(testPlaylist("A", 1), testPlaylist("B", 1))
	f := newScreenFixture(t, svc)
	f.open("A")
	f.waitView(t, viewLoaded)

	f.screen.Unmount()
	f.screen.Unmount()

	if f.screen.subscriptions != nil || f.screen.unsubscribe != nil {
		t.Error("subscriptions should be released")
	}

	f.open("B")
	if got := svc.calls(); got != 1 {
		t.Errorf("GetPlaylist calls after unmount = %d, want 1", got)
	}
}
