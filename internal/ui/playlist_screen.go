package ui

import (
	"context"
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/spotmobile/internal/config"
	"github.com/ytget/spotmobile/internal/model"
	"github.com/ytget/spotmobile/internal/navigation"
	"github.com/ytget/spotmobile/internal/playlist"
)

// Notifier shows short acknowledgements to the user
type Notifier interface {
	ShowToast(message string)
}

type screenView int

const (
	viewLoading screenView = iota
	viewFailed
	viewLoaded
)

// PlaylistScreen shows a playlist and its tracks. It loads on focus and
// renders controller state.
type PlaylistScreen struct {
	window       fyne.Window
	nav          *navigation.Navigator
	controller   *playlist.Controller
	localization *Localization
	settings     *config.Settings
	mobile       *MobileUI
	notifier     Notifier
	logger       *zap.Logger

	root    *fyne.Container
	gesture *GestureArea

	subscriptions []*navigation.Subscription
	unsubscribe   func()
	mounted       bool

	activation navigation.Activation
	view       screenView
	shown      *model.Playlist
	state      playlist.State

	// Loaded view
	titleLabel  *widget.Label
	bylineLabel *widget.Label
	countLabel  *widget.Label
	playBtn     *widget.Button
	filterEntry *widget.Entry
	emptyLabel  *widget.Label
	trackList   *widget.List
	visible     []model.TrackEntry

	// Failed view
	errorLabel *widget.Label
	retryBtn   *widget.Button

	actionSheet *ActionSheet
}

// NewPlaylistScreen creates an unmounted playlist screen
func NewPlaylistScreen(
	window fyne.Window,
	nav *navigation.Navigator,
	controller *playlist.Controller,
	settings *config.Settings,
	localization *Localization,
	mobile *MobileUI,
	notifier Notifier,
	logger *zap.Logger,
) *PlaylistScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &PlaylistScreen{
		window:       window,
		nav:          nav,
		controller:   controller,
		localization: localization,
		settings:     settings,
		mobile:       mobile,
		notifier:     notifier,
		logger:       logger.Named("playlist_screen"),
		root:         container.NewStack(),
	}
	s.gesture = NewGestureArea(s.root, s.onGesture)
	return s
}

// Content returns the screen root object
func (s *PlaylistScreen) Content() fyne.CanvasObject {
	return s.gesture
}

// Mount subscribes to focus events and controller state
func (s *PlaylistScreen) Mount() {
	if s.mounted {
		return
	}
	s.mounted = true

	s.subscriptions = append(s.subscriptions,
		s.nav.AddListener(RoutePlaylist, navigation.EventWillFocus, s.onFocus),
		s.nav.AddListener(RoutePlaylist, navigation.EventWillBlur, s.onBlur),
	)
	s.unsubscribe = s.controller.Subscribe(func(st playlist.State) {
		fyne.Do(func() { s.render(st) })
	})
	s.render(s.controller.State())
}

// Unmount releases every subscription and closes the controller
func (s *PlaylistScreen) Unmount() {
	if !s.mounted {
		return
	}
	s.mounted = false

	for _, sub := range s.subscriptions {
		sub.Remove()
	}
	s.subscriptions = nil
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.controller.Close()
	if s.actionSheet != nil {
		s.actionSheet.Hide()
	}
}

// RefreshTexts re-renders the screen after a language change
func (s *PlaylistScreen) RefreshTexts() {
	s.shown = nil
	s.root.Objects = nil
	s.render(s.state)
}

func (s *PlaylistScreen) onFocus(a navigation.Activation) {
	s.activation = a
	id := a.Param(ParamPlaylistID)
	if id != "" && s.settings != nil {
		s.settings.SetLastPlaylistID(id)
	}
	s.logger.Debug("Focus", zap.String("playlist_id", id), zap.String("activation", a.ID))
	s.controller.Enter(a.Context(), id)
}

func (s *PlaylistScreen) onBlur(a navigation.Activation) {
	s.logger.Debug("Blur", zap.String("activation", a.ID))
	s.controller.Exit()
	if s.actionSheet != nil {
		s.actionSheet.Hide()
	}
}

func (s *PlaylistScreen) onGesture(gesture GestureType) {
	switch gesture {
	case GestureSwipeRight:
		s.goBack()
	case GestureSwipeDown:
		if s.controller.Refresh() {
			s.logger.Debug("Pull to refresh")
		}
	}
}

func (s *PlaylistScreen) goBack() {
	if !s.nav.GoBack() {
		s.nav.Reset(RouteLibrary, nil)
	}
}

// render shows st. It must run on the UI thread.
func (s *PlaylistScreen) render(st playlist.State) {
	if st.Version < s.state.Version {
		return
	}
	s.state = st
	if !s.mounted {
		return
	}

	switch st.Status {
	case model.LoadStatusLoaded:
		p := st.Current()
		if s.view == viewLoaded && s.shown == p {
			return
		}
		s.showLoaded(p)
	case model.LoadStatusFailed:
		s.showFailed(st)
	default:
		if s.view != viewLoading || len(s.root.Objects) == 0 {
			s.showLoading()
		}
	}
}

func (s *PlaylistScreen) setView(view screenView, content fyne.CanvasObject) {
	s.view = view
	s.root.Objects = []fyne.CanvasObject{content}
	s.root.Refresh()
}

func (s *PlaylistScreen) header(withMore bool) fyne.CanvasObject {
	backBtn := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), s.goBack)
	backBtn.Importance = widget.LowImportance

	var more fyne.CanvasObject
	if withMore {
		moreBtn := widget.NewButtonWithIcon("", theme.MoreHorizontalIcon(), s.onMore)
		moreBtn.Importance = widget.LowImportance
		more = moreBtn
	}
	return container.NewBorder(nil, nil, backBtn, more)
}

func (s *PlaylistScreen) showLoading() {
	s.shown = nil
	progress := widget.NewProgressBarInfinite()
	label := widget.NewLabelWithStyle(s.localization.GetText(KeyLoading), fyne.TextAlignCenter, fyne.TextStyle{})
	body := container.NewCenter(container.NewVBox(progress, label))
	s.setView(viewLoading, container.NewBorder(s.header(false), nil, nil, nil, body))
}

func (s *PlaylistScreen) showFailed(st playlist.State) {
	s.shown = nil
	s.errorLabel = widget.NewLabelWithStyle(s.errorText(st.ErrorKind()), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	s.errorLabel.Wrapping = fyne.TextWrapWord

	s.retryBtn = widget.NewButtonWithIcon(s.localization.GetText(KeyRetry), theme.ViewRefreshIcon(), func() {
		s.controller.Retry()
	})
	s.retryBtn.Importance = widget.HighImportance
	if !st.Retryable() {
		s.retryBtn.Hide()
	}
	backBtn := widget.NewButton(s.localization.GetText(KeyBack), s.goBack)

	body := container.NewCenter(container.NewVBox(s.errorLabel, s.retryBtn, backBtn))
	s.setView(viewFailed, container.NewBorder(s.header(false), nil, nil, nil, body))
}

func (s *PlaylistScreen) errorText(kind model.ErrorKind) string {
	switch kind {
	case model.ErrorKindNotFound:
		return s.localization.GetText(KeyPlaylistNotFound)
	case model.ErrorKindUnauthorized:
		return s.localization.GetText(KeySessionExpired)
	default:
		return s.localization.GetText(KeyLoadFailed)
	}
}

func (s *PlaylistScreen) showLoaded(p *model.Playlist) {
	sameList := s.shown != nil && s.shown.ID == p.ID
	s.shown = p

	artwork := playlistArtwork(p)
	size := s.artworkSize()
	artwork.SetMinSize(fyne.NewSize(size, size))

	s.titleLabel = widget.NewLabelWithStyle(p.Name, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	s.titleLabel.SizeName = theme.SizeNameHeadingText
	s.titleLabel.Wrapping = fyne.TextWrapWord

	s.bylineLabel = widget.NewLabelWithStyle(fmt.Sprintf(s.localization.GetText(KeyPlaylistBy), p.OwnerName()), fyne.TextAlignCenter, fyne.TextStyle{})
	s.bylineLabel.Importance = widget.LowImportance
	s.countLabel = widget.NewLabelWithStyle(fmt.Sprintf(s.localization.GetText(KeyTrackCount), p.TrackCount()), fyne.TextAlignCenter, fyne.TextStyle{})
	s.countLabel.Importance = widget.LowImportance

	s.playBtn = s.newButton(s.localization.GetText(KeyPlay), theme.MediaPlayIcon(), s.onPlayAll)
	s.playBtn.Importance = widget.HighImportance

	query := ""
	if sameList && s.filterEntry != nil {
		query = s.filterEntry.Text
	}
	s.filterEntry = widget.NewEntry()
	s.filterEntry.SetPlaceHolder(s.localization.GetText(KeyFilterTracks))
	s.filterEntry.SetText(query)
	s.filterEntry.OnChanged = s.applyFilter

	s.emptyLabel = widget.NewLabelWithStyle(s.localization.GetText(KeyNoMatches), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	s.trackList = widget.NewList(
		func() int { return len(s.visible) },
		func() fyne.CanvasObject {
			row := NewTrackRow(s.localization)
			row.SetOnPlay(s.onPlayFrom)
			return row
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(s.visible) {
				return
			}
			if row, ok := obj.(*TrackRow); ok {
				row.UpdateEntry(s.visible[id])
			}
		},
	)
	s.applyFilter(query)

	details := container.NewVBox(
		container.NewCenter(artwork),
		s.titleLabel,
		s.bylineLabel,
		s.countLabel,
		container.NewCenter(s.playBtn),
		s.filterEntry,
	)
	top := container.NewVBox(s.header(true), details)
	tracks := container.NewStack(s.trackList, container.NewCenter(s.emptyLabel))
	s.setView(viewLoaded, container.NewBorder(top, nil, nil, nil, tracks))
}

func (s *PlaylistScreen) applyFilter(query string) {
	if s.shown == nil {
		s.visible = nil
		return
	}
	s.visible = playlist.FilterTracks(s.shown.Tracks, query)
	if s.emptyLabel != nil {
		if len(s.visible) == 0 && len(s.shown.Tracks) > 0 {
			s.emptyLabel.Show()
		} else {
			s.emptyLabel.Hide()
		}
	}
	if s.trackList != nil {
		s.trackList.Refresh()
	}
}

func (s *PlaylistScreen) newButton(label string, icon fyne.Resource, onTapped func()) *widget.Button {
	if s.mobile != nil {
		return s.mobile.CreateMobileButton(label, icon, onTapped)
	}
	return widget.NewButtonWithIcon(label, icon, onTapped)
}

func (s *PlaylistScreen) artworkSize() float32 {
	if s.mobile != nil {
		return s.mobile.ArtworkSize()
	}
	return ArtworkSize
}

func (s *PlaylistScreen) onMore() {
	p := s.state.Current()
	if p == nil {
		return
	}

	header := SheetHeader{
		Image:     sheetArtwork(playlistArtwork(p)),
		Primary:   p.Name,
		Secondary: fmt.Sprintf(s.localization.GetText(KeyPlaylistBy), p.OwnerName()),
	}
	actions := []SheetAction{
		{Label: s.localization.GetText(KeyFollow), Icon: theme.ContentAddIcon(), OnTap: s.onFollow},
	}
	s.actionSheet = NewActionSheet(s.window.Canvas(), header, actions, s.localization.GetText(KeyCancel))
	s.actionSheet.Show()
}

func (s *PlaylistScreen) onFollow() {
	s.runCommand("follow", s.controller.Follow, KeyFollowed, KeyFollowFailed)
}

func (s *PlaylistScreen) onPlayAll() {
	s.runCommand("play", s.controller.PlayAll, KeyPlaybackStarted, KeyPlaybackFailed)
}

func (s *PlaylistScreen) onPlayFrom(index int) {
	s.runCommand("play_from", func(ctx context.Context) error {
		return s.controller.PlayFrom(ctx, index)
	}, KeyPlaybackStarted, KeyPlaybackFailed)
}

// runCommand runs cmd off the UI thread and acknowledges the result with a toast
func (s *PlaylistScreen) runCommand(name string, cmd func(context.Context) error, successKey, failureKey string) {
	ctx := s.activation.Context()
	go func() {
		err := cmd(ctx)
		fyne.Do(func() {
			if err != nil {
				s.logger.Warn("Command failed", zap.String("command", name), zap.Error(err))
				s.toast(s.commandErrorText(err, failureKey))
				return
			}
			if successKey != "" {
				s.toast(s.localization.GetText(successKey))
			}
		})
	}()
}

func (s *PlaylistScreen) commandErrorText(err error, failureKey string) string {
	switch {
	case errors.Is(err, playlist.ErrNotLoaded):
		return s.localization.GetText(KeyNotLoaded)
	case model.KindOf(err) == model.ErrorKindUnauthorized:
		return s.localization.GetText(KeySessionExpired)
	case failureKey == KeyPlaybackFailed && model.KindOf(err) == model.ErrorKindNotFound:
		return s.localization.GetText(KeyNoActiveDevice)
	default:
		return s.localization.GetText(failureKey)
	}
}

func (s *PlaylistScreen) toast(message string) {
	if s.notifier != nil {
		s.notifier.ShowToast(message)
	}
}

// playlistArtwork loads the cover from its URL, or a placeholder icon
func playlistArtwork(p *model.Playlist) *canvas.Image {
	var img *canvas.Image
	if url := p.CoverURL(); url != "" {
		if uri, err := storage.ParseURI(url); err == nil {
			img = canvas.NewImageFromURI(uri)
		}
	}
	if img == nil {
		img = canvas.NewImageFromResource(theme.MediaMusicIcon())
	}
	img.FillMode = canvas.ImageFillContain
	return img
}
