package ui

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ytget/spotmobile/internal/model"
)

type stubService struct {
	mu        sync.Mutex
	playlists map[string]*model.Playlist
	errs      map[string]error
	getCalls  int
	followed  []string
	plays     []int
	playErr   error
}

func newStubService(playlists ...*model.Playlist) *stubService {
	s := &stubService{
		playlists: make(map[string]*model.Playlist),
		errs:      make(map[string]error),
	}
	for _, p := range playlists {
		s.playlists[p.ID] = p
	}
	return s
}

func (s *stubService) GetPlaylist(ctx context.Context, id string) (*model.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getCalls++
	if err := s.errs[id]; err != nil {
		return nil, err
	}
	p, ok := s.playlists[id]
	if !ok {
		return nil, fmt.Errorf("playlist %s: %w", id, model.ErrNotFound)
	}
	return p, nil
}

func (s *stubService) CurrentUserID(ctx context.Context) (string, error) {
	return "listener", nil
}

func (s *stubService) FollowsPlaylist(ctx context.Context, playlistID, userID string) (bool, error) {
	return false, nil
}

func (s *stubService) FollowPlaylist(ctx context.Context, playlistID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.followed = append(s.followed, playlistID)
	return nil
}

func (s *stubService) PlayURI(ctx context.Context, uri string, startIndex, startPositionMs int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playErr != nil {
		return s.playErr
	}
	s.plays = append(s.plays, startIndex)
	return nil
}

func (s *stubService) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getCalls
}

func (s *stubService) playPositions() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.plays...)
}

type toastRecorder struct {
	mu       sync.Mutex
	messages []string
}

func (r *toastRecorder) ShowToast(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

func (r *toastRecorder) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}

func testPlaylist(id string, tracks int) *model.Playlist {
	p := &model.Playlist{
		ID:          id,
		Name:        "Today's Top Hits",
		URI:         "spotify:playlist:" + id,
		Owner:       model.Owner{ID: "spotify", DisplayName: "Spotify"},
		TotalTracks: tracks,
	}
	for i := 0; i < tracks; i++ {
		p.Tracks = append(p.Tracks, model.TrackEntry{
			Index: i,
			Track: model.Track{
				ID:       fmt.Sprintf("t%d", i),
				Name:     fmt.Sprintf("Song %d", i),
				Artists:  []model.Artist{{Name: "Artist"}},
				Duration: 3*time.Minute + 5*time.Second,
			},
		})
	}
	return p
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}
