package spotify

import (
	"time"

	"github.com/zmb3/spotify/v2"

	"github.com/ytget/spotmobile/internal/model"
)

// toPlaylist converts an SDK playlist into the domain model
func toPlaylist(p *spotify.FullPlaylist) *model.Playlist {
	result := &model.Playlist{
		ID:          string(p.ID),
		Name:        p.Name,
		Description: p.Description,
		URI:         string(p.URI),
		Owner: model.Owner{
			ID:          p.Owner.ID,
			DisplayName: p.Owner.DisplayName,
		},
		Images:      toImages(p.Images),
		Tracks:      make([]model.TrackEntry, 0, len(p.Tracks.Tracks)),
		TotalTracks: int(p.Tracks.Total),
	}

	for i, item := range p.Tracks.Tracks {
		result.Tracks = append(result.Tracks, model.TrackEntry{
			Index: i,
			Track: toTrack(&item.Track),
		})
	}

	if result.TotalTracks < len(result.Tracks) {
		result.TotalTracks = len(result.Tracks)
	}

	return result
}

func toTrack(t *spotify.FullTrack) model.Track {
	artists := make([]model.Artist, 0, len(t.Artists))
	for _, a := range t.Artists {
		artists = append(artists, model.Artist{ID: string(a.ID), Name: a.Name})
	}

	return model.Track{
		ID:       string(t.ID),
		Name:     t.Name,
		URI:      string(t.URI),
		Artists:  artists,
		Album:    t.Album.Name,
		Duration: time.Duration(t.Duration) * time.Millisecond,
	}
}

func toImages(images []spotify.Image) []model.Image {
	result := make([]model.Image, 0, len(images))
	for _, img := range images {
		result = append(result, model.Image{
			URL:    img.URL,
			Width:  int(img.Width),
			Height: int(img.Height),
		})
	}
	return result
}
