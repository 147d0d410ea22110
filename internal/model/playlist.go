package model

import (
	"fmt"
	"strings"
	"time"
)

// ArtistSeparator joins artist names in track subtitles
const ArtistSeparator = ", "

var durationChunks = []time.Duration{time.Hour, time.Minute, time.Second}

// Image is a cover image of a playlist or album
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Owner is the user who owns a playlist
type Owner struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// Artist is a performer credited on a track
type Artist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Track represents a single playable track
type Track struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	URI      string        `json:"uri"`
	Artists  []Artist      `json:"artists"`
	Album    string        `json:"album,omitempty"`
	Duration time.Duration `json:"duration"`
}

// TrackEntry wraps a track with its position inside the playlist.
// Index is what the player needs to start playback from this entry.
type TrackEntry struct {
	Index int   `json:"index"`
	Track Track `json:"track"`
}

// Playlist represents a playlist as returned by the music service
type Playlist struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	URI         string       `json:"uri"`
	Owner       Owner        `json:"owner"`
	Images      []Image      `json:"images"`
	Tracks      []TrackEntry `json:"tracks"`
	TotalTracks int          `json:"total_tracks"`
}

// CoverURL returns the primary artwork URL or an empty string
func (p *Playlist) CoverURL() string {
	if p == nil || len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}

// OwnerName returns the owner's display name, falling back to the owner ID
func (p *Playlist) OwnerName() string {
	if p == nil {
		return ""
	}
	if p.Owner.DisplayName != "" {
		return p.Owner.DisplayName
	}
	return p.Owner.ID
}

// TrackCount returns the number of loaded track entries
func (p *Playlist) TrackCount() int {
	if p == nil {
		return 0
	}
	return len(p.Tracks)
}

// Entry returns the track entry at the given playlist position
func (p *Playlist) Entry(index int) (TrackEntry, bool) {
	if p == nil {
		return TrackEntry{}, false
	}
	for _, entry := range p.Tracks {
		if entry.Index == index {
			return entry, true
		}
	}
	return TrackEntry{}, false
}

// ArtistNames returns artist names joined for display
func (t Track) ArtistNames() string {
	names := make([]string, 0, len(t.Artists))
	for _, artist := range t.Artists {
		if artist.Name != "" {
			names = append(names, artist.Name)
		}
	}
	return strings.Join(names, ArtistSeparator)
}

// DurationString formats the track duration as MM:SS, or HH:MM:SS for long tracks
func (t Track) DurationString() string {
	if t.Duration <= 0 {
		return ""
	}

	d := t.Duration
	parts := make([]string, 0, len(durationChunks))
	for i, chunk := range durationChunks {
		n := int(d / chunk)
		d -= time.Duration(n) * chunk
		// Skip hours if there are none
		if i == 0 && n < 1 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%02d", n))
	}
	return strings.Join(parts, ":")
}
