package spotify

import "testing"

func TestParsePlaylistLink(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"bare id", "37i9dQZF1DXcBWIGoYBM5M", "37i9dQZF1DXcBWIGoYBM5M", false},
		{"bare id with spaces", "  37i9dQZF1  ", "37i9dQZF1", false},
		{"uri", "spotify:playlist:37i9dQZF1DXcBWIGoYBM5M", "37i9dQZF1DXcBWIGoYBM5M", false},
		{"web link", "https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M", "37i9dQZF1DXcBWIGoYBM5M", false},
		{"web link with query", "https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M?si=abc123", "37i9dQZF1DXcBWIGoYBM5M", false},
		{"web link without scheme", "open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M", "37i9dQZF1DXcBWIGoYBM5M", false},
		{"localized link", "https://open.spotify.com/intl-de/playlist/37i9dQZF1DXcBWIGoYBM5M", "37i9dQZF1DXcBWIGoYBM5M", false},
		{"trailing slash", "https://open.spotify.com/playlist/37i9dQZF1/", "37i9dQZF1", false},
		{"empty", "", "", true},
		{"album link", "https://open.spotify.com/album/4aawyAB9vmqN3uQ7FjRGTy", "", true},
		{"other host", "https://example.com/playlist/37i9dQZF1", "", true},
		{"bad scheme", "ftp://open.spotify.com/playlist/37i9dQZF1", "", true},
		{"uri with garbage", "spotify:playlist:abc-def", "", true},
		{"empty uri id", "spotify:playlist:", "", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			id, err := ParsePlaylistLink(test.input)
			if (err != nil) != test.wantErr {
				t.Fatalf("ParsePlaylistLink(%q) error = %v, wantErr %v", test.input, err, test.wantErr)
			}
			if id != test.expected {
				t.Errorf("ParsePlaylistLink(%q) = '%s', expected '%s'", test.input, id, test.expected)
			}
		})
	}
}

func TestPlaylistURI(t *testing.T) {
	if got := PlaylistURI("abc"); got != "spotify:playlist:abc" {
		t.Errorf("Expected spotify:playlist:abc, got %s", got)
	}
}
