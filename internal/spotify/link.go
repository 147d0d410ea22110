package spotify

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Link prefixes accepted by ParsePlaylistLink
const (
	PlaylistURIPrefix  = "spotify:playlist:"
	PlaylistPathPrefix = "/playlist/"
	WebPlayerHost      = "open.spotify.com"
)

// base62 identifiers as used by the Web API
var playlistIDPattern = regexp.MustCompile(`^[A-Za-z0-9]{1,64}$`)

// ParsePlaylistLink extracts a playlist ID from a bare ID, a spotify URI or
// an open.spotify.com link. Supported formats:
//   - 37i9dQZF1DXcBWIGoYBM5M
//   - spotify:playlist:37i9dQZF1DXcBWIGoYBM5M
//   - https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M?si=abc
//   - https://open.spotify.com/intl-de/playlist/37i9dQZF1DXcBWIGoYBM5M
func ParsePlaylistLink(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("empty playlist link")
	}

	if strings.HasPrefix(input, PlaylistURIPrefix) {
		return validID(strings.TrimPrefix(input, PlaylistURIPrefix))
	}

	if playlistIDPattern.MatchString(input) {
		return input, nil
	}

	if !strings.Contains(input, "://") {
		input = "https://" + input
	}

	parsed, err := url.Parse(input)
	if err != nil {
		return "", fmt.Errorf("invalid playlist link: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("link must start with http:// or https://")
	}
	if parsed.Host != WebPlayerHost {
		return "", fmt.Errorf("unsupported playlist link host: %s", parsed.Host)
	}

	idx := strings.Index(parsed.Path, PlaylistPathPrefix)
	if idx < 0 {
		return "", fmt.Errorf("link does not point to a playlist")
	}

	id := parsed.Path[idx+len(PlaylistPathPrefix):]
	id = strings.Trim(id, "/")
	return validID(id)
}

// PlaylistURI returns the spotify URI of a playlist ID
func PlaylistURI(id string) string {
	return PlaylistURIPrefix + id
}

func validID(id string) (string, error) {
	if !playlistIDPattern.MatchString(id) {
		return "", fmt.Errorf("invalid playlist ID: %q", id)
	}
	return id, nil
}
