// Package spotify is the music service gateway. It adapts the Spotify Web API
// (via github.com/zmb3/spotify/v2) to the domain model, maps failures onto the
// model error taxonomy and exposes an authenticated request passthrough.
package spotify
