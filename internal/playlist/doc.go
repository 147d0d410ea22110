// Package playlist orchestrates loading a playlist for the playlist screen:
// it memoizes the last loaded playlist, tags every request with a token so
// stale responses are dropped, tracks follow status and exposes playback and
// follow commands that report their outcome.
package playlist
