package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage       = "app_language"
	KeyLastPlaylistID = "last_playlist_id"
	KeyDeviceID       = "playback_device_id"
	KeyRequestTimeout = "request_timeout_sec"
	KeyReopenLast     = "reopen_last_playlist"
)

// Default values
const (
	DefaultLanguage       = "system"
	DefaultRequestTimeout = 15 * time.Second
	DefaultReopenLast     = true

	MinRequestTimeout = 5 * time.Second
	MaxRequestTimeout = 120 * time.Second
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetLastPlaylistID returns the identifier of the last opened playlist
func (s *Settings) GetLastPlaylistID() string {
	return s.app.Preferences().String(KeyLastPlaylistID)
}

// SetLastPlaylistID remembers the identifier of the last opened playlist
func (s *Settings) SetLastPlaylistID(id string) {
	s.app.Preferences().SetString(KeyLastPlaylistID, id)
}

// GetDeviceID returns the preferred playback device, empty for the active one
func (s *Settings) GetDeviceID() string {
	return s.app.Preferences().String(KeyDeviceID)
}

// SetDeviceID sets the preferred playback device
func (s *Settings) SetDeviceID(id string) {
	s.app.Preferences().SetString(KeyDeviceID, id)
}

// GetRequestTimeout returns the timeout applied to each service request
func (s *Settings) GetRequestTimeout() time.Duration {
	seconds := s.app.Preferences().Int(KeyRequestTimeout)
	if seconds <= 0 {
		s.SetRequestTimeout(DefaultRequestTimeout)
		return DefaultRequestTimeout
	}
	return time.Duration(seconds) * time.Second
}

// SetRequestTimeout sets the request timeout, clamped to a sane range
func (s *Settings) SetRequestTimeout(timeout time.Duration) {
	if timeout < MinRequestTimeout {
		timeout = MinRequestTimeout
	}
	if timeout > MaxRequestTimeout {
		timeout = MaxRequestTimeout
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, int(timeout/time.Second))
}

// GetReopenLastPlaylist returns whether the last playlist is reopened at start
func (s *Settings) GetReopenLastPlaylist() bool {
	return s.app.Preferences().BoolWithFallback(KeyReopenLast, DefaultReopenLast)
}

// SetReopenLastPlaylist sets whether the last playlist is reopened at start
func (s *Settings) SetReopenLastPlaylist(reopen bool) {
	s.app.Preferences().SetBool(KeyReopenLast, reopen)
}
