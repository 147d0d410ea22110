package ui

import "sort"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyOpen             = "open"
	KeyEnterLink        = "enter_link"
	KeyPleaseEnterLink  = "please_enter_link"
	KeyInvalidLink      = "invalid_link"
	KeyLibrary          = "library"
	KeyBack             = "back"
	KeyPlay             = "play"
	KeyPlaylistBy       = "playlist_by"
	KeyTrackCount       = "track_count"
	KeyFilterTracks     = "filter_tracks"
	KeyNoMatches        = "no_matches"
	KeyLoading          = "loading"
	KeyRetry            = "retry"
	KeyLoadFailed       = "load_failed"
	KeyPlaylistNotFound = "playlist_not_found"
	KeySessionExpired   = "session_expired"
	KeyFollow           = "follow"
	KeyFollowed         = "followed"
	KeyFollowFailed     = "follow_failed"
	KeyPlaybackStarted  = "playback_started"
	KeyPlaybackFailed   = "playback_failed"
	KeyNoActiveDevice   = "no_active_device"
	KeyNotLoaded        = "not_loaded"
	KeyDeviceID         = "device_id"
	KeyDeviceIDHint     = "device_id_hint"
	KeyRequestTimeout   = "request_timeout"
	KeyReopenLast       = "reopen_last"
	KeySettingsSaved    = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// SortedLanguageCodes returns the available language codes in stable order
func (l *Localization) SortedLanguageCodes() []string {
	codes := make([]string, 0, len(l.texts))
	for code := range l.GetAvailableLanguages() {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Spotmobile",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyOpen:             "Open",
		KeyEnterLink:        "Paste a playlist link (https://open.spotify.com/playlist/...)",
		KeyPleaseEnterLink:  "Please paste a playlist link",
		KeyInvalidLink:      "Not a playlist link",
		KeyLibrary:          "Library",
		KeyBack:             "Back",
		KeyPlay:             "Play",
		KeyPlaylistBy:       "Playlist by %s",
		KeyTrackCount:       "%d tracks",
		KeyFilterTracks:     "Filter tracks",
		KeyNoMatches:        "No matching tracks",
		KeyLoading:          "Loading...",
		KeyRetry:            "Retry",
		KeyLoadFailed:       "Couldn't load the playlist",
		KeyPlaylistNotFound: "Playlist not found",
		KeySessionExpired:   "Your session has expired, sign in again",
		KeyFollow:           "Follow",
		KeyFollowed:         "Added to your playlists",
		KeyFollowFailed:     "Couldn't follow the playlist",
		KeyPlaybackStarted:  "Playing",
		KeyPlaybackFailed:   "Couldn't start playback",
		KeyNoActiveDevice:   "No active device, open the app on a device first",
		KeyNotLoaded:        "The playlist is still loading",
		KeyDeviceID:         "Playback Device ID",
		KeyDeviceIDHint:     "Empty for the active device",
		KeyRequestTimeout:   "Request Timeout (seconds)",
		KeyReopenLast:       "Reopen last playlist on start",
		KeySettingsSaved:    "Settings saved",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Spotmobile",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyOpen:             "Открыть",
		KeyEnterLink:        "Вставьте ссылку на плейлист (https://open.spotify.com/playlist/...)",
		KeyPleaseEnterLink:  "Пожалуйста, вставьте ссылку на плейлист",
		KeyInvalidLink:      "Это не ссылка на плейлист",
		KeyLibrary:          "Медиатека",
		KeyBack:             "Назад",
		KeyPlay:             "Слушать",
		KeyPlaylistBy:       "Плейлист от %s",
		KeyTrackCount:       "Треков: %d",
		KeyFilterTracks:     "Поиск по трекам",
		KeyNoMatches:        "Ничего не найдено",
		KeyLoading:          "Загрузка...",
		KeyRetry:            "Повторить",
		KeyLoadFailed:       "Не удалось загрузить плейлист",
		KeyPlaylistNotFound: "Плейлист не найден",
		KeySessionExpired:   "Сессия истекла, войдите снова",
		KeyFollow:           "Подписаться",
		KeyFollowed:         "Добавлено в ваши плейлисты",
		KeyFollowFailed:     "Не удалось подписаться на плейлист",
		KeyPlaybackStarted:  "Воспроизведение",
		KeyPlaybackFailed:   "Не удалось начать воспроизведение",
		KeyNoActiveDevice:   "Нет активного устройства, сначала откройте приложение на устройстве",
		KeyNotLoaded:        "Плейлист ещё загружается",
		KeyDeviceID:         "ID устройства воспроизведения",
		KeyDeviceIDHint:     "Пусто для активного устройства",
		KeyRequestTimeout:   "Таймаут запроса (секунды)",
		KeyReopenLast:       "Открывать последний плейлист при запуске",
		KeySettingsSaved:    "Настройки сохранены",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Spotmobile",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyOpen:             "Abrir",
		KeyEnterLink:        "Cole o link de uma playlist (https://open.spotify.com/playlist/...)",
		KeyPleaseEnterLink:  "Por favor, cole o link de uma playlist",
		KeyInvalidLink:      "Não é um link de playlist",
		KeyLibrary:          "Biblioteca",
		KeyBack:             "Voltar",
		KeyPlay:             "Tocar",
		KeyPlaylistBy:       "Playlist de %s",
		KeyTrackCount:       "%d faixas",
		KeyFilterTracks:     "Filtrar faixas",
		KeyNoMatches:        "Nenhuma faixa encontrada",
		KeyLoading:          "Carregando...",
		KeyRetry:            "Tentar novamente",
		KeyLoadFailed:       "Não foi possível carregar a playlist",
		KeyPlaylistNotFound: "Playlist não encontrada",
		KeySessionExpired:   "Sua sessão expirou, entre novamente",
		KeyFollow:           "Seguir",
		KeyFollowed:         "Adicionada às suas playlists",
		KeyFollowFailed:     "Não foi possível seguir a playlist",
		KeyPlaybackStarted:  "Tocando",
		KeyPlaybackFailed:   "Não foi possível iniciar a reprodução",
		KeyNoActiveDevice:   "Nenhum dispositivo ativo, abra o app em um dispositivo primeiro",
		KeyNotLoaded:        "A playlist ainda está carregando",
		KeyDeviceID:         "ID do dispositivo de reprodução",
		KeyDeviceIDHint:     "Vazio para o dispositivo ativo",
		KeyRequestTimeout:   "Tempo limite da requisição (segundos)",
		KeyReopenLast:       "Reabrir a última playlist ao iniciar",
		KeySettingsSaved:    "Configurações salvas",
	}
}
