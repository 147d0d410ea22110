// Package app wires configuration, logging, the Spotify gateway and the UI
// into a running fyne application.
package app

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/spotmobile/internal/config"
	"github.com/ytget/spotmobile/internal/logger"
	"github.com/ytget/spotmobile/internal/navigation"
	"github.com/ytget/spotmobile/internal/platform"
	"github.com/ytget/spotmobile/internal/playlist"
	"github.com/ytget/spotmobile/internal/spotify"
	"github.com/ytget/spotmobile/internal/ui"
)

const (
	AppID   = "com.ytget.spotmobile"
	AppName = "Spotmobile"

	WindowWidth  = 420
	WindowHeight = 760
)

// Options are the startup parameters collected by the entry points
type Options struct {
	// PlaylistID is opened on start; links and URIs are accepted
	PlaylistID string
	// EnvFiles are read before the environment; empty means ./.env
	EnvFiles []string
	// LogLevel overrides LOG_LEVEL when set
	LogLevel string
	// Version is shown in the window title
	Version string
}

// Run starts the application and blocks until the window is closed
func Run(opts Options) error {
	env, err := config.LoadEnv(opts.EnvFiles...)
	if err != nil {
		return fmt.Errorf("load environment: %w", err)
	}

	a := fyneapp.NewWithID(AppID)
	a.Settings().SetTheme(ui.NewSpotifyTheme())

	log := newLogger(env, opts, storageRoot(a))
	defer func() { _ = log.Sync() }()

	log.Info("Starting",
		zap.String("app", AppName),
		zap.String("version", opts.Version),
		zap.Bool("debug", env.Debug),
	)

	playlistID, err := startPlaylistID(opts.PlaylistID)
	if err != nil {
		log.Warn("Ignoring start playlist", zap.String("input", opts.PlaylistID), zap.Error(err))
	}

	settings := config.NewSettings(a)

	httpClient, err := spotify.NewHTTPClient(context.Background(), env)
	if err != nil {
		log.Error("Spotify credentials are not configured", zap.Error(err))
		return fmt.Errorf("spotify client: %w", err)
	}
	client := spotify.NewClient(httpClient, log.Named("spotify"), spotify.Options{
		APIURL:   env.APIURL,
		DeviceID: settings.GetDeviceID,
	})

	nav := navigation.New(log)
	controller := playlist.NewController(client, log, timeoutOption(env, settings))

	window := a.NewWindow(windowTitle(opts.Version))
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	root := ui.NewRootUI(window, a, settings, nav, controller, log)
	root.Start(playlistID)

	window.ShowAndRun()
	log.Info("Stopped")
	return nil
}

// newLogger builds the application logger. The log file lives in the data
// directory unless LOG_PATH is set.
func newLogger(env *config.Env, opts Options, storage string) *zap.Logger {
	level := env.LogLevel
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	if env.Debug {
		level = "debug"
	}

	path := env.LogPath
	var dirErr error
	if path == "" {
		var dataDir string
		dataDir, dirErr = platform.ResolveDataDir(env.AppDataDir, storage)
		path = logger.DefaultPath(dataDir)
	}

	log := logger.New(logger.Options{Level: level, Path: path})
	if dirErr != nil {
		log.Warn("File logging disabled", zap.Error(dirErr))
	}
	return log
}

// storageRoot returns the app sandbox directory, or empty when the driver has none
func storageRoot(a fyne.App) string {
	storage := a.Storage()
	if storage == nil || storage.RootURI() == nil {
		return ""
	}
	return storage.RootURI().Path()
}

// startPlaylistID normalizes the playlist given on the command line
func startPlaylistID(input string) (string, error) {
	if input == "" {
		return "", nil
	}
	return spotify.ParsePlaylistLink(input)
}

// timeoutOption prefers SPOTIFY_REQUEST_TIMEOUT over the preference
func timeoutOption(env *config.Env, settings *config.Settings) playlist.Option {
	if env.RequestTimeout > 0 {
		return playlist.WithTimeout(env.RequestTimeout)
	}
	return playlist.WithTimeoutFunc(settings.GetRequestTimeout)
}

func windowTitle(version string) string {
	if version == "" {
		return AppName
	}
	return fmt.Sprintf("%s v%s", AppName, version)
}
