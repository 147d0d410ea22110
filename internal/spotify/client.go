package spotify

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/ytget/spotmobile/internal/config"
	"github.com/ytget/spotmobile/internal/model"
)

// Scopes needed by the playlist screen: read playlists, follow them and
// start playback on the user's device.
var Scopes = []string{
	spotifyauth.ScopeUserReadPrivate,
	spotifyauth.ScopePlaylistReadPrivate,
	spotifyauth.ScopePlaylistModifyPublic,
	spotifyauth.ScopeUserModifyPlaybackState,
}

// Options configures a Client
type Options struct {
	// APIURL is the Web API base, ending with a slash
	APIURL string
	// DeviceID returns the playback device to target; empty means the active device
	DeviceID func() string
}

// Client implements the music service on top of the Spotify Web API
type Client struct {
	api        *spotify.Client
	httpClient *http.Client
	baseURL    string
	deviceID   func() string
	logger     *zap.Logger
}

// NewHTTPClient returns an authenticated HTTP client for the configured tokens.
// With a refresh token the access token is renewed automatically.
func NewHTTPClient(ctx context.Context, env *config.Env) (*http.Client, error) {
	if err := env.Validate(); err != nil {
		return nil, err
	}

	if env.RefreshToken == "" {
		token := &oauth2.Token{AccessToken: env.AccessToken, TokenType: "Bearer"}
		return oauth2.NewClient(ctx, oauth2.StaticTokenSource(token)), nil
	}

	auth := spotifyauth.New(
		spotifyauth.WithClientID(env.ClientID),
		spotifyauth.WithClientSecret(env.ClientSecret),
		spotifyauth.WithScopes(Scopes...),
	)

	// Expired on purpose: the first request refreshes it
	token := &oauth2.Token{
		AccessToken:  env.AccessToken,
		RefreshToken: env.RefreshToken,
		TokenType:    "Bearer",
		Expiry:       time.Now(),
	}
	return auth.Client(ctx, token), nil
}

// NewClient creates a client using an already authenticated HTTP client
func NewClient(httpClient *http.Client, logger *zap.Logger, opts Options) *Client {
	baseURL := opts.APIURL
	if baseURL == "" {
		baseURL = config.DefaultAPIURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	deviceID := opts.DeviceID
	if deviceID == nil {
		deviceID = func() string { return "" }
	}

	logger.Debug("Spotify client created", zap.String("api_url", baseURL))

	return &Client{
		api:        spotify.New(httpClient, spotify.WithBaseURL(baseURL)),
		httpClient: httpClient,
		baseURL:    baseURL,
		deviceID:   deviceID,
		logger:     logger,
	}
}

// GetPlaylist fetches a playlist together with its first page of tracks
func (c *Client) GetPlaylist(ctx context.Context, id string) (*model.Playlist, error) {
	c.logger.Debug("Requesting playlist", zap.String("playlist_id", id))

	playlist, err := c.api.GetPlaylist(ctx, spotify.ID(id))
	if err != nil {
		return nil, classify("get playlist "+id, err)
	}

	result := toPlaylist(playlist)
	c.logger.Debug("Playlist received",
		zap.String("playlist_id", id),
		zap.Int("tracks", result.TrackCount()),
		zap.Int("total_tracks", result.TotalTracks))

	return result, nil
}

// CurrentUserID returns the ID of the authenticated user
func (c *Client) CurrentUserID(ctx context.Context) (string, error) {
	user, err := c.api.CurrentUser(ctx)
	if err != nil {
		return "", classify("get current user", err)
	}
	return user.ID, nil
}

// FollowsPlaylist reports whether the user follows the playlist
func (c *Client) FollowsPlaylist(ctx context.Context, playlistID, userID string) (bool, error) {
	follows, err := c.api.UserFollowsPlaylist(ctx, spotify.ID(playlistID), userID)
	if err != nil {
		return false, classify("check playlist followers "+playlistID, err)
	}
	if len(follows) == 0 {
		return false, nil
	}
	return follows[0], nil
}

// FollowPlaylist adds the current user as a follower of the playlist
func (c *Client) FollowPlaylist(ctx context.Context, playlistID string) error {
	if err := c.api.FollowPlaylist(ctx, spotify.ID(playlistID), true); err != nil {
		return classify("follow playlist "+playlistID, err)
	}
	c.logger.Info("Playlist followed", zap.String("playlist_id", playlistID))
	return nil
}

// PlayURI starts playback of a context (playlist, album) from the given
// position. The request targets the configured device if one is set.
func (c *Client) PlayURI(ctx context.Context, uri string, startIndex, startPositionMs int) error {
	if uri == "" {
		return errors.New("play: empty context URI")
	}
	if startIndex < 0 {
		startIndex = 0
	}
	if startPositionMs < 0 {
		startPositionMs = 0
	}

	contextURI := spotify.URI(uri)
	opts := &spotify.PlayOptions{
		PlaybackContext: &contextURI,
		PlaybackOffset:  &spotify.PlaybackOffset{Position: &startIndex},
		PositionMs:      spotify.Numeric(startPositionMs),
	}
	if device := c.deviceID(); device != "" {
		id := spotify.ID(device)
		opts.DeviceID = &id
	}

	c.logger.Debug("Starting playback",
		zap.String("uri", uri),
		zap.Int("index", startIndex),
		zap.Int("position_ms", startPositionMs))

	if err := c.api.PlayOpt(ctx, opts); err != nil {
		return classify("play "+uri, err)
	}
	return nil
}
