package playlist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/spotmobile/internal/model"
)

// DefaultTimeout bounds every service call made by the controller
const DefaultTimeout = 15 * time.Second

var (
	// ErrNotLoaded is returned by commands when no current playlist exists
	ErrNotLoaded = errors.New("playlist is not loaded")

	// ErrClosed is returned by commands after Close
	ErrClosed = errors.New("playlist controller is closed")

	// ErrMissingID is the failure recorded for an empty playlist identifier
	ErrMissingID = fmt.Errorf("missing playlist identifier: %w", model.ErrNotFound)
)

// Option configures a Controller
type Option func(*Controller)

// WithTimeout sets the per-request timeout. Non-positive values are ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Controller) {
		if timeout > 0 {
			c.timeout = func() time.Duration { return timeout }
		}
	}
}

// WithTimeoutFunc reads the per-request timeout before every service call,
// so preference changes apply to the next request.
func WithTimeoutFunc(fn func() time.Duration) Option {
	return func(c *Controller) {
		if fn != nil {
			c.timeout = fn
		}
	}
}

// Controller owns the state of one playlist screen instance.
// Listeners must not call back into the controller synchronously.
type Controller struct {
	svc     Service
	logger  *zap.Logger
	timeout func() time.Duration

	mu     sync.Mutex
	state  State
	closed bool

	// Request bookkeeping. token identifies the only request whose
	// responses may still change state.
	parent   context.Context
	token    string
	cancel   context.CancelFunc
	inFlight bool

	// memoID is the identifier the memoized playlist was requested with
	memoID string

	// Follow status of the memoized playlist
	followID string
	follow   model.FollowStatus

	listeners    map[int]func(State)
	nextListener int

	notifyMu  sync.Mutex
	delivered uint64
}

// NewController creates a controller in the initial loading state
func NewController(svc Service, logger *zap.Logger, opts ...Option) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		svc:       svc,
		logger:    logger.Named("playlist"),
		timeout:   func() time.Duration { return DefaultTimeout },
		state:     initialState(),
		parent:    context.Background(),
		follow:    model.FollowStatusUnknown,
		listeners: make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current snapshot
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn for state changes and returns its removal func
func (c *Controller) Subscribe(fn func(State)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return func() {}
	}
	id := c.nextListener
	c.nextListener++
	c.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}

// Enter is called when the screen gains focus with the requested id.
// ctx is cancelled when the screen loses focus.
func (c *Controller) Enter(ctx context.Context, playlistID string) {
	id := strings.TrimSpace(playlistID)
	if ctx == nil {
		ctx = context.Background()
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.parent = ctx

	var (
		st      State
		changed bool
	)
	switch {
	case id == "":
		c.invalidateLocked()
		st = c.setStateLocked(State{
			Status:    model.LoadStatusFailed,
			Playlist:  c.state.Playlist,
			Following: model.FollowStatusUnknown,
			Err:       ErrMissingID,
		})
		changed = true
		c.logger.Warn("Playlist requested without identifier")

	case c.state.Playlist != nil && c.memoID == id:
		// Memoized: no request and no loading flash
		c.invalidateLocked()
		if c.state.Status != model.LoadStatusLoaded || c.state.RequestedID != id {
			st = c.setStateLocked(State{
				Status:      model.LoadStatusLoaded,
				RequestedID: id,
				Playlist:    c.state.Playlist,
				Following:   c.followOfLocked(id),
			})
			changed = true
		}
		c.logger.Debug("Playlist served from memo", zap.String("playlist_id", id))

	case c.inFlight && c.state.RequestedID == id:
		c.logger.Debug("Joining in-flight playlist request", zap.String("playlist_id", id))

	default:
		st = c.startLocked(id)
		changed = true
	}
	c.mu.Unlock()

	if changed {
		c.publish(st)
	}
}

// Exit is called when the screen loses focus. In-flight requests are
// cancelled and their responses will be discarded.
func (c *Controller) Exit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight {
		c.logger.Debug("Cancelling in-flight playlist request", zap.String("playlist_id", c.state.RequestedID))
	}
	c.invalidateLocked()
}

// Retry re-issues the fetch after a failure. It returns false when there
// is nothing to retry.
func (c *Controller) Retry() bool {
	c.mu.Lock()
	if c.closed || c.state.Status != model.LoadStatusFailed || c.state.RequestedID == "" || c.parent.Err() != nil {
		c.mu.Unlock()
		return false
	}
	st := c.startLocked(c.state.RequestedID)
	c.mu.Unlock()

	c.logger.Info("Retrying playlist", zap.String("playlist_id", st.RequestedID))
	c.publish(st)
	return true
}

// Refresh refetches the requested playlist bypassing the memo. It returns
// false when a request is already pending or nothing was requested.
func (c *Controller) Refresh() bool {
	c.mu.Lock()
	if c.closed || c.inFlight || c.state.RequestedID == "" || c.parent.Err() != nil {
		c.mu.Unlock()
		return false
	}
	st := c.startLocked(c.state.RequestedID)
	c.mu.Unlock()

	c.logger.Info("Refreshing playlist", zap.String("playlist_id", st.RequestedID))
	c.publish(st)
	return true
}

// Close releases the controller. It is safe to call more than once and
// late responses are ignored afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.invalidateLocked()
	c.listeners = make(map[int]func(State))
	c.logger.Debug("Playlist controller closed")
}

// Follow makes the current user follow the loaded playlist
func (c *Controller) Follow(ctx context.Context) error {
	p, err := c.current()
	if err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.requestTimeout())
	defer cancel()
	if err := c.svc.FollowPlaylist(reqCtx, p.ID); err != nil {
		c.logger.Warn("Follow failed", zap.String("playlist_id", p.ID), zap.Error(err))
		return fmt.Errorf("follow playlist %s: %w", p.ID, err)
	}
	c.logger.Info("Playlist followed", zap.String("playlist_id", p.ID))

	c.mu.Lock()
	var (
		st      State
		changed bool
	)
	if !c.closed {
		c.followID = p.ID
		c.follow = model.FollowStatusFollowing
		if c.state.RequestedID == p.ID && c.state.Following != model.FollowStatusFollowing {
			next := c.state
			next.Following = model.FollowStatusFollowing
			st = c.setStateLocked(next)
			changed = true
		}
	}
	c.mu.Unlock()

	if changed {
		c.publish(st)
	}
	return nil
}

// PlayAll starts playback of the loaded playlist from its first track
func (c *Controller) PlayAll(ctx context.Context) error {
	return c.PlayFrom(ctx, 0)
}

// PlayFrom starts playback of the loaded playlist at the given position
func (c *Controller) PlayFrom(ctx context.Context, index int) error {
	p, err := c.current()
	if err != nil {
		return err
	}

	count := p.TrackCount()
	if index < 0 || (index > 0 && index >= count) {
		return fmt.Errorf("track position %d out of range [0, %d)", index, count)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.requestTimeout())
	defer cancel()
	if err := c.svc.PlayURI(reqCtx, p.URI, index, 0); err != nil {
		c.logger.Warn("Playback failed",
			zap.String("playlist_id", p.ID),
			zap.Int("position", index),
			zap.Error(err))
		return fmt.Errorf("play %s from %d: %w", p.URI, index, err)
	}
	c.logger.Info("Playback started", zap.String("playlist_id", p.ID), zap.Int("position", index))
	return nil
}

func (c *Controller) current() (*model.Playlist, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}
	p := c.state.Current()
	if p == nil {
		return nil, ErrNotLoaded
	}
	return p, nil
}

// startLocked moves to loading and issues the playlist and follow requests
func (c *Controller) startLocked(id string) State {
	c.invalidateLocked()

	token := uuid.NewString()
	ctx, cancel := context.WithCancel(c.parent)
	c.token = token
	c.cancel = cancel
	c.inFlight = true

	st := c.setStateLocked(State{
		Status:      model.LoadStatusLoading,
		RequestedID: id,
		Playlist:    c.state.Playlist,
		Following:   c.followOfLocked(id),
	})

	c.logger.Debug("Fetching playlist", zap.String("playlist_id", id), zap.String("token", token))
	go c.fetchPlaylist(ctx, token, id)
	go c.fetchFollowStatus(ctx, token, id)
	return st
}

func (c *Controller) fetchPlaylist(ctx context.Context, token, id string) {
	reqCtx, cancel := context.WithTimeout(ctx, c.requestTimeout())
	defer cancel()

	started := time.Now()
	playlist, err := c.svc.GetPlaylist(reqCtx, id)
	if err == nil && playlist == nil {
		err = fmt.Errorf("playlist %s: empty response: %w", id, model.ErrNotFound)
	}

	c.mu.Lock()
	if c.closed || token != c.token {
		c.mu.Unlock()
		c.logger.Debug("Discarding stale playlist response", zap.String("playlist_id", id), zap.String("token", token))
		return
	}
	c.inFlight = false

	if err != nil && model.KindOf(err) == model.ErrorKindCanceled {
		c.mu.Unlock()
		c.logger.Debug("Playlist request cancelled", zap.String("playlist_id", id))
		return
	}

	var st State
	if err != nil {
		st = c.setStateLocked(State{
			Status:      model.LoadStatusFailed,
			RequestedID: id,
			Playlist:    c.state.Playlist,
			Following:   c.state.Following,
			Err:         err,
		})
	} else {
		c.memoID = id
		st = c.setStateLocked(State{
			Status:      model.LoadStatusLoaded,
			RequestedID: id,
			Playlist:    playlist,
			Following:   c.followOfLocked(id),
		})
	}
	c.mu.Unlock()

	if err != nil {
		c.logger.Warn("Playlist fetch failed",
			zap.String("playlist_id", id),
			zap.Stringer("kind", model.KindOf(err)),
			zap.Error(err))
	} else {
		c.logger.Info("Playlist loaded",
			zap.String("playlist_id", id),
			zap.Int("tracks", len(playlist.Tracks)),
			zap.Duration("elapsed", time.Since(started)))
	}
	c.publish(st)
}

func (c *Controller) fetchFollowStatus(ctx context.Context, token, id string) {
	reqCtx, cancel := context.WithTimeout(ctx, c.requestTimeout())
	defer cancel()

	userID, err := c.svc.CurrentUserID(reqCtx)
	if err != nil {
		c.logger.Debug("Current user lookup failed", zap.Error(err))
		return
	}
	follows, err := c.svc.FollowsPlaylist(reqCtx, id, userID)
	if err != nil {
		c.logger.Debug("Follow status check failed", zap.String("playlist_id", id), zap.Error(err))
		return
	}
	status := model.FollowStatusOf(follows)

	c.mu.Lock()
	if c.closed || token != c.token {
		c.mu.Unlock()
		c.logger.Debug("Discarding stale follow status", zap.String("playlist_id", id))
		return
	}
	c.followID = id
	c.follow = status

	var (
		st      State
		changed bool
	)
	if c.state.RequestedID == id && c.state.Following != status {
		next := c.state
		next.Following = status
		st = c.setStateLocked(next)
		changed = true
	}
	c.mu.Unlock()

	c.logger.Debug("Follow status", zap.String("playlist_id", id), zap.Stringer("status", status))
	if changed {
		c.publish(st)
	}
}

// followOfLocked returns the known follow status for id
func (c *Controller) followOfLocked(id string) model.FollowStatus {
	if c.followID == id {
		return c.follow
	}
	return model.FollowStatusUnknown
}

// invalidateLocked cancels the pending request and forgets its token
func (c *Controller) invalidateLocked() {
	if c.cancel != nil {
		c.cancel()
	}
	c.cancel = nil
	c.token = ""
	c.inFlight = false
}

func (c *Controller) setStateLocked(st State) State {
	st.Version = c.state.Version + 1
	c.state = st
	return st
}

// publish delivers st unless a newer state was already delivered
func (c *Controller) publish(st State) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	if st.Version <= c.delivered {
		return
	}
	c.delivered = st.Version

	c.mu.Lock()
	listeners := make([]func(State), 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(st)
	}
}

// requestTimeout returns the timeout for a new request
func (c *Controller) requestTimeout() time.Duration {
	if timeout := c.timeout(); timeout > 0 {
		return timeout
	}
	return DefaultTimeout
}
