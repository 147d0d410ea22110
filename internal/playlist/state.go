package playlist

import (
	"github.com/ytget/spotmobile/internal/model"
)

// State is an immutable snapshot of the playlist screen
type State struct {
	// Version increases with every change
	Version uint64

	Status      model.LoadStatus
	RequestedID string

	// Playlist may be stale while Status is loading or failed
	Playlist  *model.Playlist
	Following model.FollowStatus
	Err       error
}

// Loading reports whether a fetch is pending
func (s State) Loading() bool {
	return s.Status == model.LoadStatusLoading
}

// Current returns the playlist only if it is the loaded, current one
func (s State) Current() *model.Playlist {
	if s.Status != model.LoadStatusLoaded {
		return nil
	}
	return s.Playlist
}

// ErrorKind classifies the failure of the last fetch
func (s State) ErrorKind() model.ErrorKind {
	if s.Status != model.LoadStatusFailed {
		return model.ErrorKindNone
	}
	return model.KindOf(s.Err)
}

// Retryable reports whether the failure can be retried by the user
func (s State) Retryable() bool {
	return s.Status == model.LoadStatusFailed && model.IsRetryable(s.Err)
}

func initialState() State {
	return State{
		Status:    model.LoadStatusLoading,
		Following: model.FollowStatusUnknown,
	}
}
