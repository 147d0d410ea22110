package playlist

import (
	"context"

	"github.com/ytget/spotmobile/internal/model"
)

// Service is the music service capability the controller depends on
type Service interface {
	GetPlaylist(ctx context.Context, id string) (*model.Playlist, error)
	CurrentUserID(ctx context.Context) (string, error)
	FollowsPlaylist(ctx context.Context, playlistID, userID string) (bool, error)
	FollowPlaylist(ctx context.Context, playlistID string) error
	PlayURI(ctx context.Context, uri string, startIndex, startPositionMs int) error
}
