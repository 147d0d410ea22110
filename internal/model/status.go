package model

// LoadStatus represents the lifecycle of a screen's data load
type LoadStatus string

const (
	// LoadStatusLoading means a fetch is pending and data must not be shown as current
	LoadStatusLoading LoadStatus = "loading"

	// LoadStatusLoaded means the playlist in state is current
	LoadStatusLoaded LoadStatus = "loaded"

	// LoadStatusFailed means the last fetch ended with an error
	LoadStatusFailed LoadStatus = "failed"
)

// String returns the string representation of LoadStatus
func (s LoadStatus) String() string {
	return string(s)
}

// IsTerminal returns true if no fetch is pending (loaded or failed)
func (s LoadStatus) IsTerminal() bool {
	return s == LoadStatusLoaded || s == LoadStatusFailed
}

// FollowStatus tells whether the current user follows a playlist
type FollowStatus string

const (
	FollowStatusUnknown      FollowStatus = "unknown"
	FollowStatusFollowing    FollowStatus = "following"
	FollowStatusNotFollowing FollowStatus = "not_following"
)

// String returns the string representation of FollowStatus
func (s FollowStatus) String() string {
	return string(s)
}

// FollowStatusOf converts a follows check result into a FollowStatus
func FollowStatusOf(following bool) FollowStatus {
	if following {
		return FollowStatusFollowing
	}
	return FollowStatusNotFollowing
}
