package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Routes and parameters
const (
	RoutePlaylist   = "playlist"
	RouteLibrary    = "library"
	ParamPlaylistID = "id"
)

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	RowMinWidth  float32 = 280
	RowMinHeight float32 = 56

	PositionLabelWidth float32 = 32

	ArtworkSize          float32 = 200
	ArtworkSizeLandscape float32 = 120
	SheetArtworkSize     float32 = 56

	// Touch target minimum sizes (iOS/Android guidelines)
	MobileButtonHeight float32 = 48
	MobileButtonWidth  float32 = 60
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 64
	ToastMargin   float32 = 20
	ToastAutoHide         = 3 * time.Second
)

// Window sizing
const (
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 360
)
