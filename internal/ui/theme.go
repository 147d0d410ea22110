package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Brand colors
var (
	ColorBackground = color.RGBA{R: 0x19, G: 0x14, B: 0x14, A: 0xff}
	ColorPrimary    = color.RGBA{R: 0x1d, G: 0xb9, B: 0x54, A: 0xff}
	ColorSurface    = color.RGBA{R: 0x28, G: 0x28, B: 0x28, A: 0xff}
	ColorMuted      = color.RGBA{R: 0xb3, G: 0xb3, B: 0xb3, A: 0xff}
)

// SpotifyTheme is a dark theme with the streaming service colors
type SpotifyTheme struct{}

// NewSpotifyTheme creates the application theme
func NewSpotifyTheme() fyne.Theme {
	return &SpotifyTheme{}
}

// Color returns theme colors; the theme is always dark
func (t *SpotifyTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return ColorBackground
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return ColorPrimary
	case theme.ColorNameButton, theme.ColorNameInputBackground, theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return ColorSurface
	case theme.ColorNameForeground:
		return color.White
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		return ColorMuted
	case theme.ColorNameSuccess:
		return ColorPrimary
	case theme.ColorNameError:
		return color.RGBA{R: 0xe9, G: 0x14, B: 0x29, A: 0xff}
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *SpotifyTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *SpotifyTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with larger touch-friendly text
func (t *SpotifyTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 15
	case theme.SizeNameHeadingText:
		return 24
	case theme.SizeNameSubHeadingText:
		return 18
	case theme.SizeNameCaptionText:
		return 12
	case theme.SizeNameInputRadius, theme.SizeNameSelectionRadius:
		return 8
	}

	return theme.DefaultTheme().Size(name)
}
