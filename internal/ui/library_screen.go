package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// LibraryScreen is a static placeholder for the user's library
type LibraryScreen struct {
	localization *Localization
	heading      *widget.Label
	content      fyne.CanvasObject
}

// NewLibraryScreen creates the library screen
func NewLibraryScreen(localization *Localization) *LibraryScreen {
	s := &LibraryScreen{localization: localization}
	s.heading = widget.NewLabelWithStyle(localization.GetText(KeyLibrary), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	s.heading.SizeName = theme.SizeNameHeadingText
	s.content = container.NewCenter(s.heading)
	return s
}

// Content returns the screen root object
func (s *LibraryScreen) Content() fyne.CanvasObject {
	return s.content
}

// RefreshTexts updates the heading after a language change
func (s *LibraryScreen) RefreshTexts() {
	s.heading.SetText(s.localization.GetText(KeyLibrary))
}
