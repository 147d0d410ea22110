package ui

// Package ui contains the Fyne-based mobile user interface: the playlist screen,
// the library placeholder, the action sheet, toasts and settings. Screens react to
// navigator focus events and render playlist controller state on the UI thread.
// All UI strings are localized via Localization.
