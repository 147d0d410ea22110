package navigation

// Package navigation implements a stack navigator for the app screens. Screens
// subscribe to lifecycle events (willFocus, willBlur) and receive an Activation
// whose context is cancelled as soon as the screen stops being the current one.
