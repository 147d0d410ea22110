package model

// Package model defines the domain data consumed by the screens: playlists,
// track entries, load/follow status enums and the service error taxonomy.
// Values are read-only snapshots handed from the music service to the UI.
