package types

import "github.com/cbodonnell/gridstead/pkg/version"

// GameOptions holds the save-format version marker and user preferences.
// Like GameState, exactly one live instance exists per process.
type GameOptions struct {
	// Version is the save-format marker. Equality with the running
	// build's marker is the sole compatibility gate.
	Version string `json:"version"`
	// DarkTheme enables the dark UI theme
	DarkTheme bool `json:"darkTheme"`
	// MusicMuted disables background music
	MusicMuted bool `json:"musicMuted"`
}

func NewGameOptions() *GameOptions {
	return &GameOptions{
		Version: version.SaveVersion,
	}
}
