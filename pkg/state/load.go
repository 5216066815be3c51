package state

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/cbodonnell/gridstead/pkg/game"
	"github.com/cbodonnell/gridstead/pkg/log"
	"github.com/cbodonnell/gridstead/pkg/services"
	"github.com/cbodonnell/gridstead/pkg/storage"
)

// IncompatibleSaveComponent is the UI component the gate routes to when
// a save's version marker does not match the running build. Its only
// action is "wipe and continue".
const IncompatibleSaveComponent = "IncompatibleSave"

// ErrorCue is the sound cue played when an incompatible save is found.
const ErrorCue = "error"

// Load reads the save envelope from the backend. No save present is
// not an error: it returns (nil, nil). A save that is present but
// undecodable returns ErrCorruptSave so the caller can distinguish
// corruption from absence.
func (m *Manager) Load(ctx context.Context) (*Loaded, error) {
	value, err := m.store.Read(ctx, SaveKey)
	if err != nil {
		if storage.IsNotFound(err) {
			log.Debug("No saved game found")
			return nil, nil
		}
		return nil, err
	}

	loaded, err := decodeEnvelope(value)
	if err != nil {
		return nil, &ErrCorruptSave{Err: err}
	}
	return loaded, nil
}

// CheckCompatibility compares the loaded save's version marker against
// the running build's by strict equality.
//
// On a mismatch it plays the error cue and routes the user to a
// blocking interstitial through navigate; it returns false only once
// the user confirms the "wipe and continue" action (or ctx is
// cancelled). The live state is never mutated on this path. There is
// no migration across versions: a mismatch is always destructive by
// user choice.
//
// On a match it runs the migration pass over the loaded state, then
// merges the loaded state and options into the live instances
// field by field - fields absent from the save are left untouched -
// notifies state observers, and returns true.
func (m *Manager) CheckCompatibility(ctx context.Context, loaded *Loaded, navigate services.NavigateFunc) (bool, error) {
	m.lock.RLock()
	buildVersion := m.saved.Options.Version
	m.lock.RUnlock()

	if loaded.Saved.Options.Version != buildVersion {
		log.Warn("Saved game version %q does not match build version %q", loaded.Saved.Options.Version, buildVersion)
		if m.sound != nil {
			m.sound.Play(ErrorCue)
		}

		confirmed := make(chan struct{})
		var once sync.Once
		navigate(IncompatibleSaveComponent, map[string]interface{}{
			"savedVersion": loaded.Saved.Options.Version,
			"buildVersion": buildVersion,
			"continue": func() {
				once.Do(func() {
					close(confirmed)
				})
			},
		})

		select {
		case <-confirmed:
			return false, nil
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}

	game.Migrate(loaded.Saved.Current)

	m.lock.Lock()
	if loaded.Saved.Current != nil {
		for coord, tile := range loaded.Saved.Current.Tiles {
			m.saved.Current.Tiles[coord] = tile
		}
	}
	if len(loaded.rawOptions) > 0 {
		// assigns only the option fields present in the save
		if err := json.Unmarshal(loaded.rawOptions, m.saved.Options); err != nil {
			log.Error("Failed to merge saved options: %v", err)
		}
	}
	m.lock.Unlock()

	m.NotifyUpdate()
	return true, nil
}
