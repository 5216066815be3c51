package state

import (
	"context"
	"sync"

	"github.com/cbodonnell/gridstead/pkg/events"
	"github.com/cbodonnell/gridstead/pkg/game/types"
	"github.com/cbodonnell/gridstead/pkg/log"
	"github.com/cbodonnell/gridstead/pkg/services"
	"github.com/cbodonnell/gridstead/pkg/storage"
)

// Manager owns the live SavedGame and mirrors it to the save backend.
// The live state is mutated in place by multiple callers (simulation
// tick, migration, merge-on-load), so all access goes through the
// state lock.
type Manager struct {
	store storage.Store
	sound services.SoundPlayer

	lock  sync.RWMutex
	saved *types.SavedGame

	// flight enforces the at-most-one-concurrent-save policy
	flight sync.Mutex

	updates *events.Channel[*types.GameState]
	themes  *events.Channel[bool]
}

type NewManagerOptions struct {
	Store storage.Store
	Sound services.SoundPlayer
}

// NewManager creates a Manager with a default, empty SavedGame carrying
// the running build's save-format version.
func NewManager(opts NewManagerOptions) *Manager {
	return &Manager{
		store: opts.Store,
		sound: opts.Sound,
		saved: &types.SavedGame{
			Current: types.NewGameState(),
			Options: types.NewGameOptions(),
		},
		updates: events.NewChannel[*types.GameState](),
		themes:  events.NewChannel[bool](),
	}
}

// Get returns the live SavedGame by reference. Readers that hold the
// result across mutations must go through Mutate instead.
func (m *Manager) Get() *types.SavedGame {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.saved
}

// Snapshot returns a copy of the live SavedGame that shares nothing
// with it. The debug API serves snapshots so encoding never races with
// the simulation.
func (m *Manager) Snapshot() *types.SavedGame {
	m.lock.RLock()
	defer m.lock.RUnlock()
	options := *m.saved.Options
	return &types.SavedGame{
		Current: m.saved.Current.Copy(),
		Options: &options,
	}
}

// Mutate runs fn with the live SavedGame under the state lock.
func (m *Manager) Mutate(fn func(saved *types.SavedGame)) {
	m.lock.Lock()
	defer m.lock.Unlock()
	fn(m.saved)
}

// Save serializes the full envelope and writes it to the backend.
// If a save is already in flight the request is dropped with a
// warning: at most one concurrent save, no queueing. Write failures
// are logged, not retried, and not surfaced - save is fire-and-forget
// from the caller's perspective. The save reflects the state at call
// time; mutations after serialization are not included.
func (m *Manager) Save(ctx context.Context) {
	if !m.flight.TryLock() {
		log.Warn("Save already in flight, dropping request")
		return
	}
	defer m.flight.Unlock()

	m.lock.RLock()
	value, err := encodeEnvelope(m.saved)
	m.lock.RUnlock()
	if err != nil {
		log.Error("Failed to serialize save: %v", err)
		return
	}

	if err := m.store.Write(ctx, SaveKey, value); err != nil {
		log.Error("Failed to write save: %v", err)
		return
	}
	log.Debug("Saved game state")
}

// Wipe deletes everything from the save backend. It does not touch the
// live state: the caller is expected to continue with a fresh process
// or a fresh SavedGame.
func (m *Manager) Wipe(ctx context.Context) error {
	if err := m.store.Clear(ctx); err != nil {
		return err
	}
	log.Info("Wiped saved game")
	return nil
}

// NotifyUpdate emits a copy of the live GameState to state observers.
// Subscribers see a snapshot at emission time and cannot mutate the
// canonical state through it.
func (m *Manager) NotifyUpdate() {
	m.lock.RLock()
	snapshot := m.saved.Current.Copy()
	m.lock.RUnlock()
	m.updates.Emit(snapshot)
}

// SetDarkTheme updates the theme preference and notifies theme
// observers.
func (m *Manager) SetDarkTheme(enabled bool) {
	m.lock.Lock()
	m.saved.Options.DarkTheme = enabled
	m.lock.Unlock()
	m.themes.Emit(enabled)
}

// SetMusicMuted updates the music preference.
func (m *Manager) SetMusicMuted(muted bool) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.saved.Options.MusicMuted = muted
}

// ClearResources empties every building's resource stock. Debug hook.
func (m *Manager) ClearResources() {
	m.lock.Lock()
	for _, tile := range m.saved.Current.Tiles {
		if tile == nil || tile.Building == nil {
			continue
		}
		tile.Building.Resources = make(map[string]float64)
	}
	m.lock.Unlock()
	m.NotifyUpdate()
}
