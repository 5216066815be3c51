package state

import "github.com/cbodonnell/gridstead/pkg/game/types"

// Watch subscribes fn to state updates. The current state is delivered
// synchronously before Watch returns, so a rendering layer never sees
// a flash of empty state; every subsequent NotifyUpdate emission
// follows. The returned cancel func removes the subscription entirely
// and is safe to call more than once.
func (m *Manager) Watch(fn func(state *types.GameState)) (cancel func()) {
	m.lock.RLock()
	snapshot := m.saved.Current.Copy()
	m.lock.RUnlock()
	fn(snapshot)

	id := m.updates.On(fn)
	return func() {
		m.updates.Off(id)
	}
}

// WatchTheme is Watch's counterpart for the theme preference.
func (m *Manager) WatchTheme(fn func(darkTheme bool)) (cancel func()) {
	m.lock.RLock()
	darkTheme := m.saved.Options.DarkTheme
	m.lock.RUnlock()
	fn(darkTheme)

	id := m.themes.On(fn)
	return func() {
		m.themes.Off(id)
	}
}
