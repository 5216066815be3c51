package state

import (
	"context"
	"testing"
	"time"

	"github.com/cbodonnell/gridstead/pkg/game/types"
	"github.com/cbodonnell/gridstead/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSound struct {
	cues []string
}

func (s *recordingSound) Play(cue string) {
	s.cues = append(s.cues, cue)
}

func loadedWithVersion(t *testing.T, version string) *Loaded {
	t.Helper()
	loaded, err := decodeEnvelope(`{"current":{"tiles":{"9":{"building":{"type":"farm"}}}},"options":{"version":"` + version + `"}}`)
	require.NoError(t, err)
	return loaded
}

func TestCheckCompatibility_VersionMismatch(t *testing.T) {
	ctx := context.Background()
	sound := &recordingSound{}
	m := NewManager(NewManagerOptions{
		Store: storage.NewMemoryStore(),
		Sound: sound,
	})
	m.Mutate(func(saved *types.SavedGame) {
		saved.Options.Version = "1.2"
	})

	loaded := loadedWithVersion(t, "1.1")

	navigated := make(chan map[string]interface{}, 1)
	result := make(chan bool, 1)
	go func() {
		ok, err := m.CheckCompatibility(ctx, loaded, func(component string, props map[string]interface{}) {
			assert.Equal(t, IncompatibleSaveComponent, component)
			navigated <- props
		})
		assert.NoError(t, err)
		result <- ok
	}()

	var props map[string]interface{}
	select {
	case props = <-navigated:
	case <-time.After(time.Second):
		t.Fatal("gate never navigated to the interstitial")
	}
	assert.Equal(t, "1.1", props["savedVersion"])
	assert.Equal(t, "1.2", props["buildVersion"])

	// the gate blocks until the user confirms
	select {
	case <-result:
		t.Fatal("gate resolved before the continue action")
	case <-time.After(50 * time.Millisecond):
	}

	cont, ok := props["continue"].(func())
	require.True(t, ok, "interstitial props carry a continue callback")
	cont()
	// confirming twice must be harmless
	cont()

	select {
	case ok := <-result:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("gate never resolved after confirmation")
	}

	// the live state was never touched
	saved := m.Get()
	assert.Empty(t, saved.Current.Tiles)
	assert.Equal(t, "1.2", saved.Options.Version)
	assert.Equal(t, []string{ErrorCue}, sound.cues)
}

func TestCheckCompatibility_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := NewManager(NewManagerOptions{Store: storage.NewMemoryStore()})
	m.Mutate(func(saved *types.SavedGame) {
		saved.Options.Version = "1.2"
	})

	loaded := loadedWithVersion(t, "1.1")

	result := make(chan error, 1)
	go func() {
		_, err := m.CheckCompatibility(ctx, loaded, func(component string, props map[string]interface{}) {
			// the user never confirms
		})
		result <- err
	}()

	cancel()
	select {
	case err := <-result:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("gate never resolved after cancellation")
	}
}

func TestCheckCompatibility_MatchMergesAndMigrates(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewManagerOptions{Store: storage.NewMemoryStore()})
	m.Mutate(func(saved *types.SavedGame) {
		saved.Options.Version = "1.2"
		// live-only fields survive the merge
		saved.Options.MusicMuted = true
		saved.Current.SetTile(100, &types.Tile{})
	})

	loaded, err := decodeEnvelope(`{
		"current": {"tiles": {
			"1": {"building": {"type": "farm", "resources": {"food": 5, "plasma": 9}}},
			"2": {"building": {"type": "RemovedBuilding"}}
		}},
		"options": {"version": "1.2", "darkTheme": true}
	}`)
	require.NoError(t, err)

	var updates int
	cancelWatch := m.Watch(func(state *types.GameState) {
		updates++
	})
	defer cancelWatch()

	ok, err := m.CheckCompatibility(ctx, loaded, func(component string, props map[string]interface{}) {
		t.Fatalf("unexpected navigation to %s", component)
	})
	require.NoError(t, err)
	assert.True(t, ok)

	saved := m.Get()
	// migration pruned the unknown resource and dropped the unknown building
	require.NotNil(t, saved.Current.Tile(1).Building)
	assert.Equal(t, map[string]float64{"food": 5}, saved.Current.Tile(1).Building.Resources)
	assert.Nil(t, saved.Current.Tile(2).Building)
	// merge, not replace: the live-only tile is still there
	assert.NotNil(t, saved.Current.Tile(100))
	// darkTheme came from the save, musicMuted was absent and kept
	assert.True(t, saved.Options.DarkTheme)
	assert.True(t, saved.Options.MusicMuted)
	// observers were notified once past the initial delivery
	assert.Equal(t, 2, updates)
}
