package state

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cbodonnell/gridstead/pkg/game/types"
	"github.com/cbodonnell/gridstead/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImport(t *testing.T) {
	m := NewManager(NewManagerOptions{Store: storage.NewMemoryStore()})
	m.Mutate(func(saved *types.SavedGame) {
		saved.Current.SetTile(1, &types.Tile{Building: &types.Building{
			Type:      "quarry",
			Level:     3,
			Resources: map[string]float64{"stone": 12},
		}})
		saved.Options.DarkTheme = true
	})

	var buf bytes.Buffer
	require.NoError(t, m.Export(&buf))

	m2 := NewManager(NewManagerOptions{Store: storage.NewMemoryStore()})
	require.NoError(t, m2.Import(&buf))

	saved := m2.Get()
	require.NotNil(t, saved.Current.Tile(1).Building)
	assert.Equal(t, "quarry", saved.Current.Tile(1).Building.Type)
	assert.Equal(t, 3, saved.Current.Tile(1).Building.Level)
	assert.Equal(t, map[string]float64{"stone": 12}, saved.Current.Tile(1).Building.Resources)
	assert.True(t, saved.Options.DarkTheme)
}

func TestImport_Garbage(t *testing.T) {
	m := NewManager(NewManagerOptions{Store: storage.NewMemoryStore()})
	err := m.Import(strings.NewReader("definitely not zstd"))
	assert.Error(t, err)
}
