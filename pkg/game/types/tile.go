package types

import "github.com/google/uuid"

// Tile is a single cell of the grid. A tile optionally owns one building.
type Tile struct {
	// Building is the building on this tile, if any
	Building *Building `json:"building,omitempty"`
}

func (t *Tile) Copy() *Tile {
	if t == nil {
		return nil
	}
	return &Tile{
		Building: t.Building.Copy(),
	}
}

// Building is a building instance placed on a tile. Type must exist in
// the static building registry, and every key in Resources must exist
// in the static resource registry. Stale references are pruned during
// migration, never silently kept.
type Building struct {
	// ID uniquely identifies this building instance
	ID uuid.UUID `json:"id"`
	// Type is the building type key in the building registry
	Type string `json:"type"`
	// Level is the building's upgrade level
	Level int `json:"level"`
	// Resources maps resource keys to stored quantities
	Resources map[string]float64 `json:"resources"`
}

func (b *Building) Copy() *Building {
	if b == nil {
		return nil
	}
	resources := make(map[string]float64, len(b.Resources))
	for key, quantity := range b.Resources {
		resources[key] = quantity
	}
	return &Building{
		ID:        b.ID,
		Type:      b.Type,
		Level:     b.Level,
		Resources: resources,
	}
}
