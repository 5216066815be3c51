package game

import (
	"fmt"

	"github.com/cbodonnell/gridstead/pkg/game/registry"
	"github.com/cbodonnell/gridstead/pkg/game/types"
	"github.com/google/uuid"
)

// NewBuilding constructs a building of the given type with its
// registry defaults. It is the canonical constructor: every building
// instance in the live state, whether placed by the simulation or
// rebuilt from a save, goes through here.
func NewBuilding(buildingType string) (*types.Building, error) {
	def, ok := registry.Building(buildingType)
	if !ok {
		return nil, fmt.Errorf("unknown building type: %s", buildingType)
	}

	resources := make(map[string]float64, len(def.StartingResources))
	for key, quantity := range def.StartingResources {
		resources[key] = quantity
	}

	return &types.Building{
		ID:        uuid.New(),
		Type:      buildingType,
		Level:     1,
		Resources: resources,
	}, nil
}

// NewBuildingFromSave rebuilds a persisted building through the
// canonical constructor, keeping only the fields the current build
// understands and filling defaults for the rest. The raw persisted
// shape is never trusted.
func NewBuildingFromSave(raw *types.Building) (*types.Building, error) {
	building, err := NewBuilding(raw.Type)
	if err != nil {
		return nil, err
	}

	if raw.ID != uuid.Nil {
		building.ID = raw.ID
	}

	def, _ := registry.Building(raw.Type)
	building.Level = raw.Level
	if building.Level < 1 {
		building.Level = 1
	}
	if building.Level > def.MaxLevel {
		building.Level = def.MaxLevel
	}

	// the saved stock replaces the starting stock entirely
	building.Resources = make(map[string]float64, len(raw.Resources))
	for key, quantity := range raw.Resources {
		building.Resources[key] = quantity
	}

	return building, nil
}
