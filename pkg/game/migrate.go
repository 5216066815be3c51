package game

import (
	"github.com/cbodonnell/gridstead/pkg/game/registry"
	"github.com/cbodonnell/gridstead/pkg/game/types"
	"github.com/cbodonnell/gridstead/pkg/log"
)

// Migrate walks the loaded state's tiles and prunes entity references
// that are no longer defined in the static registries. Buildings of an
// unknown type are dropped entirely; known buildings are rebuilt
// through the canonical constructor and any resource key absent from
// the resource registry is deleted from their stock. The mutation is
// synchronous and in place, with no rollback.
func Migrate(state *types.GameState) {
	if state == nil {
		return
	}

	for coord, tile := range state.Tiles {
		if tile == nil || tile.Building == nil {
			continue
		}

		if !registry.HasBuilding(tile.Building.Type) {
			log.Warn("Dropping building of unknown type %q at tile %d", tile.Building.Type, coord)
			tile.Building = nil
			continue
		}

		building, err := NewBuildingFromSave(tile.Building)
		if err != nil {
			// unreachable after the registry check above
			log.Error("Failed to rebuild building at tile %d: %v", coord, err)
			tile.Building = nil
			continue
		}
		tile.Building = building

		for key := range building.Resources {
			if !registry.HasResource(key) {
				log.Warn("Dropping unknown resource %q from building at tile %d", key, coord)
				delete(building.Resources, key)
			}
		}
	}
}
