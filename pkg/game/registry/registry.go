package registry

import "sort"

// BuildingDefinition describes a building type.
type BuildingDefinition struct {
	Name     string
	MaxLevel int
	// StartingResources is the resource stock a freshly constructed
	// building of this type begins with
	StartingResources map[string]float64
}

// ResourceDefinition describes a resource type.
type ResourceDefinition struct {
	Name string
	// Cap is the maximum quantity a single building can hold
	Cap float64
}

// The registries are static: they are populated here and consulted
// read-only for the lifetime of the process. The migration pass prunes
// persisted entities against them.
var buildings = map[string]BuildingDefinition{
	"cabin": {
		Name:     "Cabin",
		MaxLevel: 3,
	},
	"farm": {
		Name:              "Farm",
		MaxLevel:          5,
		StartingResources: map[string]float64{"food": 10},
	},
	"sawmill": {
		Name:              "Sawmill",
		MaxLevel:          5,
		StartingResources: map[string]float64{"wood": 5},
	},
	"quarry": {
		Name:     "Quarry",
		MaxLevel: 5,
	},
	"warehouse": {
		Name:     "Warehouse",
		MaxLevel: 4,
	},
	"townhall": {
		Name:     "Town Hall",
		MaxLevel: 1,
	},
}

var resources = map[string]ResourceDefinition{
	"wood":  {Name: "Wood", Cap: 500},
	"stone": {Name: "Stone", Cap: 500},
	"food":  {Name: "Food", Cap: 250},
	"gold":  {Name: "Gold", Cap: 1000},
}

// HasBuilding reports whether the building type is defined.
func HasBuilding(buildingType string) bool {
	_, ok := buildings[buildingType]
	return ok
}

// Building returns the definition for the building type.
func Building(buildingType string) (BuildingDefinition, bool) {
	def, ok := buildings[buildingType]
	return def, ok
}

// HasResource reports whether the resource key is defined.
func HasResource(key string) bool {
	_, ok := resources[key]
	return ok
}

// Resource returns the definition for the resource key.
func Resource(key string) (ResourceDefinition, bool) {
	def, ok := resources[key]
	return def, ok
}

// BuildingTypes returns the defined building type keys in sorted order.
func BuildingTypes() []string {
	keys := make([]string, 0, len(buildings))
	for key := range buildings {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ResourceKeys returns the defined resource keys in sorted order.
func ResourceKeys() []string {
	keys := make([]string, 0, len(resources))
	for key := range resources {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
