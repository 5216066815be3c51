package types

// GameState is the canonical simulation snapshot: a mapping from grid
// coordinate to tile. Exactly one live instance exists per process,
// owned by the state manager.
type GameState struct {
	// Tiles maps grid coordinates to tiles
	Tiles map[int]*Tile `json:"tiles"`
}

func NewGameState() *GameState {
	return &GameState{
		Tiles: make(map[int]*Tile),
	}
}

// Copy returns a copy of the game state that shares nothing with the
// receiver, so observers cannot mutate the canonical state through it.
func (g *GameState) Copy() *GameState {
	newGameState := NewGameState()
	for coord, tile := range g.Tiles {
		newGameState.Tiles[coord] = tile.Copy()
	}
	return newGameState
}

func (g *GameState) SetTile(coord int, tile *Tile) {
	g.Tiles[coord] = tile
}

func (g *GameState) Tile(coord int) *Tile {
	return g.Tiles[coord]
}

// SavedGame is the persistence envelope bundling the game state and
// options together. It is the unit of serialization and the unit of
// compatibility comparison.
type SavedGame struct {
	Current *GameState   `json:"current"`
	Options *GameOptions `json:"options"`
}
