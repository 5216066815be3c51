package state

import (
	"encoding/json"
	"fmt"

	"github.com/cbodonnell/gridstead/pkg/game/types"
)

// SaveKey is the single fixed key the whole save envelope is stored
// under. There is no sub-keying and no incremental diffing.
const SaveKey = "gridstead-save"

type envelope struct {
	Current *types.GameState `json:"current"`
	Options json.RawMessage  `json:"options"`
}

// Loaded is a decoded save envelope. The raw option bytes are kept so
// the merge on a successful compatibility check can assign only the
// fields actually present in the save, leaving live-only fields
// untouched.
type Loaded struct {
	Saved      *types.SavedGame
	rawOptions json.RawMessage
}

func encodeEnvelope(saved *types.SavedGame) (string, error) {
	b, err := json.Marshal(saved)
	if err != nil {
		return "", fmt.Errorf("failed to marshal save envelope: %v", err)
	}
	return string(b), nil
}

func decodeEnvelope(value string) (*Loaded, error) {
	var env envelope
	if err := json.Unmarshal([]byte(value), &env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal save envelope: %v", err)
	}

	options := &types.GameOptions{}
	if len(env.Options) > 0 {
		if err := json.Unmarshal(env.Options, options); err != nil {
			return nil, fmt.Errorf("failed to unmarshal save options: %v", err)
		}
	}

	return &Loaded{
		Saved: &types.SavedGame{
			Current: env.Current,
			Options: options,
		},
		rawOptions: env.Options,
	}, nil
}
