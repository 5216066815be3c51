package state

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cbodonnell/gridstead/pkg/game"
	"github.com/cbodonnell/gridstead/pkg/log"
	"github.com/klauspost/compress/zstd"
)

// Export writes a zstd-compressed copy of the save envelope to w.
// Debug tooling uses it to pull a save off a running process.
func (m *Manager) Export(w io.Writer) error {
	m.lock.RLock()
	value, err := encodeEnvelope(m.saved)
	m.lock.RUnlock()
	if err != nil {
		return err
	}

	compWriter, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write([]byte(value)); err != nil {
		return fmt.Errorf("failed to compress save: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return fmt.Errorf("failed to close zstd writer: %v", err)
	}
	return nil
}

// Import reads a zstd-compressed envelope from r, migrates it, and
// merges it into the live state the same way a successful load does.
// The compatibility gate is deliberately skipped: importing is a
// development action and the operator is trusted to know the format.
func (m *Manager) Import(r io.Reader) error {
	compReader, err := zstd.NewReader(r)
	if err != nil {
		return fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()

	b, err := io.ReadAll(compReader)
	if err != nil {
		return fmt.Errorf("failed to read compressed save: %v", err)
	}

	loaded, err := decodeEnvelope(string(b))
	if err != nil {
		return &ErrCorruptSave{Err: err}
	}

	game.Migrate(loaded.Saved.Current)

	m.lock.Lock()
	if loaded.Saved.Current != nil {
		for coord, tile := range loaded.Saved.Current.Tiles {
			m.saved.Current.Tiles[coord] = tile
		}
	}
	if len(loaded.rawOptions) > 0 {
		if err := json.Unmarshal(loaded.rawOptions, m.saved.Options); err != nil {
			log.Error("Failed to merge imported options: %v", err)
		}
	}
	m.lock.Unlock()

	m.NotifyUpdate()
	return nil
}
