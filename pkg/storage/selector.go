package storage

import (
	"context"

	"github.com/cbodonnell/gridstead/pkg/log"
)

type SelectStoreOptions struct {
	// NativeDataDir is the directory served by the native file bridge.
	// When set, the file store is selected.
	NativeDataDir string
	// SQLitePath is the embedded database path used otherwise.
	SQLitePath string
}

// SelectStore picks the save backend for this process. The choice is
// made once at startup and is never re-evaluated: a configured native
// data directory means the file bridge is present, otherwise the
// embedded database is used.
func SelectStore(ctx context.Context, opts SelectStoreOptions) (Store, error) {
	if opts.NativeDataDir != "" {
		log.Info("Using file store at %s", opts.NativeDataDir)
		return NewFileStore(opts.NativeDataDir)
	}
	log.Info("Using sqlite store at %s", opts.SQLitePath)
	return NewSQLiteStore(ctx, opts.SQLitePath)
}
