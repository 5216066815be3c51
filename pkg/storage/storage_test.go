package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreContract(t *testing.T) {
	ctx := context.Background()

	stores := map[string]func(t *testing.T) Store{
		"file": func(t *testing.T) Store {
			store, err := NewFileStore(t.TempDir())
			require.NoError(t, err)
			return store
		},
		"sqlite": func(t *testing.T) Store {
			store, err := NewSQLiteStore(ctx, filepath.Join(t.TempDir(), "saves.db"))
			require.NoError(t, err)
			return store
		},
		"memory": func(t *testing.T) Store {
			return NewMemoryStore()
		},
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			store := newStore(t)
			defer store.Close()

			t.Run("read missing key", func(t *testing.T) {
				_, err := store.Read(ctx, "missing")
				assert.True(t, IsNotFound(err))
			})

			t.Run("write and read back", func(t *testing.T) {
				require.NoError(t, store.Write(ctx, "save", `{"current":{}}`))
				value, err := store.Read(ctx, "save")
				require.NoError(t, err)
				assert.Equal(t, `{"current":{}}`, value)
			})

			t.Run("overwrite", func(t *testing.T) {
				require.NoError(t, store.Write(ctx, "save", "first"))
				require.NoError(t, store.Write(ctx, "save", "second"))
				value, err := store.Read(ctx, "save")
				require.NoError(t, err)
				assert.Equal(t, "second", value)
			})

			t.Run("clear", func(t *testing.T) {
				require.NoError(t, store.Write(ctx, "save", "value"))
				require.NoError(t, store.Clear(ctx))
				_, err := store.Read(ctx, "save")
				assert.True(t, IsNotFound(err))
			})
		})
	}
}

func TestSelectStore(t *testing.T) {
	ctx := context.Background()

	t.Run("native data dir selects the file store", func(t *testing.T) {
		store, err := SelectStore(ctx, SelectStoreOptions{
			NativeDataDir: t.TempDir(),
		})
		require.NoError(t, err)
		defer store.Close()
		assert.IsType(t, &FileStore{}, store)
	})

	t.Run("no native data dir selects sqlite", func(t *testing.T) {
		store, err := SelectStore(ctx, SelectStoreOptions{
			SQLitePath: filepath.Join(t.TempDir(), "saves.db"),
		})
		require.NoError(t, err)
		defer store.Close()
		assert.IsType(t, &SQLiteStore{}, store)
	})
}
