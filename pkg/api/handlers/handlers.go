package handlers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/cbodonnell/gridstead/pkg/game/registry"
	"github.com/cbodonnell/gridstead/pkg/game/types"
	"github.com/cbodonnell/gridstead/pkg/log"
	"github.com/cbodonnell/gridstead/pkg/state"
	"nhooyr.io/websocket"
)

func HandleGetState(manager *state.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(manager.Snapshot()); err != nil {
			log.Error("failed to encode state: %v", err)
			http.Error(w, "Failed to encode state", http.StatusInternalServerError)
			return
		}
	}
}

func HandleTriggerSave(saveChan chan<- struct{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		select {
		case saveChan <- struct{}{}:
			w.WriteHeader(http.StatusAccepted)
		default:
			http.Error(w, "Save already pending", http.StatusConflict)
		}
	}
}

func HandleWipe(manager *state.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := manager.Wipe(r.Context()); err != nil {
			log.Error("failed to wipe saved game: %v", err)
			http.Error(w, "Failed to wipe saved game", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func HandleClearResources(manager *state.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		manager.ClearResources()
		w.WriteHeader(http.StatusNoContent)
	}
}

func HandleGetRegistry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string][]string{
			"buildings": registry.BuildingTypes(),
			"resources": registry.ResourceKeys(),
		}); err != nil {
			log.Error("failed to encode registry: %v", err)
			http.Error(w, "Failed to encode registry", http.StatusInternalServerError)
			return
		}
	}
}

func HandleExport(manager *state.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/zstd")
		w.Header().Set("Content-Disposition", `attachment; filename="gridstead.sav.zst"`)
		if err := manager.Export(w); err != nil {
			log.Error("failed to export save: %v", err)
			http.Error(w, "Failed to export save", http.StatusInternalServerError)
			return
		}
	}
}

func HandleImport(manager *state.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := manager.Import(r.Body); err != nil {
			log.Error("failed to import save: %v", err)
			http.Error(w, "Failed to import save", http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleWatch streams state snapshots over a websocket, one JSON
// message per state-change notification, starting with the current
// state.
func HandleWatch(manager *state.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			log.Error("failed to upgrade to websocket: %v", err)
			return
		}
		defer conn.Close(websocket.StatusInternalError, "closed")

		ctx := r.Context()

		// state emissions can overlap the initial delivery, so writes
		// are serialized
		var writeLock sync.Mutex
		cancel := manager.Watch(func(s *types.GameState) {
			b, err := json.Marshal(s)
			if err != nil {
				log.Error("failed to marshal state snapshot: %v", err)
				return
			}
			writeLock.Lock()
			defer writeLock.Unlock()
			if err := conn.Write(ctx, websocket.MessageText, b); err != nil {
				log.Debug("failed to write state snapshot: %v", err)
			}
		})
		defer cancel()

		// hold the subscription until the client goes away
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				log.Trace("watch connection closed: %v", err)
				return
			}
		}
	}
}
