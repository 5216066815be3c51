package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/gridstead/pkg/api/handlers"
	"github.com/cbodonnell/gridstead/pkg/log"
	"github.com/cbodonnell/gridstead/pkg/state"
	"github.com/gorilla/mux"
)

// DebugServer exposes development-only hooks into the live game state.
// It is not part of the production contract and must not be reachable
// in release builds.
type DebugServer struct {
	server *http.Server
}

type NewDebugServerOptions struct {
	Port     int
	Manager  *state.Manager
	SaveChan chan<- struct{}
}

// NewDebugServer creates a new http.Server for the debug hooks.
func NewDebugServer(opts NewDebugServerOptions) *DebugServer {
	r := mux.NewRouter()
	r.HandleFunc("/debug/state", handlers.HandleGetState(opts.Manager)).Methods(http.MethodGet)
	r.HandleFunc("/debug/save", handlers.HandleTriggerSave(opts.SaveChan)).Methods(http.MethodPost)
	r.HandleFunc("/debug/wipe", handlers.HandleWipe(opts.Manager)).Methods(http.MethodPost)
	r.HandleFunc("/debug/resources/clear", handlers.HandleClearResources(opts.Manager)).Methods(http.MethodPost)
	r.HandleFunc("/debug/registry", handlers.HandleGetRegistry()).Methods(http.MethodGet)
	r.HandleFunc("/debug/export", handlers.HandleExport(opts.Manager)).Methods(http.MethodGet)
	r.HandleFunc("/debug/import", handlers.HandleImport(opts.Manager)).Methods(http.MethodPost)
	r.HandleFunc("/debug/watch", handlers.HandleWatch(opts.Manager)).Methods(http.MethodGet)

	server := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", opts.Port),
		Handler: r,
	}
	return &DebugServer{
		server: server,
	}
}

// Start starts the DebugServer
func (s *DebugServer) Start() {
	log.Info("Debug server listening on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("Debug server closed")
			return
		}
		log.Error("Debug server error: %v", err)
	}
}

// Stop stops the DebugServer
func (s *DebugServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
