package workers

import (
	"context"
	"time"

	"github.com/cbodonnell/gridstead/pkg/state"
)

type AutosaveWorker struct {
	manager  *state.Manager
	saveChan <-chan struct{}
	interval time.Duration
}

type NewAutosaveWorkerOptions struct {
	Manager  *state.Manager
	SaveChan <-chan struct{}
	Interval time.Duration
}

// NewAutosaveWorker creates a new AutosaveWorker.
// The worker periodically saves the game state and processes manual
// save triggers from the debug API.
func NewAutosaveWorker(opts NewAutosaveWorkerOptions) *AutosaveWorker {
	return &AutosaveWorker{
		manager:  opts.Manager,
		saveChan: opts.SaveChan,
		interval: opts.Interval,
	}
}

func (w *AutosaveWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.saveChan:
			w.manager.Save(ctx)
		case <-ticker.C:
			w.manager.Save(ctx)
		}
	}
}
