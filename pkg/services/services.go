package services

import (
	"errors"
	"sync"

	"github.com/cbodonnell/gridstead/pkg/game/types"
	"github.com/cbodonnell/gridstead/pkg/log"
)

// SceneManager switches the UI between top-level scenes.
type SceneManager interface {
	SetScene(name string) error
}

// Grid exposes the simulation grid's dimensions.
type Grid interface {
	Width() int
	Height() int
}

// NavigateFunc routes the UI to a component with the given props.
// Components that block on user input receive a continue callback in
// their props and invoke it on confirmation.
type NavigateFunc func(component string, props map[string]interface{})

// SoundPlayer plays a named sound cue.
type SoundPlayer interface {
	Play(cue string)
}

// Services bundles the cross-cutting handles the subsystem needs from
// the rest of the application. Prefer passing it down explicitly; the
// package-level default exists for call sites that cannot thread it.
type Services struct {
	Scenes   SceneManager
	Grid     Grid
	Navigate NavigateFunc
	Sound    SoundPlayer
	// TownHall is the special building every settlement starts with
	TownHall *types.Building
}

var (
	lock            sync.RWMutex
	defaultServices *Services
)

// Initialize sets the process-wide services. It is meant to be called
// exactly once at startup; a second call logs a warning and overwrites
// so hot-reload development flows don't crash.
func Initialize(s *Services) {
	lock.Lock()
	defer lock.Unlock()
	if defaultServices != nil {
		log.Warn("Services already initialized, overwriting")
	}
	defaultServices = s
}

// Default returns the process-wide services. Calling it before
// Initialize is an initialization-order bug and returns
// ErrNotInitialized.
func Default() (*Services, error) {
	lock.RLock()
	defer lock.RUnlock()
	if defaultServices == nil {
		return nil, &ErrNotInitialized{}
	}
	return defaultServices, nil
}

// IsReady reports whether Initialize has been called.
func IsReady() bool {
	lock.RLock()
	defer lock.RUnlock()
	return defaultServices != nil
}

type ErrNotInitialized struct {
}

func (e *ErrNotInitialized) Error() string {
	return "services not initialized: call services.Initialize before services.Default"
}

func IsNotInitialized(err error) bool {
	var notInitialized *ErrNotInitialized
	return errors.As(err, &notInitialized)
}
