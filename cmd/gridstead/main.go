package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/gridstead/pkg/api"
	"github.com/cbodonnell/gridstead/pkg/log"
	"github.com/cbodonnell/gridstead/pkg/services"
	"github.com/cbodonnell/gridstead/pkg/state"
	"github.com/cbodonnell/gridstead/pkg/storage"
	"github.com/cbodonnell/gridstead/pkg/version"
	"github.com/cbodonnell/gridstead/pkg/workers"
)

// logSound stands in for the real sound system, which lives in the UI
// layer.
type logSound struct{}

func (logSound) Play(cue string) {
	log.Debug("Playing sound cue %q", cue)
}

type logScenes struct{}

func (logScenes) SetScene(name string) error {
	log.Info("Scene set to %s", name)
	return nil
}

type fixedGrid struct {
	width  int
	height int
}

func (g fixedGrid) Width() int {
	return g.width
}

func (g fixedGrid) Height() int {
	return g.height
}

// consoleNavigate renders routed components on the terminal. The
// incompatible-save interstitial blocks on enter before invoking its
// continue callback.
func consoleNavigate(component string, props map[string]interface{}) {
	switch component {
	case state.IncompatibleSaveComponent:
		fmt.Printf("Saved game version %v is incompatible with this build (%v).\n", props["savedVersion"], props["buildVersion"])
		fmt.Print("Press enter to wipe the save and continue: ")
		go func() {
			if _, err := bufio.NewReader(os.Stdin).ReadString('\n'); err != nil {
				log.Error("Failed to read confirmation: %v", err)
				return
			}
			if cont, ok := props["continue"].(func()); ok {
				cont()
			}
		}()
	default:
		log.Warn("No console rendering for component %s", component)
	}
}

func main() {
	logLevel := flag.String("log-level", "info", "Log level")
	dataDir := flag.String("data-dir", "", "Native file bridge data directory (selects the file store when set)")
	sqlitePath := flag.String("sqlite-path", "gridstead.db", "Embedded database path")
	autosaveInterval := flag.Duration("autosave-interval", 30*time.Second, "Autosave interval")
	debugPort := flag.Int("debug-port", 0, "Debug server port (0 disables the debug server)")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting gridstead version %s", version.Get())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.SelectStore(ctx, storage.SelectStoreOptions{
		NativeDataDir: *dataDir,
		SQLitePath:    *sqlitePath,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to open save store: %v", err))
	}
	defer store.Close()

	sound := logSound{}
	manager := state.NewManager(state.NewManagerOptions{
		Store: store,
		Sound: sound,
	})

	services.Initialize(&services.Services{
		Scenes:   logScenes{},
		Grid:     fixedGrid{width: 32, height: 32},
		Navigate: consoleNavigate,
		Sound:    sound,
	})

	loaded, err := manager.Load(ctx)
	if err != nil {
		if !state.IsCorruptSave(err) {
			panic(fmt.Sprintf("Failed to load saved game: %v", err))
		}
		// a corrupt save must not crash startup
		log.Error("Saved game is corrupt, starting fresh: %v", err)
	}
	if loaded != nil {
		ok, err := manager.CheckCompatibility(ctx, loaded, consoleNavigate)
		if err != nil {
			log.Error("Compatibility check aborted: %v", err)
			return
		}
		if !ok {
			if err := manager.Wipe(ctx); err != nil {
				log.Error("Failed to wipe saved game: %v", err)
			}
			log.Info("Continuing with a fresh game")
		}
	}

	saveChan := make(chan struct{}, 1)
	autosaveWorker := workers.NewAutosaveWorker(workers.NewAutosaveWorkerOptions{
		Manager:  manager,
		SaveChan: saveChan,
		Interval: *autosaveInterval,
	})
	go autosaveWorker.Start(ctx)

	if *debugPort > 0 {
		debugServer := api.NewDebugServer(api.NewDebugServerOptions{
			Port:     *debugPort,
			Manager:  manager,
			SaveChan: saveChan,
		})
		go debugServer.Start()
		defer debugServer.Stop(context.Background())
	}

	<-ctx.Done()
	log.Info("Shutting down")
	manager.Save(context.Background())
}
