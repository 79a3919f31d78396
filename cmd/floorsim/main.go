package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/floorsim/audio"
	"github.com/lixenwraith/floorsim/config"
	"github.com/lixenwraith/floorsim/core"
	"github.com/lixenwraith/floorsim/engine"
	"github.com/lixenwraith/floorsim/input"
	"github.com/lixenwraith/floorsim/logging"
	"github.com/lixenwraith/floorsim/render"
)

var (
	configFlag    = flag.String("config", "", "YAML config file")
	sceneFlag     = flag.String("scene", "", "YAML scene file, overrides scene.path")
	debugFlag     = flag.Bool("debug", false, "Force debug log level")
	dumpSceneFlag = flag.Bool("dump-scene", false, "Print the resolved scene as YAML and exit")
)

// errQuit ends the errgroup when the operator quits
var errQuit = errors.New("quit")

func main() {
	// Panic Recovery: Ensure terminal is reset even if the program crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "floorsim: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *sceneFlag != "" {
		cfg.Scene.Path = *sceneFlag
	}
	if *debugFlag {
		cfg.Log.Level = "debug"
	}

	sc, err := loadScene(cfg.Scene.Path)
	if err != nil {
		return err
	}

	if *dumpSceneFlag {
		data, err := sc.Marshal()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	logFile, err := logging.OpenFile(cfg.Log.Dir, time.Now())
	if err != nil {
		return err
	}
	defer logFile.Close()
	log := logging.New(logFile, cfg.Log.Level)

	s, err := buildSim(cfg, sc, log)
	if err != nil {
		log.Error().Err(err).Msg("Simulation setup failed")
		return err
	}

	keys, err := input.ApplyBindings(input.DefaultKeyTable(), cfg.UI.Keys)
	if err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}

	// Non-fatal, the simulation runs silent without a speaker
	var player *audio.Player
	if cfg.Audio.Enabled {
		player = audio.NewPlayer()
		if err := player.Initialize(); err != nil {
			log.Warn().Err(err).Msg("Audio initialization failed, continuing without sound")
			player = nil
		} else {
			s.world.Resources.Audio = &engine.AudioResource{Player: player}
			defer player.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashReset(screen.Fini)
	defer func() {
		core.SetCrashReset(nil)
		screen.Fini()
	}()
	screen.EnableMouse()
	screen.HideCursor()

	renderer := render.NewTerminalRenderer(screen, s.world, s.camera, cfg.UI.PanelWidth)
	translator := input.NewTranslator(s.world, s.camera, keys, s.spawned.Targets, s.world.Logger("input"))
	translator.SetLayout(renderer.Layout())
	if player != nil {
		translator.SetMuter(player)
	}

	log.Info().
		Str("scene", sc.Name).
		Int("tickRate", cfg.Sim.TickRate).
		Bool("audio", player != nil).
		Msg("Simulation started")

	err = loop(screen, s.world, renderer, translator, cfg.Sim.TickRate, log)
	if err != nil && !errors.Is(err, errQuit) {
		log.Error().Err(err).Msg("Simulation stopped with error")
		return err
	}
	log.Info().Uint64("frames", renderer.Frames()).Msg("Simulation stopped")
	return nil
}

// loop runs input, simulation and render goroutines until quit or failure
func loop(screen tcell.Screen, world *engine.World, renderer *render.TerminalRenderer, translator *input.Translator, tickRate int, log zerolog.Logger) error {
	g, ctx := errgroup.WithContext(context.Background())

	scheduler := engine.NewClockScheduler(world, time.Second/time.Duration(tickRate))
	g.Go(guarded(func() error {
		return scheduler.Run(ctx)
	}))

	g.Go(guarded(func() error {
		return renderer.Run(ctx)
	}))

	// PollEvent blocks; an interrupt wakes it when another goroutine fails
	g.Go(func() error {
		<-ctx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})

	g.Go(guarded(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return errQuit
			}
			switch translator.Handle(ev) {
			case input.ResultQuit:
				log.Debug().Msg("Quit requested")
				return errQuit
			case input.ResultResize:
				translator.SetLayout(renderer.Layout())
				screen.Sync()
			}
		}
	}))

	return g.Wait()
}

// guarded routes goroutine panics through the crash handler so the terminal is restored
func guarded(fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()
		return fn()
	}
}
