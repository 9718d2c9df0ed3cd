package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/abey79/rusteroid/audio"
	"github.com/abey79/rusteroid/config"
	"github.com/abey79/rusteroid/core"
	"github.com/abey79/rusteroid/engine"
	"github.com/abey79/rusteroid/event"
	"github.com/abey79/rusteroid/export"
	"github.com/abey79/rusteroid/parameter"
	"github.com/abey79/rusteroid/render"
	"github.com/abey79/rusteroid/system"
)

// App ties the world, its scheduler and the terminal together
type App struct {
	world     *engine.World
	scheduler *engine.ClockScheduler
	tickDone  <-chan struct{}
	screen    tcell.Screen
	renderer  *render.Renderer
	exporter  *export.Exporter
	player    *audio.Player
	log       *zap.Logger

	heading float64
	message string
}

// ProvideWorld builds the world from cfg with every gameplay system installed
func ProvideWorld(cfg *config.Config, logger *zap.Logger) (*engine.World, error) {
	registry, err := cfg.Registry()
	if err != nil {
		return nil, fmt.Errorf("generator registry: %w", err)
	}

	world := engine.NewWorld()
	world.Resources.Config = cfg.Resource()
	world.Resources.Rand = core.NewRandSource(cfg.Seed)
	world.Resources.Generators = registry
	world.Resources.Log = logger

	system.Install(world)
	return world, nil
}

// ProvideAudio starts the sound player and attaches it to the world
// Audio failures are logged and the game continues silent, signalled by a nil player
func ProvideAudio(cfg *config.Config, world *engine.World, logger *zap.Logger) *audio.Player {
	if !cfg.Audio.Enabled {
		return nil
	}
	player := audio.NewPlayer(parameter.AudioSampleRate, cfg.Audio.Volume,
		world.Resources.Rand.Stream(parameter.AudioStreamKey))
	if err := player.Start(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
		return nil
	}
	world.Resources.Audio = &engine.AudioResource{Player: player}
	return player
}

// ProvideExporter creates the SVG exporter for the configured directory
func ProvideExporter(cfg *config.Config) *export.Exporter {
	return export.NewExporter(cfg.Export.Dir, cfg.Export.StrokeWidth)
}

// NewApp assembles the application; the scheduler is created stopped
func NewApp(
	cfg *config.Config,
	logger *zap.Logger,
	screen tcell.Screen,
	world *engine.World,
	renderer *render.Renderer,
	exporter *export.Exporter,
	player *audio.Player,
) *App {
	scheduler, tickDone := engine.NewClockScheduler(world, cfg.TickRate)
	return &App{
		world:     world,
		scheduler: scheduler,
		tickDone:  tickDone,
		screen:    screen,
		renderer:  renderer,
		exporter:  exporter,
		player:    player,
		log:       logger,
	}
}

// Run drives the scheduler and the frame loop until the player quits
func (a *App) Run() {
	a.scheduler.Start()
	defer a.scheduler.Stop()

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 256)
	done := make(chan struct{})
	defer close(done)
	core.Go(func() { a.pollEvents(eventChan, done) })

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !a.HandleEvent(ev) {
				return
			}

		case <-a.tickDone:

		case <-frameTicker.C:
			a.renderFrame()
		}
	}
}

// pollEvents forwards terminal events until the screen is finalized or done is closed
func (a *App) pollEvents(out chan<- tcell.Event, done <-chan struct{}) {
	defer close(out)
	for {
		ev := a.screen.PollEvent()
		// Nil after Fini
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// Close stops the scheduler and releases the audio device
func (a *App) Close() {
	a.scheduler.Stop()
	if a.player != nil {
		a.player.Stop()
	}
}

// HandleEvent applies one terminal event and reports whether the app keeps running
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		a.screen.Sync()
		a.renderer.Resize()
	}
	return true
}

func (a *App) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		a.heading += parameter.TurretStep
	case tcell.KeyRight:
		a.heading -= parameter.TurretStep
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case ' ':
			a.fire()
		case 'e':
			a.export()
		case 'r':
			a.restart()
		case 'p':
			paused := !a.scheduler.Paused()
			a.scheduler.SetPaused(paused)
			a.message = ""
			if paused {
				a.message = "paused"
			}
		}
	}
	return true
}

// restart empties the field; the seed system brings a new asteroid on the next tick
func (a *App) restart() {
	a.world.RunSafe(a.world.Clear)
	a.log.Info("field cleared")
	a.message = "restarted"
}

// fire queues a shot from the turret at the field center
func (a *App) fire() {
	a.world.Resources.Event.Fire.Push(event.FireRequest{Heading: a.heading})
}

func (a *App) export() {
	path, err := a.exporter.Export(a.world)
	if err != nil {
		a.log.Error("export failed", zap.Error(err))
		a.message = "export failed"
		return
	}
	a.log.Info("frame exported", zap.String("path", path))
	a.message = "saved " + path
}

func (a *App) renderFrame() {
	var (
		scene engine.Scene
		hud   render.HUD
	)
	a.world.RunSafe(func() {
		scene = engine.CollectScene(a.world)
		hud.Asteroids = a.world.Components.Asteroid.CountEntities()
		hud.Kills = a.world.Resources.Stats.Kills
	})
	hud.Heading = a.heading
	hud.Message = a.message
	a.renderer.RenderFrame(scene, hud)
}
