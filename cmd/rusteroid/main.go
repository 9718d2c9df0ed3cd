package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abey79/rusteroid/config"
	"github.com/abey79/rusteroid/core"
	"github.com/abey79/rusteroid/logging"
)

var (
	configFlag    = flag.String("config", "", "Path to a YAML config file")
	seedFlag      = flag.Uint64("seed", 0, "Random seed, 0 picks one from the clock")
	debugFlag     = flag.Bool("debug", false, "Enable debug logging")
	exportDirFlag = flag.String("export-dir", "", "Directory for SVG snapshots")
	noAudioFlag   = flag.Bool("no-audio", false, "Disable sound")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	runID := uuid.New()
	logger, logFile, err := logging.New(cfg.Log, runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v (continuing without log)\n", err)
		logger = zap.NewNop()
	}
	defer func() {
		_ = logger.Sync()
		if logFile != nil {
			logFile.Close()
		}
	}()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing the report
	core.SetCrashReset(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mRUSTEROID CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	app, err := InitializeApp(cfg, logger, screen)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	logger.Info("session started",
		zap.Uint64("seed", app.world.Resources.Rand.Seed()),
		zap.Strings("generators", app.world.Resources.Generators.Names()))

	app.Run()
}

// applyFlags overrides file settings with explicit command-line values
func applyFlags(cfg *config.Config) {
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *debugFlag {
		cfg.Log.Enabled = true
		cfg.Log.Level = "debug"
	}
	if *exportDirFlag != "" {
		cfg.Export.Dir = *exportDirFlag
	}
	if *noAudioFlag {
		cfg.Audio.Enabled = false
	}
}
