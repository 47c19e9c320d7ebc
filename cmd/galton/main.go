package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/galton/audio"
	"github.com/lixenwraith/galton/config"
	"github.com/lixenwraith/galton/core"
	"github.com/lixenwraith/galton/engine"
	"github.com/lixenwraith/galton/galton"
)

var (
	debugFlag     = flag.Bool("debug", false, "Write a debug log to the log directory")
	configDirFlag = flag.String("config", "", "Directory containing galton.toml (default: . and ~/.config/galton)")
	pairsFlag     = flag.Int("pairs", 0, "Bouncer pairs, 0-11 (result bins = 2*pairs+1)")
	particlesFlag = flag.Int("particles", 0, "Particle pool size, 0-255")
	batchFlag     = flag.Int("batch", 0, "Balls dropped per batch")
	seedFlag      = flag.Uint64("seed", 0, "Random seed, 0 seeds from the clock")
	muteFlag      = flag.Bool("mute", false, "Disable sound")
	summaryFlag   = flag.Bool("summary", false, "Print the final distribution as JSON on exit")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the simulation crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()
	os.Exit(run())
}

// flagOverrides maps explicitly set flags to config keys, unset flags leave the file and env values alone
func flagOverrides() map[string]any {
	overrides := make(map[string]any)
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			overrides["log.enabled"] = *debugFlag
			if *debugFlag {
				overrides["log.level"] = "debug"
			}
		case "pairs":
			overrides["board.pairs"] = *pairsFlag
		case "particles":
			overrides["board.maxParticles"] = *particlesFlag
		case "batch":
			overrides["batch.size"] = *batchFlag
		case "seed":
			overrides["board.seed"] = *seedFlag
		case "mute":
			overrides["audio.enabled"] = !*muteFlag
		}
	})
	return overrides
}

func run() int {
	searchPaths := config.DefaultSearchPaths()
	if *configDirFlag != "" {
		searchPaths = []string{*configDirFlag}
	}

	settings, err := config.Load(flagOverrides(), searchPaths...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 2
	}

	logger, logFile, err := setupLogging(settings.Log.Enabled, settings.Log.Dir, settings.LogLevel())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}
	core.SetCrashLogger(logger)

	logger.Info().
		Str("config_file", settings.ConfigFile).
		Int("pairs", settings.Board.BouncerPairs).
		Int("max_particles", settings.Board.MaxParticles).
		Uint64("seed", settings.Seed).
		Msg("starting")

	var opts []galton.Option
	if settings.Seed != 0 {
		opts = append(opts, galton.WithSeed(settings.Seed))
	}
	board, err := galton.NewBoard(settings.Board, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create board: %v\n", err)
		return 1
	}
	defer board.Destroy()

	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	session, err := engine.NewSession(board, settings.Session, clock, engine.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start session: %v\n", err)
		return 1
	}

	// Non-fatal, the board runs without sound
	player, _ := audio.NewPlayer(audio.Config{Enabled: settings.Audio.Enabled, Volume: settings.Audio.Volume}, logger)
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		return 1
	}
	core.SetCrashScreen(screen)

	runErr := newApp(screen, session, clock, player, settings.TickInterval(), logger).run()

	// Normal exit terminal cleanup, before anything is printed
	core.SetCrashScreen(nil)
	screen.Fini()

	if *summaryFlag {
		if err := writeSummary(os.Stdout, newRunSummary(session, runErr)); err != nil {
			logger.Error().Err(err).Msg("summary failed")
		}
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Simulation halted: %v\n", runErr)
		return 1
	}
	logger.Info().Int("batches", session.Batches()).Uint64("ticks", session.Ticks()).Msg("exit")
	return 0
}
