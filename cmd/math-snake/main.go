package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/math-snake/audio"
	"github.com/lixenwraith/math-snake/config"
	"github.com/lixenwraith/math-snake/core"
	"github.com/lixenwraith/math-snake/engine"
)

var (
	envFlag   = flag.String("env", config.DefaultEnvFile, "Settings file in .env format")
	seedFlag  = flag.Uint64("seed", 0, "Random seed, 0 uses the configured or a time-based seed")
	speedFlag = flag.Int("speed", 0, "Initial speed 1-5, 0 uses the configured speed")
	debugFlag = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "math-snake: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*envFlag)
	if err != nil {
		return err
	}
	if *speedFlag != 0 {
		cfg.Engine.DefaultSpeed = *speedFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("seed %d, grid %dx%d, speed %d", seed, cfg.Engine.Grid.Width, cfg.Engine.Grid.Height, cfg.Engine.DefaultSpeed)

	// Separate streams so cosmetic particles never perturb the game sequence for a seed
	gameRng := rand.New(rand.NewSource(seed))
	fxRng := rand.New(rand.NewSource(seed ^ 0x9e3779b97f4a7c15))

	eng, err := engine.New(cfg.Engine, gameRng, engine.WithLogger(log.Default()))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Panic Recovery: ensure the terminal is restored even if the game crashes
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()

	sound := audio.NewSoundManager(cfg.Audio, log.Default())
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("audio unavailable: %v", err)
	}
	defer sound.Cleanup()

	return newGame(screen, eng, fxRng, sound, log.Default()).run()
}
