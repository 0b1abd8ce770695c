package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"chosenoffset.com/sightcone/internal/game"
	"chosenoffset.com/sightcone/internal/logger"
	ebitenrender "chosenoffset.com/sightcone/internal/render/ebiten"
	"chosenoffset.com/sightcone/internal/simulation"
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		logger.Log.Fatal(err)
	}
}

// run returns instead of exiting so deferred cleanup always happens
func run() error {
	if err := logger.Init(*logLevelFlag); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}
	log := logger.Component("main")

	if *listFlag {
		return listScenes(filepath.Dir(*configFlag))
	}

	if _, err := os.Stat(*configFlag); errors.Is(err, os.ErrNotExist) {
		log.WithField("path", *configFlag).Warn("config not found, using built-in scene")
	}
	cfg, err := simulation.LoadConfig(*configFlag)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if *fovDegreesFlag > 0 {
		cfg.Perception.ViewAngle = *fovDegreesFlag
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g, err := game.NewGame(cfg, renderer, inputMgr, *debugFlag)
	if err != nil {
		return fmt.Errorf("failed to create scene: %w", err)
	}
	defer g.Close()

	// Set up the window
	engine.SetWindowSize(g.ScreenWidth, g.ScreenHeight)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)
	engine.SetTPS(g.TPS)

	log.WithField("config", *configFlag).Info("starting")
	return engine.RunGame(g)
}

func listScenes(dataDir string) error {
	scenes, err := simulation.ScanScenes(dataDir)
	if err != nil {
		return err
	}
	for _, s := range scenes {
		fmt.Printf("%-16s %s\n", s.Name, s.Path)
	}
	return nil
}
