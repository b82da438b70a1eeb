// cmd/game/main.go
package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"go-node-defense/internal/app"
	"go-node-defense/internal/config"
	"go-node-defense/internal/defs"
	"go-node-defense/internal/state"
	"go-node-defense/pkg/logger"
)

const startFromGame = false // true — начинать с игры, false — с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Log.Debug("no .env file, using process environment")
	}
	logger.Init()
	log := logger.Component("main")

	cfg, err := config.Load("")
	if err != nil {
		log.WithError(err).Fatal("failed to load simulation config")
	}
	catalog, err := loadCatalog(cfg.Catalog)
	if err != nil {
		log.WithError(err).Fatal("failed to load catalog")
	}
	game, err := app.NewGame(catalog, cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to create game")
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if startFromGame {
		sm.SetState(state.NewGameState(sm, game))
	} else {
		sm.SetState(state.NewMenuState(sm, game))
	}
	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Node Defense")
	log.WithField("nodes", len(catalog.Nodes)).Info("starting")
	if err := ebiten.RunGame(appGame); err != nil {
		log.WithError(err).Fatal("game loop stopped")
	}
}

func loadCatalog(path string) (*defs.Catalog, error) {
	if path == "" {
		return defs.DefaultCatalog()
	}
	return defs.LoadCatalog(path)
}
