// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-sky-chase/internal/assets"
	"go-sky-chase/internal/config"
	"go-sky-chase/internal/defs"
	"go-sky-chase/internal/state"
)

const configPath = "skychase.yaml"

// AppGame adapts the state machine to ebiten's run loop. The delta time is
// measured from the wall clock and clamped so simulation speed stays
// decoupled from the frame rate.
type AppGame struct {
	stateMachine   *state.StateMachine
	cfg            config.Config
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Screen.Width, a.cfg.Screen.Height
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("warning: %v; running with defaults", err)
	}

	levels, err := defs.LoadLevelDefinitions(cfg.Assets.LevelDefs)
	if err != nil {
		log.Printf("warning: %v; using built-in levels", err)
		levels = defs.DefaultLevels()
	}
	drops, err := defs.LoadCoinDrops(cfg.Assets.CoinDefs)
	if err != nil {
		log.Printf("warning: %v; using built-in coin drops", err)
		drops = defs.DefaultCoinDrops()
	}

	face := assets.LoadFace(cfg.Assets.FontPath, cfg.Assets.FontSize)
	small := assets.LoadFace(cfg.Assets.FontPath, cfg.Assets.FontSize*0.72)

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, cfg, levels, drops, face, small))

	app := &AppGame{
		stateMachine:   sm,
		cfg:            cfg,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
