// internal/state/game_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-sky-chase/internal/app"
	"go-sky-chase/internal/assets"
	"go-sky-chase/internal/config"
	"go-sky-chase/internal/defs"
	"go-sky-chase/internal/event"
	"go-sky-chase/internal/input"
	"go-sky-chase/internal/system"
	"go-sky-chase/internal/ui"
	"go-sky-chase/internal/utils"
)

// GameState runs the actual game: it polls input, steps the controller and
// draws the frame.
type GameState struct {
	sm          *StateMachine
	game        *app.Game
	render      *system.RenderSystem
	hud         *ui.HUD
	backgrounds *assets.Backgrounds
}

func NewGameState(sm *StateMachine, cfg config.Config, levels []defs.LevelDefinition,
	drops []defs.CoinDropEntry, face, small font.Face) *GameState {
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(0)

	backgrounds := assets.LoadBackgrounds(cfg.Assets.BackgroundDir,
		cfg.Screen.Width, cfg.Screen.Height, levels)
	dispatcher.Subscribe(event.LevelAdvanced, backgrounds)
	dispatcher.Subscribe(event.GameReset, backgrounds)

	return &GameState{
		sm:          sm,
		game:        app.NewGame(cfg, levels, drops, rng, dispatcher),
		render:      system.NewRenderSystem(cfg),
		hud:         ui.NewHUD(cfg, face, small),
		backgrounds: backgrounds,
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) error {
	g.game.Update(deltaTime, input.Poll())
	if g.game.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the playfield, or only the game-over view once the
// controller has left PLAYING.
func (g *GameState) Draw(screen *ebiten.Image) {
	if g.game.Phase() == app.GameOver {
		screen.Fill(color.RGBA{0, 0, 0, 255})
		g.hud.Draw(screen, g.game)
		return
	}

	g.backgrounds.Draw(screen)
	g.render.Draw(screen, g.game)
	g.hud.Draw(screen, g.game)
}

func (g *GameState) Exit() {}
