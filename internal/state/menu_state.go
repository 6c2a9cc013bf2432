// internal/state/menu_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-sky-chase/internal/config"
	"go-sky-chase/internal/defs"
)

// MenuState is the title screen. Click or press Space to start.
type MenuState struct {
	sm     *StateMachine
	cfg    config.Config
	levels []defs.LevelDefinition
	drops  []defs.CoinDropEntry
	face   font.Face
	small  font.Face
}

func NewMenuState(sm *StateMachine, cfg config.Config, levels []defs.LevelDefinition,
	drops []defs.CoinDropEntry, face, small font.Face) *MenuState {
	return &MenuState{sm: sm, cfg: cfg, levels: levels, drops: drops, face: face, small: small}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(NewGameState(m.sm, m.cfg, m.levels, m.drops, m.face, m.small))
	}
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	cx := m.cfg.Screen.Width / 2
	cy := m.cfg.Screen.Height / 2
	drawCentered(screen, m.cfg.Screen.Title, m.face, cx, cy-20, config.TextColor)
	drawCentered(screen, "Click or press Space to start", m.small, cx, cy+20, config.HintColor)
}

func (m *MenuState) Exit() {}

func drawCentered(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, x-bounds.Dx()/2, y, clr)
}
