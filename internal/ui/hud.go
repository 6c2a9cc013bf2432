// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-sky-chase/internal/app"
	"go-sky-chase/internal/config"
)

// HUD draws the score overlay during play and the game-over view.
type HUD struct {
	cfg   config.Config
	face  font.Face
	small font.Face
}

func NewHUD(cfg config.Config, face, small font.Face) *HUD {
	return &HUD{cfg: cfg, face: face, small: small}
}

// Draw renders either the in-game overlay or the game-over screen,
// depending on the controller phase.
func (h *HUD) Draw(screen *ebiten.Image, g *app.Game) {
	if g.Phase() == app.GameOver {
		h.drawGameOver(screen, g)
		return
	}

	text.Draw(screen, fmt.Sprintf("Score: %d", g.Score()), h.face, 10, 30, config.TextColor)
	text.Draw(screen, fmt.Sprintf("Level: %d", g.Level()), h.face, 10, 60, config.TextColor)
	text.Draw(screen, fmt.Sprintf("Kills: %d/%d", g.KillsThisLevel(), g.KillsToAdvance()),
		h.small, 10, 85, config.HintColor)
	text.Draw(screen, "Move with the mouse - left click to shoot",
		h.small, 10, 110, config.HintColor)
}

func (h *HUD) drawGameOver(screen *ebiten.Image, g *app.Game) {
	cx := h.cfg.Screen.Width / 2
	cy := h.cfg.Screen.Height / 2

	h.drawCentered(screen, "GAME OVER", h.face, cx, cy, config.GameOverColor)
	h.drawCentered(screen, fmt.Sprintf("Final score: %d", g.Score()), h.face, cx, cy+40, config.TextColor)
	h.drawCentered(screen, "Press R to restart", h.small, cx, cy+75, config.HintColor)
}

// drawCentered places the string's horizontal center at x, baseline at y.
func (h *HUD) drawCentered(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, x-bounds.Dx()/2, y, clr)
}
