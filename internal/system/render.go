// internal/system/render.go
package system

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-sky-chase/internal/app"
	"go-sky-chase/internal/config"
	"go-sky-chase/internal/defs"
	"go-sky-chase/internal/entity"
)

// coinColors matches the original palette: one color per upgrade kind.
var coinColors = map[defs.CoinKind]color.RGBA{
	defs.CoinSpeed:    {0, 255, 0, 255},
	defs.CoinDamage:   {255, 0, 0, 255},
	defs.CoinFireRate: {0, 100, 255, 255},
	defs.CoinPoints:   {255, 215, 0, 255},
}

// RenderSystem draws the live entities. It owns no pixel buffer; it only
// issues draw calls against the screen ebiten hands it.
type RenderSystem struct {
	cfg config.Config
}

func NewRenderSystem(cfg config.Config) *RenderSystem {
	return &RenderSystem{cfg: cfg}
}

// Draw renders coins below, then projectiles, then the two avatars.
func (s *RenderSystem) Draw(screen *ebiten.Image, g *app.Game) {
	for _, c := range g.Coins() {
		s.drawCoin(screen, c)
	}

	for _, p := range g.Projectiles() {
		if p.Active() {
			vector.DrawFilledCircle(screen, float32(p.Position().X), float32(p.Position().Y),
				float32(p.Radius()), config.ProjectileColor, true)
		}
	}

	s.drawEnemy(screen, g.Enemy())
	s.drawPlayer(screen, g.Player())
}

func (s *RenderSystem) drawPlayer(screen *ebiten.Image, p *entity.Player) {
	if !p.Active() {
		return
	}
	x, y := float32(p.Position().X), float32(p.Position().Y)
	r := float32(p.Radius())
	vector.DrawFilledCircle(screen, x, y, r+2, config.PlayerStroke, true)
	vector.DrawFilledCircle(screen, x, y, r, config.PlayerColor, true)

	// Nose marker showing the fire direction.
	nose := p.Position().Add(p.Facing().Scale(p.Radius() * 0.8))
	vector.DrawFilledCircle(screen, float32(nose.X), float32(nose.Y), r*0.25, config.PlayerStroke, true)
}

func (s *RenderSystem) drawEnemy(screen *ebiten.Image, e *entity.Enemy) {
	if !e.Active() {
		return
	}
	x, y := float32(e.Position().X), float32(e.Position().Y)
	body := config.EnemyColor
	if e.Invulnerable() {
		body = config.EnemyGraceColor
	}
	vector.DrawFilledCircle(screen, x, y, float32(e.Radius()), body, true)

	// Shrinking inner core tracks the remaining hit points.
	if e.MaxHP() > 0 {
		frac := float32(e.HP()) / float32(e.MaxHP())
		core := float32(e.Radius()) * (0.3 + 0.5*frac)
		vector.DrawFilledCircle(screen, x, y, core, color.RGBA{120, 0, 0, 255}, true)
	}
}

// drawCoin renders the coin disc with a rim and a rotating sparkle that
// dims as the coin ages out.
func (s *RenderSystem) drawCoin(screen *ebiten.Image, c *entity.Coin) {
	if !c.Active() {
		return
	}
	x, y := float32(c.Position().X), float32(c.Position().Y)
	r := float32(c.Radius())

	body, ok := coinColors[c.Kind()]
	if !ok {
		body = coinColors[defs.CoinPoints]
	}
	vector.DrawFilledCircle(screen, x, y, r, body, true)
	vector.StrokeCircle(screen, x, y, r, 2, config.CoinRimColor, true)

	glow := c.Glow()
	sx := x + float32(math.Cos(c.SparkleAngle()))*r*0.4
	sy := y + float32(math.Sin(c.SparkleAngle()))*r*0.4
	sr := float32(math.Max(1, float64(r)*0.3*glow))
	sparkle := config.SparkleColor
	sparkle.A = uint8(255 * glow)
	vector.DrawFilledCircle(screen, sx, sy, sr, sparkle, true)
}
