// internal/entity/coin.go
package entity

import (
	"go-sky-chase/internal/config"
	"go-sky-chase/internal/defs"
	"go-sky-chase/pkg/vec"
)

// Coin is a dropped upgrade pickup. It spins in place, fades out over its
// lifetime and expires if nobody collects it.
type Coin struct {
	Base
	kind        defs.CoinKind
	value       int
	lifetime    float64
	maxLifetime float64
	angle       float64
	spin        float64
}

// NewCoin drops a coin of the given kind at a position.
func NewCoin(at vec.Vec, kind defs.CoinKind, value int, cfg config.CoinConfig) *Coin {
	return &Coin{
		Base:        Base{Pos: at, R: cfg.Radius, Alive: true},
		kind:        kind,
		value:       value,
		lifetime:    cfg.Lifetime,
		maxLifetime: cfg.Lifetime,
		spin:        cfg.SpinRate,
	}
}

// Update spins the sparkle and decays the lifetime.
func (c *Coin) Update(dt float64) {
	if !c.Alive || dt <= 0 {
		return
	}

	c.angle += c.spin * dt
	c.lifetime -= dt
	if c.lifetime <= 0 {
		c.Alive = false
	}
}

// Collect deactivates the coin and returns its upgrade. Collecting twice
// is impossible; the first call flips the active flag.
func (c *Coin) Collect() (defs.CoinKind, int) {
	c.Alive = false
	return c.kind, c.value
}

// Kind is the upgrade this coin grants.
func (c *Coin) Kind() defs.CoinKind {
	return c.kind
}

// Glow is the remaining-lifetime fraction in [0, 1], used to dim the
// sparkle as the coin ages out.
func (c *Coin) Glow() float64 {
	if c.lifetime < 0 {
		return 0
	}
	return c.lifetime / c.maxLifetime
}

// SparkleAngle is the current rotation of the highlight, in radians.
func (c *Coin) SparkleAngle() float64 {
	return c.angle
}
