// internal/entity/player.go
package entity

import (
	"math"

	"go-sky-chase/internal/config"
	"go-sky-chase/pkg/vec"
)

// Player follows the pointer with exponential smoothing and fires
// projectiles on a cooldown. The pointer target is set from the frame's
// input snapshot before Update runs; Update itself never reads input.
type Player struct {
	Base
	target vec.Vec
	facing vec.Vec

	smoothingRate float64
	fireInterval  float64
	minInterval   float64
	cooldown      float64

	projectileSpeed    float64
	projectileRadius   float64
	projectileLifetime float64
	damage             int

	bounds vec.Vec
}

// NewPlayer builds the avatar at a start position inside a w×h playfield.
func NewPlayer(cfg config.PlayerConfig, start vec.Vec, bounds vec.Vec) *Player {
	return &Player{
		Base:               Base{Pos: start, R: cfg.Radius, Alive: true},
		target:             start,
		facing:             vec.Vec{X: 0, Y: -1},
		smoothingRate:      cfg.SmoothingRate,
		fireInterval:       cfg.FireInterval,
		minInterval:        cfg.MinFireInterval,
		projectileSpeed:    cfg.ProjectileSpeed,
		projectileRadius:   cfg.ProjectileRadius,
		projectileLifetime: cfg.ProjectileLifetime,
		damage:             cfg.ProjectileDamage,
		bounds:             bounds,
	}
}

// SetPointerTarget records the latest pointer position. The controller
// calls this once per frame with the polled input snapshot.
func (p *Player) SetPointerTarget(target vec.Vec) {
	p.target = target
	if offset := target.Sub(p.Pos); !offset.IsZero() {
		p.facing = offset.Normalize()
	}
}

// Update moves the avatar toward the pointer target by the frame-rate
// independent smoothing fraction 1 - exp(-rate*dt) and decays the fire
// cooldown, floored at zero.
func (p *Player) Update(dt float64) {
	if !p.Alive || dt <= 0 {
		return
	}

	step := 1 - math.Exp(-p.smoothingRate*dt)
	p.Pos = p.Pos.Add(p.target.Sub(p.Pos).Scale(step))
	p.ClampTo(p.bounds.X, p.bounds.Y)

	p.cooldown -= dt
	if p.cooldown < 0 {
		p.cooldown = 0
	}
}

// TryFire spawns a projectile toward dir if the cooldown has elapsed, and
// resets the cooldown. On cooldown it returns nil; that is policy, not an
// error. A zero dir falls back to the current facing.
func (p *Player) TryFire(dir vec.Vec) *Projectile {
	if p.cooldown > 0 {
		return nil
	}

	d := dir.Normalize()
	if d.IsZero() {
		d = p.facing
	}

	p.cooldown = p.fireInterval
	return NewProjectile(p.Pos, d, p.projectileSpeed, p.projectileRadius,
		p.projectileLifetime, p.damage, p.bounds)
}

// Cooldown is the time remaining before the next shot is allowed.
func (p *Player) Cooldown() float64 {
	return p.cooldown
}

// Facing is the unit direction of the last nonzero pointer offset.
func (p *Player) Facing() vec.Vec {
	return p.facing
}

// Damage is the current projectile damage.
func (p *Player) Damage() int {
	return p.damage
}

// FireInterval is the current cooldown period between shots.
func (p *Player) FireInterval() float64 {
	return p.fireInterval
}

// SmoothingRate is the current pointer-follow rate.
func (p *Player) SmoothingRate() float64 {
	return p.smoothingRate
}

// BoostSpeed raises the pointer-follow rate. Applied by speed coins.
func (p *Player) BoostSpeed(delta float64) {
	p.smoothingRate += delta
}

// BoostDamage raises projectile damage. Applied by damage coins.
func (p *Player) BoostDamage(n int) {
	p.damage += n
}

// QuickenFire scales the fire interval down, floored at the configured
// minimum. Applied by fire-rate coins.
func (p *Player) QuickenFire(factor float64) {
	p.fireInterval *= factor
	if p.fireInterval < p.minInterval {
		p.fireInterval = p.minInterval
	}
}
