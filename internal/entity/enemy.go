// internal/entity/enemy.go
package entity

import (
	"go-sky-chase/internal/config"
	"go-sky-chase/pkg/vec"
)

// Enemy pursues its target in a straight line and soaks projectile hits
// behind an invulnerability window. Depleting its hit points respawns it
// rather than removing it.
type Enemy struct {
	Base
	target vec.Vec

	speed        float64
	hp           int
	maxHP        int
	invuln       float64
	invulnWindow float64
	spawnGrace   float64
}

// NewEnemy builds the enemy at a start position.
func NewEnemy(cfg config.EnemyConfig, start vec.Vec) *Enemy {
	return &Enemy{
		Base:         Base{Pos: start, R: cfg.Radius, Alive: true},
		target:       start,
		speed:        cfg.Speed,
		hp:           cfg.MaxHP,
		maxHP:        cfg.MaxHP,
		invulnWindow: cfg.InvulnWindow,
		spawnGrace:   cfg.SpawnGrace,
	}
}

// SetTarget records the pursuit target. The controller calls this once per
// frame with the player's position.
func (e *Enemy) SetTarget(target vec.Vec) {
	e.target = target
}

// Update decays the invulnerability timer and moves straight toward the
// target. Pure pursuit; no pathfinding. Sitting exactly on the target
// yields a zero direction and no movement.
func (e *Enemy) Update(dt float64) {
	if !e.Alive || dt <= 0 {
		return
	}

	e.invuln -= dt
	if e.invuln < 0 {
		e.invuln = 0
	}

	dir := e.target.Sub(e.Pos).Normalize()
	e.Pos = e.Pos.Add(dir.Scale(e.speed * dt))
}

// Invulnerable reports whether damage is currently ignored.
func (e *Enemy) Invulnerable() bool {
	return e.invuln > 0
}

// ApplyDamage subtracts hit points and opens the invulnerability window.
// During the window it is a no-op: hit points unchanged, timer not
// extended. It returns true exactly once per depletion, when this hit
// brings the pool to zero; the controller then respawns the enemy.
func (e *Enemy) ApplyDamage(amount int) bool {
	if !e.Alive || amount <= 0 || e.invuln > 0 {
		return false
	}

	e.hp -= amount
	if e.hp < 0 {
		e.hp = 0
	}
	e.invuln = e.invulnWindow
	return e.hp == 0
}

// Respawn repositions the enemy, refills its hit points and grants the
// spawn grace window.
func (e *Enemy) Respawn(at vec.Vec) {
	e.Pos = at
	e.hp = e.maxHP
	e.invuln = e.spawnGrace
}

// Retune applies level scaling: a new pursuit speed and hit-point maximum.
// The current pool is clamped, never refilled, so a level-up mid-life is
// not a free heal.
func (e *Enemy) Retune(speed float64, maxHP int) {
	e.speed = speed
	if maxHP > 0 {
		e.maxHP = maxHP
		if e.hp > maxHP {
			e.hp = maxHP
		}
	}
}

// HP is the current hit-point pool.
func (e *Enemy) HP() int {
	return e.hp
}

// MaxHP is the hit-point pool refilled on respawn.
func (e *Enemy) MaxHP() int {
	return e.maxHP
}

// Speed is the current pursuit speed.
func (e *Enemy) Speed() float64 {
	return e.speed
}
