// internal/entity/projectile.go
package entity

import "go-sky-chase/pkg/vec"

// Projectile is a short-lived kinetic entity. It deactivates when its
// lifetime runs out or it fully leaves the playfield, whichever comes first.
type Projectile struct {
	Base
	dir      vec.Vec
	speed    float64
	lifetime float64
	damage   int
	bounds   vec.Vec
}

// NewProjectile spawns a projectile at a position moving along dir (any
// magnitude; it is normalized here). bounds is the playfield size.
func NewProjectile(at, dir vec.Vec, speed, radius, lifetime float64, damage int, bounds vec.Vec) *Projectile {
	return &Projectile{
		Base:     Base{Pos: at, R: radius, Alive: true},
		dir:      dir.Normalize(),
		speed:    speed,
		lifetime: lifetime,
		damage:   damage,
		bounds:   bounds,
	}
}

// Update advances the projectile and decays its lifetime.
func (p *Projectile) Update(dt float64) {
	if !p.Alive || dt <= 0 {
		return
	}

	p.Pos = p.Pos.Add(p.dir.Scale(p.speed * dt))
	p.lifetime -= dt

	if p.lifetime <= 0 || p.outOfBounds() {
		p.Alive = false
	}
}

// outOfBounds is true once the whole circle has left the playfield.
func (p *Projectile) outOfBounds() bool {
	return p.Pos.X < -p.R || p.Pos.X > p.bounds.X+p.R ||
		p.Pos.Y < -p.R || p.Pos.Y > p.bounds.Y+p.R
}

// Damage is the hit-point cost this projectile inflicts on impact.
func (p *Projectile) Damage() int {
	return p.damage
}

// Lifetime is the remaining time before expiry.
func (p *Projectile) Lifetime() float64 {
	return p.lifetime
}

// Direction is the unit travel direction.
func (p *Projectile) Direction() vec.Vec {
	return p.dir
}
