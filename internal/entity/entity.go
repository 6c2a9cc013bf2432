// internal/entity/entity.go
package entity

import "go-sky-chase/pkg/vec"

// Entity is the capability set every game object shares. Update advances
// internal timers and position for the elapsed frame time; it never touches
// another entity. Cross-entity effects (damage, scoring, collection) are
// applied by the controller.
type Entity interface {
	Update(dt float64)
	Active() bool
	Position() vec.Vec
	Radius() float64
}

// Overlaps reports whether two entities' collision circles intersect.
// Inactive entities never collide. Callers must evaluate each pair at most
// once per frame so a single overlap cannot be counted twice.
func Overlaps(a, b Entity) bool {
	if !a.Active() || !b.Active() {
		return false
	}
	return a.Position().Dist(b.Position()) <= a.Radius()+b.Radius()
}

// Base carries the position, collision radius and active flag shared by all
// entity kinds.
type Base struct {
	Pos   vec.Vec
	R     float64
	Alive bool
}

func (b *Base) Active() bool      { return b.Alive }
func (b *Base) Position() vec.Vec { return b.Pos }
func (b *Base) Radius() float64   { return b.R }
func (b *Base) Deactivate()       { b.Alive = false }

// ClampTo keeps the entity's center at least its radius away from every
// edge of a w×h playfield.
func (b *Base) ClampTo(w, h float64) {
	if b.Pos.X < b.R {
		b.Pos.X = b.R
	}
	if b.Pos.X > w-b.R {
		b.Pos.X = w - b.R
	}
	if b.Pos.Y < b.R {
		b.Pos.Y = b.R
	}
	if b.Pos.Y > h-b.R {
		b.Pos.Y = h - b.R
	}
}
