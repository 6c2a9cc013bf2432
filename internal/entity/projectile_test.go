// internal/entity/projectile_test.go
package entity

import (
	"math"
	"testing"

	"go-sky-chase/pkg/vec"
)

func TestProjectileMovesAlongDirection(t *testing.T) {
	bounds := vec.Vec{X: 800, Y: 600}
	p := NewProjectile(vec.Vec{X: 100, Y: 100}, vec.Vec{X: 1, Y: 0}, 300, 8, 2.0, 1, bounds)

	p.Update(0.1)

	if math.Abs(p.Position().X-130) > 1e-9 || math.Abs(p.Position().Y-100) > 1e-9 {
		t.Errorf("Expected position (130, 100), got %+v", p.Position())
	}
	if math.Abs(p.Lifetime()-1.9) > 1e-9 {
		t.Errorf("Expected lifetime 1.9, got %v", p.Lifetime())
	}
}

func TestProjectileDeterministicUpdates(t *testing.T) {
	bounds := vec.Vec{X: 800, Y: 600}
	mk := func() *Projectile {
		return NewProjectile(vec.Vec{X: 400, Y: 300}, vec.Vec{X: 3, Y: 4}, 250, 8, 2.0, 1, bounds)
	}

	a, b := mk(), mk()
	for i := 0; i < 10; i++ {
		a.Update(0.016)
		b.Update(0.016)
	}
	if a.Position() != b.Position() {
		t.Errorf("Identical inputs diverged: %+v vs %+v", a.Position(), b.Position())
	}
}

func TestProjectileExpiresExactlyAtLifetimeZero(t *testing.T) {
	// Far wall: bounds large enough that lifetime expiry wins over exit.
	bounds := vec.Vec{X: 2000, Y: 2000}
	p := NewProjectile(vec.Vec{X: 1000, Y: 1000}, vec.Vec{X: 1, Y: 0}, 300, 8, 2.0, 1, bounds)

	p.Update(1.99)
	if !p.Active() {
		t.Fatal("Projectile expired before lifetime reached zero")
	}
	p.Update(0.01)
	if p.Active() {
		t.Fatal("Projectile survived past lifetime zero")
	}
	// Traveled 600px in 2s; still 392px short of the right edge.
	if p.Position().X >= bounds.X+p.Radius() {
		t.Errorf("Expected expiry in bounds, position %+v", p.Position())
	}
}

func TestProjectileDeactivatesOnBoundaryExit(t *testing.T) {
	bounds := vec.Vec{X: 800, Y: 600}
	p := NewProjectile(vec.Vec{X: 790, Y: 300}, vec.Vec{X: 1, Y: 0}, 300, 8, 2.0, 1, bounds)

	// Still partially inside: center at 820, edge allows up to 808.
	p.Update(0.05) // center 805
	if !p.Active() {
		t.Fatal("Projectile deactivated while still within the exit margin")
	}
	p.Update(0.05) // center 820 > 808
	if p.Active() {
		t.Fatal("Projectile stayed active after fully leaving bounds")
	}
}

func TestProjectileInactiveUpdateIsNoop(t *testing.T) {
	bounds := vec.Vec{X: 800, Y: 600}
	p := NewProjectile(vec.Vec{X: 100, Y: 100}, vec.Vec{X: 0, Y: 1}, 300, 8, 0.01, 1, bounds)
	p.Update(0.02)
	if p.Active() {
		t.Fatal("Expected expired projectile")
	}

	pos := p.Position()
	p.Update(0.5)
	if p.Position() != pos {
		t.Errorf("Inactive projectile moved from %+v to %+v", pos, p.Position())
	}
}
