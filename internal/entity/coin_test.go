// internal/entity/coin_test.go
package entity

import (
	"testing"

	"go-sky-chase/internal/config"
	"go-sky-chase/internal/defs"
	"go-sky-chase/pkg/vec"
)

func testCoinConfig() config.CoinConfig {
	return config.CoinConfig{
		Radius:             15,
		Lifetime:           10.0,
		SpinRate:           3.0,
		DropChance:         1.0,
		SpeedBonus:         1.5,
		DamageBonus:        1,
		FireIntervalFactor: 0.85,
	}
}

func TestCoinExpires(t *testing.T) {
	c := NewCoin(vec.Vec{X: 100, Y: 100}, defs.CoinPoints, 2, testCoinConfig())

	c.Update(9.99)
	if !c.Active() {
		t.Fatal("Coin expired early")
	}
	c.Update(0.01)
	if c.Active() {
		t.Fatal("Coin outlived its lifetime")
	}
}

func TestCoinGlowFades(t *testing.T) {
	c := NewCoin(vec.Vec{X: 100, Y: 100}, defs.CoinSpeed, 1, testCoinConfig())

	if c.Glow() != 1.0 {
		t.Fatalf("Fresh coin glow should be 1, got %v", c.Glow())
	}
	c.Update(5.0)
	if g := c.Glow(); g < 0.49 || g > 0.51 {
		t.Errorf("Expected glow near 0.5 at half life, got %v", g)
	}
}

func TestCoinCollect(t *testing.T) {
	c := NewCoin(vec.Vec{X: 100, Y: 100}, defs.CoinDamage, 3, testCoinConfig())

	kind, value := c.Collect()
	if kind != defs.CoinDamage || value != 3 {
		t.Errorf("Expected (DAMAGE, 3), got (%s, %d)", kind, value)
	}
	if c.Active() {
		t.Error("Collected coin stayed active")
	}
}

func TestCoinSpins(t *testing.T) {
	c := NewCoin(vec.Vec{X: 100, Y: 100}, defs.CoinFireRate, 1, testCoinConfig())
	before := c.SparkleAngle()
	c.Update(0.5)
	if c.SparkleAngle() == before {
		t.Error("Sparkle did not rotate")
	}
}
