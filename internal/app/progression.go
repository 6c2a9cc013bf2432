// internal/app/progression.go
package app

import (
	"go-sky-chase/internal/defs"
	"go-sky-chase/internal/entity"
	"go-sky-chase/internal/event"
	"go-sky-chase/pkg/vec"
)

// currentLevel returns the tuning for the current level; play past the
// last definition keeps its tuning.
func (g *Game) currentLevel() defs.LevelDefinition {
	idx := g.level - 1
	if idx >= len(g.levels) {
		idx = len(g.levels) - 1
	}
	return g.levels[idx]
}

// KillsToAdvance is the kill quota of the current level, for the HUD.
func (g *Game) KillsToAdvance() int {
	return g.currentLevel().KillsToAdvance
}

// advanceLevel moves to the next level and retunes the enemy from its
// definition.
func (g *Game) advanceLevel() {
	g.level++
	g.killsThisLevel = 0
	g.applyLevelTuning()
	g.dispatcher.Dispatch(event.Event{Type: event.LevelAdvanced, Data: g.level})
}

// applyLevelTuning scales the enemy to the current level definition.
func (g *Game) applyLevelTuning() {
	def := g.currentLevel()
	speed := g.cfg.Enemy.Speed
	if def.EnemySpeedFactor > 0 {
		speed *= def.EnemySpeedFactor
	}
	g.enemy.Retune(speed, def.EnemyHP)
}

// maybeDropCoin rolls the drop chance and, on success, drops a weighted
// random coin kind at the kill position.
func (g *Game) maybeDropCoin(at vec.Vec) {
	if !g.rng.Chance(g.cfg.Coin.DropChance) {
		return
	}
	entry, ok := g.rng.ChooseWeighted(g.drops)
	if !ok {
		return
	}
	g.coins = append(g.coins, entity.NewCoin(at, entry.Kind, entry.Value, g.cfg.Coin))
}

// applyCoin applies a collected upgrade to the player (or the score, for
// point coins).
func (g *Game) applyCoin(kind defs.CoinKind, value int) {
	switch kind {
	case defs.CoinSpeed:
		g.player.BoostSpeed(g.cfg.Coin.SpeedBonus * float64(value))
	case defs.CoinDamage:
		g.player.BoostDamage(g.cfg.Coin.DamageBonus * value)
	case defs.CoinFireRate:
		g.player.QuickenFire(g.cfg.Coin.FireIntervalFactor)
	case defs.CoinPoints:
		g.score += value
	}
}
