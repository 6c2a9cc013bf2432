// internal/app/game.go
package app

import (
	"go-sky-chase/internal/config"
	"go-sky-chase/internal/defs"
	"go-sky-chase/internal/entity"
	"go-sky-chase/internal/event"
	"go-sky-chase/internal/input"
	"go-sky-chase/internal/utils"
	"go-sky-chase/pkg/vec"
)

// Phase is the controller's state machine.
type Phase int

const (
	Playing Phase = iota
	GameOver
)

// Game owns every entity instance and drives the fixed per-frame sequence:
// input, update, collisions, score/state, render (render is delegated to
// the caller). It is the sole mutator of its collections; entities never
// reach into each other.
type Game struct {
	cfg        config.Config
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher

	player      *entity.Player
	enemy       *entity.Enemy
	projectiles []*entity.Projectile
	coins       []*entity.Coin

	score          int
	phase          Phase
	contactGrace   float64
	level          int
	killsThisLevel int

	levels []defs.LevelDefinition
	drops  []defs.CoinDropEntry

	quit bool
}

// NewGame builds a fresh controller. levels and drops must be non-empty;
// callers fall back to defs defaults when the definition files are absent.
func NewGame(cfg config.Config, levels []defs.LevelDefinition, drops []defs.CoinDropEntry,
	rng *utils.PRNGService, dispatcher *event.Dispatcher) *Game {
	if len(levels) == 0 {
		levels = defs.DefaultLevels()
	}
	if len(drops) == 0 {
		drops = defs.DefaultCoinDrops()
	}
	g := &Game{
		cfg:        cfg,
		rng:        rng,
		dispatcher: dispatcher,
		levels:     levels,
		drops:      drops,
	}
	g.initEntities()
	return g
}

// initEntities places the player on the left and the enemy top-center and
// clears the dynamic sets.
func (g *Game) initEntities() {
	w := float64(g.cfg.Screen.Width)
	h := float64(g.cfg.Screen.Height)
	bounds := vec.Vec{X: w, Y: h}

	g.player = entity.NewPlayer(g.cfg.Player, vec.Vec{X: w / 4, Y: h / 2}, bounds)

	// The first level's definition tunes the freshly built enemy; later
	// levels retune it in place.
	ecfg := g.cfg.Enemy
	if def := g.levels[0]; def.EnemyHP > 0 {
		ecfg.MaxHP = def.EnemyHP
	}
	if def := g.levels[0]; def.EnemySpeedFactor > 0 {
		ecfg.Speed *= def.EnemySpeedFactor
	}
	g.enemy = entity.NewEnemy(ecfg, vec.Vec{X: w / 2, Y: h / 4})

	g.projectiles = g.projectiles[:0]
	g.coins = g.coins[:0]

	g.score = g.cfg.Score.Initial
	g.phase = Playing
	g.contactGrace = 0
	g.level = 1
	g.killsThisLevel = 0
}

// Update runs one frame of game logic. Steps run in a fixed order; each
// depends on the previous one.
func (g *Game) Update(dt float64, in input.Snapshot) {
	if dt < 0 {
		dt = 0
	}

	// 1. Input ingestion.
	if in.Quit {
		g.quit = true
		return
	}

	// 2–3. Game-over handling: restart or render-only frame.
	if g.phase == GameOver {
		if in.Restart {
			g.Reset()
		}
		return
	}

	g.player.SetPointerTarget(in.Pointer)
	if in.Fire {
		dir := in.Pointer.Sub(g.player.Position())
		if p := g.player.TryFire(dir); p != nil {
			g.projectiles = append(g.projectiles, p)
		}
	}

	// 4. Update phase.
	if g.contactGrace > 0 {
		g.contactGrace -= dt
		if g.contactGrace < 0 {
			g.contactGrace = 0
		}
	}

	g.player.Update(dt)
	g.enemy.SetTarget(g.player.Position())
	g.enemy.Update(dt)

	for _, p := range g.projectiles {
		p.Update(dt)
	}
	g.compactProjectiles()

	for _, c := range g.coins {
		c.Update(dt)
	}
	g.compactCoins()

	// 5. Collision phase: projectiles vs enemy first, then player vs
	// enemy, then player vs coins. One distance test per pair per frame.
	g.resolveProjectileHits()
	g.resolvePlayerContact()
	g.resolveCoinPickups()

	// 6. Score/state check.
	if g.score <= g.cfg.Score.Floor {
		g.phase = GameOver
		g.dispatcher.Dispatch(event.Event{Type: event.GameOver, Data: g.score})
	}
}

// resolveProjectileHits tests each live projectile against the enemy. Any
// overlap consumes the projectile, even while the enemy is invulnerable;
// a depleting hit scores and respawns the enemy.
func (g *Game) resolveProjectileHits() {
	for _, p := range g.projectiles {
		if !entity.Overlaps(p, g.enemy) {
			continue
		}
		p.Deactivate()
		if g.enemy.ApplyDamage(p.Damage()) {
			g.onEnemyDefeated()
		}
	}
}

// resolvePlayerContact applies the body-contact penalty at most once per
// overlap episode, gated by the contact grace timer.
func (g *Game) resolvePlayerContact() {
	if g.contactGrace > 0 {
		return
	}
	if entity.Overlaps(g.player, g.enemy) {
		g.score -= g.cfg.Score.ContactPenalty
		g.contactGrace = g.cfg.Player.ContactGrace
	}
}

// resolveCoinPickups collects every coin the player overlaps and applies
// its upgrade.
func (g *Game) resolveCoinPickups() {
	for _, c := range g.coins {
		if !entity.Overlaps(g.player, c) {
			continue
		}
		kind, value := c.Collect()
		g.applyCoin(kind, value)
		g.dispatcher.Dispatch(event.Event{Type: event.CoinCollected, Data: kind})
	}
}

// onEnemyDefeated scores the kill, rolls a coin drop at the death position,
// respawns the enemy and advances the level when due.
func (g *Game) onEnemyDefeated() {
	at := g.enemy.Position()
	g.score += g.cfg.Score.KillReward
	g.killsThisLevel++
	g.dispatcher.Dispatch(event.Event{Type: event.EnemyDefeated, Data: at})

	g.maybeDropCoin(at)
	g.enemy.Respawn(g.randomSpawn())

	if g.killsThisLevel >= g.currentLevel().KillsToAdvance {
		g.advanceLevel()
	}
}

// randomSpawn picks a position inset by the configured margin.
func (g *Game) randomSpawn() vec.Vec {
	m := g.cfg.Enemy.SpawnMargin
	return vec.Vec{
		X: g.rng.FloatRange(m, float64(g.cfg.Screen.Width)-m),
		Y: g.rng.FloatRange(m, float64(g.cfg.Screen.Height)-m),
	}
}

// compactProjectiles drops inactive projectiles from the live set in place.
func (g *Game) compactProjectiles() {
	live := g.projectiles[:0]
	for _, p := range g.projectiles {
		if p.Active() {
			live = append(live, p)
		}
	}
	g.projectiles = live
}

// compactCoins drops expired coins in place.
func (g *Game) compactCoins() {
	live := g.coins[:0]
	for _, c := range g.coins {
		if c.Active() {
			live = append(live, c)
		}
	}
	g.coins = live
}

// Reset reinitializes all entities and the score and returns to PLAYING
// within the frame the restart intent arrived.
func (g *Game) Reset() {
	g.initEntities()
	g.dispatcher.Dispatch(event.Event{Type: event.GameReset})
}

// Accessors for the render system, HUD and tests.

func (g *Game) Phase() Phase                      { return g.phase }
func (g *Game) Score() int                        { return g.score }
func (g *Game) Level() int                        { return g.level }
func (g *Game) KillsThisLevel() int               { return g.killsThisLevel }
func (g *Game) Player() *entity.Player            { return g.player }
func (g *Game) Enemy() *entity.Enemy              { return g.enemy }
func (g *Game) Projectiles() []*entity.Projectile { return g.projectiles }
func (g *Game) Coins() []*entity.Coin             { return g.coins }
func (g *Game) QuitRequested() bool               { return g.quit }
