// internal/defs/types.go
package defs

// CoinKind names the upgrade a coin grants.
type CoinKind string

const (
	CoinSpeed    CoinKind = "SPEED"
	CoinDamage   CoinKind = "DAMAGE"
	CoinFireRate CoinKind = "FIRE_RATE"
	CoinPoints   CoinKind = "POINTS"
)

// LevelDefinition tunes one level of the progression. Levels are ordered;
// play past the last definition keeps its tuning.
type LevelDefinition struct {
	Background       string  `json:"background"`
	EnemySpeedFactor float64 `json:"enemy_speed_factor"`
	EnemyHP          int     `json:"enemy_hp"`
	KillsToAdvance   int     `json:"kills_to_advance"`
}

// CoinDropEntry is one row of the weighted coin drop table.
type CoinDropEntry struct {
	Kind   CoinKind `json:"kind"`
	Weight int      `json:"weight"`
	Value  int      `json:"value"`
}
