// internal/event/types.go
package event

const (
	EnemyDefeated Type = "EnemyDefeated" // Data: vec.Vec death position
	CoinCollected Type = "CoinCollected" // Data: defs.CoinKind
	LevelAdvanced Type = "LevelAdvanced" // Data: int new level (1-based)
	GameOver      Type = "GameOver"      // Data: int final score
	GameReset     Type = "GameReset"
)
