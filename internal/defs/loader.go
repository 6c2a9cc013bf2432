// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadLevelDefinitions reads the level tuning file. Order in the file is
// level order.
func LoadLevelDefinitions(path string) ([]LevelDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level definitions file: %w", err)
	}

	var levels []LevelDefinition
	if err := json.Unmarshal(file, &levels); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level definitions: %w", err)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("level definitions file %s is empty", path)
	}
	return levels, nil
}

// LoadCoinDrops reads the weighted coin drop table.
func LoadCoinDrops(path string) ([]CoinDropEntry, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read coin drop file: %w", err)
	}

	var drops []CoinDropEntry
	if err := json.Unmarshal(file, &drops); err != nil {
		return nil, fmt.Errorf("failed to unmarshal coin drops: %w", err)
	}
	if len(drops) == 0 {
		return nil, fmt.Errorf("coin drop file %s is empty", path)
	}
	return drops, nil
}

// DefaultLevels is the built-in progression used when no definitions file
// is present.
func DefaultLevels() []LevelDefinition {
	return []LevelDefinition{
		{Background: "level1.png", EnemySpeedFactor: 1.0, EnemyHP: 3, KillsToAdvance: 3},
		{Background: "level2.png", EnemySpeedFactor: 1.15, EnemyHP: 3, KillsToAdvance: 3},
		{Background: "level3.png", EnemySpeedFactor: 1.3, EnemyHP: 4, KillsToAdvance: 3},
		{Background: "level4.png", EnemySpeedFactor: 1.45, EnemyHP: 4, KillsToAdvance: 3},
		{Background: "level5.png", EnemySpeedFactor: 1.6, EnemyHP: 5, KillsToAdvance: 3},
	}
}

// DefaultCoinDrops is the built-in drop table.
func DefaultCoinDrops() []CoinDropEntry {
	return []CoinDropEntry{
		{Kind: CoinSpeed, Weight: 3, Value: 1},
		{Kind: CoinDamage, Weight: 2, Value: 1},
		{Kind: CoinFireRate, Weight: 3, Value: 1},
		{Kind: CoinPoints, Weight: 4, Value: 2},
	}
}
