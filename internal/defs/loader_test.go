// internal/defs/loader_test.go
package defs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadLevelDefinitions(t *testing.T) {
	path := writeFile(t, "levels.json", `[
		{"background": "one.png", "enemy_speed_factor": 1.0, "enemy_hp": 3, "kills_to_advance": 3},
		{"background": "two.png", "enemy_speed_factor": 1.5, "enemy_hp": 4, "kills_to_advance": 5}
	]`)

	levels, err := LoadLevelDefinitions(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("Expected 2 levels, got %d", len(levels))
	}
	if levels[1].Background != "two.png" || levels[1].EnemyHP != 4 || levels[1].KillsToAdvance != 5 {
		t.Errorf("Second level mangled: %+v", levels[1])
	}
}

func TestLoadLevelDefinitionsErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Malformed JSON", `[{"background": `},
		{"Empty list", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "levels.json", tt.content)
			if _, err := LoadLevelDefinitions(path); err == nil {
				t.Error("Expected an error")
			}
		})
	}

	if _, err := LoadLevelDefinitions(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestLoadCoinDrops(t *testing.T) {
	path := writeFile(t, "coins.json", `[
		{"kind": "SPEED", "weight": 3, "value": 1},
		{"kind": "POINTS", "weight": 4, "value": 2}
	]`)

	drops, err := LoadCoinDrops(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(drops) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(drops))
	}
	if drops[0].Kind != CoinSpeed || drops[0].Weight != 3 {
		t.Errorf("First entry mangled: %+v", drops[0])
	}
}

func TestDefaultsAreNonEmpty(t *testing.T) {
	if len(DefaultLevels()) == 0 {
		t.Error("DefaultLevels is empty")
	}
	if len(DefaultCoinDrops()) == 0 {
		t.Error("DefaultCoinDrops is empty")
	}
	for _, def := range DefaultLevels() {
		if def.KillsToAdvance <= 0 {
			t.Errorf("Level with non-positive kill quota: %+v", def)
		}
	}
}
