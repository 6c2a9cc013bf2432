// internal/config/config.go
package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/spf13/viper"
)

// MaxDeltaTime caps the per-frame delta so a stalled frame (window drag,
// debugger pause) does not teleport entities.
const MaxDeltaTime = 0.06

// Config is the single tunables structure handed to the game controller at
// construction. Nothing in the game reads process-wide mutable globals.
type Config struct {
	Screen ScreenConfig `mapstructure:"screen"`
	Player PlayerConfig `mapstructure:"player"`
	Enemy  EnemyConfig  `mapstructure:"enemy"`
	Score  ScoreConfig  `mapstructure:"score"`
	Coin   CoinConfig   `mapstructure:"coin"`
	Assets AssetsConfig `mapstructure:"assets"`
}

// ScreenConfig describes the playfield the controller simulates in.
type ScreenConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// PlayerConfig tunes the pointer-following avatar and its projectiles.
type PlayerConfig struct {
	Radius             float64 `mapstructure:"radius"`
	SmoothingRate      float64 `mapstructure:"smoothing_rate"`
	FireInterval       float64 `mapstructure:"fire_interval"`
	MinFireInterval    float64 `mapstructure:"min_fire_interval"`
	ProjectileSpeed    float64 `mapstructure:"projectile_speed"`
	ProjectileRadius   float64 `mapstructure:"projectile_radius"`
	ProjectileLifetime float64 `mapstructure:"projectile_lifetime"`
	ProjectileDamage   int     `mapstructure:"projectile_damage"`
	ContactGrace       float64 `mapstructure:"contact_grace"`
}

// EnemyConfig tunes the pursuing enemy.
type EnemyConfig struct {
	Radius       float64 `mapstructure:"radius"`
	Speed        float64 `mapstructure:"speed"`
	MaxHP        int     `mapstructure:"max_hp"`
	InvulnWindow float64 `mapstructure:"invuln_window"`
	SpawnGrace   float64 `mapstructure:"spawn_grace"`
	SpawnMargin  float64 `mapstructure:"spawn_margin"`
}

// ScoreConfig holds the scoring thresholds. These varied between sources of
// the game's rules, so they are configuration, not design constants.
type ScoreConfig struct {
	Initial        int `mapstructure:"initial"`
	KillReward     int `mapstructure:"kill_reward"`
	ContactPenalty int `mapstructure:"contact_penalty"`
	Floor          int `mapstructure:"floor"`
}

// CoinConfig tunes upgrade coin drops and effects.
type CoinConfig struct {
	Radius             float64 `mapstructure:"radius"`
	Lifetime           float64 `mapstructure:"lifetime"`
	SpinRate           float64 `mapstructure:"spin_rate"`
	DropChance         float64 `mapstructure:"drop_chance"`
	SpeedBonus         float64 `mapstructure:"speed_bonus"`
	DamageBonus        int     `mapstructure:"damage_bonus"`
	FireIntervalFactor float64 `mapstructure:"fire_interval_factor"`
}

// AssetsConfig points at the on-disk assets supplied by the asset provider.
type AssetsConfig struct {
	BackgroundDir string  `mapstructure:"background_dir"`
	FontPath      string  `mapstructure:"font_path"`
	FontSize      float64 `mapstructure:"font_size"`
	LevelDefs     string  `mapstructure:"level_defs"`
	CoinDefs      string  `mapstructure:"coin_defs"`
}

// Default returns the built-in tuning.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
			Title:  "Sky Chase",
		},
		Player: PlayerConfig{
			Radius:             20,
			SmoothingRate:      8.0,
			FireInterval:       0.3,
			MinFireInterval:    0.08,
			ProjectileSpeed:    300,
			ProjectileRadius:   8,
			ProjectileLifetime: 2.0,
			ProjectileDamage:   1,
			ContactGrace:       1.0,
		},
		Enemy: EnemyConfig{
			Radius:       20,
			Speed:        120,
			MaxHP:        3,
			InvulnWindow: 0.8,
			SpawnGrace:   1.0,
			SpawnMargin:  50,
		},
		Score: ScoreConfig{
			Initial:        10,
			KillReward:     1,
			ContactPenalty: 2,
			Floor:          0,
		},
		Coin: CoinConfig{
			Radius:             15,
			Lifetime:           10.0,
			SpinRate:           3.0,
			DropChance:         0.6,
			SpeedBonus:         1.5,
			DamageBonus:        1,
			FireIntervalFactor: 0.85,
		},
		Assets: AssetsConfig{
			BackgroundDir: "assets/backgrounds",
			FontPath:      "assets/fonts/hud.ttf",
			FontSize:      18,
			LevelDefs:     "assets/defs/levels.json",
			CoinDefs:      "assets/defs/coins.json",
		},
	}
}

// Load reads the optional config file at path over the defaults. A missing
// file is not an error; the defaults stand.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Default(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Palette used by the render system and HUD.
var (
	BackgroundColor = color.RGBA{0, 0, 50, 255}
	PlayerColor     = color.RGBA{0, 255, 0, 255}
	PlayerStroke    = color.RGBA{255, 255, 255, 255}
	EnemyColor      = color.RGBA{255, 0, 0, 255}
	EnemyGraceColor = color.RGBA{255, 120, 120, 160}
	ProjectileColor = color.RGBA{255, 255, 0, 255}
	TextColor       = color.RGBA{255, 255, 255, 255}
	HintColor       = color.RGBA{200, 200, 200, 255}
	GameOverColor   = color.RGBA{255, 0, 0, 255}
	CoinRimColor    = color.RGBA{200, 150, 0, 255}
	SparkleColor    = color.RGBA{255, 255, 255, 255}
)
