// Package config provides the tunable rules and presentation settings of the game.
// Values are loaded from an optional YAML file layered over defaults, then from
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all settings for a game session
type Config struct {
	Window WindowConfig `yaml:"window"`
	Game   GameConfig   `yaml:"game"`
	Camera CameraConfig `yaml:"camera"`
	Scene  SceneConfig  `yaml:"scene"`
	Audio  AudioConfig  `yaml:"audio"`
	Log    LogConfig    `yaml:"log"`
}

// WindowConfig defines the initial window
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// GameConfig defines the simulation rules
type GameConfig struct {
	MaxEnemies     int     `yaml:"max_enemies"`      // Live enemy population
	EnemySpeed     float64 `yaml:"enemy_speed"`      // Units per frame toward the player
	MoveSpeed      float64 `yaml:"move_speed"`       // Units per key press or repeat
	LossDistance   float64 `yaml:"loss_distance"`    // Enemy closer than this ends the round
	SpawnMinRadius float64 `yaml:"spawn_min_radius"` // Inclusive
	SpawnMaxRadius float64 `yaml:"spawn_max_radius"` // Exclusive
	EnemyHeight    float64 `yaml:"enemy_height"`     // Fixed Y of every enemy
	EnemyScale     float64 `yaml:"enemy_scale"`      // Billboard edge length
	Seed           int64   `yaml:"seed"`             // 0 picks a time-based seed

	// Held movement keys act once, then again after KeyRepeatDelay and every
	// KeyRepeatInterval, like keyboard autorepeat.
	KeyRepeatDelay    time.Duration `yaml:"key_repeat_delay"`
	KeyRepeatInterval time.Duration `yaml:"key_repeat_interval"`
}

// CameraConfig defines the perspective camera and look controls
type CameraConfig struct {
	FOV              float64 `yaml:"fov"` // Vertical, degrees
	Near             float64 `yaml:"near"`
	Far              float64 `yaml:"far"`
	EyeHeight        float64 `yaml:"eye_height"`
	MouseSensitivity float64 `yaml:"mouse_sensitivity"` // Radians per pixel
}

// SceneConfig defines the floor and fog
type SceneConfig struct {
	FloorSize     float64 `yaml:"floor_size"`
	FloorSegments int     `yaml:"floor_segments"` // Quads per edge
	TextureRepeat float64 `yaml:"texture_repeat"` // Checkerboard repeats per edge
	FogDensity    float64 `yaml:"fog_density"`
}

// AudioConfig defines sound effect playback
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0.0 to 1.0
}

// LogConfig defines logging output
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the settings of the classic shooting gallery
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
			Title:  "Shooting Gallery",
		},
		Game: GameConfig{
			MaxEnemies:     20,
			EnemySpeed:     0.5,
			MoveSpeed:      0.5,
			LossDistance:   10,
			SpawnMinRadius: 100,
			SpawnMaxRadius: 400,
			EnemyHeight:    10,
			EnemyScale:     20,

			KeyRepeatDelay:    500 * time.Millisecond,
			KeyRepeatInterval: 33 * time.Millisecond,
		},
		Camera: CameraConfig{
			FOV:              75,
			Near:             1,
			Far:              1000,
			EyeHeight:        10,
			MouseSensitivity: 0.002,
		},
		Scene: SceneConfig{
			FloorSize:     2000,
			FloorSegments: 40,
			TextureRepeat: 10,
			FogDensity:    0.0025,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads config from a YAML file over the defaults.
// A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return config, nil
}

// Environment variables read by ApplyEnv.
const (
	EnvAudioEnabled = "GALLERY_AUDIO_ENABLED"
	EnvMasterVolume = "GALLERY_MASTER_VOLUME" // 0-100
	EnvLogLevel     = "GALLERY_LOG_LEVEL"
	EnvSeed         = "GALLERY_SEED"
)

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding existing ones. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides settings from the environment. Unparseable values are
// reported and leave the setting unchanged.
func (c *Config) ApplyEnv() error {
	var errs []error

	if v := os.Getenv(EnvAudioEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		} else {
			errs = append(errs, fmt.Errorf("%s: %w", EnvAudioEnabled, err))
		}
	}

	if v := os.Getenv(EnvMasterVolume); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.MasterVolume = min(max(float64(n)/100.0, 0), 1)
		} else {
			errs = append(errs, fmt.Errorf("%s: %w", EnvMasterVolume, err))
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}

	if v := os.Getenv(EnvSeed); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Game.Seed = n
		} else {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSeed, err))
		}
	}

	return errors.Join(errs...)
}

// Validate checks that the rules describe a playable game
func (c *Config) Validate() error {
	g := c.Game
	switch {
	case g.MaxEnemies <= 0:
		return fmt.Errorf("max_enemies must be positive, got %d", g.MaxEnemies)
	case g.EnemySpeed <= 0:
		return fmt.Errorf("enemy_speed must be positive, got %g", g.EnemySpeed)
	case g.MoveSpeed <= 0:
		return fmt.Errorf("move_speed must be positive, got %g", g.MoveSpeed)
	case g.LossDistance <= 0:
		return fmt.Errorf("loss_distance must be positive, got %g", g.LossDistance)
	case g.SpawnMinRadius <= g.LossDistance:
		return fmt.Errorf("spawn_min_radius %g must exceed loss_distance %g", g.SpawnMinRadius, g.LossDistance)
	case g.SpawnMaxRadius <= g.SpawnMinRadius:
		return fmt.Errorf("spawn_max_radius %g must exceed spawn_min_radius %g", g.SpawnMaxRadius, g.SpawnMinRadius)
	case g.EnemySpeed >= 2*g.LossDistance:
		return fmt.Errorf("enemy_speed %g would step over the loss radius %g", g.EnemySpeed, g.LossDistance)
	case g.EnemyScale <= 0:
		return fmt.Errorf("enemy_scale must be positive, got %g", g.EnemyScale)
	case g.KeyRepeatDelay < 0 || g.KeyRepeatInterval <= 0:
		return fmt.Errorf("invalid key repeat delay=%s interval=%s", g.KeyRepeatDelay, g.KeyRepeatInterval)
	}

	cam := c.Camera
	switch {
	case cam.FOV <= 0 || cam.FOV >= 180:
		return fmt.Errorf("fov must be in (0, 180), got %g", cam.FOV)
	case cam.Near <= 0 || cam.Far <= cam.Near:
		return fmt.Errorf("invalid clip range near=%g far=%g", cam.Near, cam.Far)
	}

	if c.Scene.FloorSegments <= 0 {
		return fmt.Errorf("floor_segments must be positive, got %d", c.Scene.FloorSegments)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}
