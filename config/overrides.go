package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the subset of configuration that can be overridden from a YAML
// file. Keys missing from the file keep their current values.
type Tuning struct {
	Player PlayerConfig `yaml:"player"`
	Enemy  EnemyConfig  `yaml:"enemy"`
	Level  LevelConfig  `yaml:"level"`
	Debug  DebugConfig  `yaml:"debug"`
}

// CurrentTuning returns a copy of the active tuning values.
func CurrentTuning() Tuning {
	return Tuning{
		Player: Player,
		Enemy:  Enemy,
		Level:  Level,
		Debug:  Debug,
	}
}

// ParseTuning decodes YAML on top of base and validates the result.
func ParseTuning(data []byte, base Tuning) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("enemy.moveSpeed", t.Enemy.MoveSpeed)
	positive("enemy.maxWaitTime", t.Enemy.MaxWaitTime)
	positive("enemy.frameWidth", float64(t.Enemy.FrameWidth))
	positive("enemy.frameHeight", float64(t.Enemy.FrameHeight))
	positive("enemy.runFrameTime", t.Enemy.RunFrameTime)
	positive("enemy.idleFrameTime", t.Enemy.IdleFrameTime)
	positive("player.maxSpeed", t.Player.MaxSpeed)
	positive("player.gravity", t.Player.Gravity)
	positive("player.deathDuration", t.Player.DeathDuration)
	positive("level.timeLimit", t.Level.TimeLimit)
	if len(errs) > 0 {
		return fmt.Errorf("invalid tuning: %w", errors.Join(errs...))
	}
	return nil
}

// Apply installs the tuning into the global configuration.
func (t Tuning) Apply() {
	Player = t.Player
	Enemy = t.Enemy
	Level = t.Level
	Debug = t.Debug
}

// LoadOverrides reads a YAML tuning file layered over the current values.
// The globals are not touched; call Apply on the result.
func LoadOverrides(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CurrentTuning(), fmt.Errorf("read tuning %s: %w", path, err)
	}
	return ParseTuning(data, CurrentTuning())
}

// MustLoadOverrides loads and applies a tuning file and panics on error.
func MustLoadOverrides(path string) Tuning {
	t, err := LoadOverrides(path)
	if err != nil {
		panic("Failed to load tuning: " + err.Error())
	}
	t.Apply()
	return t
}
