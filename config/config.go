package config

import "image/color"

// PlayerConfig contains all player-related configuration values.
// Speeds are in pixels per second, accelerations in pixels per second squared.
type PlayerConfig struct {
	// Movement
	JumpSpeed    float64 `yaml:"jumpSpeed"`
	Acceleration float64 `yaml:"acceleration"`
	MaxSpeed     float64 `yaml:"maxSpeed"`

	// Physics
	Gravity      float64 `yaml:"gravity"`
	Friction     float64 `yaml:"friction"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`

	// Death and respawn
	DeathDuration  float64 `yaml:"deathDuration"`  // seconds the death animation plays before respawn
	DeathFallSpeed float64 `yaml:"deathFallSpeed"` // pixels the corpse sinks over DeathDuration

	// Dimensions
	CollisionWidth  int `yaml:"collisionWidth"`
	CollisionHeight int `yaml:"collisionHeight"`
}

// EnemyConfig contains configuration for patrolling enemies.
type EnemyConfig struct {
	MoveSpeed   float64 `yaml:"moveSpeed"`   // pixels per second
	MaxWaitTime float64 `yaml:"maxWaitTime"` // seconds spent at a ledge or wall before turning

	// Sprite frame size; the collision box is derived from it
	FrameWidth  int `yaml:"frameWidth"`
	FrameHeight int `yaml:"frameHeight"`

	// Seconds per animation frame
	RunFrameTime  float64 `yaml:"runFrameTime"`
	IdleFrameTime float64 `yaml:"idleFrameTime"`

	DefaultSprite string `yaml:"defaultSprite"`
}

// LevelConfig contains level flow configuration.
type LevelConfig struct {
	LevelsDir  string  `yaml:"levelsDir"`
	TimeLimit  float64 `yaml:"timeLimit"`  // seconds, used when a map does not set its own
	SpaceCellW int     `yaml:"spaceCellW"` // resolv space cell size
	SpaceCellH int     `yaml:"spaceCellH"`
}

// ServerConfig contains dedicated server defaults.
type ServerConfig struct {
	Port     uint   `yaml:"port"`
	TickRate int    `yaml:"tickRate"`
	Level    string `yaml:"level"`
}

// UIConfig contains HUD configuration values.
type UIConfig struct {
	HUDMargin     float64 `yaml:"hudMargin"`
	HUDLineHeight float64 `yaml:"hudLineHeight"`
	HUDFontSize   float64 `yaml:"hudFontSize"`
	TitleFontSize float64 `yaml:"titleFontSize"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawBounds bool `yaml:"drawBounds"` // Draw collision boxes and probed tiles
	LogPatrol  bool `yaml:"logPatrol"`  // Log enemy turns and kills
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Level LevelConfig
var Server ServerConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Stone        = color.RGBA{R: 90, G: 84, B: 110, A: 255}
	Plank        = color.RGBA{R: 150, G: 105, B: 60, A: 255}
	Sky          = color.RGBA{R: 24, G: 26, B: 40, A: 255}
)

// Direction constants for facing
const (
	DirectionLeft  = -1
	DirectionRight = 1
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Player = PlayerConfig{
		JumpSpeed:    560,
		Acceleration: 1500,
		MaxSpeed:     180,

		Gravity:      1800,
		Friction:     1400,
		MaxFallSpeed: 600,

		DeathDuration:  1.0,
		DeathFallSpeed: 24,

		CollisionWidth:  18,
		CollisionHeight: 40,
	}

	Enemy = EnemyConfig{
		MoveSpeed:   64,
		MaxWaitTime: 0.5,

		FrameWidth:  64,
		FrameHeight: 64,

		RunFrameTime:  0.1,
		IdleFrameTime: 0.15,

		DefaultSprite: "monsterA",
	}

	Level = LevelConfig{
		LevelsDir:  "levels",
		TimeLimit:  120,
		SpaceCellW: 16,
		SpaceCellH: 16,
	}

	Server = ServerConfig{
		Port:     7373,
		TickRate: 20,
	}

	UI = UIConfig{
		HUDMargin:     10,
		HUDLineHeight: 16,
		HUDFontSize:   12,
		TitleFontSize: 24,
	}

	Debug = DebugConfig{
		DrawBounds: false,
		LogPatrol:  false,
	}
}
