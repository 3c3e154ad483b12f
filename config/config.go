package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer every entity lives on.
const Default = ecs.LayerDefault

// WorldConfig contains world dimensions and global physics values
type WorldConfig struct {
	Width  int
	Height int

	// Ticks per second of the simulation (ebiten's fixed update rate)
	TPS int

	// Downward acceleration in px/s^2, applied per body gravity scale
	Gravity float64

	// Vertical position at which the player touches the ground
	GroundY float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Spawn position
	StartX float64
	StartY float64

	// Movement (px/s). Vertical speed is pinned every tick by the
	// controller, so the player body carries gravity scale 0.
	MoveSpeed          float64
	FallSpeed          float64 // free fall
	SlowFallSpeed      float64 // holding up
	ParachuteFallSpeed float64 // parachute deployed, overrides up

	// Sprite scale and base frame size; collision box is frame * scale
	Scale       float64
	FrameWidth  int
	FrameHeight int

	// Frames the damage flash stays on after a crash
	FlashFrames int
}

// CollisionWidth returns the player's scaled collision box width.
func (p PlayerConfig) CollisionWidth() float64 {
	return float64(p.FrameWidth) * p.Scale
}

// CollisionHeight returns the player's scaled collision box height.
func (p PlayerConfig) CollisionHeight() float64 {
	return float64(p.FrameHeight) * p.Scale
}

// ObstacleConfig contains obstacle spawning and motion values
type ObstacleConfig struct {
	Width  float64
	Height float64

	// Constant leftward speed in px/s
	Speed float64

	// Altitude band for randomized spawns (inclusive)
	MinAltitude int
	MaxAltitude int

	// Obstacles past this x coordinate are reclaimed
	ReclaimX float64

	SpawnIntervalMS   int
	ReclaimIntervalMS int
}

// RunConfig contains scoring cadence and end-of-run banner templates
type RunConfig struct {
	ScoreIntervalMS int

	ScoreFormat    string
	BannerObstacle string
	BannerGround   string
	BannerLanded   string
}

// HUDConfig contains HUD layout and banner presentation values
type HUDConfig struct {
	Margin       int
	ScoreColor   color.RGBA
	BannerColor  color.RGBA
	BannerY      float64
	LineHeight   float64
	FadeDuration float32 // banner fade-in, seconds
}

// CloudConfig contains decorative background cloud values
type CloudConfig struct {
	Count         int
	DriftSpeed    float64 // px/s leftward
	BobAmplitude  float64 // px of vertical travel per bob
	BobDuration   float32 // seconds for one bob leg
	MinAltitude   int
	MaxAltitude   int
	Width, Height float64
}

// MenuConfig contains title menu values
type MenuConfig struct {
	Title           string
	Subtitle        string
	BackgroundColor color.RGBA
}

// Global configuration instances
var World WorldConfig
var Player PlayerConfig
var Obstacle ObstacleConfig
var Run RunConfig
var HUD HUDConfig
var Cloud CloudConfig
var Menu MenuConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	SkyBlue      = color.RGBA{R: 110, G: 180, B: 240, A: 255}
	SkyHorizon   = color.RGBA{R: 170, G: 215, B: 250, A: 255}
	CloudWhite   = color.RGBA{R: 245, G: 248, B: 252, A: 230}
	GroundGreen  = color.RGBA{R: 70, G: 150, B: 60, A: 255}
	GroundDark   = color.RGBA{R: 50, G: 110, B: 45, A: 255}
	PackBrown    = color.RGBA{R: 140, G: 90, B: 40, A: 255}
	SuitOrange   = color.RGBA{R: 230, G: 120, B: 30, A: 255}
	CanopyRed    = color.RGBA{R: 210, G: 50, B: 50, A: 255}
	ObstacleGray = color.RGBA{R: 70, G: 70, B: 80, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// TicksFor converts a millisecond interval to simulation ticks.
func TicksFor(ms int) int {
	return ms * World.TPS / 1000
}

func init() {
	World = WorldConfig{
		Width:   800,
		Height:  600,
		TPS:     60,
		Gravity: 200,
		GroundY: 550,
	}

	Player = PlayerConfig{
		StartX:             400,
		StartY:             100,
		MoveSpeed:          200,
		FallSpeed:          200,
		SlowFallSpeed:      100,
		ParachuteFallSpeed: 50,
		Scale:              2,
		FrameWidth:         16,
		FrameHeight:        24,
		FlashFrames:        45,
	}

	Obstacle = ObstacleConfig{
		Width:             48,
		Height:            20,
		Speed:             -150,
		MinAltitude:       200,
		MaxAltitude:       550,
		ReclaimX:          -200,
		SpawnIntervalMS:   1500,
		ReclaimIntervalMS: 100,
	}

	Run = RunConfig{
		ScoreIntervalMS: 100,
		ScoreFormat:     "Score: %d",
		BannerObstacle:  "Game Over!\nFinal Score: %d\nPress R to restart",
		BannerGround:    "Crash Landing!\nYou must deploy the parachute to land safely!\nPress R to restart",
		BannerLanded:    "Landed Safely!\nFinal Score: %d\nPress R to restart",
	}

	HUD = HUDConfig{
		Margin:       10,
		ScoreColor:   White,
		BannerColor:  White,
		BannerY:      240,
		LineHeight:   28,
		FadeDuration: 0.5,
	}

	Cloud = CloudConfig{
		Count:        5,
		DriftSpeed:   12,
		BobAmplitude: 14,
		BobDuration:  2.5,
		MinAltitude:  60,
		MaxAltitude:  420,
		Width:        96,
		Height:       36,
	}

	Menu = MenuConfig{
		Title:           "PARAFALL",
		Subtitle:        "Dodge the drones. Deploy the chute. Stick the landing.",
		BackgroundColor: color.RGBA{R: 20, G: 30, B: 50, A: 255},
	}
}
