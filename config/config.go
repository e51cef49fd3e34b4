package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only ECS layer; ships, the camera and the HUD share it.
const Default ecs.LayerID = 0

// ShipConfig contains ship presentation values
type ShipConfig struct {
	// Health overlay
	HealthBarRadius float64 // overlay is culled once this close to a viewport edge

	// Thrust flame
	ThrustOffsetX  float64
	ThrustOffsetY  float64
	ThrustSpeed    float32 // animation frames per tick
	ThrustFadeIn   float32 // seconds for the flame to reach full alpha
	CollisionShape float64 // debug circle radius

	// Label
	LabelCharWidth float64 // estimated screen units per character
	LabelFontSize  float64
	LabelColor     color.RGBA
	KillerColor    color.RGBA // label colour for whoever last killed us
	DebugColor     color.RGBA
	DebugAlpha     float32
}

// UIConfig contains HUD values
type UIConfig struct {
	HealthBarHeight float64 // fallback bar when shaders are unavailable
	HUDMargin       float64
	HUDFontSize     float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows the local ship (0.0-1.0)
}

// ArenaConfig describes the world the ships fly in
type ArenaConfig struct {
	Width, Height int // world units, sizes the debug collision space
	CellSize      int
}

// NetworkConfig contains client connection defaults
type NetworkConfig struct {
	ServerAddress string
	PlayerName    string
	Version       string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	CollisionShapes bool // draw ship collision circles and the debug space
	Verbose         bool // log cosmetic misses such as unknown label names
	Offline         bool // run a local demo fleet instead of connecting
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Ship ShipConfig
var UI UIConfig
var Camera CameraConfig
var Arena ArenaConfig
var Network NetworkConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Magenta      = color.RGBA{R: 255, G: 119, B: 255, A: 255}
	SpaceBlack   = color.RGBA{R: 5, G: 8, B: 20, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
	}

	Ship = ShipConfig{
		HealthBarRadius: 40,

		ThrustOffsetX:  -27,
		ThrustOffsetY:  7,
		ThrustSpeed:    0.5,
		ThrustFadeIn:   0.15,
		CollisionShape: 20,

		LabelCharWidth: 6,
		LabelFontSize:  12,
		LabelColor:     White,
		KillerColor:    Red,
		DebugColor:     Magenta,
		DebugAlpha:     0.3,
	}

	UI = UIConfig{
		HealthBarHeight: 4,
		HUDMargin:       4,
		HUDFontSize:     12,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.2,
	}

	Arena = ArenaConfig{
		Width:    4000,
		Height:   4000,
		CellSize: 64,
	}

	Network = NetworkConfig{
		ServerAddress: "localhost:7373",
		PlayerName:    "pilot",
		Version:       "0.1.0",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		CollisionShapes: false,
		Verbose:         false,
		Offline:         false,
	}
}
