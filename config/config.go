package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// HUDConfig contains the input viewer layout and colors
type HUDConfig struct {
	// Layout
	Margin       float64
	ColumnWidth  float64
	LineHeight   float64
	EdgeLogLines int // Rising edges kept per player

	// Colors
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	ActiveColor     color.RGBA
	InactiveColor   color.RGBA
	ErrorColor      color.RGBA
	PausedColor     color.RGBA

	// Font sizes
	TitleFontSize float64
	TextFontSize  float64
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	SettingsFile string // YAML override file, watched for changes
	SaveSettings bool   // Persist the effective settings on start
	ExportFile   string // Write the effective settings as YAML on start
	LogEdges     bool   // Log every rising edge
}

// Global configuration instances
var C *Config
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gray         = color.RGBA{R: 110, G: 110, B: 110, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	NearBlack    = color.RGBA{R: 16, G: 16, B: 24, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Player Input",
	}

	HUD = HUDConfig{
		Margin:       12,
		ColumnWidth:  310,
		LineHeight:   14,
		EdgeLogLines: 6,

		BackgroundColor: NearBlack,
		TitleColor:      LightBlue,
		TextColor:       White,
		ActiveColor:     LightGreen,
		InactiveColor:   Gray,
		ErrorColor:      LightRed,
		PausedColor:     BrightYellow,

		TitleFontSize: 14,
		TextFontSize:  10,
	}

	// Defaults, can be overridden by CLI flags
	Debug = DebugConfig{}
}
