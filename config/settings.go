package config

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrKeyMapOverlap is returned when both players bind the same key.
var ErrKeyMapOverlap = errors.New("player key maps overlap")

// Settings is the persisted per-install configuration. The runtime flags at
// the bottom are reset on every load and never serialized.
type Settings struct {
	SeasonalTextures    bool `json:"seasonalTextures" yaml:"seasonal_textures"`
	OriginalTextures    bool `json:"originalTextures" yaml:"original_textures"`
	ShaderEffects       bool `json:"shaderEffects" yaml:"shader_effects"`
	MotionInterpolation bool `json:"motionInterpolation" yaml:"motion_interpolation"`
	TouchControls       bool `json:"touchControls" yaml:"touch_controls"`

	Player1KeyMap         KeyMap         `json:"player1KeyMap" yaml:"player1_key_map"`
	Player2KeyMap         KeyMap         `json:"player2KeyMap" yaml:"player2_key_map"`
	Player1ControllerType ControllerType `json:"player1ControllerType" yaml:"player1_controller_type"`
	Player2ControllerType ControllerType `json:"player2ControllerType" yaml:"player2_controller_type"`

	Speed           float64 `json:"-" yaml:"-"`
	GodMode         bool    `json:"-" yaml:"-"`
	InfiniteBooster bool    `json:"-" yaml:"-"`
	DebugOutlines   bool    `json:"-" yaml:"-"`
}

// DefaultSettings returns a fresh settings record
func DefaultSettings() Settings {
	return Settings{
		SeasonalTextures:    true,
		OriginalTextures:    false,
		ShaderEffects:       true,
		MotionInterpolation: true,
		TouchControls:       runtime.GOOS == "android",

		Player1KeyMap:         DefaultPlayer1KeyMap(),
		Player2KeyMap:         DefaultPlayer2KeyMap(),
		Player1ControllerType: Keyboard(),
		Player2ControllerType: Keyboard(),

		Speed: 1.0,
	}
}

// ResetRuntimeFlags restores the non-persisted flags to their defaults.
func (s *Settings) ResetRuntimeFlags() {
	s.Speed = 1.0
	s.GodMode = false
	s.InfiniteBooster = false
	s.DebugOutlines = false
}

// KeyMap returns the key map of player 0 or 1
func (s *Settings) KeyMap(player int) KeyMap {
	if player == 1 {
		return s.Player2KeyMap
	}
	return s.Player1KeyMap
}

// ControllerType returns the selector of player 0 or 1
func (s *Settings) ControllerType(player int) ControllerType {
	if player == 1 {
		return s.Player2ControllerType
	}
	return s.Player1ControllerType
}

// Validate checks both controller selectors, the key maps of keyboard
// players, and that the two key maps are disjoint. Overlap only matters when
// both players are on the keyboard.
func (s *Settings) Validate() error {
	for player := 0; player < 2; player++ {
		sel := s.ControllerType(player)
		if err := sel.Validate(); err != nil {
			return fmt.Errorf("player %d: %w", player+1, err)
		}
		if sel.Kind != ControllerKeyboard {
			continue
		}
		if err := s.KeyMap(player).Validate(); err != nil {
			return fmt.Errorf("player %d: %w", player+1, err)
		}
	}

	if s.Player1ControllerType.Kind != ControllerKeyboard || s.Player2ControllerType.Kind != ControllerKeyboard {
		return nil
	}
	if shared := s.Player1KeyMap.Shared(s.Player2KeyMap); len(shared) > 0 {
		return fmt.Errorf("%w: %v", ErrKeyMapOverlap, shared)
	}
	return nil
}
