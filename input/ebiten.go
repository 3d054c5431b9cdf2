package input

import (
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenKeys reads the keyboard through Ebitengine
type EbitenKeys struct{}

func (EbitenKeys) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// EbitenGamepads reads gamepads that expose the standard layout. Devices
// without it are reported as disconnected.
type EbitenGamepads struct {
	// Reusable slice for gamepad IDs to avoid allocations
	ids []ebiten.GamepadID
}

func NewEbitenGamepads() *EbitenGamepads {
	return &EbitenGamepads{}
}

func (g *EbitenGamepads) GamepadIDs() []ebiten.GamepadID {
	g.ids = ebiten.AppendGamepadIDs(g.ids[:0])
	out := make([]ebiten.GamepadID, 0, len(g.ids))
	for _, id := range g.ids {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			out = append(out, id)
		}
	}
	return out
}

func (g *EbitenGamepads) Connected(id ebiten.GamepadID) bool {
	g.ids = ebiten.AppendGamepadIDs(g.ids[:0])
	return slices.Contains(g.ids, id) && ebiten.IsStandardGamepadLayoutAvailable(id)
}

func (g *EbitenGamepads) Axis(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) (float64, bool) {
	if !ebiten.IsStandardGamepadAxisAvailable(id, axis) {
		return 0, false
	}
	v := ebiten.StandardGamepadAxisValue(id, axis)
	switch axis {
	case ebiten.StandardGamepadAxisLeftStickVertical, ebiten.StandardGamepadAxisRightStickVertical:
		// Standard layout reports up as negative
		v = -v
	}
	return v, true
}

func (g *EbitenGamepads) Pressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(id, button)
}

func (g *EbitenGamepads) Name(id ebiten.GamepadID) string {
	return ebiten.GamepadName(id)
}

// GamepadStyle is the button labelling family of a gamepad, for UI prompts
type GamepadStyle int

const (
	StyleXbox GamepadStyle = iota
	StylePlayStation
)

func (s GamepadStyle) String() string {
	if s == StylePlayStation {
		return "PlayStation"
	}
	return "Xbox"
}

// StyleFromName guesses the button labelling from a device name. Anything
// that isn't recognisably a PlayStation pad is treated as Xbox-style.
func StyleFromName(name string) GamepadStyle {
	name = strings.ToLower(name)
	for _, marker := range []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"} {
		if strings.Contains(name, marker) {
			return StylePlayStation
		}
	}
	return StyleXbox
}
