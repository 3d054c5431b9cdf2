package input

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// ErrBackendUnavailable is returned by Update when the gamepad
	// subsystem failed to initialize.
	ErrBackendUnavailable = errors.New("gamepad backend unavailable")

	// ErrGamepadNotFound is returned when a gamepad index has no connected device.
	ErrGamepadNotFound = errors.New("gamepad not found")
)

// KeySource answers raw keyboard queries
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
}

// GamepadBackend is the gamepad subsystem controllers sample from. Vertical
// axes are reported with up as positive.
type GamepadBackend interface {
	// GamepadIDs lists connected devices in a stable order.
	GamepadIDs() []ebiten.GamepadID
	Connected(id ebiten.GamepadID) bool
	// Axis returns false when the device doesn't support the axis.
	Axis(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) (float64, bool)
	Pressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool
	Name(id ebiten.GamepadID) string
}

// Session carries the device sources shared by every controller for the
// lifetime of a play session.
type Session struct {
	Keys KeySource
	// Gamepads is nil when no gamepad subsystem is present.
	Gamepads GamepadBackend
	// GamepadErr is set when the gamepad subsystem failed to initialize.
	GamepadErr error
}

// NewSession returns a session backed by Ebitengine's input state.
func NewSession() *Session {
	return &Session{
		Keys:     EbitenKeys{},
		Gamepads: NewEbitenGamepads(),
	}
}

func (s *Session) gamepads() (GamepadBackend, error) {
	if s == nil {
		return nil, nil
	}
	if s.GamepadErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, s.GamepadErr)
	}
	return s.Gamepads, nil
}

func (s *Session) keys() KeySource {
	if s == nil {
		return nil
	}
	return s.Keys
}
