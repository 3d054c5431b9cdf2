package input

import (
	"fmt"
	"log"

	cfg "github.com/automoto/playerinput/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// ResolveGamepad looks up the index-th connected gamepad in the backend's
// enumeration. The index is never used as a device id directly.
func ResolveGamepad(gamepads GamepadBackend, index int) (ebiten.GamepadID, error) {
	if gamepads == nil {
		return 0, fmt.Errorf("%w: index %d: no gamepad subsystem", ErrGamepadNotFound, index)
	}
	ids := gamepads.GamepadIDs()
	if index < 0 || index >= len(ids) {
		return 0, fmt.Errorf("%w: index %d, %d connected", ErrGamepadNotFound, index, len(ids))
	}
	return ids[index], nil
}

// NewPlayerController builds the controller a selector asks for. A gamepad
// selector whose index can't be resolved yields a controller that stays
// disconnected for its whole life; applying settings again retries the
// lookup.
func NewPlayerController(sel cfg.ControllerType, keyMap cfg.KeyMap, gamepads GamepadBackend) PlayerController {
	if sel.Kind != cfg.ControllerGamepad {
		return NewKeyboardController(keyMap)
	}

	id, err := ResolveGamepad(gamepads, sel.GamepadIndex)
	if err != nil {
		log.Printf("[input] %s: %v, player gets no input", sel, err)
		return newDetachedGamepadController()
	}
	return NewGamepadController(id, gamepads.Name(id))
}

// NewController builds a controller against this session's gamepad
// subsystem. A failed subsystem resolves nothing.
func (s *Session) NewController(sel cfg.ControllerType, keyMap cfg.KeyMap) PlayerController {
	gp, err := s.gamepads()
	if err != nil {
		gp = nil
	}
	return NewPlayerController(sel, keyMap, gp)
}
