package components

import (
	cfg "github.com/automoto/playerinput/config"
	"github.com/automoto/playerinput/input"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device a player is using
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
	InputNone // Gamepad selected but no device resolved
)

func (m InputMethod) String() string {
	switch m {
	case InputKeyboard:
		return "Keyboard"
	case InputXbox:
		return "Xbox"
	case InputPlayStation:
		return "PlayStation"
	default:
		return "No device"
	}
}

// PlayerInputData binds one player slot to its controller.
// The controller is replaced whenever the slot's selector or key map changes.
type PlayerInputData struct {
	PlayerIndex int // 0 or 1
	Controller  input.PlayerController
	Selector    cfg.ControllerType
	KeyMap      cfg.KeyMap
	InputMethod InputMethod // For UI prompts
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()

// InputStatusData is the singleton holding the last gamepad subsystem error
type InputStatusData struct {
	Err   error
	Frame int // Frames since the input system started
}

var InputStatus = donburi.NewComponentType[InputStatusData]()
