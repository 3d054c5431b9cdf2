// Package input turns keyboard and gamepad devices into per-player
// controllers with a uniform query surface.
//
// Once per frame the game loop calls Update and then UpdateTrigger on every
// player's controller. Everything else reads state through the query methods,
// which never change the controller.
package input

// PlayerController is the input surface a player's game logic reads from.
// Implemented by *KeyboardController and *GamepadController.
type PlayerController interface {
	// Update samples the underlying device. It never changes trigger state.
	Update(s *Session) error
	// UpdateTrigger computes this frame's rising edges from the last Update
	// and makes the current state the previous one. Call once per frame,
	// after Update.
	UpdateTrigger()

	MoveUp() bool
	MoveLeft() bool
	MoveDown() bool
	MoveRight() bool

	PrevWeapon() bool
	NextWeapon() bool
	Jump() bool
	Shoot() bool

	TriggerUp() bool
	TriggerLeft() bool
	TriggerDown() bool
	TriggerRight() bool
	TriggerPrevWeapon() bool
	TriggerNextWeapon() bool
	TriggerJump() bool
	TriggerShoot() bool
	TriggerInventory() bool
	TriggerMap() bool

	TriggerMenuOK() bool
	TriggerMenuBack() bool
	TriggerMenuPause() bool

	LookUp() bool
	LookLeft() bool
	LookDown() bool
	LookRight() bool

	// MoveAnalogX is in [-1, 1], negative is left.
	MoveAnalogX() float64
	// MoveAnalogY is in [-1, 1], positive is up.
	MoveAnalogY() float64
}

// edges holds the frame-to-frame state shared by both controller kinds.
type edges struct {
	state    KeyState
	oldState KeyState
	trigger  KeyState
}

func (e *edges) UpdateTrigger() {
	e.trigger = e.state.Rising(e.oldState)
	e.oldState = e.state
}

// State returns the buttons sampled by the last Update.
func (e *edges) State() KeyState { return e.state }

// Trigger returns the rising edges computed by the last UpdateTrigger.
func (e *edges) Trigger() KeyState { return e.trigger }

func (e *edges) PrevWeapon() bool { return e.state.Pressed(ButtonPrevWeapon) }
func (e *edges) NextWeapon() bool { return e.state.Pressed(ButtonNextWeapon) }
func (e *edges) Jump() bool       { return e.state.Pressed(ButtonJump) }
func (e *edges) Shoot() bool      { return e.state.Pressed(ButtonShoot) }

func (e *edges) TriggerUp() bool         { return e.trigger.Pressed(ButtonUp) }
func (e *edges) TriggerLeft() bool       { return e.trigger.Pressed(ButtonLeft) }
func (e *edges) TriggerDown() bool       { return e.trigger.Pressed(ButtonDown) }
func (e *edges) TriggerRight() bool      { return e.trigger.Pressed(ButtonRight) }
func (e *edges) TriggerPrevWeapon() bool { return e.trigger.Pressed(ButtonPrevWeapon) }
func (e *edges) TriggerNextWeapon() bool { return e.trigger.Pressed(ButtonNextWeapon) }
func (e *edges) TriggerJump() bool       { return e.trigger.Pressed(ButtonJump) }
func (e *edges) TriggerShoot() bool      { return e.trigger.Pressed(ButtonShoot) }
func (e *edges) TriggerInventory() bool  { return e.trigger.Pressed(ButtonInventory) }
func (e *edges) TriggerMap() bool        { return e.trigger.Pressed(ButtonMap) }

// Menu actions alias gameplay buttons.
func (e *edges) TriggerMenuOK() bool    { return e.trigger.Pressed(ButtonJump) }
func (e *edges) TriggerMenuBack() bool  { return e.trigger.Pressed(ButtonShoot) }
func (e *edges) TriggerMenuPause() bool { return e.trigger.Pressed(ButtonStart) }

// StateReporter is implemented by every controller in this package. It
// exposes the raw packed state for diagnostics.
type StateReporter interface {
	State() KeyState
	Trigger() KeyState
}
