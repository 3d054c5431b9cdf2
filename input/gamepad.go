package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// Deadzone is the stick magnitude below which an axis reads as neutral.
	Deadzone = 0.12
	// DirectionThreshold is the stick deflection past which a direction is held.
	DirectionThreshold = 0.3
)

// gamepadButtons maps standard-layout buttons to logical buttons
var gamepadButtons = []struct {
	button Button
	pad    ebiten.StandardGamepadButton
}{
	{ButtonJump, ebiten.StandardGamepadButtonRightBottom},         // A / Cross
	{ButtonShoot, ebiten.StandardGamepadButtonRightRight},         // B / Circle
	{ButtonPrevWeapon, ebiten.StandardGamepadButtonFrontTopLeft},  // LB / L1
	{ButtonNextWeapon, ebiten.StandardGamepadButtonFrontTopRight}, // RB / R1
	{ButtonStart, ebiten.StandardGamepadButtonCenterRight},        // Start / Options
	{ButtonInventory, ebiten.StandardGamepadButtonRightTop},       // Y / Triangle
	{ButtonMap, ebiten.StandardGamepadButtonCenterLeft},           // Back / Share
}

// GamepadController samples one physical gamepad
type GamepadController struct {
	edges

	id       ebiten.GamepadID
	resolved bool
	name     string
	style    GamepadStyle

	leftX  float64
	leftY  float64
	rightX float64
	rightY float64
}

// NewGamepadController returns a controller bound to a device id obtained
// from the backend's enumeration.
func NewGamepadController(id ebiten.GamepadID, name string) *GamepadController {
	return &GamepadController{id: id, resolved: true, name: name, style: StyleFromName(name)}
}

// newDetachedGamepadController returns a controller with no device. It
// behaves like a gamepad that is never connected.
func newDetachedGamepadController() *GamepadController {
	return &GamepadController{}
}

// ID returns the bound device and whether there is one.
func (c *GamepadController) ID() (ebiten.GamepadID, bool) {
	return c.id, c.resolved
}

// Resolved reports whether a device was found at construction time.
func (c *GamepadController) Resolved() bool { return c.resolved }

// Name is the device name seen at construction time.
func (c *GamepadController) Name() string { return c.name }

// Style returns the button labelling family of the bound device, detected
// once from its name when the controller was built.
func (c *GamepadController) Style() GamepadStyle { return c.style }

// Sticks returns the filtered left and right stick values, up positive.
func (c *GamepadController) Sticks() (leftX, leftY, rightX, rightY float64) {
	return c.leftX, c.leftY, c.rightX, c.rightY
}

// Update samples the device. A missing subsystem or a disconnected device
// leaves every sampled value untouched.
func (c *GamepadController) Update(s *Session) error {
	gp, err := s.gamepads()
	if err != nil {
		return err
	}
	if gp == nil || !c.resolved || !gp.Connected(c.id) {
		return nil
	}

	axes := []struct {
		value *float64
		axis  ebiten.StandardGamepadAxis
	}{
		{&c.leftX, ebiten.StandardGamepadAxisLeftStickHorizontal},
		{&c.leftY, ebiten.StandardGamepadAxisLeftStickVertical},
		{&c.rightX, ebiten.StandardGamepadAxisRightStickHorizontal},
		{&c.rightY, ebiten.StandardGamepadAxisRightStickVertical},
	}
	for _, a := range axes {
		// Unsupported axes keep their last value
		if v, ok := gp.Axis(c.id, a.axis); ok {
			*a.value = applyDeadzone(v)
		}
	}

	state := c.state.
		With(ButtonUp, c.leftY > DirectionThreshold).
		With(ButtonLeft, c.leftX < -DirectionThreshold).
		With(ButtonDown, c.leftY < -DirectionThreshold).
		With(ButtonRight, c.leftX > DirectionThreshold)
	for _, b := range gamepadButtons {
		state = state.With(b.button, gp.Pressed(c.id, b.pad))
	}
	c.state = state

	return nil
}

func applyDeadzone(v float64) float64 {
	if math.Abs(v) < Deadzone {
		return 0
	}
	return v
}

func (c *GamepadController) MoveUp() bool    { return c.leftY > DirectionThreshold }
func (c *GamepadController) MoveLeft() bool  { return c.leftX < -DirectionThreshold }
func (c *GamepadController) MoveDown() bool  { return c.leftY < -DirectionThreshold }
func (c *GamepadController) MoveRight() bool { return c.leftX > DirectionThreshold }

// Look directions accept either stick.
func (c *GamepadController) LookUp() bool {
	return c.leftY > DirectionThreshold || c.rightY > DirectionThreshold
}

func (c *GamepadController) LookLeft() bool {
	return c.leftX < -DirectionThreshold || c.rightX < -DirectionThreshold
}

func (c *GamepadController) LookDown() bool {
	return c.leftY < -DirectionThreshold || c.rightY < -DirectionThreshold
}

func (c *GamepadController) LookRight() bool {
	return c.leftX > DirectionThreshold || c.rightX > DirectionThreshold
}

func (c *GamepadController) MoveAnalogX() float64 { return c.leftX }
func (c *GamepadController) MoveAnalogY() float64 { return c.leftY }

var _ PlayerController = (*GamepadController)(nil)
