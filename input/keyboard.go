package input

import (
	cfg "github.com/automoto/playerinput/config"
)

// KeyboardStartKey opens the pause menu for every keyboard player.
const KeyboardStartKey = cfg.StartKey

// KeyboardController reads one player's keys through a KeyMap
type KeyboardController struct {
	edges
	keyMap cfg.KeyMap
}

func NewKeyboardController(keyMap cfg.KeyMap) *KeyboardController {
	return &KeyboardController{keyMap: keyMap}
}

// KeyMap returns the bindings this controller was built with.
func (c *KeyboardController) KeyMap() cfg.KeyMap { return c.keyMap }

// Update samples every bound key. Without a key source the state is kept.
func (c *KeyboardController) Update(s *Session) error {
	keys := s.keys()
	if keys == nil {
		return nil
	}

	km := c.keyMap
	c.state = KeyState(0).
		With(ButtonLeft, keys.IsKeyPressed(km.Left)).
		With(ButtonRight, keys.IsKeyPressed(km.Right)).
		With(ButtonUp, keys.IsKeyPressed(km.Up)).
		With(ButtonDown, keys.IsKeyPressed(km.Down)).
		With(ButtonMap, keys.IsKeyPressed(km.Map)).
		With(ButtonInventory, keys.IsKeyPressed(km.Inventory)).
		With(ButtonJump, keys.IsKeyPressed(km.Jump)).
		With(ButtonShoot, keys.IsKeyPressed(km.Shoot)).
		With(ButtonNextWeapon, keys.IsKeyPressed(km.NextWeapon)).
		With(ButtonPrevWeapon, keys.IsKeyPressed(km.PrevWeapon)).
		With(ButtonStart, keys.IsKeyPressed(KeyboardStartKey))

	return nil
}

func (c *KeyboardController) MoveUp() bool    { return c.state.Pressed(ButtonUp) }
func (c *KeyboardController) MoveLeft() bool  { return c.state.Pressed(ButtonLeft) }
func (c *KeyboardController) MoveDown() bool  { return c.state.Pressed(ButtonDown) }
func (c *KeyboardController) MoveRight() bool { return c.state.Pressed(ButtonRight) }

// The keyboard has a single "stick", so looking follows movement.
func (c *KeyboardController) LookUp() bool    { return c.MoveUp() }
func (c *KeyboardController) LookLeft() bool  { return c.MoveLeft() }
func (c *KeyboardController) LookDown() bool  { return c.MoveDown() }
func (c *KeyboardController) LookRight() bool { return c.MoveRight() }

// MoveAnalogX is -1 with only left held, 1 with only right held and 0 when
// neither or both are held.
func (c *KeyboardController) MoveAnalogX() float64 {
	return axisFromKeys(c.MoveRight(), c.MoveLeft())
}

// MoveAnalogY is 1 with only up held, -1 with only down held and 0 when
// neither or both are held.
func (c *KeyboardController) MoveAnalogY() float64 {
	return axisFromKeys(c.MoveUp(), c.MoveDown())
}

func axisFromKeys(positive, negative bool) float64 {
	switch {
	case positive && !negative:
		return 1
	case negative && !positive:
		return -1
	default:
		return 0
	}
}

var _ PlayerController = (*KeyboardController)(nil)
