package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrInvalidControllerType is returned when a controller selector can't be parsed.
var ErrInvalidControllerType = errors.New("invalid controller type")

// ControllerKind selects the input source family for a player
type ControllerKind int

const (
	ControllerKeyboard ControllerKind = iota
	ControllerGamepad
)

// ControllerType is the per-player input source selection. GamepadIndex is
// a position in the connected-device enumeration, not a device handle.
type ControllerType struct {
	Kind         ControllerKind
	GamepadIndex int
}

// Keyboard selects keyboard input
func Keyboard() ControllerType {
	return ControllerType{Kind: ControllerKeyboard}
}

// Gamepad selects the index-th connected gamepad
func Gamepad(index int) ControllerType {
	return ControllerType{Kind: ControllerGamepad, GamepadIndex: index}
}

func (c ControllerType) String() string {
	if c.Kind == ControllerGamepad {
		return "gamepad:" + strconv.Itoa(c.GamepadIndex)
	}
	return "keyboard"
}

// Validate reports whether the selector can be resolved at all.
func (c ControllerType) Validate() error {
	switch c.Kind {
	case ControllerKeyboard:
		return nil
	case ControllerGamepad:
		if c.GamepadIndex < 0 {
			return fmt.Errorf("%w: negative gamepad index %d", ErrInvalidControllerType, c.GamepadIndex)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidControllerType, c.Kind)
	}
}

// MarshalText encodes the selector as "keyboard" or "gamepad:<index>".
func (c ControllerType) MarshalText() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return []byte(c.String()), nil
}

func (c *ControllerType) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	if s == "keyboard" {
		*c = Keyboard()
		return nil
	}

	rest, ok := strings.CutPrefix(s, "gamepad")
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidControllerType, text)
	}
	rest = strings.TrimPrefix(rest, ":")
	if rest == "" {
		*c = Gamepad(0)
		return nil
	}
	idx, err := strconv.Atoi(rest)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidControllerType, text)
	}
	sel := Gamepad(idx)
	if err := sel.Validate(); err != nil {
		return err
	}
	*c = sel
	return nil
}

// ErrReservedKey is returned when a KeyMap binds a key with a fixed meaning.
var ErrReservedKey = errors.New("key is reserved")

// StartKey is the start/pause key shared by every keyboard player. KeyMaps
// may not bind it.
const StartKey = ebiten.KeyEscape

// KeyMap binds each logical button of one player to a keyboard key
type KeyMap struct {
	Left       ebiten.Key `json:"left" yaml:"left"`
	Up         ebiten.Key `json:"up" yaml:"up"`
	Right      ebiten.Key `json:"right" yaml:"right"`
	Down       ebiten.Key `json:"down" yaml:"down"`
	PrevWeapon ebiten.Key `json:"prevWeapon" yaml:"prev_weapon"`
	NextWeapon ebiten.Key `json:"nextWeapon" yaml:"next_weapon"`
	Jump       ebiten.Key `json:"jump" yaml:"jump"`
	Shoot      ebiten.Key `json:"shoot" yaml:"shoot"`
	Inventory  ebiten.Key `json:"inventory" yaml:"inventory"`
	Map        ebiten.Key `json:"map" yaml:"map"`
}

// Keys returns every bound key in field order.
func (k KeyMap) Keys() []ebiten.Key {
	return []ebiten.Key{
		k.Left, k.Up, k.Right, k.Down,
		k.PrevWeapon, k.NextWeapon,
		k.Jump, k.Shoot,
		k.Inventory, k.Map,
	}
}

// Validate rejects bindings of StartKey.
func (k KeyMap) Validate() error {
	for _, key := range k.Keys() {
		if key == StartKey {
			return fmt.Errorf("%w: %v is the start key", ErrReservedKey, key)
		}
	}
	return nil
}

// Shared returns the keys bound in both maps.
func (k KeyMap) Shared(other KeyMap) []ebiten.Key {
	bound := make(map[ebiten.Key]struct{}, 10)
	for _, key := range k.Keys() {
		bound[key] = struct{}{}
	}

	var shared []ebiten.Key
	for _, key := range other.Keys() {
		if _, ok := bound[key]; ok {
			shared = append(shared, key)
			delete(bound, key)
		}
	}
	return shared
}

// DefaultPlayer1KeyMap uses the arrow keys and the left letter block.
func DefaultPlayer1KeyMap() KeyMap {
	return KeyMap{
		Left:       ebiten.KeyArrowLeft,
		Up:         ebiten.KeyArrowUp,
		Right:      ebiten.KeyArrowRight,
		Down:       ebiten.KeyArrowDown,
		PrevWeapon: ebiten.KeyA,
		NextWeapon: ebiten.KeyS,
		Jump:       ebiten.KeyZ,
		Shoot:      ebiten.KeyX,
		Inventory:  ebiten.KeyQ,
		Map:        ebiten.KeyW,
	}
}

// DefaultPlayer2KeyMap uses the punctuation cluster and the middle letter block.
func DefaultPlayer2KeyMap() KeyMap {
	return KeyMap{
		Left:       ebiten.KeyComma,
		Up:         ebiten.KeyL,
		Right:      ebiten.KeySlash,
		Down:       ebiten.KeyPeriod,
		PrevWeapon: ebiten.KeyG,
		NextWeapon: ebiten.KeyH,
		Jump:       ebiten.KeyB,
		Shoot:      ebiten.KeyN,
		Inventory:  ebiten.KeyT,
		Map:        ebiten.KeyY,
	}
}
