package input

import "strings"

// Button is a logical button and its bit position in a KeyState
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonUp
	ButtonDown
	ButtonMap
	ButtonInventory
	ButtonJump
	ButtonShoot
	ButtonNextWeapon
	ButtonPrevWeapon
	ButtonStart
	ButtonCount // Must be last
)

var buttonNames = [ButtonCount]string{
	ButtonLeft:       "left",
	ButtonRight:      "right",
	ButtonUp:         "up",
	ButtonDown:       "down",
	ButtonMap:        "map",
	ButtonInventory:  "inventory",
	ButtonJump:       "jump",
	ButtonShoot:      "shoot",
	ButtonNextWeapon: "next_weapon",
	ButtonPrevWeapon: "prev_weapon",
	ButtonStart:      "start",
}

func (b Button) String() string {
	if b >= ButtonCount {
		return "unknown"
	}
	return buttonNames[b]
}

// KeyState is a packed set of pressed logical buttons. Only the low
// ButtonCount bits are ever set.
type KeyState uint16

// Pressed reports whether b is set.
func (s KeyState) Pressed(b Button) bool {
	return s&(1<<b) != 0
}

// With returns a copy of s with b set or cleared.
func (s KeyState) With(b Button, on bool) KeyState {
	if b >= ButtonCount {
		return s
	}
	if on {
		return s | 1<<b
	}
	return s &^ (1 << b)
}

func (s KeyState) Xor(o KeyState) KeyState { return s ^ o }

func (s KeyState) And(o KeyState) KeyState { return s & o }

// Rising returns the buttons that are set in s but were not set in prev.
func (s KeyState) Rising(prev KeyState) KeyState {
	return s.Xor(prev).And(s)
}

// Buttons lists the set buttons in bit order.
func (s KeyState) Buttons() []Button {
	var out []Button
	for b := Button(0); b < ButtonCount; b++ {
		if s.Pressed(b) {
			out = append(out, b)
		}
	}
	return out
}

func (s KeyState) String() string {
	buttons := s.Buttons()
	if len(buttons) == 0 {
		return "-"
	}
	names := make([]string, len(buttons))
	for i, b := range buttons {
		names[i] = b.String()
	}
	return strings.Join(names, " ")
}
