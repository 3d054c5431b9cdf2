package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

type fakePad struct {
	name      string
	connected bool
	axes      map[ebiten.StandardGamepadAxis]float64
	buttons   map[ebiten.StandardGamepadButton]bool
}

// fakeGamepads is an in-memory gamepad subsystem. Axes missing from a pad's
// map are reported as unsupported.
type fakeGamepads struct {
	order []ebiten.GamepadID
	pads  map[ebiten.GamepadID]*fakePad
}

func newFakeGamepads() *fakeGamepads {
	return &fakeGamepads{pads: map[ebiten.GamepadID]*fakePad{}}
}

func (f *fakeGamepads) plug(id ebiten.GamepadID, name string) *fakePad {
	p := &fakePad{
		name:      name,
		connected: true,
		axes: map[ebiten.StandardGamepadAxis]float64{
			ebiten.StandardGamepadAxisLeftStickHorizontal:  0,
			ebiten.StandardGamepadAxisLeftStickVertical:    0,
			ebiten.StandardGamepadAxisRightStickHorizontal: 0,
			ebiten.StandardGamepadAxisRightStickVertical:   0,
		},
		buttons: map[ebiten.StandardGamepadButton]bool{},
	}
	f.order = append(f.order, id)
	f.pads[id] = p
	return p
}

func (f *fakeGamepads) GamepadIDs() []ebiten.GamepadID {
	var out []ebiten.GamepadID
	for _, id := range f.order {
		if f.pads[id].connected {
			out = append(out, id)
		}
	}
	return out
}

func (f *fakeGamepads) Connected(id ebiten.GamepadID) bool {
	p, ok := f.pads[id]
	return ok && p.connected
}

func (f *fakeGamepads) Axis(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) (float64, bool) {
	v, ok := f.pads[id].axes[axis]
	return v, ok
}

func (f *fakeGamepads) Pressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool {
	return f.pads[id].buttons[button]
}

func (f *fakeGamepads) Name(id ebiten.GamepadID) string {
	return f.pads[id].name
}

type fakeKeys map[ebiten.Key]bool

func (k fakeKeys) IsKeyPressed(key ebiten.Key) bool { return k[key] }

// frame runs one Update/UpdateTrigger pair the way the game loop does.
func frame(c PlayerController, s *Session) error {
	err := c.Update(s)
	c.UpdateTrigger()
	return err
}
