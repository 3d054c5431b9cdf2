package input

import (
	"testing"

	cfg "github.com/automoto/playerinput/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestKeyboardAnalogEncoding(t *testing.T) {
	km := cfg.DefaultPlayer1KeyMap()

	tests := []struct {
		name         string
		held         []ebiten.Key
		wantX, wantY float64
	}{
		{"nothing", nil, 0, 0},
		{"left", []ebiten.Key{km.Left}, -1, 0},
		{"right", []ebiten.Key{km.Right}, 1, 0},
		{"left_and_right", []ebiten.Key{km.Left, km.Right}, 0, 0},
		{"up", []ebiten.Key{km.Up}, 0, 1},
		{"down", []ebiten.Key{km.Down}, 0, -1},
		{"up_and_down", []ebiten.Key{km.Up, km.Down}, 0, 0},
		{"down_right", []ebiten.Key{km.Down, km.Right}, 1, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			keys := fakeKeys{}
			for _, k := range tc.held {
				keys[k] = true
			}
			c := NewKeyboardController(km)
			if err := frame(c, &Session{Keys: keys}); err != nil {
				t.Fatal(err)
			}
			if c.MoveAnalogX() != tc.wantX || c.MoveAnalogY() != tc.wantY {
				t.Fatalf("analog = (%v, %v), want (%v, %v)", c.MoveAnalogX(), c.MoveAnalogY(), tc.wantX, tc.wantY)
			}
		})
	}
}

func TestKeyboardUsesOwnKeyMap(t *testing.T) {
	p1 := NewKeyboardController(cfg.DefaultPlayer1KeyMap())
	p2 := NewKeyboardController(cfg.DefaultPlayer2KeyMap())

	s := &Session{Keys: fakeKeys{ebiten.KeyZ: true, ebiten.KeyComma: true}}
	for _, c := range []PlayerController{p1, p2} {
		if err := frame(c, s); err != nil {
			t.Fatal(err)
		}
	}

	if !p1.Jump() || p1.MoveLeft() {
		t.Fatalf("player 1: jump=%v left=%v", p1.Jump(), p1.MoveLeft())
	}
	if p2.Jump() || !p2.MoveLeft() || !p2.LookLeft() {
		t.Fatalf("player 2: jump=%v left=%v look=%v", p2.Jump(), p2.MoveLeft(), p2.LookLeft())
	}
}

func TestKeyboardTriggers(t *testing.T) {
	km := cfg.DefaultPlayer1KeyMap()
	c := NewKeyboardController(km)
	keys := fakeKeys{}
	s := &Session{Keys: keys}

	keys[km.Jump] = true
	keys[km.Inventory] = true
	keys[KeyboardStartKey] = true
	if err := frame(c, s); err != nil {
		t.Fatal(err)
	}
	if !c.TriggerJump() || !c.TriggerMenuOK() || !c.TriggerInventory() || !c.TriggerMenuPause() {
		t.Fatalf("missing edges: %v", c.Trigger())
	}

	keys[km.Shoot] = true
	keys[km.Map] = true
	if err := frame(c, s); err != nil {
		t.Fatal(err)
	}
	if c.TriggerJump() || c.TriggerInventory() {
		t.Fatalf("held keys produced edges again: %v", c.Trigger())
	}
	if !c.TriggerShoot() || !c.TriggerMenuBack() || !c.TriggerMap() {
		t.Fatalf("new keys produced no edges: %v", c.Trigger())
	}

	for k := range keys {
		keys[k] = false
	}
	if err := frame(c, s); err != nil {
		t.Fatal(err)
	}
	if c.Trigger() != 0 || c.State() != 0 {
		t.Fatalf("release left state=%v trigger=%v", c.State(), c.Trigger())
	}
}

func TestKeyboardWithoutKeySourceKeepsState(t *testing.T) {
	km := cfg.DefaultPlayer1KeyMap()
	c := NewKeyboardController(km)

	if err := frame(c, &Session{Keys: fakeKeys{km.NextWeapon: true}}); err != nil {
		t.Fatal(err)
	}
	if err := frame(c, &Session{}); err != nil {
		t.Fatal(err)
	}
	if !c.NextWeapon() || c.TriggerNextWeapon() {
		t.Fatalf("next=%v trigger=%v", c.NextWeapon(), c.TriggerNextWeapon())
	}
}
