package config

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if !s.SeasonalTextures || s.OriginalTextures || !s.ShaderEffects || !s.MotionInterpolation {
		t.Fatalf("unexpected texture/shader defaults: %+v", s)
	}
	if s.Player1ControllerType != Keyboard() || s.Player2ControllerType != Keyboard() {
		t.Fatalf("both players should start on the keyboard")
	}
	if s.Speed != 1.0 || s.GodMode || s.InfiniteBooster || s.DebugOutlines {
		t.Fatalf("unexpected runtime flags: %+v", s)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("defaults don't validate: %v", err)
	}
}

func TestSettingsJSONSkipsRuntimeFlags(t *testing.T) {
	s := DefaultSettings()
	s.Speed = 3
	s.GodMode = true
	s.InfiniteBooster = true
	s.DebugOutlines = true
	s.Player2ControllerType = Gamepad(1)

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"speed", "Speed", "godMode", "GodMode", "infiniteBooster", "debugOutlines"} {
		if strings.Contains(string(data), field) {
			t.Fatalf("runtime flag %q serialized: %s", field, data)
		}
	}
	if !strings.Contains(string(data), `"player2ControllerType":"gamepad:1"`) {
		t.Fatalf("controller type not text encoded: %s", data)
	}

	loaded := DefaultSettings()
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatal(err)
	}
	if loaded.Speed != 1.0 || loaded.GodMode {
		t.Fatalf("runtime flags came back from disk: %+v", loaded)
	}
	if loaded.Player2ControllerType != Gamepad(1) || loaded.Player1KeyMap != s.Player1KeyMap {
		t.Fatalf("persisted fields lost: %+v", loaded)
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Settings)
		wantErr error
	}{
		{"defaults", func(s *Settings) {}, nil},
		{"overlap_on_keyboard", func(s *Settings) { s.Player2KeyMap.Jump = ebiten.KeyZ }, ErrKeyMapOverlap},
		{"overlap_with_gamepad", func(s *Settings) {
			s.Player2KeyMap.Jump = ebiten.KeyZ
			s.Player2ControllerType = Gamepad(0)
		}, nil},
		{"bad_selector", func(s *Settings) { s.Player1ControllerType = Gamepad(-1) }, ErrInvalidControllerType},
		{"start_key_bound", func(s *Settings) { s.Player2KeyMap.Map = StartKey }, ErrReservedKey},
		{"start_key_on_gamepad_player", func(s *Settings) {
			s.Player2KeyMap.Map = StartKey
			s.Player2ControllerType = Gamepad(1)
		}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSettings()
			tc.mutate(&s)
			err := s.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestSettingsPlayerAccessors(t *testing.T) {
	s := DefaultSettings()
	s.Player2ControllerType = Gamepad(2)

	if s.KeyMap(0) != DefaultPlayer1KeyMap() || s.KeyMap(1) != DefaultPlayer2KeyMap() {
		t.Fatalf("KeyMap accessor mismatch")
	}
	if s.ControllerType(0) != Keyboard() || s.ControllerType(1) != Gamepad(2) {
		t.Fatalf("ControllerType accessor mismatch")
	}

	s.GodMode = true
	s.Speed = 0.5
	s.ResetRuntimeFlags()
	if s.GodMode || s.Speed != 1.0 {
		t.Fatalf("ResetRuntimeFlags left %+v", s)
	}
}
