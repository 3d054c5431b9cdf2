package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestLoadSettingsFile(t *testing.T) {
	tests := []struct {
		name       string
		createFile bool
		content    string
		wantErr    error
		validate   func(t *testing.T, s Settings)
	}{
		{
			name:       "overrides on top of defaults",
			createFile: true,
			content: `shader_effects: false
player1_controller_type: gamepad:1
player2_key_map:
  jump: M
  shoot: K
`,
			validate: func(t *testing.T, s Settings) {
				if s.ShaderEffects {
					t.Errorf("ShaderEffects = true, want false")
				}
				if !s.SeasonalTextures {
					t.Errorf("SeasonalTextures lost its default")
				}
				if s.Player1ControllerType != Gamepad(1) {
					t.Errorf("Player1ControllerType = %v", s.Player1ControllerType)
				}
				if s.Player2KeyMap.Jump != ebiten.KeyM || s.Player2KeyMap.Shoot != ebiten.KeyK {
					t.Errorf("Player2KeyMap jump/shoot = %v/%v", s.Player2KeyMap.Jump, s.Player2KeyMap.Shoot)
				}
				if s.Player2KeyMap.Left != ebiten.KeyComma {
					t.Errorf("unlisted binding changed: %v", s.Player2KeyMap.Left)
				}
			},
		},
		{
			name:       "runtime flags are ignored",
			createFile: true,
			content:    "speed: 4\ngod_mode: true\n",
			validate: func(t *testing.T, s Settings) {
				if s.Speed != 1.0 || s.GodMode {
					t.Errorf("runtime flags loaded from file: %+v", s)
				}
			},
		},
		{
			name:       "overlapping key maps",
			createFile: true,
			content:    "player2_key_map:\n  jump: Z\n",
			wantErr:    ErrKeyMapOverlap,
		},
		{
			name:       "bad controller type",
			createFile: true,
			content:    "player2_controller_type: joystick\n",
			wantErr:    ErrInvalidControllerType,
		},
		{
			name:       "missing file",
			createFile: false,
			wantErr:    os.ErrNotExist,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.yaml")
			if tc.createFile {
				if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			s, err := LoadSettingsFile(path, DefaultSettings())
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err = %v, want %v", err, tc.wantErr)
				}
				if s.Player2KeyMap != DefaultPlayer2KeyMap() {
					t.Fatalf("failed load must return the base settings")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			tc.validate(t, s)
		})
	}
}

func TestMarshalSettingsRoundTrip(t *testing.T) {
	s := DefaultSettings()
	s.TouchControls = true
	s.Player1ControllerType = Gamepad(2)
	s.Player1KeyMap.Map = ebiten.KeyE

	data, err := MarshalSettings(s)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ParseSettings(data, DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	if got != s {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, s)
	}
}

func TestWriteSettingsFile(t *testing.T) {
	s := DefaultSettings()
	s.Player2ControllerType = Gamepad(1)
	s.Player2KeyMap.Jump = ebiten.KeyM
	s.GodMode = true

	path := filepath.Join(t.TempDir(), "export.yaml")
	if err := WriteSettingsFile(path, s); err != nil {
		t.Fatal(err)
	}
	got, err := LoadSettingsFile(path, DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}

	s.GodMode = false // runtime flags are not written
	if got != s {
		t.Fatalf("exported file reloads as\n got %+v\nwant %+v", got, s)
	}
}

func TestWatchSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("shader_effects: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := WatchSettingsFile(path, DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if _, ok := w.Poll(); ok {
		t.Fatalf("Poll returned settings before any change")
	}

	if err := os.WriteFile(path, []byte("player2_controller_type: gamepad:0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if s, ok := w.Poll(); ok {
			if s.Player2ControllerType == Gamepad(0) {
				return
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("no reload observed")
}
