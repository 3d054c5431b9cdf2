package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/playerinput/components"
	cfg "github.com/automoto/playerinput/config"
	"github.com/automoto/playerinput/fonts"
	"github.com/automoto/playerinput/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawInputHUD renders one column per player with everything their
// controller reports this frame.
func DrawInputHUD(e *ecs.ECS, screen *ebiten.Image) {
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	// Draw background
	vector.FillRect(screen, 0, 0, width, height, cfg.HUD.BackgroundColor, false)

	components.PlayerInput.Each(e.World, func(entry *donburi.Entry) {
		pi := components.PlayerInput.Get(entry)
		view := components.PlayerView.Get(entry)
		x := cfg.HUD.Margin + float64(pi.PlayerIndex)*cfg.HUD.ColumnWidth
		drawPlayerColumn(screen, x, pi, view)
	})
}

// DrawInputError overlays the gamepad subsystem error, if any, along the
// bottom of the screen.
func DrawInputError(e *ecs.ECS, screen *ebiten.Image) {
	err := InputError(e)
	if err == nil {
		return
	}
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	barHeight := float32(cfg.HUD.LineHeight + cfg.HUD.Margin)
	vector.FillRect(screen, 0, height-barHeight, width, barHeight, cfg.BlackOverlay, false)

	y := int(height) - int(cfg.HUD.Margin/2)
	text.Draw(screen, err.Error(), fonts.Body.Get(), int(cfg.HUD.Margin), y, cfg.HUD.ErrorColor)
}

type hudLine struct {
	text  string
	color color.Color
}

func drawPlayerColumn(screen *ebiten.Image, x float64, pi *components.PlayerInputData, view *components.PlayerViewData) {
	y := cfg.HUD.Margin + cfg.HUD.TitleFontSize
	title := fmt.Sprintf("Player %d: %s", pi.PlayerIndex+1, pi.InputMethod)
	text.Draw(screen, title, fonts.Title.Get(), int(x), int(y), cfg.HUD.TitleColor)
	y += cfg.HUD.LineHeight * 1.5

	bodyFont := fonts.Body.Get()
	for _, line := range playerLines(pi, view) {
		text.Draw(screen, line.text, bodyFont, int(x), int(y), line.color)
		y += cfg.HUD.LineHeight
	}
}

func playerLines(pi *components.PlayerInputData, view *components.PlayerViewData) []hudLine {
	c := pi.Controller
	if c == nil {
		return []hudLine{{"no controller", cfg.HUD.InactiveColor}}
	}

	lines := []hudLine{{"source: " + pi.Selector.String(), cfg.HUD.TextColor}}
	if gc, ok := c.(*input.GamepadController); ok {
		if id, ok := gc.ID(); ok {
			lines = append(lines, hudLine{fmt.Sprintf("device: %s #%d", gc.Name(), id), cfg.HUD.TextColor})
		} else {
			lines = append(lines, hudLine{"device: not found", cfg.HUD.ErrorColor})
		}
	}

	lines = append(lines,
		flagLine("move", c.MoveUp(), c.MoveDown(), c.MoveLeft(), c.MoveRight()),
		flagLine("look", c.LookUp(), c.LookDown(), c.LookLeft(), c.LookRight()),
		hudLine{fmt.Sprintf("analog: x=%+.2f y=%+.2f", c.MoveAnalogX(), c.MoveAnalogY()), cfg.HUD.TextColor},
	)
	if gc, ok := c.(*input.GamepadController); ok {
		lx, ly, rx, ry := gc.Sticks()
		lines = append(lines, hudLine{
			fmt.Sprintf("sticks: L(%+.2f, %+.2f) R(%+.2f, %+.2f)", lx, ly, rx, ry),
			cfg.HUD.TextColor,
		})
	}
	if rep, ok := c.(input.StateReporter); ok {
		lines = append(lines, stateLine("held", rep.State()))
	}
	lines = append(lines, hudLine{menuHint(pi), cfg.HUD.InactiveColor})

	if view.IsPaused {
		lines = append(lines, hudLine{"PAUSED", cfg.HUD.PausedColor})
	}

	lines = append(lines, hudLine{"", cfg.HUD.TextColor}, hudLine{"edges:", cfg.HUD.TextColor})
	for i := len(view.RecentEdges) - 1; i >= 0; i-- {
		ev := view.RecentEdges[i]
		lines = append(lines, hudLine{fmt.Sprintf("#%d %v", ev.Frame, ev.Buttons), cfg.HUD.TextColor})
	}
	return lines
}

func flagLine(label string, up, down, left, right bool) hudLine {
	var dirs []string
	for _, d := range []struct {
		on   bool
		name string
	}{{up, "up"}, {down, "down"}, {left, "left"}, {right, "right"}} {
		if d.on {
			dirs = append(dirs, d.name)
		}
	}
	if len(dirs) == 0 {
		return hudLine{label + ": -", cfg.HUD.InactiveColor}
	}
	return hudLine{label + ": " + strings.Join(dirs, " "), cfg.HUD.ActiveColor}
}

func stateLine(label string, s input.KeyState) hudLine {
	if s == 0 {
		return hudLine{label + ": -", cfg.HUD.InactiveColor}
	}
	return hudLine{label + ": " + s.String(), cfg.HUD.ActiveColor}
}

// menuHint returns the confirm/back/pause labels for the player's device
func menuHint(pi *components.PlayerInputData) string {
	switch pi.InputMethod {
	case components.InputPlayStation:
		return "Cross: OK   Circle: Back   Options: Pause"
	case components.InputXbox:
		return "A: OK   B: Back   Start: Pause"
	case components.InputKeyboard:
		return fmt.Sprintf("%v: OK   %v: Back   %v: Pause (all keyboard players)", pi.KeyMap.Jump, pi.KeyMap.Shoot, input.KeyboardStartKey)
	default:
		return "no input"
	}
}
