package systems

import (
	"log"

	"github.com/automoto/playerinput/components"
	cfg "github.com/automoto/playerinput/config"
	"github.com/automoto/playerinput/input"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerView toggles each player's pause banner and records their
// rising edges for the HUD. Must run AFTER the input system.
func UpdatePlayerView(e *ecs.ECS) {
	frame := 0
	if entry, ok := components.InputStatus.First(e.World); ok {
		frame = components.InputStatus.Get(entry).Frame
	}

	components.PlayerInput.Each(e.World, func(entry *donburi.Entry) {
		pi := components.PlayerInput.Get(entry)
		view := components.PlayerView.Get(entry)
		if pi.Controller == nil {
			return
		}

		switch {
		case pi.Controller.TriggerMenuPause():
			view.IsPaused = !view.IsPaused
		case view.IsPaused && pi.Controller.TriggerMenuBack():
			view.IsPaused = false
		}

		rep, ok := pi.Controller.(input.StateReporter)
		if !ok {
			return
		}
		edges := rep.Trigger()
		if edges == 0 {
			return
		}
		if cfg.Debug.LogEdges {
			log.Printf("[input] player %d frame %d: %v", pi.PlayerIndex+1, frame, edges)
		}

		view.RecentEdges = append(view.RecentEdges, components.EdgeEvent{Frame: frame, Buttons: edges})
		if n := len(view.RecentEdges) - cfg.HUD.EdgeLogLines; n > 0 {
			view.RecentEdges = view.RecentEdges[n:]
		}
	})
}
