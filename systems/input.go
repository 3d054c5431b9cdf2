package systems

import (
	"log"

	"github.com/automoto/playerinput/archetypes"
	"github.com/automoto/playerinput/components"
	cfg "github.com/automoto/playerinput/config"
	"github.com/automoto/playerinput/input"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerCount is the number of local player slots
const PlayerCount = 2

// NewUpdateInput returns the system that samples every player's controller.
// Must run BEFORE any system that reads player input.
func NewUpdateInput(session *input.Session) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		status := getOrCreateInputStatus(e)
		status.Frame++

		var frameErr error
		components.PlayerInput.Each(e.World, func(entry *donburi.Entry) {
			pi := components.PlayerInput.Get(entry)
			if pi.Controller == nil {
				return
			}
			if err := pi.Controller.Update(session); err != nil && frameErr == nil {
				frameErr = err
			}
			// Edges are computed even after a failed update so that a stale
			// press never reports as a new one.
			pi.Controller.UpdateTrigger()
		})

		reportInputError(status, frameErr)
	}
}

// reportInputError records err and logs it the first time it is seen.
func reportInputError(status *components.InputStatusData, err error) {
	switch {
	case err == nil && status.Err != nil:
		log.Printf("[input] gamepad backend recovered")
	case err != nil && (status.Err == nil || status.Err.Error() != err.Error()):
		log.Printf("[input] %v", err)
	}
	status.Err = err
}

// getOrCreateInputStatus returns the singleton InputStatus component, creating if needed
func getOrCreateInputStatus(e *ecs.ECS) *components.InputStatusData {
	entry, ok := components.InputStatus.First(e.World)
	if !ok {
		entry = archetypes.InputStatus.Spawn(e)
	}
	return components.InputStatus.Get(entry)
}

// InputError returns the gamepad subsystem error from the last frame, if any.
func InputError(e *ecs.ECS) error {
	entry, ok := components.InputStatus.First(e.World)
	if !ok {
		return nil
	}
	return components.InputStatus.Get(entry).Err
}

// SpawnPlayerSlots creates one entity per player and builds their
// controllers from settings.
func SpawnPlayerSlots(e *ecs.ECS, s *cfg.Settings, session *input.Session) {
	for i := 0; i < PlayerCount; i++ {
		entry := archetypes.PlayerSlot.Spawn(e)
		pi := components.PlayerInput.Get(entry)
		pi.PlayerIndex = i
	}
	ApplySettings(e, s, session)
}

// ApplySettings rebuilds the controller of every slot whose selector changed,
// whose key map changed while on the keyboard, or whose gamepad was not found
// last time. Rebuilt controllers start neutral; nothing carries over from the
// old one.
func ApplySettings(e *ecs.ECS, s *cfg.Settings, session *input.Session) {
	components.PlayerInput.Each(e.World, func(entry *donburi.Entry) {
		pi := components.PlayerInput.Get(entry)
		sel := s.ControllerType(pi.PlayerIndex)
		km := s.KeyMap(pi.PlayerIndex)

		if !needsRebuild(pi, sel, km) {
			return
		}

		pi.Controller = session.NewController(sel, km)
		pi.Selector = sel
		pi.KeyMap = km
		pi.InputMethod = inputMethodOf(pi.Controller)
		log.Printf("[input] player %d: %s (%s)", pi.PlayerIndex+1, sel, pi.InputMethod)
	})
}

func needsRebuild(pi *components.PlayerInputData, sel cfg.ControllerType, km cfg.KeyMap) bool {
	switch {
	case pi.Controller == nil, pi.Selector != sel:
		return true
	case sel.Kind == cfg.ControllerKeyboard:
		return pi.KeyMap != km
	}
	// Retry the device lookup for a gamepad that wasn't connected before
	gc, ok := pi.Controller.(*input.GamepadController)
	return ok && !gc.Resolved()
}

func inputMethodOf(c input.PlayerController) components.InputMethod {
	gc, ok := c.(*input.GamepadController)
	if !ok {
		return components.InputKeyboard
	}
	if !gc.Resolved() {
		return components.InputNone
	}
	if gc.Style() == input.StylePlayStation {
		return components.InputPlayStation
	}
	return components.InputXbox
}
