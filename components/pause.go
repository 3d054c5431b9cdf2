package components

import (
	"github.com/automoto/playerinput/input"
	"github.com/yohamta/donburi"
)

// EdgeEvent is one frame's set of rising edges for a player
type EdgeEvent struct {
	Frame   int
	Buttons input.KeyState
}

// PlayerViewData stores what the viewer shows for a player slot
type PlayerViewData struct {
	IsPaused    bool        // Toggled by the menu pause trigger
	RecentEdges []EdgeEvent // Newest last
}

var PlayerView = donburi.NewComponentType[PlayerViewData]()
