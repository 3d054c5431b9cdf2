package tags

import "github.com/yohamta/donburi"

var (
	PlayerSlot = donburi.NewTag().SetName("PlayerSlot")
)
