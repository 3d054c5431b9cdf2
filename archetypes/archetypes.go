package archetypes

import (
	"github.com/automoto/playerinput/components"
	cfg "github.com/automoto/playerinput/config"
	"github.com/automoto/playerinput/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	PlayerSlot = newArchetype(
		tags.PlayerSlot,
		components.PlayerInput,
		components.PlayerView,
	)
	InputStatus = newArchetype(
		components.InputStatus,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
