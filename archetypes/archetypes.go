package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/hypermaze/components"
	cfg "github.com/automoto/hypermaze/config"
	"github.com/automoto/hypermaze/tags"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Grid,
		components.Object,
	)
	Ghost = newArchetype(
		tags.Ghost,
		components.Ghost,
		components.Grid,
		components.Object,
	)
	Food = newArchetype(
		tags.Food,
		components.Food,
		components.Object,
	)
	Maze = newArchetype(
		components.Maze,
	)
	Space = newArchetype(
		components.Space,
	)
	Session = newArchetype(
		components.Session,
	)
	Input = newArchetype(
		components.Input,
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
		cfg.LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
