package factory

import (
	"image/color"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/hypermaze/archetypes"
	"github.com/automoto/hypermaze/components"
	cfg "github.com/automoto/hypermaze/config"
	"github.com/automoto/hypermaze/tags"
	"github.com/automoto/hypermaze/world"
)

func CreateGhost(ecs *ecs.ECS, start world.Cell, moveTime float64, tint color.RGBA) *donburi.Entry {
	ghost := archetypes.Ghost.Spawn(ecs)

	size := cfg.Ghost.Radius * 2 * components.PixelsPerCell
	obj := resolv.NewObject(0, 0, size, size)
	obj.AddTags(tags.ResolvGhost)
	obj.Data = ghost
	components.Object.SetValue(ghost, components.ObjectData{Object: obj})

	components.Ghost.SetValue(ghost, components.GhostData{
		MoveTime:  moveTime,
		MoveTimer: moveTime,
		Color:     tint,
	})

	grid := components.Grid.Get(ghost)
	grid.Snap(start)

	return ghost
}
