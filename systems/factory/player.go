package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/hypermaze/archetypes"
	"github.com/automoto/hypermaze/components"
	cfg "github.com/automoto/hypermaze/config"
	"github.com/automoto/hypermaze/tags"
	"github.com/automoto/hypermaze/world"
)

func CreatePlayer(ecs *ecs.ECS, start world.Cell) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := cfg.Player.Radius * 2 * components.PixelsPerCell
	obj := resolv.NewObject(0, 0, size, size)
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{})

	grid := components.Grid.Get(player)
	grid.Snap(start)

	return player
}
