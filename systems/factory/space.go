package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/hypermaze/archetypes"
	"github.com/automoto/hypermaze/components"
)

// CreateSpace builds the resolv space covering the (x, y) plane of the maze.
// Entities on every (z, w) slice share it; overlap checks filter by slice.
func CreateSpace(ecs *ecs.ECS, cellsX, cellsY int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(
		cellsX*components.PixelsPerCell,
		cellsY*components.PixelsPerCell,
		components.PixelsPerCell, components.PixelsPerCell,
	)
	components.Space.Set(space, spaceData)
	return space
}
