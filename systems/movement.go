package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/hypermaze/components"
)

// UpdateMovement advances every glide tween and keeps the resolv objects
// centered on the interpolated slice-plane positions.
func UpdateMovement(e *ecs.ECS) {
	dt := DT()
	components.Grid.Each(e.World, func(entry *donburi.Entry) {
		grid := components.Grid.Get(entry)
		grid.Advance(dt)

		if !entry.HasComponent(components.Object) {
			return
		}
		obj := components.Object.Get(entry)
		obj.X = (grid.Pos[0]+0.5)*components.PixelsPerCell - obj.W/2
		obj.Y = (grid.Pos[1]+0.5)*components.PixelsPerCell - obj.H/2
		if obj.Space != nil {
			obj.Update()
		}
	})
}
