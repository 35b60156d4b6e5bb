package systems

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/hypermaze/components"
	cfg "github.com/automoto/hypermaze/config"
	"github.com/automoto/hypermaze/tags"
)

// UpdateGhosts advances each ghost one cell along the shortest path to the
// player every MoveTime seconds, gliding between cells in between.
func UpdateGhosts(e *ecs.ECS) {
	session := currentSession(e)
	if session == nil || session.State != components.StatePlaying {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	mazeEntry, ok := components.Maze.First(e.World)
	if !ok {
		return
	}
	maze := components.Maze.Get(mazeEntry).Maze
	playerGrid := components.Grid.Get(playerEntry)

	dt := DT()
	tags.Ghost.Each(e.World, func(entry *donburi.Entry) {
		ghost := components.Ghost.Get(entry)
		grid := components.Grid.Get(entry)

		ghost.BobPhase += dt * cfg.Ghost.BobRate
		ghost.MoveTimer -= dt
		if ghost.MoveTimer > 0 {
			return
		}
		ghost.MoveTimer = ghost.MoveTime

		grid.Snap(grid.Cell)
		path := maze.Path(grid.Cell, playerGrid.Cell)
		if len(path) < 2 {
			return // already on the player's cell; the catch check ends the run
		}
		grid.StartMove(path[1], gween.New(0, 1, float32(ghost.MoveTime), ease.Linear))
	})
}
