package systems

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/hypermaze/components"
	cfg "github.com/automoto/hypermaze/config"
	"github.com/automoto/hypermaze/tags"
	"github.com/automoto/hypermaze/world"
)

// UpdatePlayer turns edge-triggered move actions into cell glides. A move is
// validated against the maze walls from the cell the player is headed to, so
// quick successive presses chain into a run.
func UpdatePlayer(e *ecs.ECS) {
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

	input := getOrCreateInput(e)
	grid := components.Grid.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	for _, action := range cfg.MoveActions {
		if !input.JustPressed(action) {
			continue
		}
		delta := world.Delta(cfg.Input.Deltas[action])
		if !maze.CheckMove(grid.Cell, delta) {
			continue
		}
		if grid.Moving() {
			// Finish the previous glide before chaining the next one.
			grid.Snap(grid.Cell)
		}
		to := grid.Cell.Add(delta)
		grid.StartMove(to, gween.New(0, 1, float32(cfg.Player.MoveSeconds), ease.Linear))
		if delta[world.AxisW] != 0 {
			player.PortalFlash = cfg.Render.PortalFlashFrames
		}
	}

	if player.PortalFlash > 0 {
		player.PortalFlash--
	}
}

func currentSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}
