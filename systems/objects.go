package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/hypermaze/components"
	"github.com/automoto/hypermaze/tags"
)

// sameSlice reports whether two grid positions share a (z, w) slice closely
// enough for slice-plane contact to count.
func sameSlice(a, b *components.GridData) bool {
	return math.Abs(a.Pos[2]-b.Pos[2]) < 0.5 && math.Abs(a.Pos[3]-b.Pos[3]) < 0.5
}

// UpdateObjects handles slice-plane contact: eating food and getting caught
// by a ghost.
func UpdateObjects(e *ecs.ECS) {
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

	playerObj := components.Object.Get(playerEntry)
	playerGrid := components.Grid.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	// Food pickup
	if col := playerObj.Check(0, 0, tags.ResolvFood); col != nil {
		for _, obj := range col.Objects {
			foodEntry, ok := obj.Data.(*donburi.Entry)
			if !ok || !foodEntry.Valid() {
				continue
			}
			food := components.Food.Get(foodEntry)
			if food.Cell[2] != playerGrid.Cell[2] || food.Cell[3] != playerGrid.Cell[3] {
				continue // a pellet on another slice
			}
			maze.RemoveFood(food.Cell)
			if obj.Space != nil {
				obj.Space.Remove(obj)
			}
			foodEntry.Remove()
			player.Score++
		}
	}

	if player.Score >= session.FoodTotal {
		winSession(session)
		return
	}

	// Ghost catch
	if col := playerObj.Check(0, 0, tags.ResolvGhost); col != nil {
		for _, obj := range col.Objects {
			ghostEntry, ok := obj.Data.(*donburi.Entry)
			if !ok || !ghostEntry.Valid() {
				continue
			}
			if sameSlice(playerGrid, components.Grid.Get(ghostEntry)) {
				session.State = components.StateLost
				return
			}
		}
	}
}

func winSession(session *components.SessionData) {
	session.State = components.StateWon
	if session.BestTime == 0 || session.Elapsed < session.BestTime {
		session.BestTime = session.Elapsed
		RecordBestTime(cfgDimensionsKey(), session.Elapsed)
	}
}
