package components

import (
	"math/rand"

	"github.com/yohamta/donburi"

	"github.com/automoto/hypermaze/world"
)

// MazeData holds the generated maze and the RNG that built it (reused for
// respawns).
type MazeData struct {
	Maze *world.Maze
	Rng  *rand.Rand
}

var Maze = donburi.NewComponentType[MazeData]()
