package factory

import (
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/hypermaze/archetypes"
	"github.com/automoto/hypermaze/components"
	"github.com/automoto/hypermaze/world"
)

// CreateMaze generates the 4D maze for one session and stores it on a maze
// entity.
func CreateMaze(ecs *ecs.ECS, dims [4]int, seed int64) (*donburi.Entry, error) {
	m, err := world.New(dims)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	m.Generate(rng)

	entry := archetypes.Maze.Spawn(ecs)
	components.Maze.SetValue(entry, components.MazeData{
		Maze: m,
		Rng:  rng,
	})
	return entry, nil
}
