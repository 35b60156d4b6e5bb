package scenes

import (
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/hypermaze/components"
	cfg "github.com/automoto/hypermaze/config"
	"github.com/automoto/hypermaze/systems"
	"github.com/automoto/hypermaze/systems/factory"
	"github.com/automoto/hypermaze/world"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MazeScene runs one chase through a freshly generated maze.
type MazeScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
	failed       bool
}

// NewMazeScene creates a new gameplay scene
func NewMazeScene(sc SceneChanger) *MazeScene {
	return &MazeScene{sceneChanger: sc}
}

func (ms *MazeScene) Update() {
	ms.once.Do(ms.configure)
	if ms.failed {
		// A session that could not be set up has nothing to run.
		ms.sceneChanger.ChangeScene(NewMenuScene(ms.sceneChanger))
		return
	}
	ms.ecs.Update()

	switch systems.Command() {
	case systems.SessionRestart:
		ms.sceneChanger.ChangeScene(NewMazeScene(ms.sceneChanger))
	case systems.SessionExit:
		ms.sceneChanger.ChangeScene(NewMenuScene(ms.sceneChanger))
	}
}

func (ms *MazeScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MazeScene) configure() {
	systems.ResetClock()
	systems.ResetView()

	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateGhosts)
	e.AddSystem(systems.UpdateMovement)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateSession)

	e.AddRenderer(cfg.LayerDefault, systems.DrawView)
	e.AddRenderer(cfg.LayerDefault, systems.DrawHUD)

	if err := ms.populate(e); err != nil {
		log.Printf("Could not set up maze session: %v", err)
		ms.failed = true
	}

	ms.ecs = e
}

func (ms *MazeScene) populate(e *ecs.ECS) error {
	dims := cfg.C.Dimensions

	mazeEntry, err := factory.CreateMaze(e, dims, time.Now().UnixNano())
	if err != nil {
		return err
	}
	mazeData := components.Maze.Get(mazeEntry)
	maze := mazeData.Maze

	spaceEntry := factory.CreateSpace(e, dims[0], dims[1])
	space := components.Space.Get(spaceEntry)

	start := world.Cell{0, 0, 0, 0}
	player := factory.CreatePlayer(e, start)
	space.Add(components.Object.Get(player).Object)

	ghostStart := maze.RandomSpawnCell(mazeData.Rng, start)
	ghost := factory.CreateGhost(e, ghostStart, cfg.C.GhostMoveTime, cfg.Ghost.Color)
	space.Add(components.Object.Get(ghost).Object)

	foodCells, err := maze.PlaceFood(mazeData.Rng, cfg.C.FoodCount, start)
	if err != nil {
		return err
	}
	for _, cell := range foodCells {
		food := factory.CreateFood(e, cell, mazeData.Rng)
		space.Add(components.Object.Get(food).Object)
	}

	factory.CreateSession(e, len(foodCells), systems.BestTime(systems.DimensionsKey()))
	return nil
}
