package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/hypermaze/components"
	cfg "github.com/automoto/hypermaze/config"
	"github.com/automoto/hypermaze/tags"
	"github.com/automoto/hypermaze/world"
)

// The view is a top-down board of the plane the player occupies. Hyperspace
// neighbours (the cells one step away along w) are drawn as additional boards
// to the left and right, separated by one cell of void, so a portal move
// slides the whole arrangement sideways by a full board width.

const (
	wallThickness = 0.2
	sliceGap      = 1.0
)

var (
	viewCamX, viewCamY, viewCamW float64
	viewCamReady                 bool
)

// ResetView forgets the camera position so a new session starts centered.
func ResetView() {
	viewCamReady = false
}

// DrawView renders the maze boards, food, ghost and player.
func DrawView(e *ecs.ECS, screen *ebiten.Image) {
	mazeEntry, ok := components.Maze.First(e.World)
	if !ok {
		return
	}
	maze := components.Maze.Get(mazeEntry).Maze

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerGrid := components.Grid.Get(playerEntry)
	playerData := components.Player.Get(playerEntry)

	session := currentSession(e)
	elapsed := 0.0
	if session != nil {
		elapsed = session.Elapsed
	}

	followCamera(playerGrid)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	scale := pixelsPerCell(height)

	dims := maze.Dims()
	pz := playerGrid.Cell[2]
	stride := float64(dims[0]) + sliceGap

	// toScreen maps board coordinates (cells, slice-local) to pixels.
	toScreen := func(cx, cy float64, w int) (float32, float32) {
		bx := cx + (float64(w)-viewCamW)*stride
		sx := (bx-viewCamX)*scale + width/2
		sy := (cy-viewCamY)*scale + height/2
		return float32(sx), float32(sy)
	}

	loW := playerGrid.Cell[3] - 1
	hiW := playerGrid.Cell[3] + 1
	if loW < 0 {
		loW = 0
	}
	if hiW > dims[3]-1 {
		hiW = dims[3] - 1
	}

	for w := loW; w <= hiW; w++ {
		dim := 1.0 - math.Min(math.Abs(float64(w)-viewCamW), 1.0)*cfg.Render.SliceDim
		drawBoard(screen, maze, w, pz, dim, scale, toScreen)
		drawFood(e, screen, elapsed, w, pz, dim, scale, toScreen)
		drawGhost(e, screen, w, pz, dim, scale, toScreen)
	}

	drawPlayerMarker(screen, playerGrid, scale, toScreen)
	drawPortalFlash(screen, playerData, width, height)
}

// followCamera eases the view toward the player so cell steps and portal
// jumps read as motion instead of teleports.
func followCamera(g *components.GridData) {
	tx := g.Pos[0] + 0.5
	ty := g.Pos[1] + 0.5
	tw := g.Pos[3]
	if !viewCamReady {
		viewCamX, viewCamY, viewCamW = tx, ty, tw
		viewCamReady = true
		return
	}
	k := math.Min(DT()*cfg.Render.CameraSmoothing, 1)
	viewCamX += (tx - viewCamX) * k
	viewCamY += (ty - viewCamY) * k
	viewCamW += (tw - viewCamW) * k
}

// pixelsPerCell derives the zoom from the configured field of view: a wider
// angle fits more cells on screen, as it would for a perspective camera one
// board-width away.
func pixelsPerCell(screenHeight float64) float64 {
	visible := 2 * math.Tan(cfg.C.FOV/2*math.Pi/180) * 4
	if visible < 1 {
		visible = 1
	}
	return screenHeight / visible
}

func drawBoard(screen *ebiten.Image, maze *world.Maze, w, z int, dim, scale float64, toScreen func(float64, float64, int) (float32, float32)) {
	dims := maze.Dims()
	wallColor := scaleColor(cfg.Rainbow[w%len(cfg.Rainbow)], dim)
	floorColor := scaleColor(cfg.Render.FloorColor, dim)

	x0, y0 := toScreen(0, 0, w)
	vector.DrawFilledRect(screen, x0, y0,
		float32(float64(dims[0])*scale), float32(float64(dims[1])*scale),
		floorColor, false)

	half := wallThickness / 2
	span := 1 - wallThickness

	// Wall slot i on an axis sits between cells i-1 and i, so slots run
	// from 0 (outer boundary) through dims inclusive.
	for y := 0; y < dims[1]; y++ {
		for x := 0; x <= dims[0]; x++ {
			if maze.Solid(world.AxisX, world.Cell{x, y, z, w}) {
				sx, sy := toScreen(float64(x)-half, float64(y)+half, w)
				vector.DrawFilledRect(screen, sx, sy,
					float32(wallThickness*scale), float32(span*scale), wallColor, false)
			}
		}
	}
	for y := 0; y <= dims[1]; y++ {
		for x := 0; x < dims[0]; x++ {
			if maze.Solid(world.AxisY, world.Cell{x, y, z, w}) {
				sx, sy := toScreen(float64(x)+half, float64(y)-half, w)
				vector.DrawFilledRect(screen, sx, sy,
					float32(span*scale), float32(wallThickness*scale), wallColor, false)
			}
		}
		// Corner posts keep adjoining wall segments visually joined.
		for x := 0; x <= dims[0]; x++ {
			sx, sy := toScreen(float64(x)-half, float64(y)-half, w)
			vector.DrawFilledRect(screen, sx, sy,
				float32(wallThickness*scale), float32(wallThickness*scale), wallColor, false)
		}
	}
}

func drawFood(e *ecs.ECS, screen *ebiten.Image, elapsed float64, w, z int, dim, scale float64, toScreen func(float64, float64, int) (float32, float32)) {
	tags.Food.Each(e.World, func(entry *donburi.Entry) {
		food := components.Food.Get(entry)
		if food.Cell[3] != w || food.Cell[2] != z {
			return
		}
		bob := math.Sin(elapsed*cfg.Food.BobRate+food.BobPhase)*cfg.Food.BobAmp + 1
		r := cfg.Food.Radius * bob * scale / 2
		sx, sy := toScreen(float64(food.Cell[0])+0.5, float64(food.Cell[1])+0.5, w)
		vector.DrawFilledCircle(screen, sx, sy, float32(r),
			scaleColor(cfg.Rainbow[(w+3)%len(cfg.Rainbow)], dim), false)
	})
}

func drawGhost(e *ecs.ECS, screen *ebiten.Image, w, z int, dim, scale float64, toScreen func(float64, float64, int) (float32, float32)) {
	tags.Ghost.Each(e.World, func(entry *donburi.Entry) {
		grid := components.Grid.Get(entry)
		if int(math.Round(grid.Pos[3])) != w || int(math.Round(grid.Pos[2])) != z {
			return
		}
		ghost := components.Ghost.Get(entry)
		bob := math.Sin(ghost.BobPhase) * cfg.Ghost.BobAmp
		size := cfg.Ghost.Radius * 2 * scale
		sx, sy := toScreen(grid.Pos[0]+0.5, grid.Pos[1]+0.5+bob*0.25, w)
		vector.DrawFilledRect(screen,
			sx-float32(size/2), sy-float32(size/2),
			float32(size), float32(size),
			scaleColor(ghost.Color, dim), false)
	})
}

func drawPlayerMarker(screen *ebiten.Image, grid *components.GridData, scale float64, toScreen func(float64, float64, int) (float32, float32)) {
	size := cfg.Player.Radius * 2 * scale * 0.7
	sx, sy := toScreen(grid.Pos[0]+0.5, grid.Pos[1]+0.5, grid.Cell[3])
	vector.DrawFilledRect(screen,
		sx-float32(size/2), sy-float32(size/2),
		float32(size), float32(size),
		color.RGBA{70, 110, 255, 255}, false)
}

func drawPortalFlash(screen *ebiten.Image, player *components.PlayerData, width, height float64) {
	if player.PortalFlash <= 0 {
		return
	}
	c := cfg.Render.PortalFlashColor
	c.A = uint8(float64(c.A) * float64(player.PortalFlash) / float64(cfg.Render.PortalFlashFrames))
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), c, false)
}

func scaleColor(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
