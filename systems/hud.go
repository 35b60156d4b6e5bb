package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/automoto/hypermaze/components"
	cfg "github.com/automoto/hypermaze/config"
	"github.com/automoto/hypermaze/fonts"
	"github.com/automoto/hypermaze/tags"
	"github.com/automoto/hypermaze/world"

	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the score counter, the stopwatch, the controls overlay and
// the end-of-game screens on top of the maze view.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	session := currentSession(e)
	if session == nil {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	s := cfg.C.UIScale
	margin := cfg.HUD.Margin * s

	drawScore(e, screen, session, width, margin)

	if cfg.C.DisplayClock == cfg.ClockStopwatch {
		clockFont := fonts.HUD.Get()
		text.Draw(screen, FormatClock(session.Elapsed), clockFont,
			int(margin), int(margin+cfg.HUD.ClockFontSize*s), cfg.HUD.TextColor)
	}

	if cfg.C.DisplayControls {
		drawControls(e, screen, height, margin, s)
	}

	if session.State != components.StatePlaying {
		drawEndScreen(screen, session, width, height)
	}
}

func drawScore(e *ecs.ECS, screen *ebiten.Image, session *components.SessionData, width, margin float64) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	label := fmt.Sprintf("%02d/%02d", player.Score, session.FoodTotal)
	scoreFont := fonts.Score.Get()
	bounds := text.BoundString(scoreFont, label)
	text.Draw(screen, label, scoreFont,
		int(width-margin)-bounds.Dx(), int(margin)+bounds.Dy(), cfg.HUD.TextColor)
}

// drawControls lays the eight movement keys out as
//
//	Q W E
//	A S D
//	SPC CTL
//
// in the bottom-left corner. Keys whose move is blocked by a wall from the
// player's current cell are shown dimmed.
func drawControls(e *ecs.ECS, screen *ebiten.Image, height, margin, s float64) {
	mazeEntry, ok := components.Maze.First(e.World)
	if !ok {
		return
	}
	maze := components.Maze.Get(mazeEntry).Maze

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	from := components.Grid.Get(playerEntry).Cell

	layout := [3][]cfg.ActionID{
		{cfg.ActionPortalLeft, cfg.ActionNorth, cfg.ActionPortalRight},
		{cfg.ActionWest, cfg.ActionSouth, cfg.ActionEast},
		{cfg.ActionAscend, cfg.ActionDescend},
	}

	cell := cfg.HUD.ControlSize * s
	gap := cfg.HUD.ControlGap * s
	face := fonts.HUDSmall.Get()

	y := height - margin - 3*cell - 2*gap
	for _, row := range layout {
		x := margin
		for _, action := range row {
			c := cfg.HUD.DimColor
			if maze.CheckMove(from, world.Delta(cfg.Input.Deltas[action])) {
				c = cfg.HUD.ActiveColor
			}
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(cell), float32(cell), c, false)
			label := cfg.Input.Bindings[action].Label
			bounds := text.BoundString(face, label)
			text.Draw(screen, label, face,
				int(x+cell/2)-bounds.Dx()/2, int(y+cell/2)+bounds.Dy()/2, cfg.Black)
			x += cell + gap
		}
		y += cell + gap
	}
}

func drawEndScreen(screen *ebiten.Image, session *components.SessionData, width, height float64) {
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.HUD.OverlayColor, false)

	title := "YOU WIN"
	titleColor := cfg.HUD.WinColor
	if session.State == components.StateLost {
		title = "YOU LOSE"
		titleColor = cfg.HUD.LoseColor
	}

	titleFont := fonts.Title.Get()
	bounds := text.BoundString(titleFont, title)
	text.Draw(screen, title, titleFont,
		int(width/2)-bounds.Dx()/2, int(height*0.35), titleColor)

	hudFont := fonts.HUD.Get()
	lines := []string{fmt.Sprintf("Time: %s", FormatClock(session.Elapsed))}
	if session.State == components.StateWon && session.BestTime > 0 {
		lines = append(lines, fmt.Sprintf("Best: %s", FormatClock(session.BestTime)))
	}
	lines = append(lines, "ENTER to restart, ESC for menu")

	y := height * 0.45
	for _, line := range lines {
		b := text.BoundString(hudFont, line)
		text.Draw(screen, line, hudFont, int(width/2)-b.Dx()/2, int(y), cfg.HUD.TextColor)
		y += cfg.HUD.ClockFontSize * 1.8
	}
}
