package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"

	"github.com/automoto/hypermaze/world"
)

// GridData places an entity on the maze grid. Cell is where the entity is
// headed; Pos is the interpolated position the renderer and collision use
// while the tween runs.
type GridData struct {
	Cell  world.Cell // destination cell
	From  world.Cell // cell the current glide started at
	Pos   [4]float64 // interpolated position in cell units
	Tween *gween.Tween // glide progress 0..1; nil when at rest
}

var Grid = donburi.NewComponentType[GridData]()

// Snap places the entity exactly on c with no glide in progress.
func (g *GridData) Snap(c world.Cell) {
	g.Cell = c
	g.From = c
	g.Tween = nil
	for a := 0; a < 4; a++ {
		g.Pos[a] = float64(c[a])
	}
}

// StartMove begins a glide from the current cell to `to`, driven by tw
// (a 0..1 progress tween).
func (g *GridData) StartMove(to world.Cell, tw *gween.Tween) {
	g.From = g.Cell
	g.Cell = to
	g.Tween = tw
}

// Moving reports whether a glide is in progress.
func (g *GridData) Moving() bool { return g.Tween != nil }

// Advance steps the glide by dt seconds and updates Pos.
func (g *GridData) Advance(dt float64) {
	if g.Tween == nil {
		return
	}
	progress, done := g.Tween.Update(float32(dt))
	p := float64(progress)
	for a := 0; a < 4; a++ {
		g.Pos[a] = float64(g.From[a]) + (float64(g.Cell[a])-float64(g.From[a]))*p
	}
	if done {
		g.Snap(g.Cell)
	}
}
