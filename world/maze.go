// Package world holds the 4D maze: generation, wall queries and ghost
// pathfinding. The maze is a grid of cells along four axes (x, y, z, w) with
// walls between adjacent cells; generation knocks walls out until the cells
// form a spanning tree, so every pair of cells is connected by exactly one
// path.
package world

import (
	"fmt"
	"math/rand"
)

// Axis indices into Cell and Delta.
const (
	AxisX = iota
	AxisY
	AxisZ
	AxisW
)

// Cell addresses one cell of the maze.
type Cell [4]int

// Delta is a move offset between cells.
type Delta [4]int

// Add returns the cell reached by applying d to c.
func (c Cell) Add(d Delta) Cell {
	return Cell{c[0] + d[0], c[1] + d[1], c[2] + d[2], c[3] + d[3]}
}

// unitAxis reports which single axis d steps along and in which direction.
// ok is false unless d is a unit step on exactly one axis.
func (d Delta) unitAxis() (axis, dir int, ok bool) {
	axis = -1
	for a, v := range d {
		if v == 0 {
			continue
		}
		if v != 1 && v != -1 || axis >= 0 {
			return 0, 0, false
		}
		axis, dir = a, v
	}
	if axis < 0 {
		return 0, 0, false
	}
	return axis, dir, true
}

// wallIndex locates one wall: the wall perpendicular to axis at slot pos[axis]
// separates the cells with axis coordinate pos[axis]-1 and pos[axis]. Slots 0
// and dims[axis] are the maze boundary.
type wallIndex struct {
	axis int
	pos  Cell
}

// Maze is a 4D maze. The zero value is unusable; use New.
type Maze struct {
	dims  [4]int
	walls map[wallIndex]bool // true = solid; every wall starts solid
	food  map[Cell]bool
}

// New returns a maze of the given dimensions with every wall solid.
// Call Generate to carve it into a maze.
func New(dims [4]int) (*Maze, error) {
	for _, d := range dims {
		if d < 1 {
			return nil, fmt.Errorf("maze dimensions %v: every axis must be at least 1", dims)
		}
	}
	m := &Maze{
		dims:  dims,
		walls: make(map[wallIndex]bool),
		food:  make(map[Cell]bool),
	}
	m.eachWall(func(w wallIndex) {
		m.walls[w] = true
	})
	return m, nil
}

// Dims returns the cell counts along each axis.
func (m *Maze) Dims() [4]int { return m.dims }

// CellCount returns the total number of cells.
func (m *Maze) CellCount() int {
	n := 1
	for _, d := range m.dims {
		n *= d
	}
	return n
}

// InBounds reports whether c addresses a cell of the maze.
func (m *Maze) InBounds(c Cell) bool {
	for a, v := range c {
		if v < 0 || v >= m.dims[a] {
			return false
		}
	}
	return true
}

// eachWall visits every wall slot of the maze once.
func (m *Maze) eachWall(fn func(wallIndex)) {
	for axis := 0; axis < 4; axis++ {
		bounds := m.dims
		bounds[axis]++ // one extra wall slot along the perpendicular axis
		var pos Cell
		m.eachIndex(bounds, 0, pos, func(p Cell) {
			fn(wallIndex{axis: axis, pos: p})
		})
	}
}

func (m *Maze) eachIndex(bounds [4]int, axis int, pos Cell, fn func(Cell)) {
	if axis == 4 {
		fn(pos)
		return
	}
	for i := 0; i < bounds[axis]; i++ {
		pos[axis] = i
		m.eachIndex(bounds, axis+1, pos, fn)
	}
}

// Generate carves the maze with randomized Kruskal: interior walls are
// visited in random order and removed whenever they separate two cells that
// are not yet connected. The rng makes generation reproducible.
func (m *Maze) Generate(rng *rand.Rand) {
	var edges []wallIndex
	m.eachWall(func(w wallIndex) {
		// Interior walls only: boundary slots have a cell on one side.
		if w.pos[w.axis] > 0 && w.pos[w.axis] < m.dims[w.axis] {
			edges = append(edges, w)
		}
	})
	rng.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})

	sets := newDisjointSet()
	var origin Cell
	m.eachIndex(m.dims, 0, origin, sets.Add)

	for _, w := range edges {
		a := w.pos
		a[w.axis]--
		b := w.pos
		if sets.Find(a) != sets.Find(b) {
			m.walls[w] = false
			sets.Union(a, b)
		}
	}
}

// Solid reports whether the wall on the negative side of cell c along axis is
// solid. Out-of-range slots count as solid.
func (m *Maze) Solid(axis int, c Cell) bool {
	solid, ok := m.walls[wallIndex{axis: axis, pos: c}]
	return !ok || solid
}

// CheckMove reports whether a piece standing on `from` may apply delta: the
// delta must be a unit step on exactly one axis, the destination must be in
// bounds, and the wall between the two cells must be open.
func (m *Maze) CheckMove(from Cell, delta Delta) bool {
	axis, dir, ok := delta.unitAxis()
	if !ok || !m.InBounds(from) {
		return false
	}
	to := from.Add(delta)
	if !m.InBounds(to) {
		return false
	}
	wallPos := from
	if dir > 0 {
		wallPos[axis]++
	}
	return !m.Solid(axis, wallPos)
}

// Neighbors returns the cells reachable from c in one move.
func (m *Maze) Neighbors(c Cell) []Cell {
	var out []Cell
	for axis := 0; axis < 4; axis++ {
		for _, dir := range [2]int{-1, 1} {
			var d Delta
			d[axis] = dir
			if m.CheckMove(c, d) {
				out = append(out, c.Add(d))
			}
		}
	}
	return out
}

// PlaceFood marks count random cells as holding food, never the start cell.
// It returns the chosen cells. count must not exceed the number of free
// cells.
func (m *Maze) PlaceFood(rng *rand.Rand, count int, start Cell) ([]Cell, error) {
	free := m.CellCount() - 1 // start cell stays empty
	if count > free {
		return nil, fmt.Errorf("placing %d food in a maze with %d free cells", count, free)
	}
	cells := make([]Cell, 0, count)
	for len(cells) < count {
		c := m.randomCell(rng)
		if c == start || m.food[c] {
			continue
		}
		m.food[c] = true
		cells = append(cells, c)
	}
	return cells, nil
}

// HasFood reports whether cell c still holds food.
func (m *Maze) HasFood(c Cell) bool { return m.food[c] }

// RemoveFood clears the food marker at c.
func (m *Maze) RemoveFood(c Cell) { delete(m.food, c) }

// RandomSpawnCell returns a uniformly random cell other than avoid. Food
// cells are fair game. In a single-cell maze avoid is the only choice.
func (m *Maze) RandomSpawnCell(rng *rand.Rand, avoid Cell) Cell {
	if m.CellCount() == 1 {
		return avoid
	}
	for {
		c := m.randomCell(rng)
		if c != avoid {
			return c
		}
	}
}

func (m *Maze) randomCell(rng *rand.Rand) Cell {
	var c Cell
	for a, d := range m.dims {
		c[a] = rng.Intn(d)
	}
	return c
}
