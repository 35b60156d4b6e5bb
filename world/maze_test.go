package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMaze(t *testing.T, dims [4]int, seed int64) *Maze {
	t.Helper()
	m, err := New(dims)
	require.NoError(t, err)
	m.Generate(rand.New(rand.NewSource(seed)))
	return m
}

func TestNewRejectsDegenerateDims(t *testing.T) {
	_, err := New([4]int{5, 0, 3, 3})
	assert.Error(t, err)
}

func TestGenerateConnectsEveryCell(t *testing.T) {
	m := testMaze(t, [4]int{4, 3, 3, 2}, 1)

	// Flood fill from the origin must reach every cell.
	seen := map[Cell]bool{{}: true}
	frontier := []Cell{{}}
	for len(frontier) > 0 {
		c := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for _, n := range m.Neighbors(c) {
			if !seen[n] {
				seen[n] = true
				frontier = append(frontier, n)
			}
		}
	}
	assert.Equal(t, m.CellCount(), len(seen), "maze has unreachable cells")
}

func TestGenerateIsSpanningTree(t *testing.T) {
	m := testMaze(t, [4]int{5, 5, 3, 3}, 2)

	// A spanning tree over N cells opens exactly N-1 interior walls.
	open := 0
	m.eachWall(func(w wallIndex) {
		if !m.walls[w] {
			open++
		}
	})
	assert.Equal(t, m.CellCount()-1, open)
}

func TestGenerateReproducible(t *testing.T) {
	a := testMaze(t, [4]int{5, 5, 3, 3}, 42)
	b := testMaze(t, [4]int{5, 5, 3, 3}, 42)
	assert.Equal(t, a.walls, b.walls)
}

func TestCheckMoveRejectsBadDeltas(t *testing.T) {
	m := testMaze(t, [4]int{3, 3, 2, 2}, 3)

	assert.False(t, m.CheckMove(Cell{0, 0, 0, 0}, Delta{}), "zero delta")
	assert.False(t, m.CheckMove(Cell{0, 0, 0, 0}, Delta{1, 1, 0, 0}), "diagonal")
	assert.False(t, m.CheckMove(Cell{0, 0, 0, 0}, Delta{2, 0, 0, 0}), "two cells")
	assert.False(t, m.CheckMove(Cell{0, 0, 0, 0}, Delta{-1, 0, 0, 0}), "off the edge")
	assert.False(t, m.CheckMove(Cell{9, 9, 9, 9}, Delta{1, 0, 0, 0}), "from out of bounds")
}

func TestCheckMoveSymmetric(t *testing.T) {
	m := testMaze(t, [4]int{4, 4, 2, 2}, 4)

	var c Cell
	m.eachIndex(m.dims, 0, c, func(from Cell) {
		for axis := 0; axis < 4; axis++ {
			var d, back Delta
			d[axis], back[axis] = 1, -1
			to := from.Add(d)
			if !m.InBounds(to) {
				continue
			}
			assert.Equal(t, m.CheckMove(from, d), m.CheckMove(to, back),
				"wall between %v and %v must look the same from both sides", from, to)
		}
	})
}

func TestUngeneratedMazeIsSealed(t *testing.T) {
	m, err := New([4]int{2, 2, 2, 2})
	require.NoError(t, err)
	assert.Empty(t, m.Neighbors(Cell{0, 0, 0, 0}))
}

func TestPlaceFood(t *testing.T) {
	m := testMaze(t, [4]int{3, 3, 2, 2}, 5)
	rng := rand.New(rand.NewSource(5))

	start := Cell{0, 0, 0, 0}
	cells, err := m.PlaceFood(rng, 10, start)
	require.NoError(t, err)
	require.Len(t, cells, 10)

	seen := map[Cell]bool{}
	for _, c := range cells {
		assert.True(t, m.InBounds(c))
		assert.True(t, m.HasFood(c))
		assert.NotEqual(t, start, c, "food must not spawn on the start cell")
		assert.False(t, seen[c], "food cells must be distinct")
		seen[c] = true
	}

	m.RemoveFood(cells[0])
	assert.False(t, m.HasFood(cells[0]))
}

func TestRandomSpawnCellAvoidsCell(t *testing.T) {
	m := testMaze(t, [4]int{2, 2, 1, 1}, 7)
	rng := rand.New(rand.NewSource(7))
	start := Cell{0, 0, 0, 0}

	// Fill every other cell with food; the spawn must still land somewhere.
	_, err := m.PlaceFood(rng, 3, start)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		c := m.RandomSpawnCell(rng, start)
		assert.True(t, m.InBounds(c))
		assert.NotEqual(t, start, c)
	}

	single := testMaze(t, [4]int{1, 1, 1, 1}, 8)
	assert.Equal(t, start, single.RandomSpawnCell(rng, start))
}

func TestPlaceFoodRejectsOverfill(t *testing.T) {
	m := testMaze(t, [4]int{2, 2, 1, 1}, 6)
	_, err := m.PlaceFood(rand.New(rand.NewSource(6)), 4, Cell{0, 0, 0, 0})
	assert.Error(t, err, "4 food cannot fit beside a start cell in a 4-cell maze")
}
