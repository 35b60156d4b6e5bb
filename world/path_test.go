package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathEndpoints(t *testing.T) {
	m := testMaze(t, [4]int{5, 5, 3, 3}, 7)

	from := Cell{0, 0, 0, 0}
	to := Cell{4, 4, 2, 2}
	path := m.Path(from, to)
	require.NotEmpty(t, path)
	assert.Equal(t, from, path[0])
	assert.Equal(t, to, path[len(path)-1])
}

func TestPathStepsAreLegalMoves(t *testing.T) {
	m := testMaze(t, [4]int{4, 4, 3, 2}, 8)

	path := m.Path(Cell{0, 0, 0, 0}, Cell{3, 3, 2, 1})
	require.NotEmpty(t, path)
	for i := 1; i < len(path); i++ {
		var d Delta
		for a := range d {
			d[a] = path[i][a] - path[i-1][a]
		}
		assert.True(t, m.CheckMove(path[i-1], d),
			"step %d from %v to %v crosses a wall", i, path[i-1], path[i])
	}
}

func TestPathToSelf(t *testing.T) {
	m := testMaze(t, [4]int{3, 3, 1, 1}, 9)
	c := Cell{1, 1, 0, 0}
	assert.Equal(t, []Cell{c}, m.Path(c, c))
}

func TestPathOutOfBounds(t *testing.T) {
	m := testMaze(t, [4]int{3, 3, 1, 1}, 10)
	assert.Nil(t, m.Path(Cell{0, 0, 0, 0}, Cell{5, 0, 0, 0}))
}

func TestPathUnreachable(t *testing.T) {
	// An ungenerated maze keeps every wall solid.
	m, err := New([4]int{2, 2, 1, 1})
	require.NoError(t, err)
	assert.Nil(t, m.Path(Cell{0, 0, 0, 0}, Cell{1, 1, 0, 0}))
}

func TestPathIsShortest(t *testing.T) {
	m := testMaze(t, [4]int{5, 5, 3, 3}, 11)

	from := Cell{0, 0, 0, 0}
	to := Cell{4, 0, 1, 2}
	path := m.Path(from, to)
	require.NotEmpty(t, path)

	// BFS distance is the ground truth.
	dist := map[Cell]int{from: 0}
	queue := []Cell{from}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range m.Neighbors(c) {
			if _, ok := dist[n]; !ok {
				dist[n] = dist[c] + 1
				queue = append(queue, n)
			}
		}
	}
	require.Contains(t, dist, to)
	assert.Equal(t, dist[to]+1, len(path))
}

func BenchmarkPath(b *testing.B) {
	m, _ := New([4]int{10, 10, 5, 5})
	m.Generate(rand.New(rand.NewSource(12)))
	from := Cell{0, 0, 0, 0}
	to := Cell{9, 9, 4, 4}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Path(from, to)
	}
}
