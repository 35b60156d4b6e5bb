package world

import (
	astar "github.com/beefsack/go-astar"
)

// pathNode adapts a maze cell to astar.Pather. Nodes are canonicalized per
// search so the library's identity comparisons hold.
type pathNode struct {
	cell   Cell
	search *pathSearch
}

type pathSearch struct {
	maze  *Maze
	nodes map[Cell]*pathNode
}

func (s *pathSearch) node(c Cell) *pathNode {
	if n, ok := s.nodes[c]; ok {
		return n
	}
	n := &pathNode{cell: c, search: s}
	s.nodes[c] = n
	return n
}

// PathNeighbors returns the adjacent open cells (implements astar.Pather).
func (n *pathNode) PathNeighbors() []astar.Pather {
	cells := n.search.maze.Neighbors(n.cell)
	out := make([]astar.Pather, len(cells))
	for i, c := range cells {
		out[i] = n.search.node(c)
	}
	return out
}

// PathNeighborCost returns the cost of one step (implements astar.Pather).
// Every move crosses exactly one open wall, so all steps cost the same.
func (n *pathNode) PathNeighborCost(astar.Pather) float64 { return 1 }

// PathEstimatedCost returns the Manhattan distance heuristic (implements
// astar.Pather).
func (n *pathNode) PathEstimatedCost(to astar.Pather) float64 {
	t := to.(*pathNode)
	var sum float64
	for a := range n.cell {
		d := n.cell[a] - t.cell[a]
		if d < 0 {
			d = -d
		}
		sum += float64(d)
	}
	return sum
}

// Path returns the shortest cell path from `from` to `to`, inclusive of both
// endpoints, or nil when no path exists. On a freshly generated maze the
// spanning tree makes this path unique.
func (m *Maze) Path(from, to Cell) []Cell {
	if !m.InBounds(from) || !m.InBounds(to) {
		return nil
	}
	if from == to {
		return []Cell{from}
	}
	s := &pathSearch{maze: m, nodes: make(map[Cell]*pathNode)}
	found, _, ok := astar.Path(s.node(from), s.node(to))
	if !ok {
		return nil
	}
	// go-astar returns the path destination-first.
	path := make([]Cell, len(found))
	for i, p := range found {
		path[len(found)-1-i] = p.(*pathNode).cell
	}
	return path
}
