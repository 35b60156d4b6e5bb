package world

// disjointSet is a union-find over maze cells, used by the Kruskal maze
// generator to track which cells are already connected.
type disjointSet struct {
	parent map[Cell]Cell
}

func newDisjointSet() *disjointSet {
	return &disjointSet{parent: make(map[Cell]Cell)}
}

// Add registers a cell as its own singleton set.
func (d *disjointSet) Add(c Cell) {
	if _, ok := d.parent[c]; !ok {
		d.parent[c] = c
	}
}

// Find returns the representative of c's set, compressing the chain walked.
func (d *disjointSet) Find(c Cell) Cell {
	root := c
	for {
		p, ok := d.parent[root]
		if !ok {
			panic("disjoint set: cell was never added")
		}
		if p == root {
			break
		}
		root = p
	}
	// Path compression
	for c != root {
		next := d.parent[c]
		d.parent[c] = root
		c = next
	}
	return root
}

// Union merges the set containing a into the set containing b.
func (d *disjointSet) Union(a, b Cell) {
	d.parent[d.Find(a)] = d.Find(b)
}
