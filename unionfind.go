package linkage

// UnionFind implements a disjoint-set data structure with path compression
// and union by size. Elements are added one at a time with Add, so the
// structure can grow as new points are observed.
type UnionFind struct {
	parent []int
	size   []int
}

// NewUnionFind creates a UnionFind with room for n elements. n is only a
// capacity hint; the set starts empty.
func NewUnionFind(n int) *UnionFind {
	if n < 0 {
		n = 0
	}
	return &UnionFind{
		parent: make([]int, 0, n),
		size:   make([]int, 0, n),
	}
}

// Add creates a new singleton element and returns its index.
func (uf *UnionFind) Add() int {
	uf.parent = append(uf.parent, -1) // -1 means "is a root"
	uf.size = append(uf.size, 1)
	return len(uf.parent) - 1
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Find returns the root of the set containing x, with path compression.
func (uf *UnionFind) Find(x int) int {
	// Walk to the root.
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	// Path compression: point all nodes along the path directly to root.
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// Union merges the sets containing x and y by attaching the smaller tree
// under the larger. Returns the new root.
func (uf *UnionFind) Union(x, y int) int {
	rootX := uf.Find(x)
	rootY := uf.Find(y)
	if rootX == rootY {
		return rootX
	}

	// Attach smaller to larger.
	if uf.size[rootX] < uf.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	uf.parent[rootY] = rootX
	uf.size[rootX] += uf.size[rootY]
	return rootX
}

// Size returns the number of elements in the set containing x.
func (uf *UnionFind) Size(x int) int {
	return uf.size[uf.Find(x)]
}
