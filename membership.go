package linkage

import "sort"

// membership tracks which cluster each observed point belongs to. Cluster
// ids are chosen by the caller (ClusterState) so every implementation
// reports the same ids for the same sequence of operations.
type membership interface {
	// lookup returns the cluster id of p, if p has been assigned.
	lookup(p Point) (int, bool)
	// create assigns p1 and p2 (possibly the same point) to the new cluster id.
	create(p1, p2 Point, id int)
	// join assigns the unassigned point p to the existing cluster id.
	join(p Point, id int)
	// merge moves every member of clusters a and b into the new cluster id.
	merge(a, b, id int)
	// groups returns the members of every live cluster keyed by id.
	groups() map[int][]Point
	// sizes returns the member count of every live cluster keyed by id.
	sizes() map[int]int
	// assigned returns the number of points with a cluster id.
	assigned() int
}

// relabelMembership keeps an explicit point -> id map. Merging two clusters
// rewrites the id of every member of both, costing O(size of both clusters).
type relabelMembership struct {
	ids     map[Point]int
	members map[int][]Point
}

func newRelabelMembership(capacity int) *relabelMembership {
	return &relabelMembership{
		ids:     make(map[Point]int, capacity),
		members: make(map[int][]Point),
	}
}

func (m *relabelMembership) lookup(p Point) (int, bool) {
	id, ok := m.ids[p]
	return id, ok
}

func (m *relabelMembership) create(p1, p2 Point, id int) {
	m.ids[p1] = id
	m.members[id] = append(m.members[id], p1)
	if p2 != p1 {
		m.ids[p2] = id
		m.members[id] = append(m.members[id], p2)
	}
}

func (m *relabelMembership) join(p Point, id int) {
	m.ids[p] = id
	m.members[id] = append(m.members[id], p)
}

func (m *relabelMembership) merge(a, b, id int) {
	merged := make([]Point, 0, len(m.members[a])+len(m.members[b]))
	merged = append(merged, m.members[a]...)
	merged = append(merged, m.members[b]...)
	for _, p := range merged {
		m.ids[p] = id
	}
	delete(m.members, a)
	delete(m.members, b)
	m.members[id] = merged
}

func (m *relabelMembership) groups() map[int][]Point {
	out := make(map[int][]Point, len(m.members))
	for id, pts := range m.members {
		out[id] = append([]Point(nil), pts...)
	}
	return out
}

func (m *relabelMembership) sizes() map[int]int {
	out := make(map[int]int, len(m.members))
	for id, pts := range m.members {
		out[id] = len(pts)
	}
	return out
}

func (m *relabelMembership) assigned() int { return len(m.ids) }

// unionFindMembership registers points lazily as UnionFind elements and
// maps each live root to its cluster id (and back). Ids only change on
// create and merge, so the tables are rewritten for one root per operation.
type unionFindMembership struct {
	uf     *UnionFind
	index  map[Point]int
	points []Point
	rootID map[int]int
	idRoot map[int]int
}

func newUnionFindMembership(capacity int) *unionFindMembership {
	return &unionFindMembership{
		uf:     NewUnionFind(capacity),
		index:  make(map[Point]int, capacity),
		points: make([]Point, 0, capacity),
		rootID: make(map[int]int),
		idRoot: make(map[int]int),
	}
}

func (m *unionFindMembership) add(p Point) int {
	x := m.uf.Add()
	m.index[p] = x
	m.points = append(m.points, p)
	return x
}

func (m *unionFindMembership) bind(root, id int) {
	m.rootID[root] = id
	m.idRoot[id] = root
}

func (m *unionFindMembership) lookup(p Point) (int, bool) {
	x, ok := m.index[p]
	if !ok {
		return 0, false
	}
	return m.rootID[m.uf.Find(x)], true
}

func (m *unionFindMembership) create(p1, p2 Point, id int) {
	root := m.add(p1)
	if p2 != p1 {
		root = m.uf.Union(root, m.add(p2))
	}
	m.bind(root, id)
}

func (m *unionFindMembership) join(p Point, id int) {
	old := m.idRoot[id]
	delete(m.rootID, old)
	m.bind(m.uf.Union(old, m.add(p)), id)
}

func (m *unionFindMembership) merge(a, b, id int) {
	ra, rb := m.idRoot[a], m.idRoot[b]
	delete(m.rootID, ra)
	delete(m.rootID, rb)
	delete(m.idRoot, a)
	delete(m.idRoot, b)
	m.bind(m.uf.Union(ra, rb), id)
}

func (m *unionFindMembership) groups() map[int][]Point {
	out := make(map[int][]Point, len(m.rootID))
	for x, p := range m.points {
		id := m.rootID[m.uf.Find(x)]
		out[id] = append(out[id], p)
	}
	return out
}

func (m *unionFindMembership) sizes() map[int]int {
	out := make(map[int]int, len(m.rootID))
	for root, id := range m.rootID {
		out[id] = m.uf.Size(root)
	}
	return out
}

func (m *unionFindMembership) assigned() int { return len(m.points) }

// sortedSizes returns cluster sizes in descending order.
func sortedSizes(sizes map[int]int) []int {
	out := make([]int, 0, len(sizes))
	for _, s := range sizes {
		out = append(out, s)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}
