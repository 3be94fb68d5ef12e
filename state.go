package linkage

import "sort"

// LinkKind classifies the effect of consuming one pair.
type LinkKind int

const (
	// LinkNone means both points were already in the same cluster.
	LinkNone LinkKind = iota
	// LinkCreate means two unassigned points formed a new cluster.
	LinkCreate
	// LinkJoin means an unassigned point joined an existing cluster.
	LinkJoin
	// LinkMerge means two distinct clusters were merged under a new id.
	LinkMerge
)

func (k LinkKind) String() string {
	switch k {
	case LinkNone:
		return "none"
	case LinkCreate:
		return "create"
	case LinkJoin:
		return "join"
	case LinkMerge:
		return "merge"
	default:
		return "unknown"
	}
}

// ClusterState maps every observed point to a cluster id and remembers the
// most recent pair that changed the cluster structure.
//
// Ids come from an incrementing counter and are never reused: creating a
// cluster and merging two clusters both allocate a fresh id. Points are
// never removed.
type ClusterState struct {
	members membership
	nextID  int

	lastMerge    [2]int
	hasLastMerge bool
}

func newClusterState(strategy Strategy, capacity int) *ClusterState {
	var m membership
	switch strategy {
	case StrategyUnionFind:
		m = newUnionFindMembership(capacity)
	default:
		m = newRelabelMembership(capacity)
	}
	return &ClusterState{members: m}
}

// apply consumes one pair and returns what happened and the id of the
// cluster that now holds both points.
func (s *ClusterState) apply(p1, p2 Point) (LinkKind, int) {
	id1, ok1 := s.members.lookup(p1)
	id2, ok2 := s.members.lookup(p2)

	var kind LinkKind
	var id int
	switch {
	case ok1 && ok2 && id1 == id2:
		return LinkNone, id1
	case ok1 && ok2:
		id = s.allocate()
		s.members.merge(id1, id2, id)
		kind = LinkMerge
	case ok1:
		id = id1
		s.members.join(p2, id)
		kind = LinkJoin
	case ok2:
		id = id2
		s.members.join(p1, id)
		kind = LinkJoin
	default:
		id = s.allocate()
		s.members.create(p1, p2, id)
		kind = LinkCreate
	}

	s.lastMerge = [2]int{p1.X, p2.X}
	s.hasLastMerge = true
	return kind, id
}

func (s *ClusterState) allocate() int {
	id := s.nextID
	s.nextID++
	return id
}

// ClusterOf returns the cluster id of p, or false if p has not appeared in
// a consumed pair.
func (s *ClusterState) ClusterOf(p Point) (int, bool) {
	return s.members.lookup(p)
}

// NextID returns the id the next new cluster will receive.
func (s *ClusterState) NextID() int { return s.nextID }

// NumAssigned returns the number of distinct points with a cluster id.
func (s *ClusterState) NumAssigned() int { return s.members.assigned() }

// NumClusters returns the number of live clusters.
func (s *ClusterState) NumClusters() int { return len(s.members.sizes()) }

// LastMerge returns the x-coordinates of the most recent linking pair.
func (s *ClusterState) LastMerge() (x1, x2 int, ok bool) {
	return s.lastMerge[0], s.lastMerge[1], s.hasLastMerge
}

// ClusterSizes returns the member count of every live cluster, largest first.
func (s *ClusterState) ClusterSizes() []int {
	return sortedSizes(s.members.sizes())
}

// Clusters returns the live clusters as a partition of the assigned points.
// Members are sorted by coordinate and clusters by their first member, so
// the result does not depend on cluster ids or the membership strategy.
func (s *ClusterState) Clusters() [][]Point {
	groups := s.members.groups()
	out := make([][]Point, 0, len(groups))
	for _, pts := range groups {
		sort.Slice(pts, func(i, j int) bool { return pointLess(pts[i], pts[j]) })
		out = append(out, pts)
	}
	sort.Slice(out, func(i, j int) bool { return pointLess(out[i][0], out[j][0]) })
	return out
}

func pointLess(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}
