package linkage

import "container/heap"

// Pair is an unordered pair of input points weighted by their Euclidean
// distance. P1 always comes from the earlier input entry.
type Pair struct {
	P1, P2   Point
	Distance float64

	reduced float64
	i, j    int
}

// Frontier yields every unordered pair of input entries exactly once, in
// non-decreasing distance order. It is built eagerly from the full point
// set and only shrinks afterwards.
type Frontier struct {
	h     pairHeap
	total int
}

// NewFrontier enumerates all pairs (i, j) with i < j. Generating only the
// upper triangle makes (A,B) and (B,A) the same pair without a seen-matrix.
// Equal distances come out in input index order.
//
// Construction is O(n²) pairs; this is meant for bounded point sets.
func NewFrontier(points []Point) *Frontier {
	n := len(points)
	if n < 2 {
		return &Frontier{}
	}

	h := make(pairHeap, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := ReducedDistance(points[i], points[j])
			h = append(h, Pair{
				P1:       points[i],
				P2:       points[j],
				Distance: Distance(points[i], points[j]),
				reduced:  r,
				i:        i,
				j:        j,
			})
		}
	}
	heap.Init(&h)

	return &Frontier{h: h, total: len(h)}
}

// Pop removes and returns the nearest remaining pair. It reports false once
// the frontier is exhausted.
func (f *Frontier) Pop() (Pair, bool) {
	if len(f.h) == 0 {
		return Pair{}, false
	}
	return heap.Pop(&f.h).(Pair), true
}

// Len returns the number of pairs not yet popped.
func (f *Frontier) Len() int { return len(f.h) }

// Total returns the number of pairs the frontier was built with.
func (f *Frontier) Total() int { return f.total }

// --- min-heap of pairs ---

// pairHeap is a min-heap on reduced distance. container/heap already pops
// the Less-smallest element, so no inverted comparator is needed.
type pairHeap []Pair

func (h pairHeap) Len() int { return len(h) }
func (h pairHeap) Less(a, b int) bool {
	if h[a].reduced != h[b].reduced {
		return h[a].reduced < h[b].reduced
	}
	if h[a].i != h[b].i {
		return h[a].i < h[b].i
	}
	return h[a].j < h[b].j
}
func (h pairHeap) Swap(a, b int)       { h[a], h[b] = h[b], h[a] }
func (h *pairHeap) Push(x interface{}) { *h = append(*h, x.(Pair)) }
func (h *pairHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
