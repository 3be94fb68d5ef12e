// Package linkage implements incremental single-linkage clustering of
// integer points in 3-D space.
//
// Every pair of input points is enumerated once and consumed in ascending
// Euclidean distance order. Each consumed pair either creates a cluster,
// grows one, merges two, or does nothing because both points already share
// a cluster. After any number of steps the caller can query the cluster
// sizes and the pair that most recently changed the structure.
//
// Basic usage:
//
//	e, err := linkage.New(points, linkage.DefaultConfig())
//	for e.Advance() {
//		if e.Steps() == 1000 {
//			fmt.Println(e.Top3Product()) // product of the 3 largest cluster sizes
//		}
//	}
//	fmt.Println(e.LastMergeScalar()) // x1*x2 of the last linking pair
//
// Or let Run drive the loop:
//
//	result, err := linkage.Run(points, linkage.DefaultConfig())
//
// # Point identity
//
// Points are compared by coordinates. Two input entries with the same
// coordinates are one point to the engine: their mutual pair (distance 0)
// is consumed first and they share a single membership entry.
//
// # Membership strategies
//
// Config.Strategy picks the bookkeeping behind cluster ids. "relabel"
// rewrites the id of every member of both clusters on a merge; "unionfind"
// uses a disjoint-set forest. Both allocate a fresh id for every new or
// merged cluster and report identical results.
package linkage
