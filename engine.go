package linkage

import (
	"fmt"
	"log/slog"
)

// Strategy selects how cluster membership is stored.
type Strategy string

const (
	// StrategyRelabel keeps an explicit point -> id map and relabels every
	// member of both clusters on a merge.
	StrategyRelabel Strategy = "relabel"
	// StrategyUnionFind keeps a disjoint-set forest with path compression
	// and union by size. Ids and metrics match StrategyRelabel exactly.
	StrategyUnionFind Strategy = "unionfind"
)

// DefaultCheckAt is the step count at which Run snapshots Top3Product.
const DefaultCheckAt = 1000

// Config controls engine behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Strategy selects the membership bookkeeping. Both strategies produce
	// identical results; unionfind avoids O(cluster size) relabeling.
	// Default: "relabel".
	Strategy Strategy

	// CheckAt is the number of successful Advance calls after which Run
	// snapshots Top3Product. 0 means DefaultCheckAt. Must be >= 0.
	CheckAt int

	// Logger receives debug records for every linking step and an info
	// record at exhaustion. nil discards all records.
	Logger *slog.Logger
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Strategy: StrategyRelabel,
		CheckAt:  DefaultCheckAt,
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	switch cfg.Strategy {
	case StrategyRelabel, StrategyUnionFind:
		// valid
	default:
		return fmt.Errorf("linkage: invalid Strategy %q", cfg.Strategy)
	}
	if cfg.CheckAt < 0 {
		return fmt.Errorf("linkage: CheckAt must be >= 0, got %d", cfg.CheckAt)
	}
	return nil
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Strategy == "" {
		cfg.Strategy = StrategyRelabel
	}
	if cfg.CheckAt == 0 {
		cfg.CheckAt = DefaultCheckAt
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
}

// Engine consumes point pairs in ascending distance order and merges their
// points into clusters (single-linkage agglomeration). It is a stateful
// stepper and is not safe for concurrent use.
type Engine struct {
	frontier *Frontier
	state    *ClusterState
	logger   *slog.Logger

	steps int
	links int
	span  float64
	done  bool
}

// New builds the full pair frontier for points and returns an engine with
// no consumed pairs. It returns an error only if cfg is invalid.
func New(points []Point, cfg Config) (*Engine, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	f := NewFrontier(points)
	cfg.Logger.Debug("frontier built", "points", len(points), "pairs", f.Total())

	return &Engine{
		frontier: f,
		state:    newClusterState(cfg.Strategy, len(points)),
		logger:   cfg.Logger,
	}, nil
}

// Advance consumes the nearest unconsumed pair and updates cluster
// membership:
//
//	both unassigned        -> new cluster id for both
//	one assigned           -> the other joins its cluster
//	same cluster           -> no-op
//	different clusters     -> new id for the union of both
//
// Every step except the no-op records the pair's x-coordinates as the last
// merge. Advance returns false, without changing anything, once the
// frontier is exhausted.
func (e *Engine) Advance() bool {
	if e.done {
		return false
	}
	pair, ok := e.frontier.Pop()
	if !ok {
		e.done = true
		e.logger.Info("frontier exhausted",
			"steps", e.steps, "links", e.links, "clusters", e.state.NumClusters())
		return false
	}

	e.steps++
	kind, id := e.state.apply(pair.P1, pair.P2)
	if kind != LinkNone {
		e.links++
		e.span += pair.Distance
		e.logger.Debug("link",
			"kind", kind.String(), "cluster", id,
			"p1", pair.P1.String(), "p2", pair.P2.String(), "distance", pair.Distance)
	}
	return true
}

// State returns the engine's cluster state. It is owned by the engine and
// changes on every Advance.
func (e *Engine) State() *ClusterState { return e.state }

// Steps returns the number of Advance calls that returned true.
func (e *Engine) Steps() int { return e.steps }

// Links returns the number of steps that changed the cluster structure.
func (e *Engine) Links() int { return e.links }

// Remaining returns the number of pairs not yet consumed.
func (e *Engine) Remaining() int { return e.frontier.Len() }

// SpanLength returns the summed distance of every linking step. Once the
// frontier is exhausted over distinct points this is the total weight of a
// minimum spanning tree of the point set.
func (e *Engine) SpanLength() float64 { return e.span }

// Done reports whether Advance has returned false.
func (e *Engine) Done() bool { return e.done }

// TopClusterProduct multiplies the sizes of the k largest clusters. With
// fewer than k clusters it multiplies those present; with none it returns 1.
func (e *Engine) TopClusterProduct(k int) int {
	sizes := e.state.ClusterSizes()
	if k < len(sizes) {
		sizes = sizes[:max(k, 0)]
	}
	product := 1
	for _, s := range sizes {
		product *= s
	}
	return product
}

// Top3Product multiplies the sizes of the three largest clusters.
func (e *Engine) Top3Product() int { return e.TopClusterProduct(3) }

// LastMergeScalar returns the product of the x-coordinates of the most
// recent linking pair, or 0 if no pair has linked yet.
func (e *Engine) LastMergeScalar() int64 {
	x1, x2, ok := e.state.LastMerge()
	if !ok {
		return 0
	}
	return int64(x1) * int64(x2)
}
