package linkage

// Result contains the outcome of running the engine to exhaustion.
type Result struct {
	// Points is the number of input entries, duplicates included.
	Points int `json:"points" yaml:"points"`
	// Pairs is the number of pairs the frontier was built with.
	Pairs int `json:"pairs" yaml:"pairs"`
	// Steps counts Advance calls that returned true, no-ops included.
	Steps int `json:"steps" yaml:"steps"`
	// Links counts steps that created, grew or merged a cluster.
	Links int `json:"links" yaml:"links"`
	// Clusters is the number of live clusters after exhaustion.
	Clusters int `json:"clusters" yaml:"clusters"`

	// CheckAt is the step at which Snapshot was taken.
	CheckAt int `json:"check_at" yaml:"check_at"`
	// Snapshot is Top3Product after CheckAt steps. It is only meaningful
	// when SnapshotTaken is true (the run had at least CheckAt steps).
	Snapshot      int  `json:"snapshot" yaml:"snapshot"`
	SnapshotTaken bool `json:"snapshot_taken" yaml:"snapshot_taken"`

	// FinalTop3 is Top3Product after exhaustion.
	FinalTop3 int `json:"final_top3" yaml:"final_top3"`
	// LastMerge is LastMergeScalar after exhaustion.
	LastMerge int64 `json:"last_merge" yaml:"last_merge"`
	// SpanLength is the summed distance of all linking steps.
	SpanLength float64 `json:"span_length" yaml:"span_length"`
}

// Run drives an engine over points until the frontier is exhausted,
// snapshotting Top3Product at step cfg.CheckAt and reading LastMergeScalar
// at the end. Returns an error if the config is invalid.
func Run(points []Point, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	e, err := New(points, cfg)
	if err != nil {
		return nil, err
	}

	r := &Result{
		Points:  len(points),
		Pairs:   e.Remaining(),
		CheckAt: cfg.CheckAt,
	}
	for e.Advance() {
		if e.Steps() == cfg.CheckAt {
			r.Snapshot = e.Top3Product()
			r.SnapshotTaken = true
		}
	}

	r.Steps = e.Steps()
	r.Links = e.Links()
	r.Clusters = e.State().NumClusters()
	r.FinalTop3 = e.Top3Product()
	r.LastMerge = e.LastMergeScalar()
	r.SpanLength = e.SpanLength()
	return r, nil
}
