package linkage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type goldenData struct {
	Dataset       string   `json:"dataset"`
	Points        [][3]int `json:"points"`
	CheckAt       int      `json:"check_at"`
	Snapshot      int      `json:"snapshot"`
	SnapshotTaken bool     `json:"snapshot_taken"`
	Steps         int      `json:"steps"`
	Links         int      `json:"links"`
	Clusters      int      `json:"clusters"`
	FinalTop3     int      `json:"final_top3"`
	LastMerge     int64    `json:"last_merge"`
}

func loadGoldenFile(t *testing.T, path string) goldenData {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read golden file %s", path)
	var gd goldenData
	require.NoError(t, json.Unmarshal(data, &gd), "failed to parse golden file %s", path)
	return gd
}

func (gd goldenData) points() []Point {
	out := make([]Point, len(gd.Points))
	for i, c := range gd.Points {
		out[i] = Point{X: c[0], Y: c[1], Z: c[2]}
	}
	return out
}

// TestGoldenRun checks Run against hand-traced outputs for every fixture
// in testdata/, once per membership strategy.
func TestGoldenRun(t *testing.T) {
	files, err := filepath.Glob("testdata/*.json")
	require.NoError(t, err)
	require.NotEmpty(t, files, "no golden test files found in testdata/")

	for _, f := range files {
		gd := loadGoldenFile(t, f)
		for _, strategy := range []Strategy{StrategyRelabel, StrategyUnionFind} {
			t.Run(filepath.Base(f)+"/"+string(strategy), func(t *testing.T) {
				cfg := DefaultConfig()
				cfg.Strategy = strategy
				cfg.CheckAt = gd.CheckAt

				r, err := Run(gd.points(), cfg)
				require.NoError(t, err)

				assert.Equal(t, len(gd.Points), r.Points)
				assert.Equal(t, gd.Snapshot, r.Snapshot, "snapshot")
				assert.Equal(t, gd.SnapshotTaken, r.SnapshotTaken, "snapshot_taken")
				assert.Equal(t, gd.Steps, r.Steps, "steps")
				assert.Equal(t, gd.Links, r.Links, "links")
				assert.Equal(t, gd.Clusters, r.Clusters, "clusters")
				assert.Equal(t, gd.FinalTop3, r.FinalTop3, "final_top3")
				assert.Equal(t, gd.LastMerge, r.LastMerge, "last_merge")
			})
		}
	}
}
