package linkage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		want    Point
		wantErr bool
	}{
		{"162,817,812", Point{162, 817, 812}, false},
		{"-1,0,-7", Point{-1, 0, -7}, false},
		{" 3 , 4 ,5 ", Point{3, 4, 5}, false},
		{"1,2", Point{}, true},
		{"1,2,3,4", Point{}, true},
		{"1,x,3", Point{}, true},
		{"", Point{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePoint(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidPoint)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePoints(t *testing.T) {
	in := "162,817,812\n57,618,57\n\n906,360,560\r\n"
	got, err := ParsePoints(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []Point{{162, 817, 812}, {57, 618, 57}, {906, 360, 560}}, got)
}

func TestParsePoints_ErrorHasLineNumber(t *testing.T) {
	_, err := ParsePoints(strings.NewReader("1,2,3\n\n4,5\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPoint)
	assert.Contains(t, err.Error(), "line 3")
}

func TestParsePoints_Empty(t *testing.T) {
	got, err := ParsePoints(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWritePointsRoundTrip(t *testing.T) {
	points := []Point{{1, 2, 3}, {-4, 5, -6}}
	var buf bytes.Buffer
	require.NoError(t, WritePoints(&buf, points))
	assert.Equal(t, "1,2,3\n-4,5,-6\n", buf.String())

	got, err := ParsePoints(&buf)
	require.NoError(t, err)
	assert.Equal(t, points, got)
}

func TestLoadPoints_Plain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.txt")
	require.NoError(t, os.WriteFile(path, []byte("0,0,0\n1,0,0\n"), 0o644))

	got, err := LoadPoints(path)
	require.NoError(t, err)
	assert.Equal(t, []Point{{0, 0, 0}, {1, 0, 0}}, got)
}

func TestLoadPoints_Zstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.txt.zst")
	f, err := os.Create(path)
	require.NoError(t, err)
	enc, err := zstd.NewWriter(f)
	require.NoError(t, err)
	require.NoError(t, WritePoints(enc, twoSquares()))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())

	got, err := LoadPoints(path)
	require.NoError(t, err)
	assert.Equal(t, twoSquares(), got)
}

func TestLoadPoints_Missing(t *testing.T) {
	_, err := LoadPoints(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
