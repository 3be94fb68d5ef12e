package linkage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// ErrInvalidPoint is returned (wrapped) for lines that are not "x,y,z".
var ErrInvalidPoint = errors.New("invalid point")

// ParsePoint parses a single "x,y,z" triple. Whitespace around each field
// is ignored.
func ParsePoint(s string) (Point, error) {
	p, err := parsePoint(s)
	if err != nil {
		return Point{}, fmt.Errorf("linkage: %w", err)
	}
	return p, nil
}

func parsePoint(s string) (Point, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return Point{}, fmt.Errorf("%w %q: has %d fields, want 3", ErrInvalidPoint, s, len(fields))
	}
	var c [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Point{}, fmt.Errorf("%w %q: %v", ErrInvalidPoint, s, err)
		}
		c[i] = v
	}
	return Point{X: c[0], Y: c[1], Z: c[2]}, nil
}

// ParsePoints reads one "x,y,z" triple per line. Blank lines are skipped.
// Errors carry the 1-based line number.
func ParsePoints(r io.Reader) ([]Point, error) {
	var points []Point
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		p, err := parsePoint(text)
		if err != nil {
			return nil, fmt.Errorf("linkage: line %d: %w", line, err)
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("linkage: reading points: %w", err)
	}
	return points, nil
}

// LoadPoints reads points from the file at path. Files ending in ".zst"
// are decompressed with zstd first.
func LoadPoints(path string) ([]Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("linkage: %w", err)
	}
	defer f.Close()

	if !strings.HasSuffix(path, ".zst") {
		return ParsePoints(f)
	}

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("linkage: opening zstd stream: %w", err)
	}
	defer dec.Close()
	return ParsePoints(dec)
}

// WritePoints writes points in the format ParsePoints reads.
func WritePoints(w io.Writer, points []Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := fmt.Fprintln(bw, p.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}
