package octree

import (
	"errors"
	"sort"

	"github.com/katalvlaran/knotkit/geom"
)

// ErrTooFewPoints indicates a polyline with fewer than 2 points.
var ErrTooFewPoints = errors.New("octree: line needs at least 2 points")

// Cuts holds one cut coordinate per axis. A segment is cut wherever a
// coordinate passes through the matching value.
type Cuts struct {
	X, Y, Z float64
}

// BoundingBoxCuts returns the default cut planes for a line: the
// midpoints of its bounding box, with the box padded by 1 on every
// side so that points sitting exactly on an extreme never coincide
// with a plane.
// Complexity: O(n).
func BoundingBoxCuts(line []geom.Vec3) Cuts {
	min, max := line[0], line[0]
	for _, p := range line[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	return Cuts{
		X: (max.X + 1 + min.X - 1) / 2,
		Y: (max.Y + 1 + min.Y - 1) / 2,
		Z: (max.Z + 1 + min.Z - 1) / 2,
	}
}

// cutFractions collects the interpolation fractions at which the
// segment cur→nex passes through any of the three cut planes, sorted
// ascending. Fractions at exactly 0 or 1 are dropped: a vertex lying
// on a plane does not split the line there.
func cutFractions(cur, nex geom.Vec3, cuts Cuts) []float64 {
	var fracs []float64
	for _, axis := range [3][3]float64{
		{cur.X, nex.X, cuts.X},
		{cur.Y, nex.Y, cuts.Y},
		{cur.Z, nex.Z, cuts.Z},
	} {
		a, b, cut := axis[0], axis[1], axis[2]
		if geom.Sign(a-cut) == geom.Sign(b-cut) {
			continue
		}
		t := (cut - a) / (b - a)
		if t > 0 && t < 1 {
			fracs = append(fracs, t)
		}
	}
	sort.Float64s(fracs)
	return fracs
}

// LineToSegments splits line at the given cut planes and returns the
// ordered sub-lines. A nil cuts uses BoundingBoxCuts(line). Each cut
// point is interpolated on the crossing segment and appears as both
// the last point of one sub-line and the first point of the next, so
// concatenating the pieces (deduplicating shared boundary points)
// reconstructs the input up to the inserted points.
//
// With joinEnds, a line that was cut at least once has its final piece
// concatenated with its leading piece, preserving closure semantics
// for closed curves; the merged piece is returned last.
//
// Returns ErrTooFewPoints for fewer than 2 points.
// Complexity: O(n) plus O(k log k) per multiply-cut segment (k ≤ 3).
func LineToSegments(line []geom.Vec3, cuts *Cuts, joinEnds bool) ([][]geom.Vec3, error) {
	if len(line) < 2 {
		return nil, ErrTooFewPoints
	}

	c := BoundingBoxCuts(line)
	if cuts != nil {
		c = *cuts
	}

	var segments [][]geom.Vec3
	current := []geom.Vec3{line[0]}
	for i := 0; i < len(line)-1; i++ {
		cur, nex := line[i], line[i+1]
		for _, t := range cutFractions(cur, nex, c) {
			p := cur.Lerp(nex, t)
			current = append(current, p)
			segments = append(segments, current)
			current = []geom.Vec3{p}
		}
		current = append(current, nex)
	}
	segments = append(segments, current)

	if joinEnds && len(segments) > 1 {
		first := segments[0]
		last := segments[len(segments)-1]
		merged := make([]geom.Vec3, 0, len(last)+len(first))
		merged = append(merged, last...)
		merged = append(merged, first...)
		segments = append(segments[1:len(segments)-1], merged)
	}
	return segments, nil
}
