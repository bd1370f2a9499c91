package geom_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/knotkit/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSegmentIntersection_Basic verifies a plain transversal crossing
// at known fractional parameters.
func TestSegmentIntersection_Basic(t *testing.T) {
	// Horizontal segment (0,0)→(2,0) against vertical (1,-1)→(1,1);
	// they meet at (1,0), halfway along each.
	hit, ok := geom.SegmentIntersection(
		geom.V2(0, 0), geom.V2(2, 0),
		geom.V2(1, -1), geom.V2(0, 2),
	)
	require.True(t, ok, "transversal segments must intersect")
	assert.InDelta(t, 0.5, hit.T, 1e-12)
	assert.InDelta(t, 0.5, hit.U, 1e-12)
}

// TestSegmentIntersection_EndpointExcluded verifies the open-interval
// contract: segments that touch exactly at an endpoint do not cross.
func TestSegmentIntersection_EndpointExcluded(t *testing.T) {
	// Second segment starts exactly where the first ends (t would be 1).
	_, ok := geom.SegmentIntersection(
		geom.V2(0, 0), geom.V2(1, 0),
		geom.V2(1, -1), geom.V2(0, 2),
	)
	assert.False(t, ok, "shared endpoint is not a crossing")

	// Second segment's start lies on the first (u would be 0).
	_, ok = geom.SegmentIntersection(
		geom.V2(0, -1), geom.V2(0, 2),
		geom.V2(0, 0), geom.V2(1, 0),
	)
	assert.False(t, ok, "touching at a segment start is not a crossing")
}

// TestSegmentIntersection_ParallelTolerance verifies that pairs whose
// displacement cross product sits below ParallelTol never intersect,
// for random perturbations inside the tolerance band.
func TestSegmentIntersection_ParallelTolerance(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	dp := geom.V2(1, 0)
	for i := 0; i < 200; i++ {
		// dq = (1, e) with |dp × dq| = |e| < ParallelTol.
		e := (rng.Float64()*2 - 1) * geom.ParallelTol * 0.999
		_, ok := geom.SegmentIntersection(
			geom.V2(0, 0), dp,
			geom.V2(0.25, -1e-9), geom.V2(1, e),
		)
		assert.False(t, ok, "near-parallel pair inside tolerance band must not cross")
	}
}

// TestSegmentIntersection_Disjoint verifies that segments whose
// supporting lines cross outside the segment bodies are rejected.
func TestSegmentIntersection_Disjoint(t *testing.T) {
	// Lines cross at (5, 0) — far past the end of both segments.
	_, ok := geom.SegmentIntersection(
		geom.V2(0, 0), geom.V2(1, 0),
		geom.V2(5, -1), geom.V2(0, 2),
	)
	assert.False(t, ok)
}

// TestSegmentIntersection_ParameterConsistency verifies that the
// returned parameters reproduce the same geometric point from either
// segment.
func TestSegmentIntersection_ParameterConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		p := geom.V2(rng.Float64(), rng.Float64())
		dp := geom.V2(rng.Float64()*2-1, rng.Float64()*2-1)
		q := geom.V2(rng.Float64(), rng.Float64())
		dq := geom.V2(rng.Float64()*2-1, rng.Float64()*2-1)

		hit, ok := geom.SegmentIntersection(p, dp, q, dq)
		if !ok {
			continue
		}
		a := p.Add(dp.Scale(hit.T))
		b := q.Add(dq.Scale(hit.U))
		assert.InDelta(t, a.X, b.X, 1e-9)
		assert.InDelta(t, a.Y, b.Y, 1e-9)
	}
}
