package randomwalk

import (
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/katalvlaran/knotkit/geom"
	"github.com/katalvlaran/knotkit/spacecurve"
)

// ClosedLoop returns a closed random polygon with the given number of
// edges. The polygon visits segments points; the closing edge back to
// the first point is implied by the curve being closed, and exists
// because the generated edge vectors sum to zero exactly.
//
// Errors: ErrTooFewSegments for segments < 3.
//
// Complexity: O(n).
func ClosedLoop(segments int, opts ...Option) (spacecurve.Curve, error) {
	if segments < 3 {
		return spacecurve.Curve{}, ErrTooFewSegments
	}
	o := buildOptions(opts)
	edges, err := ClosedLoopEdges(segments, o.seed)
	if err != nil {
		return spacecurve.Curve{}, err
	}
	path := pathFromEdges(edges, pathScale(o, segments))
	// The cumulative sum returns to the origin; drop the duplicate and
	// let the closed-curve topology supply the final edge.
	return spacecurve.New(path[:segments], spacecurve.WithClosed())
}

// OpenLine returns an open random walk of the given number of steps,
// so segments+1 points.
//
// Errors: ErrTooFewSegments for segments < 1.
//
// Complexity: O(n).
func OpenLine(segments int, opts ...Option) (spacecurve.Curve, error) {
	if segments < 1 {
		return spacecurve.Curve{}, ErrTooFewSegments
	}
	o := buildOptions(opts)
	edges, err := OpenLineEdges(segments, o.seed)
	if err != nil {
		return spacecurve.Curve{}, err
	}
	return spacecurve.New(pathFromEdges(edges, pathScale(o, segments)))
}

// OpenByDistance returns an open walk whose endpoint misses the start
// by the given fraction of the total edge length: distance 0 closes
// exactly, distance 1 is a fully stretched failure to close.
//
// Errors: ErrTooFewSegments for segments < 1, ErrBadDistance for a
// fraction outside [0, 1].
//
// Complexity: O(n).
func OpenByDistance(segments int, distance float64, opts ...Option) (spacecurve.Curve, error) {
	if segments < 1 {
		return spacecurve.Curve{}, ErrTooFewSegments
	}
	o := buildOptions(opts)
	edges, err := OpenByDistanceEdges(segments, distance, o.seed)
	if err != nil {
		return spacecurve.Curve{}, err
	}
	return spacecurve.New(pathFromEdges(edges, pathScale(o, segments)))
}

// ClosedLoopEdges returns the raw edge vectors of a closed random
// polygon. The vectors sum to zero and their lengths sum to 2 before
// any scaling, both exactly (up to rounding).
//
// Each edge is the Hopf image of one coordinate pair of two
// orthonormal complex vectors u, v: orthonormality is what forces the
// closure identity.
func ClosedLoopEdges(segments int, seed int64) ([]geom.Vec3, error) {
	if segments < 3 {
		return nil, ErrTooFewSegments
	}
	u, v := orthonormalPair(segments, rngFromSeed(seed))
	edges := make([]geom.Vec3, segments)
	for i := range edges {
		edges[i] = hopfEdge(u[i], v[i])
	}
	return edges, nil
}

// OpenLineEdges returns the raw edge vectors of an open walk: the
// image of a uniform point on the (4n−1)-sphere, one quadruple of
// coordinates per edge, with no closure constraint.
func OpenLineEdges(segments int, seed int64) ([]geom.Vec3, error) {
	if segments < 1 {
		return nil, ErrTooFewSegments
	}
	rng := rngFromSeed(seed)
	q := make([]float64, 4*segments)
	var norm float64
	for i := range q {
		q[i] = rng.NormFloat64()
		norm += q[i] * q[i]
	}
	norm = 1 / math.Sqrt(norm)
	for i := range q {
		q[i] *= norm
	}

	edges := make([]geom.Vec3, segments)
	for i := range edges {
		p0, p1, p2, p3 := q[4*i], q[4*i+1], q[4*i+2], q[4*i+3]
		edges[i] = geom.V3(
			p0*p0+p1*p1-p2*p2-p3*p3,
			2*(p1*p2-p0*p3),
			2*(p0*p2-p1*p3),
		)
	}
	return edges, nil
}

// OpenByDistanceEdges returns edge vectors whose sum misses zero by
// 2·distance along x: the closed-loop pair (u, v) is rescaled by
// sqrt(1±distance), which breaks the closure identity by exactly that
// amount while keeping the total edge length at 2.
func OpenByDistanceEdges(segments int, distance float64, seed int64) ([]geom.Vec3, error) {
	if segments < 1 {
		return nil, ErrTooFewSegments
	}
	if distance < 0 || distance > 1 {
		return nil, ErrBadDistance
	}
	u, v := orthonormalPair(segments, rngFromSeed(seed))
	su := math.Sqrt(1 + distance)
	sv := math.Sqrt(1 - distance)
	edges := make([]geom.Vec3, segments)
	for i := range edges {
		edges[i] = hopfEdge(complex(su, 0)*u[i], complex(sv, 0)*v[i])
	}
	return edges, nil
}

// orthonormalPair draws two complex n-vectors from the rotation
// invariant Gaussian measure, then makes them orthonormal: u is
// normalised, v is the normalised Hermitian rejection of the second
// draw against u.
func orthonormalPair(n int, rng *rand.Rand) (u, v []complex128) {
	u = make([]complex128, n)
	v = make([]complex128, n)
	for i := 0; i < n; i++ {
		u[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}
	for i := 0; i < n; i++ {
		v[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}

	normalizeC(u)
	var inner complex128
	for i := 0; i < n; i++ {
		inner += cmplx.Conj(u[i]) * v[i]
	}
	for i := 0; i < n; i++ {
		v[i] -= inner * u[i]
	}
	normalizeC(v)
	return u, v
}

// normalizeC scales a complex vector to unit Hermitian norm in place.
func normalizeC(a []complex128) {
	var norm float64
	for _, c := range a {
		norm += real(c)*real(c) + imag(c)*imag(c)
	}
	norm = 1 / math.Sqrt(norm)
	for i := range a {
		a[i] *= complex(norm, 0)
	}
}

// hopfEdge maps one coordinate pair of (u, v) to an edge vector. The
// edge length is |u|²+|v|², so a unit pair yields total length 2.
func hopfEdge(ui, vi complex128) geom.Vec3 {
	w := ui * cmplx.Conj(vi)
	return geom.V3(
		real(ui)*real(ui)+imag(ui)*imag(ui)-real(vi)*real(vi)-imag(vi)*imag(vi),
		2*imag(w),
		2*real(w),
	)
}

// pathFromEdges accumulates edge vectors into a path of len(edges)+1
// points starting at the origin, scaled uniformly.
func pathFromEdges(edges []geom.Vec3, scale float64) []geom.Vec3 {
	path := make([]geom.Vec3, len(edges)+1)
	for i, e := range edges {
		path[i+1] = path[i].Add(e)
	}
	for i := range path {
		path[i] = path[i].Scale(scale)
	}
	return path
}

// pathScale converts the closed-loop raw total edge length of 2 into
// an average edge length of o.normalisation. The open variants share
// the factor for consistency with the construction they relax.
func pathScale(o options, segments int) float64 {
	return o.normalisation * float64(segments) / 2
}
