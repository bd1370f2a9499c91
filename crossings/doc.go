// Package crossings is the crossing-detection engine of knotkit: it
// sweeps a projected space curve against itself, finds every pairwise
// segment intersection in the projection plane, and tags each with an
// over/under sign and a handedness.
//
// 🚀 How it works
//
//	The curve is viewed along +z: x,y form the projection plane and z
//	decides which strand passes over. For each curve segment, Find
//	scans a comparison sub-curve with a spatial-pruning heuristic: a
//	candidate point further than twice the maximum segment length from
//	the current point cannot start an intersecting segment, so the
//	scan jumps ahead instead of testing it. Three jump policies are
//	available (JumpMode); the naive one checks everything and exists
//	as the correctness baseline.
//
//	Every geometric crossing yields a symmetric pair of records: one
//	per strand, indices swapped, signs negated, identical handedness.
//
// ⚙️ Usage:
//
//	recs, err := crossings.Self(curve, crossings.DefaultOptions())
//	if err != nil { … }
//	for _, r := range recs {
//	  // r.A, r.B are fractional segment indices; r.Sign is ±1 for
//	  // over/under, r.Type is the handedness
//	}
//
// Numeric policy:
//
//   - Near-parallel segment pairs under geom.ParallelTol produce no
//     record; a conservative, documented source of missed crossings
//     for degenerate inputs.
//   - Adjacent segments share an endpoint and are never tested against
//     each other; the strict open-interval intersection test would
//     reject them anyway, but excluding them keeps the tolerance
//     policy out of the common path.
//   - The distance-based jump backs off by 2 positions after jumping,
//     an empirical safety margin against overshooting a true crossing
//     near the pruning boundary. It is a tunable heuristic, not a
//     proven invariant; the jump-mode equivalence tests pin it against
//     the naive baseline.
//
// Performance: with either jumping policy a full-curve pass scales
// better than O(n²) for curves that do not self-approach everywhere;
// JumpNone is quadratic by construction.
package crossings
