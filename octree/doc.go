// Package octree partitions space curves at axis-aligned cut planes,
// so that crossing detection can run on localized octants of a large
// curve instead of the whole thing at once. This is an optimization
// layer only: crossing results are identical (within floating-point
// tolerance) with or without partitioning.
//
// 🚀 What lives here?
//
//   - LineToSegments — split a polyline wherever it crosses any of
//     three axis cut planes (default: the midplanes of its bounding
//     box), inserting the interpolated boundary point on both sides
//     of each cut
//   - AngleExceeds — a cheap running test that a sub-line does not
//     wind more than a given budget, used to decide whether a piece
//     is straight enough to treat locally
//
// ⚙️ Usage:
//
//	pieces, err := octree.LineToSegments(points, nil, true)
//	for _, piece := range pieces {
//	  if octree.AngleExceeds(piece, octree.DefaultAngleBudget, false) {
//	    // recurse further before scanning for crossings
//	  }
//	}
//
// Numeric policy:
//
//   - A segment may cross zero, one, two or all three planes; multiple
//     cuts on one segment are ordered by their fractional position.
//   - AngleExceeds compares clipped cosines instead of calling into
//     inverse trig per step; a NaN step (zero-length segment) counts
//     as an immediate "exceeded" — a conservative fail-safe, not an
//     error.
package octree
