// Package randomwalk generates random space curves from the
// quaternionic (Cantarella, Deguchi, Shonkwiler 2014) model of random
// polygons.
//
// 🚀 What you get
//   - ClosedLoop — an equilateral-in-expectation random polygon whose
//     edge vectors sum to zero exactly, sampled uniformly from the
//     symmetric measure on closed polygons.
//   - OpenLine — an open random walk from the same construction,
//     without the closure constraint.
//   - OpenByDistance — an interpolation between the two: the edge sum
//     fails to close by a prescribed fraction of the total length.
//   - The underlying edge-vector generators (ClosedLoopEdges,
//     OpenLineEdges, OpenByDistanceEdges) for callers who want the raw
//     step vectors rather than a cumulative path.
//
// ⚙️ How it works
// A closed polygon of n edges corresponds to a pair of orthonormal
// complex n-vectors (u, v); each edge is the image of (u_j, v_j) under
// the Hopf map, which makes Σ edges = 0 an algebraic identity rather
// than a numeric accident. The open variants relax the orthonormality
// constraints.
//
// ✨ Determinism
// All generation is seeded. Seed 0 selects a fixed default seed, so
// results are reproducible by default; pass WithSeed for independent
// samples. No time-based randomness anywhere.
package randomwalk
