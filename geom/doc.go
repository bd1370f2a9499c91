// Package geom provides the small set of vector and segment primitives
// shared by every knotkit kernel: 2D/3D value-type vectors, the scalar
// 2D cross product, three-way sign, and the strict segment-intersection
// test used by the crossing finder.
//
// Numeric policy:
//
//   - Segments closer to parallel than ParallelTol (1e-6 on the scalar
//     cross product of their displacement vectors) never intersect. This
//     is a fixed policy, not a tunable: it trades a small class of
//     near-tangent crossings for stability of the downstream invariants.
//   - The intersection test is strict: parameters must fall in the open
//     interval (0, 1) on both segments. Shared endpoints of adjacent
//     polyline segments therefore never count as crossings.
//
// All types are plain values; no function in this package allocates or
// retains state between calls.
package geom
