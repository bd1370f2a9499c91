// Package knotkit is a numeric toolkit for measuring knotting in
// space curves — ordered sequences of 3D points approximating closed
// or open filaments.
//
// 🚀 What is knotkit?
//
//	A pure-Go library that takes a polygonal space curve and computes
//	topological invariants of its knotting:
//		• Crossing detection: project the curve, find every self-crossing,
//		  tag each with over/under sign and handedness
//		• Writhe family: second-order writhe (with or without basepoint)
//		  and higher-order writhe from a contribution matrix
//		• Vassiliev invariants: degree-3 finite-type invariant from
//		  arrow (Gauss-diagram) data
//		• Curve plumbing: arclength, radius of gyration, projections,
//		  rotations, octant partitioning
//		• Curve sources: named parametric knots and quaternionic random
//		  polygons for experiments and tests
//
// ✨ Why choose knotkit?
//
//   - Deterministic – explicit seeds, no global state, no hidden caches
//   - Strict – sentinel errors, fail-fast validation, documented numeric policy
//   - Pure Go – no cgo, no hidden deps
//   - Honest about cost – every O(n⁴) loop says so in its contract
//
// Everything is organized under flat subpackages:
//
//	geom/       — 2D/3D vector primitives & segment intersection
//	spacecurve/ — the Curve type, lengths, projections, rotations
//	crossings/  — projection crossing finder with jump heuristics
//	octree/     — axis-plane curve partitioner & turning-angle test
//	matrix/     — dense float64 matrices & symmetry validators
//	invariants/ — Vassiliev degree 3 and the writhe family
//	knots/      — named parametric knot constructors
//	randomwalk/ — quaternionic closed/open random polygons
//
// A trefoil projected to the page has three crossings, all of one
// handedness; knotkit finds them and folds them into invariants.
//
// Dive into the per-package doc.go files for contracts, complexity
// notes and runnable examples.
//
//	go get github.com/katalvlaran/knotkit
package knotkit
