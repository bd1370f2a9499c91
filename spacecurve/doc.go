// Package spacecurve defines the Curve type at the center of knotkit:
// an immutable, ordered sequence of 3D points approximating an open or
// closed space curve, together with its basic geometric measures.
//
// 🚀 What lives here?
//
//   - Curve — points + an explicit closedness flag (closure is a
//     property carried with the curve, never inferred from the data)
//   - Segment lengths, arclength, radius of gyration
//   - Projection to the xy-plane (z retained for over/under decisions)
//   - Rotation matrices and sphere-covering rotation angles for
//     projecting a curve along arbitrary viewing directions
//
// ⚙️ Usage:
//
//	c, err := spacecurve.New(points, spacecurve.WithClosed())
//	if err != nil {
//	  // errors.Is(err, spacecurve.ErrTooFewPoints)
//	}
//	L := c.Arclength(true)          // include the closing segment
//	m := spacecurve.RotateVectorToTop(geom.V3(1, 1, 1))
//	view := c.Rotated(m)            // now project along the old (1,1,1)
//
// Curves are immutable snapshots: constructors copy their input, and
// every accessor that exposes points returns a fresh copy. Derived
// quantities (segment lengths, projections) are recomputed per call —
// there is no cross-call cache or shared mutable state.
package spacecurve
