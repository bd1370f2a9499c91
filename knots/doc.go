// Package knots constructs closed space curves for named knots from
// known analytic forms — an arbitrary selection of torus and Lissajous
// parametrisations, useful as experiment inputs and test fixtures.
//
// Every constructor samples its parametrisation at n points spread
// evenly over [0, 2π), endpoint excluded, and returns a closed
// spacecurve.Curve: closure is carried by the curve's flag, never by a
// duplicated final point.
//
// ⚙️ Usage:
//
//	k, err := knots.Trefoil(120)
//	if err != nil {
//	  // errors.Is(err, knots.ErrTooFewPoints)
//	}
//	recs, _ := crossings.Self(k, crossings.DefaultOptions())
//
// Determinism: constructors are pure closed-form evaluation; the same
// arguments always produce the same curve.
package knots
