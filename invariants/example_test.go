package invariants_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/knotkit/invariants"
	"github.com/katalvlaran/knotkit/matrix"
)

// ExampleVassilievDegree3 evaluates the invariant on a three-arrow
// Gauss diagram whose arrows occupy positions 0..5 around the circle.
func ExampleVassilievDegree3() {
	arrows := []invariants.Arrow{
		{Start: 0, End: 3, Sign: 1},
		{Start: 4, End: 1, Sign: 1},
		{Start: 2, End: 5, Sign: 1},
	}
	v, err := invariants.VassilievDegree3(arrows)
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	// Output: 1
}

// ExampleSecondOrderWrithe feeds a uniform contribution matrix to the
// basepointed quadruple sums. With n = 6 the loops visit five
// quadruples, so each component is 5/(2*pi)^2.
func ExampleSecondOrderWrithe() {
	contrib, _ := matrix.NewDense(5, 5)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if i != j {
				_ = contrib.Set(i, j, 1)
			}
		}
	}
	w, err := invariants.SecondOrderWrithe(contrib, 6)
	if err != nil {
		panic(err)
	}
	fmt.Printf("W1=%.4f W2=%.4f W3=%.4f\n", w.W1, w.W2, w.W3)
	fmt.Println(math.Abs(w.W1-5/(4*math.Pi*math.Pi)) < 1e-12)
	// Output:
	// W1=0.1267 W2=0.1267 W3=0.1267
	// true
}
