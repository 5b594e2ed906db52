package core

import "math"

// degenerateEpsilon is the magnitude below which a coefficient is treated
// as zero by SolveQuadratic.
const degenerateEpsilon = 1e-10

// SolveQuadratic solves a*x² + b*x + c = 0 and writes the roots into solns.
// It returns the number of roots written (0, 1 or 2).
//
// Equations whose leading coefficient vanishes degrade to the linear case.
// For two roots, the root computed directly is the one whose formula does
// not subtract nearly equal numbers; the other comes from x1*x2 = c/a.
// Roots are not sorted.
func SolveQuadratic(a, b, c float64, solns *[2]float64) int {
	if math.Abs(a) < degenerateEpsilon {
		if math.Abs(b) < degenerateEpsilon {
			return 0
		}
		solns[0] = -c / b
		return 1
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0
	}

	// a*x1 = -1/2 (b + sign(b) sqrt(disc))
	aX1 := -0.5 * (b + math.Copysign(math.Sqrt(discriminant), b))
	if aX1 == 0 {
		// b == 0 and c == 0: double root at zero.
		solns[0], solns[1] = 0, 0
		return 2
	}

	solns[0] = aX1 / a
	solns[1] = c / aX1
	return 2
}
