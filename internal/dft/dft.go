// Package dft implements the direct-summation reference transform used as
// the fixture oracle. It is deliberately O(n²): the point is independence
// from any fast transform under test, not speed.
package dft

import "math"

// Transform computes the unnormalized forward DFT of x:
//
//	y[k] = Σ_j x[j]·exp(-2πi·j·k/n)
//
// All arithmetic is complex128.
func Transform(x []complex128) []complex128 {
	n := len(x)
	y := make([]complex128, n)

	for k := range y {
		var sum complex128

		for j, v := range x {
			// Reduce j·k modulo n before forming the phase angle so the
			// cos/sin arguments stay in (-2π, 0] at any size.
			angle := -2 * math.Pi * float64((j*k)%n) / float64(n)
			sum += v * complex(math.Cos(angle), math.Sin(angle))
		}

		y[k] = sum
	}

	return y
}

// Inverse computes the 1/n-normalized inverse DFT of y:
//
//	x[j] = (1/n)·Σ_k y[k]·exp(+2πi·j·k/n)
//
// Fixtures store only the forward pair; Inverse exists so round trips can
// be verified against the same convention the consuming harness assumes.
func Inverse(y []complex128) []complex128 {
	n := len(y)
	x := make([]complex128, n)
	scale := complex(1/float64(n), 0)

	for j := range x {
		var sum complex128

		for k, v := range y {
			angle := 2 * math.Pi * float64((j*k)%n) / float64(n)
			sum += v * complex(math.Cos(angle), math.Sin(angle))
		}

		x[j] = sum * scale
	}

	return x
}
