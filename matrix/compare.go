// SPDX-License-Identifier: MIT
// Package matrix: approximate equality for float64 matrices, used by the
// solver round-trip checks and exported for callers with the same need.

package matrix

import "math"

// AllClose reports whether |a-b| <= atol + rtol*|b| holds for every element.
// The verdict arrives as (true, nil) or (false, nil); errors are reserved for
// unusable inputs. O(r*c) time, O(1) extra space.
//
// Policy:
//   - a and b must be non-nil and share a shape.
//   - Negative tolerances fold to their magnitude; NaN or Inf tolerances fail
//     with ErrNaNInf.
//   - Element values are not screened. A NaN element never trips the band
//     check (every comparison involving NaN is false), so NaN pairs count as
//     close. Reject NaN inputs upstream when that matters.
//
// AI-Hints:
//   - rtol=0 with atol=0.5e-k approximates "equal to k decimal places".
//   - DefaultEpsilon suits atol for float64 round-trip verification.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	// far reports a band violation for one element pair.
	far := func(x, y float64) bool {
		return math.Abs(x-y) > atol+rtol*math.Abs(y)
	}

	// Contiguous path when both operands expose flat storage.
	if fa, aOK := flat(a); aOK {
		if fb, bOK := flat(b); bOK {
			for idx := range fa {
				if far(fa[idx], fb[idx]) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	// Interface fallback. Shape is validated above, so At stays in range and
	// its error result carries no information here.
	rows, cols := a.Rows(), a.Cols()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			if far(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
