package simplex

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Validate checks that p is a categorical probability distribution: every
// entry non-negative and the total mass within tol of 1. NaN entries fail
// the non-negativity check; tol must itself be non-negative.
func Validate(p []float64, tol float64) error {
	if tol < 0 || math.IsNaN(tol) {
		return &ErrInvalidTolerance{Tol: tol}
	}

	for i, v := range p {
		if v < 0 || math.IsNaN(v) {
			return &ErrNegativeEntry{Index: i, Value: v}
		}
	}

	if sum := floats.Sum(p); math.Abs(sum-1) > tol {
		return &ErrSumDeviation{Sum: sum, Tol: tol}
	}

	return nil
}

// validatePair checks p and q are simplex points of equal length.
// Length is checked first so paired operations never index out of range.
func validatePair(p, q []float64, tol float64) error {
	if len(p) != len(q) {
		return &ErrLengthMismatch{LenP: len(p), LenQ: len(q)}
	}

	if err := Validate(p, tol); err != nil {
		return err
	}

	return Validate(q, tol)
}

// BhattacharyyaCoeff returns BC(p,q) = Σᵢ √(pᵢqᵢ), a similarity measure in
// [0,1]: 1 for identical distributions, 0 for disjoint support. Both inputs
// must be simplex points within tol.
//
// Rounding in the sum can push the result slightly above 1; callers feeding
// it into acos or a square root must clamp.
func BhattacharyyaCoeff(p, q []float64, tol float64) (float64, error) {
	if err := validatePair(p, q, tol); err != nil {
		return 0, err
	}

	var bc float64
	for i := range p {
		bc += math.Sqrt(p[i] * q[i])
	}

	return bc, nil
}

// Hellinger returns √(1−BC(p,q)), a bounded metric in [0,1]. The radicand
// is clamped at zero since BC can exceed 1 by rounding.
func Hellinger(p, q []float64, tol float64) (float64, error) {
	bc, err := BhattacharyyaCoeff(p, q, tol)
	if err != nil {
		return 0, err
	}

	h2 := 1 - bc
	if h2 < 0 {
		h2 = 0
	}

	return math.Sqrt(h2), nil
}
