package simplex

import "fmt"

// ErrNegativeEntry indicates a probability vector entry below zero (or NaN).
type ErrNegativeEntry struct {
	Index int
	Value float64
}

func (e *ErrNegativeEntry) Error() string {
	return fmt.Sprintf("negative entry at index %d: %g", e.Index, e.Value)
}

// ErrSumDeviation indicates total probability mass outside 1±Tol.
type ErrSumDeviation struct {
	Sum float64
	Tol float64
}

func (e *ErrSumDeviation) Error() string {
	return fmt.Sprintf("probability mass sums to %g, want 1 within tolerance %g", e.Sum, e.Tol)
}

// ErrLengthMismatch indicates paired distributions of different lengths.
type ErrLengthMismatch struct {
	LenP int
	LenQ int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: %d vs %d", e.LenP, e.LenQ)
}

// ErrInvalidTolerance indicates a negative (or NaN) tolerance.
type ErrInvalidTolerance struct {
	Tol float64
}

func (e *ErrInvalidTolerance) Error() string {
	return fmt.Sprintf("invalid tolerance: %g", e.Tol)
}
