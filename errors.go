package infogeom

import (
	"errors"
	"fmt"

	"github.com/hupe1980/infogeom/simplex"
)

var (
	// ErrInvalidDistribution is returned when an input vector is not a
	// valid probability distribution within the supplied tolerance.
	//
	// The original validation error remains reachable via errors.As (for
	// the typed cause) or errors.Unwrap.
	ErrInvalidDistribution = errors.New("invalid probability distribution")
)

// ErrDomain indicates an error raised by the geometry code itself rather
// than by delegated validation. It carries a static descriptive message.
//
// Neither RaoDistance nor Hellinger currently produces it; it is part of
// the public error surface so local checks can be added without a breaking
// change.
type ErrDomain struct {
	Msg string
}

func (e *ErrDomain) Error() string {
	return fmt.Sprintf("domain error: %s", e.Msg)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Validation unification: every simplex validation failure surfaces
	// under one sentinel while the typed cause stays reachable.
	var ne *simplex.ErrNegativeEntry
	if errors.As(err, &ne) {
		return fmt.Errorf("%w: %w", ErrInvalidDistribution, err)
	}
	var sd *simplex.ErrSumDeviation
	if errors.As(err, &sd) {
		return fmt.Errorf("%w: %w", ErrInvalidDistribution, err)
	}
	var lm *simplex.ErrLengthMismatch
	if errors.As(err, &lm) {
		return fmt.Errorf("%w: %w", ErrInvalidDistribution, err)
	}
	var it *simplex.ErrInvalidTolerance
	if errors.As(err, &it) {
		return fmt.Errorf("%w: %w", ErrInvalidDistribution, err)
	}

	return err
}
