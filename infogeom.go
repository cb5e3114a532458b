package infogeom

import (
	"math"

	"github.com/hupe1980/infogeom/simplex"
)

// identitySnapFactor widens the caller's tolerance when deciding whether a
// Bhattacharyya coefficient counts as exactly 1. Summing square roots for
// p == q can land at 1-ε, and acos turns that into a small positive angle
// where the distance must be zero.
const identitySnapFactor = 10.0

// CoeffFunc computes the Bhattacharyya coefficient between two probability
// vectors, validating both lie on the simplex within tol.
type CoeffFunc func(p, q []float64, tol float64) (float64, error)

// DistanceFunc computes a distance between two probability vectors,
// validating both lie on the simplex within tol.
type DistanceFunc func(p, q []float64, tol float64) (float64, error)

// Geometry computes closed-form distances between categorical distributions
// on the probability simplex. Use New to create one.
//
// Geometry is stateless and safe for concurrent use.
type Geometry struct {
	coeff     CoeffFunc
	hellinger DistanceFunc
}

// New creates a Geometry. By default simplex validation and the
// Bhattacharyya coefficient are delegated to the simplex package.
func New(optFns ...Option) *Geometry {
	o := options{
		coeff:     simplex.BhattacharyyaCoeff,
		hellinger: simplex.Hellinger,
	}

	for _, fn := range optFns {
		fn(&o)
	}

	return &Geometry{
		coeff:     o.coeff,
		hellinger: o.hellinger,
	}
}

// RaoDistance returns the Fisher–Rao geodesic distance between p and q in
// radians.
//
// The simplex of categorical distributions embeds isometrically on a sphere
// via p ↦ 2√p; under this embedding the Rao distance is twice the spherical
// angle:
//
//	d(p,q) = 2·acos(Σᵢ √(pᵢqᵢ))
//
// The inner sum is the Bhattacharyya coefficient BC(p,q) ∈ [0,1]. Both
// inputs must be valid simplex points within tol. The result lies in
// [0, π] and is exactly 0 when BC lands within identitySnapFactor·tol
// of 1.
func (g *Geometry) RaoDistance(p, q []float64, tol float64) (float64, error) {
	bc, err := g.coeff(p, q, tol)
	if err != nil {
		return 0, translateError(err)
	}

	// Rounding in the coefficient sum can push bc slightly outside [0,1],
	// which is not a valid acos argument.
	bc = min(max(bc, 0), 1)

	// When p == q the coefficient should be 1 but may come back as 1-ε;
	// acos would then report a small nonzero angle.
	if math.Abs(1-bc) <= identitySnapFactor*tol {
		bc = 1
	}

	return 2 * math.Acos(bc), nil
}

// Hellinger returns the Hellinger distance √(1−BC(p,q)), a bounded metric
// in [0,1]. The computation, including clamping of the radicand, is
// delegated in full.
func (g *Geometry) Hellinger(p, q []float64, tol float64) (float64, error) {
	h, err := g.hellinger(p, q, tol)
	if err != nil {
		return 0, translateError(err)
	}

	return h, nil
}

var defaultGeometry = New()

// RaoDistance returns the Fisher–Rao distance between p and q using the
// default Geometry.
func RaoDistance(p, q []float64, tol float64) (float64, error) {
	return defaultGeometry.RaoDistance(p, q, tol)
}

// Hellinger returns the Hellinger distance between p and q using the
// default Geometry.
func Hellinger(p, q []float64, tol float64) (float64, error) {
	return defaultGeometry.Hellinger(p, q, tol)
}
