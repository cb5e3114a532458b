package infogeom

type options struct {
	coeff     CoeffFunc
	hellinger DistanceFunc
}

// Option configures how a Geometry delegates coefficient and distance
// computation.
//
// Today options primarily exist so the core arithmetic can be exercised
// independently of the simplex validation rules, and so alternative
// validators can be plugged in without new constructor variants.
type Option func(*options)

// WithBhattacharyyaCoeff overrides the Bhattacharyya coefficient
// computation used by RaoDistance.
//
// If nil is passed, the simplex package default is kept.
func WithBhattacharyyaCoeff(fn CoeffFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.coeff = fn
		}
	}
}

// WithHellinger overrides the Hellinger computation.
//
// If nil is passed, the simplex package default is kept.
func WithHellinger(fn DistanceFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.hellinger = fn
		}
	}
}
