// Package infogeom provides information-geometry primitives for categorical
// probability distributions.
//
// Infogeom computes closed-form distances between points on the probability
// simplex. It is a policy-free building block: the caller already holds two
// finite probability vectors and wants a metric between them. Estimating
// distributions from samples is out of scope.
//
// # Quick Start
//
//	p := []float64{0.7, 0.2, 0.1}
//	q := []float64{0.1, 0.2, 0.7}
//
//	rao, _ := infogeom.RaoDistance(p, q, 1e-12) // radians, in [0, π]
//	hel, _ := infogeom.Hellinger(p, q, 1e-12)   // in [0, 1]
//
// Both distances share one Bhattacharyya coefficient computation,
// BC(p,q) = Σ√(pᵢqᵢ), delegated to the simplex subpackage together with
// tolerance-driven validation that both inputs lie on the simplex.
//
// # Tolerance
//
// Every call takes an explicit tolerance. It bounds how far the total
// probability mass may deviate from 1 during validation, and it drives the
// snap-to-identity rule: a coefficient within 10·tol of 1 is treated as
// exactly 1, so RaoDistance(p, p, tol) is exactly zero rather than a small
// rounding angle. There is no process-wide default tolerance.
//
// # Key Features
//
//   - Fisher–Rao geodesic distance via the sphere embedding p ↦ 2√p
//   - Hellinger distance √(1−BC) with internal clamping
//   - Injectable validation/coefficient collaborators for testing
//   - Typed validation errors unified under ErrInvalidDistribution
//   - Pure functions, safe for concurrent use
package infogeom
