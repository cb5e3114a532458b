// Package simplex provides distribution primitives on the probability
// simplex: tolerance-driven validation, the Bhattacharyya coefficient, and
// entropy/divergence functionals for categorical distributions.
//
// Every operation takes an explicit per-call tolerance bounding how far the
// total probability mass may deviate from 1. There is no process-wide
// default; tolerance semantics live here and nowhere else.
//
// # Usage
//
//	bc, err := simplex.BhattacharyyaCoeff(p, q, 1e-12)
//	h, err := simplex.Hellinger(p, q, 1e-12)
//	kl, err := simplex.KullbackLeibler(p, q, 1e-9)
package simplex
