package simplex

import "gonum.org/v1/gonum/stat"

// Entropy returns the Shannon entropy of p in nats.
func Entropy(p []float64, tol float64) (float64, error) {
	if err := Validate(p, tol); err != nil {
		return 0, err
	}

	return stat.Entropy(p), nil
}

// CrossEntropy returns the cross entropy of q relative to p in nats. It is
// +Inf where q has zero mass on the support of p.
func CrossEntropy(p, q []float64, tol float64) (float64, error) {
	if err := validatePair(p, q, tol); err != nil {
		return 0, err
	}

	return stat.CrossEntropy(p, q), nil
}

// KullbackLeibler returns KL(p‖q) in nats. It is asymmetric in p and q and
// +Inf where q has zero mass on the support of p.
func KullbackLeibler(p, q []float64, tol float64) (float64, error) {
	if err := validatePair(p, q, tol); err != nil {
		return 0, err
	}

	return stat.KullbackLeibler(p, q), nil
}

// JensenShannon returns the Jensen–Shannon divergence between p and q in
// nats. It is symmetric and bounded above by ln 2.
func JensenShannon(p, q []float64, tol float64) (float64, error) {
	if err := validatePair(p, q, tol); err != nil {
		return 0, err
	}

	return stat.JensenShannon(p, q), nil
}
