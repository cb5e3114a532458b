package simplex

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntropy(t *testing.T) {
	t.Run("Uniform", func(t *testing.T) {
		e, err := Entropy([]float64{0.25, 0.25, 0.25, 0.25}, 0)
		require.NoError(t, err)
		assert.InDelta(t, math.Log(4), e, 1e-12)
	})

	t.Run("PointMass", func(t *testing.T) {
		e, err := Entropy([]float64{1, 0, 0}, 0)
		require.NoError(t, err)
		assert.Zero(t, e)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := Entropy([]float64{0.2, 0.2, 0.1}, 1e-9)

		var sd *ErrSumDeviation
		assert.ErrorAs(t, err, &sd)
	})
}

func TestCrossEntropy(t *testing.T) {
	t.Run("SelfEqualsEntropy", func(t *testing.T) {
		rng := rand.New(rand.NewSource(10)) // nolint gosec
		p := randomSimplex(rng, 6)

		ce, err := CrossEntropy(p, p, 1e-9)
		require.NoError(t, err)

		e, err := Entropy(p, 1e-9)
		require.NoError(t, err)

		assert.InDelta(t, e, ce, 1e-12)
	})

	t.Run("InfiniteOnMissingSupport", func(t *testing.T) {
		ce, err := CrossEntropy([]float64{0.5, 0.5}, []float64{1, 0}, 1e-9)
		require.NoError(t, err)
		assert.True(t, math.IsInf(ce, 1))
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := CrossEntropy([]float64{0.5, 0.5}, []float64{1}, 1e-9)

		var lm *ErrLengthMismatch
		assert.ErrorAs(t, err, &lm)
	})
}

func TestKullbackLeibler(t *testing.T) {
	t.Run("SelfIsZero", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11)) // nolint gosec
		p := randomSimplex(rng, 8)

		kl, err := KullbackLeibler(p, p, 1e-9)
		require.NoError(t, err)
		assert.Zero(t, kl)
	})

	t.Run("NonNegative", func(t *testing.T) {
		rng := rand.New(rand.NewSource(12)) // nolint gosec

		for i := 0; i < 50; i++ {
			p := randomSimplex(rng, 6)
			q := randomSimplex(rng, 6)

			kl, err := KullbackLeibler(p, q, 1e-9)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, kl, -1e-12)
		}
	})

	t.Run("InfiniteOnMissingSupport", func(t *testing.T) {
		kl, err := KullbackLeibler([]float64{0.5, 0.5}, []float64{1, 0}, 1e-9)
		require.NoError(t, err)
		assert.True(t, math.IsInf(kl, 1))
	})
}

func TestJensenShannon(t *testing.T) {
	t.Run("SelfIsZero", func(t *testing.T) {
		rng := rand.New(rand.NewSource(13)) // nolint gosec
		p := randomSimplex(rng, 8)

		js, err := JensenShannon(p, p, 1e-9)
		require.NoError(t, err)
		assert.InDelta(t, 0, js, 1e-12)
	})

	t.Run("SymmetricAndBounded", func(t *testing.T) {
		rng := rand.New(rand.NewSource(14)) // nolint gosec

		for i := 0; i < 50; i++ {
			p := randomSimplex(rng, 6)
			q := randomSimplex(rng, 6)

			js1, err := JensenShannon(p, q, 1e-9)
			require.NoError(t, err)

			js2, err := JensenShannon(q, p, 1e-9)
			require.NoError(t, err)

			assert.InDelta(t, js1, js2, 1e-12)
			assert.GreaterOrEqual(t, js1, -1e-12)
			assert.LessOrEqual(t, js1, math.Log(2)+1e-12)
		}
	})
}
