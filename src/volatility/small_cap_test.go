package volatility

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustGARCHParamsSmallCap(t *testing.T) {
	omega, alpha, beta := AdjustGARCHParamsSmallCap(1e-5, 0.1, 0.85)

	assert.InDelta(t, 2.5e-5, omega, 1e-18)
	assert.InDelta(t, 0.13, alpha, 1e-12)
	assert.InDelta(t, 0.765, beta, 1e-12)

	// the adjusted set stays stationary
	assert.Less(t, alpha+beta, 1.0)
}

func TestEstimateExpectedMove(t *testing.T) {
	t.Run("uses the higher vol baseline under $20", func(t *testing.T) {
		cheap, err := EstimateExpectedMove(15, 5, 50)
		require.NoError(t, err)
		assert.Equal(t, 0.30, cheap.AssumedVol)

		mid, err := EstimateExpectedMove(45, 5, 50)
		require.NoError(t, err)
		assert.Equal(t, 0.25, mid.AssumedVol)

		assert.Greater(t, cheap.MovePct, mid.MovePct)
	})

	t.Run("estimate fields are consistent", func(t *testing.T) {
		est, err := EstimateExpectedMove(45, 10, 50)
		require.NoError(t, err)

		assert.InDelta(t, 45+est.MoveDollars, est.UpPrice, 1e-12)
		assert.InDelta(t, 45-est.MoveDollars, est.DownPrice, 1e-12)
		assert.InDelta(t, est.MoveDollars/45, est.MovePct, 1e-12)

		// 50th vol percentile maps to the 75% one-sided quantile
		want := 45 * (0.25 / math.Sqrt(252)) * math.Sqrt(10) * 0.6744897501960817
		assert.InDelta(t, want, est.MoveDollars, 1e-9)
	})

	t.Run("higher percentile widens the move", func(t *testing.T) {
		p50, err := EstimateExpectedMove(45, 10, 50)
		require.NoError(t, err)

		p90, err := EstimateExpectedMove(45, 10, 90)
		require.NoError(t, err)

		assert.Greater(t, p90.MoveDollars, p50.MoveDollars)
	})

	t.Run("rejects bad inputs", func(t *testing.T) {
		_, err := EstimateExpectedMove(0, 10, 50)
		assert.Error(t, err)

		_, err = EstimateExpectedMove(45, 0, 50)
		assert.Error(t, err)

		_, err = EstimateExpectedMove(45, 10, 100)
		assert.Error(t, err)
	})
}

func TestNewHestonParameters(t *testing.T) {
	t.Run("valid parameter set with derived long-term vol", func(t *testing.T) {
		p, err := NewHestonParameters(0.04, 2.0, 0.04, 0.3, -0.7)
		require.NoError(t, err)

		assert.Equal(t, 2.0, p.Kappa)
		assert.InDelta(t, 0.2, p.LongTermVol(), 1e-12)
	})

	t.Run("rejects out-of-range correlation", func(t *testing.T) {
		_, err := NewHestonParameters(0.04, 2.0, 0.04, 0.3, -1.5)
		assert.Error(t, err)
	})

	t.Run("rejects negative variances", func(t *testing.T) {
		_, err := NewHestonParameters(-0.04, 2.0, 0.04, 0.3, -0.7)
		assert.Error(t, err)
	})
}
