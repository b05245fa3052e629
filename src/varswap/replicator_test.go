package varswap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltools/quant/src/models"
)

func strip() []models.VarianceSwapQuote {
	// three-strike strip around a 100.5 forward, r = 0
	return []models.VarianceSwapQuote{
		{Strike: 90, StrikeWidth: 10, MidPrice: 0.5, ForwardPrice: 100.5, ATMStrike: 100},
		{Strike: 100, StrikeWidth: 10, MidPrice: 3.0, ForwardPrice: 100.5, ATMStrike: 100},
		{Strike: 110, StrikeWidth: 10, MidPrice: 0.4, ForwardPrice: 100.5, ATMStrike: 100},
	}
}

func TestRate(t *testing.T) {
	const expiry = 30.0 / 365.0

	t.Run("matches the hand-computed replication sum", func(t *testing.T) {
		rate, err := Rate(strip(), 0, expiry)
		require.NoError(t, err)

		// (2/T)*(10/90^2*0.5 + 10/100^2*3.0 + 10/110^2*0.4) - (1/T)*(100.5/100 - 1)^2
		assert.InDelta(t, 0.0957605, rate, 1e-6)
	})

	t.Run("a positive rate scales contributions by the money-market factor", func(t *testing.T) {
		flat, err := Rate(strip(), 0, expiry)
		require.NoError(t, err)

		funded, err := Rate(strip(), 0.05, expiry)
		require.NoError(t, err)

		assert.Greater(t, funded, flat)
	})

	t.Run("rejects an empty strip", func(t *testing.T) {
		_, err := Rate(nil, 0.05, expiry)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive expiry", func(t *testing.T) {
		_, err := Rate(strip(), 0.05, 0)
		assert.Error(t, err)
	})

	t.Run("rejects unsorted strikes", func(t *testing.T) {
		quotes := strip()
		quotes[0], quotes[1] = quotes[1], quotes[0]

		_, err := Rate(quotes, 0.05, expiry)
		assert.Error(t, err)
	})

	t.Run("rejects strikes on one side of the forward", func(t *testing.T) {
		quotes := strip()[:2] // 90 and 100, both below the 100.5 forward

		_, err := Rate(quotes, 0.05, expiry)
		assert.Error(t, err)
	})

	t.Run("rejects malformed quotes", func(t *testing.T) {
		quotes := strip()
		quotes[1].StrikeWidth = 0

		_, err := Rate(quotes, 0.05, expiry)
		assert.Error(t, err)
	})
}

func TestInterpolate30DayVariance(t *testing.T) {
	const thirty = 30.0 / 365.0

	t.Run("equidistant maturities average the variances", func(t *testing.T) {
		v, err := Interpolate30DayVariance(0.04, 20.0/365.0, 0.06, 40.0/365.0)
		require.NoError(t, err)
		assert.InDelta(t, 0.05, v, 1e-12)
	})

	t.Run("exact 30-day maturity returns its own variance", func(t *testing.T) {
		v, err := Interpolate30DayVariance(0.04, thirty, 0.09, 60.0/365.0)
		require.NoError(t, err)
		assert.InDelta(t, 0.04, v, 1e-12)
	})

	t.Run("refuses extrapolation", func(t *testing.T) {
		_, err := Interpolate30DayVariance(0.04, 35.0/365.0, 0.06, 60.0/365.0)
		assert.Error(t, err)

		_, err = Interpolate30DayVariance(0.04, 10.0/365.0, 0.06, 20.0/365.0)
		assert.Error(t, err)
	})

	t.Run("refuses inverted maturities", func(t *testing.T) {
		_, err := Interpolate30DayVariance(0.04, 40.0/365.0, 0.06, 20.0/365.0)
		assert.Error(t, err)
	})
}
