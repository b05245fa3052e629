package volatility

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltools/quant/src/models"
)

// a 50-point alternating return series with a shock in the middle
func sampleReturns() []float64 {
	returns := make([]float64, 50)
	for i := range returns {
		switch {
		case i == 25:
			returns[i] = -0.05
		case i%2 == 0:
			returns[i] = 0.01
		default:
			returns[i] = -0.012
		}
	}

	return returns
}

func TestGARCH11(t *testing.T) {
	t.Run("standard parameters converge with a 13.5 period half-life", func(t *testing.T) {
		forecast, err := GARCH11(sampleReturns(), 1e-5, 0.1, 0.85, DefaultForecastHorizon)
		require.NoError(t, err)

		assert.Equal(t, "GARCH(1,1)", forecast.Model)
		assert.InDelta(t, 0.95, forecast.Parameters["persistence"], 1e-12)
		assert.InDelta(t, math.Log(0.5)/math.Log(0.95), forecast.HalfLife, 1e-9)
		assert.InDelta(t, 13.51, forecast.HalfLife, 0.01)
		assert.True(t, forecast.IsStationary())
	})

	t.Run("forecast length equals the requested horizon", func(t *testing.T) {
		for _, horizon := range []int{1, 5, 20} {
			forecast, err := GARCH11(sampleReturns(), 1e-5, 0.1, 0.85, horizon)
			require.NoError(t, err)
			assert.Len(t, forecast.Forecasts, horizon)
		}
	})

	t.Run("all variances are non-negative", func(t *testing.T) {
		forecast, err := GARCH11(sampleReturns(), 1e-5, 0.1, 0.85, 10)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, forecast.CurrentVariance, 0.0)
		for _, v := range forecast.Forecasts {
			assert.GreaterOrEqual(t, v, 0.0)
		}
	})

	t.Run("multi-step forecasts decay without a repeated shock term", func(t *testing.T) {
		omega, alpha, beta := 1e-5, 0.1, 0.85

		forecast, err := GARCH11(sampleReturns(), omega, alpha, beta, 5)
		require.NoError(t, err)

		for h := 1; h < len(forecast.Forecasts); h++ {
			want := omega + (alpha+beta)*forecast.Forecasts[h-1]
			assert.InDelta(t, want, forecast.Forecasts[h], 1e-15)
		}
	})

	t.Run("long-horizon forecasts approach the unconditional variance", func(t *testing.T) {
		omega, alpha, beta := 1e-5, 0.1, 0.85

		forecast, err := GARCH11(sampleReturns(), omega, alpha, beta, 400)
		require.NoError(t, err)

		unconditional := omega / (1 - alpha - beta)
		assert.InDelta(t, unconditional, forecast.Forecasts[len(forecast.Forecasts)-1], unconditional*0.01)
	})

	t.Run("non-stationary parameters are flagged but still forecast", func(t *testing.T) {
		forecast, err := GARCH11(sampleReturns(), 1e-5, 0.3, 0.75, 5)

		var nonStationaryErr *models.NonStationaryError
		require.ErrorAs(t, err, &nonStationaryErr)
		assert.InDelta(t, 1.05, nonStationaryErr.Persistence, 1e-12)

		assert.True(t, math.IsInf(forecast.HalfLife, 1))
		assert.False(t, forecast.IsStationary())
		assert.Len(t, forecast.Forecasts, 5)
		for _, v := range forecast.Forecasts {
			assert.False(t, math.IsNaN(v))
			assert.GreaterOrEqual(t, v, 0.0)
		}
	})

	t.Run("rejects negative parameters", func(t *testing.T) {
		_, err := GARCH11(sampleReturns(), -1e-5, 0.1, 0.85, 5)
		assert.Error(t, err)

		_, err = GARCH11(sampleReturns(), 1e-5, -0.1, 0.85, 5)
		assert.Error(t, err)
	})

	t.Run("rejects short series and bad horizons", func(t *testing.T) {
		_, err := GARCH11([]float64{0.01}, 1e-5, 0.1, 0.85, 5)
		assert.Error(t, err)

		_, err = GARCH11(sampleReturns(), 1e-5, 0.1, 0.85, 0)
		assert.Error(t, err)
	})
}
