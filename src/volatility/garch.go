// Package volatility implements time-series variance models and derived
// volatility metrics. All return series are assumed to be log returns.
package volatility

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/voltools/quant/src/models"
)

// DefaultForecastHorizon is the forward horizon used when callers have no
// opinion of their own.
const DefaultForecastHorizon = 5

// GARCH11 runs the GARCH(1,1) variance recurrence
//
//	sigma2_t = omega + alpha*r2_{t-1} + beta*sigma2_{t-1}
//
// over the return series, seeded with the sample variance, and forecasts
// `horizon` periods ahead. The one-step forecast uses the last observed
// squared return; steps beyond that carry no new shock information and decay
// with omega + (alpha+beta)*prev only.
//
// When alpha+beta >= 1 the process is non-stationary: the forecast is still
// returned (half-life reported as +Inf) together with a
// models.NonStationaryError so the caller can decide whether an explosive
// path is acceptable.
func GARCH11(returns []float64, omega, alpha, beta float64, horizon int) (models.VolatilityForecast, error) {
	if err := validateGARCHInputs(returns, horizon); err != nil {
		return models.VolatilityForecast{}, err
	}

	if omega < 0 || alpha < 0 || beta < 0 {
		return models.VolatilityForecast{}, fmt.Errorf("GARCH11: omega, alpha and beta must be non-negative, got (%f, %f, %f)", omega, alpha, beta)
	}

	seed, err := stats.Variance(returns)
	if err != nil {
		return models.VolatilityForecast{}, fmt.Errorf("GARCH11: failed to compute seed variance: %w", err)
	}

	variance := seed
	for t := 1; t < len(returns); t++ {
		variance = omega + alpha*returns[t-1]*returns[t-1] + beta*variance
	}

	lastReturn := returns[len(returns)-1]

	forecasts := make([]float64, horizon)
	for h := 0; h < horizon; h++ {
		if h == 0 {
			forecasts[h] = omega + alpha*lastReturn*lastReturn + beta*variance
		} else {
			forecasts[h] = omega + (alpha+beta)*forecasts[h-1]
		}
	}

	persistence := alpha + beta

	forecast := models.VolatilityForecast{
		Model: "GARCH(1,1)",
		Parameters: map[string]float64{
			"omega":       omega,
			"alpha":       alpha,
			"beta":        beta,
			"persistence": persistence,
		},
		CurrentVariance:   variance,
		CurrentVolatility: math.Sqrt(variance),
		Forecasts:         forecasts,
		HalfLife:          halfLife(persistence),
	}

	if persistence >= 1 {
		return forecast, &models.NonStationaryError{Persistence: persistence}
	}

	return forecast, nil
}

// halfLife returns the number of periods for a variance shock to decay by
// half. log(0.5)/log(x) is undefined or misleading for x >= 1, so the
// non-stationary case is reported as +Inf instead of computed.
func halfLife(persistence float64) float64 {
	if persistence >= 1 {
		return math.Inf(1)
	}

	if persistence <= 0 {
		return 0
	}

	return math.Log(0.5) / math.Log(persistence)
}

func validateGARCHInputs(returns []float64, horizon int) error {
	if len(returns) < 2 {
		return fmt.Errorf("volatility: need at least 2 returns, got %d", len(returns))
	}

	if horizon < 1 {
		return fmt.Errorf("volatility: forecast horizon must be at least 1, got %d", horizon)
	}

	return nil
}
