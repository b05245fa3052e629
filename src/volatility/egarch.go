package volatility

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/voltools/quant/src/models"
)

// eAbsZ is E|z| for a standard normal innovation.
var eAbsZ = math.Sqrt(2 / math.Pi)

// EGARCH runs the EGARCH(1,1) recurrence in log-variance space:
//
//	ln(sigma2_t) = omega + alpha*(|z_{t-1}| - E|z|) + gamma*z_{t-1} + beta*ln(sigma2_{t-1})
//
// with z_t = r_t/sigma_t. gamma < 0 produces the leverage effect: a negative
// return raises next-period variance more than a positive return of the same
// magnitude. Because the recurrence lives in log space, recovered variances
// are positive by construction.
//
// Forecast steps beyond the first use the zero-shock expectation
// omega + beta*ln(sigma2), since E[|z|] - E|z| and E[z] both vanish.
// |beta| >= 1 makes the log-variance process non-stationary and is flagged
// the same way as GARCH11.
func EGARCH(returns []float64, omega, alpha, gamma, beta float64, horizon int) (models.VolatilityForecast, error) {
	if err := validateGARCHInputs(returns, horizon); err != nil {
		return models.VolatilityForecast{}, err
	}

	seed, err := stats.Variance(returns)
	if err != nil {
		return models.VolatilityForecast{}, fmt.Errorf("EGARCH: failed to compute seed variance: %w", err)
	}

	if seed <= 0 {
		return models.VolatilityForecast{}, fmt.Errorf("EGARCH: seed variance must be positive, got %f (constant return series)", seed)
	}

	logVariance := math.Log(seed)
	for t := 1; t < len(returns); t++ {
		z := returns[t-1] / math.Sqrt(math.Exp(logVariance))
		logVariance = omega + alpha*(math.Abs(z)-eAbsZ) + gamma*z + beta*logVariance
	}

	lastZ := returns[len(returns)-1] / math.Sqrt(math.Exp(logVariance))

	forecasts := make([]float64, horizon)
	logForecast := logVariance
	for h := 0; h < horizon; h++ {
		if h == 0 {
			logForecast = omega + alpha*(math.Abs(lastZ)-eAbsZ) + gamma*lastZ + beta*logForecast
		} else {
			logForecast = omega + beta*logForecast
		}
		forecasts[h] = math.Exp(logForecast)
	}

	variance := math.Exp(logVariance)
	persistence := math.Abs(beta)

	forecast := models.VolatilityForecast{
		Model: "EGARCH",
		Parameters: map[string]float64{
			"omega": omega,
			"alpha": alpha,
			"gamma": gamma,
			"beta":  beta,
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
