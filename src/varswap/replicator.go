// Package varswap replicates the fair strike of a variance swap from a strip
// of listed option quotes, following the VIX methodology.
package varswap

import (
	"fmt"
	"math"

	"github.com/voltools/quant/src/models"
)

const thirtyDays = 30.0 / 365.0

// Rate computes the annualized variance-swap rate
//
//	sigma2 = (2/T) * sum((dK_i/K_i^2) * e^{rT} * Q_i) - (1/T) * (F/K0 - 1)^2
//
// from out-of-the-money quotes sorted by strike. The strip must span both
// sides of the forward; replication quality still degrades at the wings when
// listed strikes run out, which is a known limitation of the method rather
// than an error.
func Rate(quotes []models.VarianceSwapQuote, riskFreeRate, timeToExpiry float64) (float64, error) {
	if timeToExpiry <= 0 {
		return 0, fmt.Errorf("varswap.Rate: time to expiry must be positive, got %f", timeToExpiry)
	}

	if len(quotes) == 0 {
		return 0, fmt.Errorf("varswap.Rate: no quotes supplied")
	}

	for i, q := range quotes {
		if err := q.Validate(); err != nil {
			return 0, fmt.Errorf("varswap.Rate: quote %d: %w", i, err)
		}

		if i > 0 && q.Strike <= quotes[i-1].Strike {
			return 0, fmt.Errorf("varswap.Rate: quotes must be sorted by strike, quote %d (%f) <= quote %d (%f)", i, q.Strike, i-1, quotes[i-1].Strike)
		}
	}

	forward := quotes[0].ForwardPrice
	atmStrike := quotes[0].ATMStrike

	if quotes[0].Strike >= forward || quotes[len(quotes)-1].Strike <= forward {
		return 0, fmt.Errorf("varswap.Rate: strikes [%f, %f] must span the forward price %f", quotes[0].Strike, quotes[len(quotes)-1].Strike, forward)
	}

	growth := math.Exp(riskFreeRate * timeToExpiry)

	var contribution float64
	for _, q := range quotes {
		contribution += (q.StrikeWidth / (q.Strike * q.Strike)) * growth * q.MidPrice
	}

	adjustment := forward/atmStrike - 1
	return (2/timeToExpiry)*contribution - (1/timeToExpiry)*adjustment*adjustment, nil
}

// Interpolate30DayVariance linearly interpolates two constant-maturity
// variances to the 30-day point. The maturities must straddle 30/365;
// extrapolation is refused with a range error.
func Interpolate30DayVariance(v1, t1, v2, t2 float64) (float64, error) {
	if t1 >= t2 {
		return 0, fmt.Errorf("varswap.Interpolate30DayVariance: t1 (%f) must be less than t2 (%f)", t1, t2)
	}

	if t1 > thirtyDays || t2 < thirtyDays {
		return 0, fmt.Errorf("varswap.Interpolate30DayVariance: maturities [%f, %f] must straddle %f", t1, t2, thirtyDays)
	}

	w1 := (t2 - thirtyDays) / (t2 - t1)
	w2 := (thirtyDays - t1) / (t2 - t1)

	return w1*v1 + w2*v2, nil
}
