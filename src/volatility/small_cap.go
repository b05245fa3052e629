package volatility

import (
	"fmt"
	"math"

	"github.com/voltools/quant/src/quantmath"
)

// Small-cap (sub-$50) names carry a higher volatility baseline, react harder
// to shocks and mean-revert faster than large caps. These helpers bake those
// regime adjustments into GARCH parameters and quick expected-move estimates.

// AdjustGARCHParamsSmallCap scales a GARCH(1,1) parameter set for the
// small-cap regime: higher baseline (omega), stronger shock reaction
// (alpha), less persistence (beta).
func AdjustGARCHParamsSmallCap(omega, alpha, beta float64) (float64, float64, float64) {
	return omega * 2.5, alpha * 1.3, beta * 0.9
}

// ExpectedMoveEstimate is the output of EstimateExpectedMove.
type ExpectedMoveEstimate struct {
	MovePct     float64
	MoveDollars float64
	UpPrice     float64
	DownPrice   float64
	AssumedVol  float64
}

// EstimateExpectedMove sizes the move over `days` trading days at the given
// confidence percentile, assuming a 30% annualized vol baseline below $20
// and 25% above. volPercentile is in (0, 100); 50 gives roughly a one-sided
// 75% confidence band.
func EstimateExpectedMove(price float64, days int, volPercentile float64) (ExpectedMoveEstimate, error) {
	if price <= 0 {
		return ExpectedMoveEstimate{}, fmt.Errorf("EstimateExpectedMove: price must be positive, got %f", price)
	}

	if days < 1 {
		return ExpectedMoveEstimate{}, fmt.Errorf("EstimateExpectedMove: days must be at least 1, got %d", days)
	}

	if volPercentile <= 0 || volPercentile >= 100 {
		return ExpectedMoveEstimate{}, fmt.Errorf("EstimateExpectedMove: volPercentile must be in (0, 100), got %f", volPercentile)
	}

	baseVol := 0.25
	if price < 20 {
		baseVol = 0.30
	}

	dailyVol := baseVol / math.Sqrt(tradingDaysPerYear)
	move := price * dailyVol * math.Sqrt(float64(days)) * quantmath.NormQuantile(0.5+volPercentile/200)

	return ExpectedMoveEstimate{
		MovePct:     move / price,
		MoveDollars: move,
		UpPrice:     price + move,
		DownPrice:   price - move,
		AssumedVol:  baseVol,
	}, nil
}
