package volatility

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// tradingDaysPerYear is the annualization base for realized volatility.
const tradingDaysPerYear = 252

// RealizedVolatility returns the annualized standard deviation of the
// trailing `window` log returns.
func RealizedVolatility(returns []float64, window int) (float64, error) {
	if window < 2 {
		return 0, fmt.Errorf("RealizedVolatility: window must be at least 2, got %d", window)
	}

	if len(returns) < window {
		return 0, fmt.Errorf("RealizedVolatility: need at least %d returns, got %d", window, len(returns))
	}

	sd, err := stats.StandardDeviation(returns[len(returns)-window:])
	if err != nil {
		return 0, fmt.Errorf("RealizedVolatility: failed to compute standard deviation: %w", err)
	}

	return sd * math.Sqrt(tradingDaysPerYear), nil
}

// RiskPremium is implied minus realized volatility. Positive readings mean
// options are rich relative to delivered vol; negative readings mean
// stress is being delivered faster than it was priced.
func RiskPremium(iv30, rv20 float64) float64 {
	return iv30 - rv20
}

// TermStructure is the 90-day minus 30-day implied volatility spread.
// Inverted (negative) readings indicate near-dated event risk is priced.
func TermStructure(iv30, iv90 float64) float64 {
	return iv90 - iv30
}

// Skew is the 25-delta put IV minus the 25-delta call IV.
func Skew(iv25Put, iv25Call float64) float64 {
	return iv25Put - iv25Call
}

// ExpectedMove converts an ATM straddle price into the fractional move the
// market is pricing over `days` calendar days.
func ExpectedMove(price, atmStraddle float64, days int) (float64, error) {
	if price <= 0 {
		return 0, fmt.Errorf("ExpectedMove: price must be positive, got %f", price)
	}

	if days < 0 {
		return 0, fmt.Errorf("ExpectedMove: days must be non-negative, got %d", days)
	}

	return (atmStraddle / price) * math.Sqrt(float64(days)/365), nil
}
