package pricing

import (
	"math"

	"github.com/voltools/quant/src/models"
	"github.com/voltools/quant/src/quantmath"
)

// Price returns the Black-Scholes-Merton price of a European option with a
// continuous dividend yield.
//
// When TimeToExpiry or Sigma is zero the closed-form expression is undefined
// and the price degenerates to the discounted intrinsic value
// max(0, sign*(S*e^{-qT} - K*e^{-rT})); this boundary is an explicit branch,
// never a NaN. Invalid contract fields return a models.InvalidContractError.
func Price(c models.OptionContract) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	if c.IsDegenerate() {
		return intrinsic(c), nil
	}

	d1, d2 := dOneTwo(c)

	discS := c.Spot * math.Exp(-c.DividendYield*c.TimeToExpiry)
	discK := c.Strike * math.Exp(-c.RiskFreeRate*c.TimeToExpiry)

	if c.Type == models.Call {
		return discS*quantmath.NormCDF(d1) - discK*quantmath.NormCDF(d2), nil
	}

	return discK*quantmath.NormCDF(-d2) - discS*quantmath.NormCDF(-d1), nil
}

// dOneTwo computes the shared d1/d2 terms. The Greeks use the exact same
// values as the pricer so that price and sensitivities never drift apart
// when used together for hedging.
func dOneTwo(c models.OptionContract) (float64, float64) {
	sqrtT := math.Sqrt(c.TimeToExpiry)
	d1 := (math.Log(c.Spot/c.Strike) + (c.RiskFreeRate-c.DividendYield+0.5*c.Sigma*c.Sigma)*c.TimeToExpiry) / (c.Sigma * sqrtT)
	d2 := d1 - c.Sigma*sqrtT

	return d1, d2
}

func intrinsic(c models.OptionContract) float64 {
	discS := c.Spot * math.Exp(-c.DividendYield*c.TimeToExpiry)
	discK := c.Strike * math.Exp(-c.RiskFreeRate*c.TimeToExpiry)

	return math.Max(0, c.Type.Sign()*(discS-discK))
}
