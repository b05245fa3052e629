package pricing

import (
	"math"

	"github.com/voltools/quant/src/models"
	"github.com/voltools/quant/src/quantmath"
)

// Greeks returns the analytic sensitivities of a contract, computed from the
// same d1/d2 as Price.
//
// Theta is per year (callers wanting daily decay divide by 365). Vega and
// Rho are per 1-percentage-point move: the raw derivatives divided by 100.
// On the degenerate boundary (sigma*sqrt(T) == 0) gamma and vega are zero and
// the remaining Greeks take their deterministic intrinsic-value limits; no
// division by zero occurs.
func Greeks(c models.OptionContract) (models.Greeks, error) {
	if err := c.Validate(); err != nil {
		return models.Greeks{}, err
	}

	if c.IsDegenerate() {
		return degenerateGreeks(c), nil
	}

	d1, d2 := dOneTwo(c)

	sqrtT := math.Sqrt(c.TimeToExpiry)
	discQ := math.Exp(-c.DividendYield * c.TimeToExpiry)
	discR := math.Exp(-c.RiskFreeRate * c.TimeToExpiry)
	pdfD1 := quantmath.NormPDF(d1)

	g := models.Greeks{
		Gamma: discQ * pdfD1 / (c.Spot * c.Sigma * sqrtT),
		Vega:  c.Spot * discQ * pdfD1 * sqrtT / 100,
	}

	if c.Type == models.Call {
		g.Delta = discQ * quantmath.NormCDF(d1)
		g.Theta = -c.Spot*discQ*pdfD1*c.Sigma/(2*sqrtT) -
			c.RiskFreeRate*c.Strike*discR*quantmath.NormCDF(d2) +
			c.DividendYield*c.Spot*discQ*quantmath.NormCDF(d1)
		g.Rho = c.Strike * c.TimeToExpiry * discR * quantmath.NormCDF(d2) / 100
	} else {
		g.Delta = -discQ * quantmath.NormCDF(-d1)
		g.Theta = -c.Spot*discQ*pdfD1*c.Sigma/(2*sqrtT) +
			c.RiskFreeRate*c.Strike*discR*quantmath.NormCDF(-d2) -
			c.DividendYield*c.Spot*discQ*quantmath.NormCDF(-d1)
		g.Rho = -c.Strike * c.TimeToExpiry * discR * quantmath.NormCDF(-d2) / 100
	}

	return g, nil
}

// degenerateGreeks takes the sigma*sqrt(T) -> 0 limit of each Greek: the
// option is a deterministic payoff, so gamma and vega vanish and delta
// becomes a discounted step function.
func degenerateGreeks(c models.OptionContract) models.Greeks {
	discS := c.Spot * math.Exp(-c.DividendYield*c.TimeToExpiry)
	discK := c.Strike * math.Exp(-c.RiskFreeRate*c.TimeToExpiry)

	var g models.Greeks

	if c.Type == models.Call {
		if discS > discK {
			g.Delta = math.Exp(-c.DividendYield * c.TimeToExpiry)
			g.Theta = c.DividendYield*discS - c.RiskFreeRate*discK
			g.Rho = c.Strike * c.TimeToExpiry * math.Exp(-c.RiskFreeRate*c.TimeToExpiry) / 100
		}
	} else {
		if discK > discS {
			g.Delta = -math.Exp(-c.DividendYield * c.TimeToExpiry)
			g.Theta = c.RiskFreeRate*discK - c.DividendYield*discS
			g.Rho = -c.Strike * c.TimeToExpiry * math.Exp(-c.RiskFreeRate*c.TimeToExpiry) / 100
		}
	}

	return g
}
