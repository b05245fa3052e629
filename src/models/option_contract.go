package models

import "math"

// OptionContract holds the terms of a single European option. It is an
// immutable value type: construct one per pricing call and discard it.
//
// TimeToExpiry is measured in years (ACT/365), Sigma is annualized.
type OptionContract struct {
	Spot          float64
	Strike        float64
	TimeToExpiry  float64
	RiskFreeRate  float64
	DividendYield float64
	Sigma         float64
	Type          OptionType
}

// Validate asserts well-formedness of every field. NaN and infinite values
// are rejected here so the pricing formulas can never produce a NaN price
// behind a nil error.
func (c OptionContract) Validate() error {
	if !isFinite(c.Spot) || c.Spot <= 0 {
		return NewInvalidContractError("spot", c.Spot)
	}

	if !isFinite(c.Strike) || c.Strike <= 0 {
		return NewInvalidContractError("strike", c.Strike)
	}

	if !isFinite(c.TimeToExpiry) || c.TimeToExpiry < 0 {
		return NewInvalidContractError("timeToExpiry", c.TimeToExpiry)
	}

	if !isFinite(c.RiskFreeRate) {
		return NewInvalidContractError("riskFreeRate", c.RiskFreeRate)
	}

	if !isFinite(c.DividendYield) {
		return NewInvalidContractError("dividendYield", c.DividendYield)
	}

	if !isFinite(c.Sigma) || c.Sigma < 0 {
		return NewInvalidContractError("sigma", c.Sigma)
	}

	if err := c.Type.Validate(); err != nil {
		return err
	}

	return nil
}

// IsDegenerate reports whether the closed-form BSM expression is undefined
// for this contract (sigma*sqrt(T) == 0) and the price collapses to the
// discounted intrinsic value.
func (c OptionContract) IsDegenerate() bool {
	return c.TimeToExpiry == 0 || c.Sigma == 0
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
