package models

import "math"

// HestonParameters holds the parameter set of the Heston stochastic
// volatility model. This is an explicitly partial component: full pricing
// requires characteristic-function integration (FFT), which is out of scope
// here. Callers get the parameter container and its derived quantities only.
type HestonParameters struct {
	V0    float64 // initial variance
	Kappa float64 // mean reversion speed
	Theta float64 // long-term variance
	Xi    float64 // vol of vol
	Rho   float64 // price/variance correlation
}

func (p HestonParameters) LongTermVol() float64 {
	return math.Sqrt(p.Theta)
}

func (p HestonParameters) Validate() error {
	if p.V0 < 0 {
		return NewInvalidContractError("v0", p.V0)
	}

	if p.Theta < 0 {
		return NewInvalidContractError("theta", p.Theta)
	}

	if p.Xi < 0 {
		return NewInvalidContractError("xi", p.Xi)
	}

	if p.Rho < -1 || p.Rho > 1 {
		return NewInvalidContractError("rho", p.Rho)
	}

	return nil
}
