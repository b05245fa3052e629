package models

// Greeks holds the analytic sensitivities of a single contract evaluation.
//
// Unit conventions: Delta and Gamma are raw partial derivatives. Theta is
// per year; callers wanting daily decay divide by 365 themselves. Vega and
// Rho are scaled to a 1-percentage-point move (raw derivative divided by
// 100), matching trading-desk units. The scaling is fixed, not configurable.
type Greeks struct {
	Delta float64
	Gamma float64
	Theta float64
	Vega  float64
	Rho   float64
}
