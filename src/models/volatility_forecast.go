package models

import "math"

// VolatilityForecast is the output of a variance-model fit over a return
// series. Forecasts holds forward variance forecasts, one per requested
// horizon step. HalfLife is math.Inf(1) when the process is non-stationary
// (persistence >= 1).
type VolatilityForecast struct {
	Model             string
	Parameters        map[string]float64
	CurrentVariance   float64
	CurrentVolatility float64
	Forecasts         []float64
	HalfLife          float64
}

func (f VolatilityForecast) IsStationary() bool {
	return !math.IsInf(f.HalfLife, 1)
}
