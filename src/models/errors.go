package models

import (
	"fmt"
	"math"
)

// ErrNoBracket signals that a root finder was handed an interval whose
// endpoints do not bracket a sign change.
var ErrNoBracket = fmt.Errorf("function does not bracket a root on the given interval")

// InvalidContractError reports a caller contract violation: a non-positive
// spot or strike, negative expiry or volatility, or an unknown option type.
// It is raised immediately, never coerced into a NaN price.
type InvalidContractError struct {
	Field string
	Value float64
}

func NewInvalidContractError(field string, value float64) *InvalidContractError {
	return &InvalidContractError{Field: field, Value: value}
}

func (e *InvalidContractError) Error() string {
	return fmt.Sprintf("invalid contract: %s=%f", e.Field, e.Value)
}

// NoArbitrageError reports an implied-volatility target price outside the
// theoretically achievable range for the contract.
type NoArbitrageError struct {
	MarketPrice float64
	LowerBound  float64
	UpperBound  float64
}

func (e *NoArbitrageError) Error() string {
	return fmt.Sprintf("market price %f violates no-arbitrage bounds [%f, %f]", e.MarketPrice, e.LowerBound, e.UpperBound)
}

// ConvergenceError reports an iterative solver that hit its iteration cap
// before reaching tolerance. Best and Residual carry the last estimate for
// diagnostics.
type ConvergenceError struct {
	Best       float64
	Residual   float64
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("failed to converge after %d iterations: best=%f residual=%e", e.Iterations, e.Best, math.Abs(e.Residual))
}

// NonStationaryError flags GARCH/EGARCH parameters with persistence >= 1.
// The forecast is still returned alongside it, so callers who explicitly
// want an explosive-variance path can keep it; everyone else should treat
// the fit as unusable.
type NonStationaryError struct {
	Persistence float64
}

func (e *NonStationaryError) Error() string {
	return fmt.Sprintf("non-stationary model: persistence %f >= 1", e.Persistence)
}
