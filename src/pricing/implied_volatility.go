package pricing

import (
	"errors"
	"fmt"
	"math"

	"github.com/voltools/quant/src/models"
	"github.com/voltools/quant/src/quantmath"
)

// Solver defaults. The vol ceiling of 500% annualized is deliberately wide;
// override with WithVolBounds for markets where that is not wide enough.
const (
	DefaultVolLowerBound = 1e-4
	DefaultVolUpperBound = 5.0
	DefaultTolerance     = 1e-8
	DefaultMaxIterations = 100
)

type solverConfig struct {
	volLo   float64
	volHi   float64
	tol     float64
	maxIter int
}

type SolverOption func(*solverConfig)

func WithVolBounds(lo, hi float64) SolverOption {
	return func(cfg *solverConfig) {
		cfg.volLo = lo
		cfg.volHi = hi
	}
}

func WithTolerance(tol float64) SolverOption {
	return func(cfg *solverConfig) {
		cfg.tol = tol
	}
}

func WithMaxIterations(n int) SolverOption {
	return func(cfg *solverConfig) {
		cfg.maxIter = n
	}
}

// ImpliedVolatility inverts the BSM price for sigma using a bracketed Brent
// root-find over [DefaultVolLowerBound, DefaultVolUpperBound]. The Sigma
// field of the contract is ignored.
//
// A market price outside the range achievable on the bracket returns a
// models.NoArbitrageError; a solve that exhausts its iteration budget
// returns a models.ConvergenceError with the last estimate. The solver never
// returns NaN or a silent default.
func ImpliedVolatility(marketPrice float64, c models.OptionContract, opts ...SolverOption) (float64, error) {
	cfg := &solverConfig{
		volLo:   DefaultVolLowerBound,
		volHi:   DefaultVolUpperBound,
		tol:     DefaultTolerance,
		maxIter: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.volLo <= 0 || cfg.volHi <= cfg.volLo {
		return 0, fmt.Errorf("ImpliedVolatility: invalid vol bounds [%f, %f]", cfg.volLo, cfg.volHi)
	}

	// NaN passes every ordered comparison below, which would turn a garbage
	// target into a silent boundary solve
	if math.IsNaN(marketPrice) || math.IsInf(marketPrice, 0) {
		return 0, models.NewInvalidContractError("marketPrice", marketPrice)
	}

	c.Sigma = cfg.volLo
	if err := c.Validate(); err != nil {
		return 0, err
	}

	// price is strictly increasing in sigma, so the achievable range on the
	// bracket is [price(volLo), price(volHi)]
	priceAt := func(sigma float64) float64 {
		c.Sigma = sigma
		p, _ := Price(c)
		return p
	}

	lower := priceAt(cfg.volLo)
	upper := priceAt(cfg.volHi)

	if marketPrice < lower-cfg.tol || marketPrice > upper+cfg.tol {
		return 0, &models.NoArbitrageError{MarketPrice: marketPrice, LowerBound: lower, UpperBound: upper}
	}

	sigma, err := quantmath.Brent(func(s float64) float64 {
		return priceAt(s) - marketPrice
	}, cfg.volLo, cfg.volHi, cfg.tol, cfg.maxIter)
	if err != nil {
		if errors.Is(err, models.ErrNoBracket) {
			// monotonicity puts the root at an endpoint within tolerance
			if marketPrice-lower <= upper-marketPrice {
				return cfg.volLo, nil
			}
			return cfg.volHi, nil
		}
		return 0, err
	}

	return sigma, nil
}
