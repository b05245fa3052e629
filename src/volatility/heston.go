package volatility

import "github.com/voltools/quant/src/models"

// NewHestonParameters validates and returns a Heston stochastic-volatility
// parameter set. Pricing under Heston needs characteristic-function
// integration and is deliberately not implemented; the container exists so
// calibration results can be carried around with their derived quantities
// (see models.HestonParameters.LongTermVol).
func NewHestonParameters(v0, kappa, theta, xi, rho float64) (models.HestonParameters, error) {
	p := models.HestonParameters{
		V0:    v0,
		Kappa: kappa,
		Theta: theta,
		Xi:    xi,
		Rho:   rho,
	}

	if err := p.Validate(); err != nil {
		return models.HestonParameters{}, err
	}

	return p, nil
}
