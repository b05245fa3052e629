package quantmath

import "gonum.org/v1/gonum/stat/distuv"

// NormCDF returns the standard normal cumulative distribution at x.
func NormCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// NormPDF returns the standard normal density at x.
func NormPDF(x float64) float64 {
	return distuv.UnitNormal.Prob(x)
}

// NormQuantile returns the standard normal inverse CDF at p, p in (0, 1).
func NormQuantile(p float64) float64 {
	return distuv.UnitNormal.Quantile(p)
}
