package utils

import "time"

const hoursPerYear = 24 * 365

// YearFraction returns the ACT/365 year fraction between now and expiration,
// floored at zero for already-expired timestamps. Calendar and holiday aware
// day counts are intentionally not supported.
func YearFraction(now, expiration time.Time) float64 {
	if !expiration.After(now) {
		return 0
	}

	return expiration.Sub(now).Hours() / hoursPerYear
}
