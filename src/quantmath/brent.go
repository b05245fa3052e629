package quantmath

import (
	"math"

	"github.com/voltools/quant/src/models"
)

// Brent finds a root of f on the bracket [lo, hi] using Brent's method,
// combining bisection, the secant method and inverse quadratic
// interpolation. The endpoints must bracket a sign change; otherwise
// models.ErrNoBracket is returned rather than a boundary value. Hitting
// maxIter before the interval shrinks below tol returns a
// models.ConvergenceError carrying the best estimate and its residual.
func Brent(f func(float64) float64, lo, hi, tol float64, maxIter int) (float64, error) {
	a, b := lo, hi
	fa, fb := f(a), f(b)

	if fa == 0 {
		return a, nil
	}

	if fb == 0 {
		return b, nil
	}

	if (fa > 0) == (fb > 0) {
		return 0, models.ErrNoBracket
	}

	c, fc := a, fa
	d := b - a
	e := d

	for i := 0; i < maxIter; i++ {
		if math.Abs(fc) < math.Abs(fb) {
			a, fa = b, fb
			b, fb = c, fc
			c, fc = a, fa
		}

		tol1 := 2*epsilon*math.Abs(b) + 0.5*tol
		xm := 0.5 * (c - b)

		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, nil
		}

		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			// interpolation step: secant when a == c, inverse quadratic otherwise
			s := fb / fa
			var p, q float64
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}

			if p > 0 {
				q = -q
			}
			p = math.Abs(p)

			if 2*p < math.Min(3*xm*q-math.Abs(tol1*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				// interpolation rejected, fall back to bisection
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = b, fb

		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}

		fb = f(b)

		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
	}

	return b, &models.ConvergenceError{Best: b, Residual: fb, Iterations: maxIter}
}

const epsilon = 2.220446049250313e-16
