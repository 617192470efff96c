// Package lambertw evaluates the principal branch of the Lambert W
// function, the inverse of w*exp(w), for real arguments.
package lambertw

import (
	"errors"
	"math"
)

var (
	ErrDomain     = errors.New("lambertw: argument below -1/e")
	ErrNonFinite  = errors.New("lambertw: non-finite argument")
	ErrNoConverge = errors.New("lambertw: iteration did not converge")
)

const (
	maxIter = 80
	tol     = 1e-15
)

// W0 solves w*exp(w) = x on the principal branch. x must be >= -1/e;
// the result is then real and W0(0) = 0, W0(e) = 1.
func W0(x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, ErrNonFinite
	}
	if x == 0 {
		return 0, nil
	}

	branch := -1.0 / math.E
	if x < branch {
		// Tiny excursions below the branch point are rounding noise.
		if x > branch-1e-12 {
			x = branch
		} else {
			return 0, ErrDomain
		}
	}
	if x-branch < 1e-15 {
		// float64 cannot resolve the square-root cusp this close to
		// the branch point.
		return -1, nil
	}

	w := seed(x)
	for range maxIter {
		e := math.Exp(w)
		f := w*e - x
		// Once the residual is at the rounding floor of w*exp(w),
		// further steps only chase noise.
		if math.Abs(f) <= 1e-15*math.Abs(x) {
			return w, nil
		}
		// Halley step
		den := e*(w+1) - (w+2)*f/(2*(w+1))
		if den == 0 {
			break
		}
		dw := f / den
		w -= dw
		if math.Abs(dw) < tol*(1+math.Abs(w)) {
			return w, nil
		}
	}
	return w, ErrNoConverge
}

// W0FromLog solves w + log(w) = lx, which is W0(exp(lx)) without
// forming exp(lx). Intended for lx beyond the float64 exp range,
// where the direct form would overflow.
func W0FromLog(lx float64) (float64, error) {
	if math.IsNaN(lx) || math.IsInf(lx, 0) {
		return 0, ErrNonFinite
	}
	if lx < 1 {
		return W0(math.Exp(lx))
	}

	w := lx - math.Log(lx)
	for range maxIter {
		// Newton step on g(w) = w + log(w) - lx
		dw := (w + math.Log(w) - lx) / (1 + 1/w)
		w -= dw
		if math.Abs(dw) < tol*(1+math.Abs(w)) {
			return w, nil
		}
	}
	return w, ErrNoConverge
}

func seed(x float64) float64 {
	switch {
	case x < -0.25:
		// Series about the branch point at -1/e
		s := 2 * (1 + math.E*x)
		if s <= 0 {
			return -1
		}
		p := math.Sqrt(s)
		return -1 + p - p*p/3 + 11.0/72.0*p*p*p
	case x < 3:
		return math.Log1p(x)
	default:
		// Asymptotic L1 - log(L1)
		l1 := math.Log(x)
		return l1 - math.Log(l1)
	}
}
