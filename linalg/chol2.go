package linalg

import "math"

// Chol2 is a Cholesky factorisation of a 2×2 symmetric positive-definite
// matrix: A = L·Lᵀ. Only the lower-triangular part of A is read, matching
// the reference FactChol (original TitSolver source/tit/core/_mat/fact.hpp).
type Chol2 struct {
	l      Mat2
	status Status
}

// DecomposeChol2 factorises A. Returns not_positive_definite if a candidate
// diagonal square goes negative, near_singular if the resulting diagonal
// entry is below the tiny threshold.
func DecomposeChol2(a Mat2) Chol2 {
	var l Mat2
	l.M00 = a.M00
	if l.M00 < 0 {
		return Chol2{status: NotPositiveDefinite}
	}
	l.M00 = math.Sqrt(l.M00)
	if isTiny(l.M00) {
		return Chol2{status: NearSingular}
	}
	l.M10 = a.M10 / l.M00
	d := a.M11 - l.M10*l.M10
	if d < 0 {
		return Chol2{status: NotPositiveDefinite}
	}
	l.M11 = math.Sqrt(d)
	if isTiny(l.M11) {
		return Chol2{status: NearSingular}
	}
	return Chol2{l: l, status: Ok}
}

// Status reports whether the factorisation succeeded.
func (f Chol2) Status() Status { return f.status }

// L returns the lower-triangular factor.
func (f Chol2) L() Mat2 { return f.l }

// Det returns det(A) = (∏ diag(L))².
func (f Chol2) Det() float64 {
	d := f.l.M00 * f.l.M11
	return d * d
}

// Solve returns x solving A·x = b via forward/back substitution on L, Lᵀ.
func (f Chol2) Solve(b Vec) Vec {
	y0 := b.X / f.l.M00
	y1 := (b.Y - f.l.M10*y0) / f.l.M11
	x1 := y1 / f.l.M11
	x0 := (y0 - f.l.M10*x1) / f.l.M00
	return Vec{X: x0, Y: x1}
}

// Inverse returns A⁻¹.
func (f Chol2) Inverse() Mat2 {
	c0 := f.Solve(Vec{X: 1, Y: 0})
	c1 := f.Solve(Vec{X: 0, Y: 1})
	return Mat2{M00: c0.X, M01: c1.X, M10: c0.Y, M11: c1.Y}
}
