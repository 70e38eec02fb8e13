package linalg

// LDLT2 is a modified Cholesky factorisation of a 2×2 symmetric matrix:
// A = L·D·Lᵀ, D diagonal, L unit-lower. Used by the density operator to
// invert the renormalisation matrix L (spec.md §4.5). Only the
// lower-triangular part of A is read.
type LDLT2 struct {
	l, d   Mat2 // l.M10 holds the sub-diagonal entry; d.M00/d.M11 the diagonal
	status Status
}

// DecomposeLDLT2 factorises A, returning near_singular if a diagonal pivot
// falls below the tiny threshold.
func DecomposeLDLT2(a Mat2) LDLT2 {
	var l, d Mat2
	d.M00 = a.M00
	if isTiny(d.M00) {
		return LDLT2{status: NearSingular}
	}
	l.M10 = a.M10 / d.M00
	d.M11 = a.M11 - l.M10*d.M00*l.M10
	if isTiny(d.M11) {
		return LDLT2{status: NearSingular}
	}
	return LDLT2{l: l, d: d, status: Ok}
}

// Status reports whether the factorisation succeeded.
func (f LDLT2) Status() Status { return f.status }

// Det returns det(A) = D00·D11.
func (f LDLT2) Det() float64 { return f.d.M00 * f.d.M11 }

// Solve returns x solving A·x = b.
func (f LDLT2) Solve(b Vec) Vec {
	// Forward solve L·y = b.
	y0 := b.X
	y1 := b.Y - f.l.M10*y0
	// Scale by D⁻¹.
	z0 := y0 / f.d.M00
	z1 := y1 / f.d.M11
	// Back solve Lᵀ·x = z.
	x1 := z1
	x0 := z0 - f.l.M10*x1
	return Vec{X: x0, Y: x1}
}

// Inverse returns A⁻¹.
func (f LDLT2) Inverse() Mat2 {
	c0 := f.Solve(Vec{X: 1, Y: 0})
	c1 := f.Solve(Vec{X: 0, Y: 1})
	return Mat2{M00: c0.X, M01: c1.X, M10: c0.Y, M11: c1.Y}
}
