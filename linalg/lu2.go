package linalg

// LU2 is an LU factorisation of a 2×2 matrix: A = L·U, with L unit-lower
// and U upper-triangular. Mirrors the reference FactLU layout (original
// TitSolver source/tit/core/_mat/fact.hpp): both factors are packed into a
// single matrix, L's unit diagonal is implicit.
type LU2 struct {
	lu     Mat2
	status Status
}

// DecomposeLU2 factorises A, returning the near_singular status if any
// pivot magnitude falls below the tiny threshold.
func DecomposeLU2(a Mat2) LU2 {
	var lu Mat2
	lu.M00 = a.M00
	if isTiny(lu.M00) {
		return LU2{lu: lu, status: NearSingular}
	}
	lu.M01 = a.M01
	lu.M10 = a.M10 / lu.M00
	lu.M11 = a.M11 - lu.M10*lu.M01
	if isTiny(lu.M11) {
		return LU2{lu: lu, status: NearSingular}
	}
	return LU2{lu: lu, status: Ok}
}

// Status reports whether the factorisation succeeded.
func (f LU2) Status() Status { return f.status }

// L returns the unit-lower factor.
func (f LU2) L() Mat2 { return Mat2{M00: 1, M01: 0, M10: f.lu.M10, M11: 1} }

// U returns the upper factor.
func (f LU2) U() Mat2 { return Mat2{M00: f.lu.M00, M01: f.lu.M01, M10: 0, M11: f.lu.M11} }

// Det returns det(A) = U00·U11 (L has unit diagonal).
func (f LU2) Det() float64 { return f.lu.M00 * f.lu.M11 }

// Solve returns x solving A·x = b.
func (f LU2) Solve(b Vec) Vec {
	// Forward solve L·y = b.
	y0 := b.X
	y1 := b.Y - f.lu.M10*y0
	// Back solve U·x = y.
	x1 := y1 / f.lu.M11
	x0 := (y0 - f.lu.M01*x1) / f.lu.M00
	return Vec{X: x0, Y: x1}
}

// Inverse returns A⁻¹.
func (f LU2) Inverse() Mat2 {
	c0 := f.Solve(Vec{X: 1, Y: 0})
	c1 := f.Solve(Vec{X: 0, Y: 1})
	return Mat2{M00: c0.X, M01: c1.X, M10: c0.Y, M11: c1.Y}
}
