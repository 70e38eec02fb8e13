package linalg

// LDLT3 is a modified Cholesky factorisation of a 3×3 symmetric matrix:
// M = L·D·Lᵀ. Used by the boundary procedure to solve the linear MLS normal
// system (spec.md §4.8); only the lower-triangular part of M is read.
type LDLT3 struct {
	l      Mat3    // unit-lower (diagonal implicit)
	d      [3]float64
	status Status
}

// DecomposeLDLT3 factorises A.
func DecomposeLDLT3(a Mat3) LDLT3 {
	var l Mat3
	var d [3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < i; j++ {
			s := a[i][j]
			for k := 0; k < j; k++ {
				s -= l[i][k] * d[k] * l[j][k]
			}
			l[i][j] = s / d[j]
		}
		s := a[i][i]
		for k := 0; k < i; k++ {
			s -= l[i][k] * d[k] * l[i][k]
		}
		d[i] = s
		if isTiny(d[i]) {
			return LDLT3{status: NearSingular}
		}
	}
	return LDLT3{l: l, d: d, status: Ok}
}

// Status reports whether the factorisation succeeded.
func (f LDLT3) Status() Status { return f.status }

// Det returns det(A) = ∏ D.
func (f LDLT3) Det() float64 { return f.d[0] * f.d[1] * f.d[2] }

// Solve returns x solving A·x = b.
func (f LDLT3) Solve(b Vec3) Vec3 {
	y := [3]float64{b.X, b.Y, b.Z}
	// Forward solve L·z = b.
	for i := 1; i < 3; i++ {
		for j := 0; j < i; j++ {
			y[i] -= f.l[i][j] * y[j]
		}
	}
	// Scale by D⁻¹.
	for i := 0; i < 3; i++ {
		y[i] /= f.d[i]
	}
	// Back solve Lᵀ·x = z.
	x := y
	for i := 1; i >= 0; i-- {
		for j := i + 1; j < 3; j++ {
			x[i] -= f.l[j][i] * x[j]
		}
	}
	return Vec3{X: x[0], Y: x[1], Z: x[2]}
}
