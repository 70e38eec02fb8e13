package linalg

import "github.com/cpmech/gosl/chk"

// Mat2 is a row-major 2×2 matrix.
type Mat2 struct {
	M00, M01 float64
	M10, M11 float64
}

// Eye2 returns the 2×2 identity matrix.
func Eye2() Mat2 { return Mat2{M00: 1, M11: 1} }

// Add returns a+b.
func (a Mat2) Add(b Mat2) Mat2 {
	return Mat2{a.M00 + b.M00, a.M01 + b.M01, a.M10 + b.M10, a.M11 + b.M11}
}

// Scale returns s*a.
func (a Mat2) Scale(s float64) Mat2 {
	return Mat2{s * a.M00, s * a.M01, s * a.M10, s * a.M11}
}

// MulVec returns A·x.
func (a Mat2) MulVec(x Vec) Vec {
	return Vec{a.M00*x.X + a.M01*x.Y, a.M10*x.X + a.M11*x.Y}
}

// Mul returns A·B.
func (a Mat2) Mul(b Mat2) Mat2 {
	return Mat2{
		M00: a.M00*b.M00 + a.M01*b.M10, M01: a.M00*b.M01 + a.M01*b.M11,
		M10: a.M10*b.M00 + a.M11*b.M10, M11: a.M10*b.M01 + a.M11*b.M11,
	}
}

// Transpose returns Aᵀ.
func (a Mat2) Transpose() Mat2 { return Mat2{a.M00, a.M10, a.M01, a.M11} }

// Trace returns the sum of the diagonal entries.
func (a Mat2) Trace() float64 { return a.M00 + a.M11 }

// Det returns the determinant.
func (a Mat2) Det() float64 { return a.M00*a.M11 - a.M01*a.M10 }

// Largest returns the entry with the greatest absolute value.
func (a Mat2) Largest() float64 {
	m := abs(a.M00)
	for _, v := range []float64{a.M01, a.M10, a.M11} {
		if abs(v) > m {
			m = abs(v)
		}
	}
	return m
}

// Mat3 is a row-major 3×3 matrix, used for the boundary MLS normal system.
type Mat3 [3][3]float64

// Eye3 returns the 3×3 identity matrix.
func Eye3() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Add returns a+b.
func (a Mat3) Add(b Mat3) Mat3 {
	var c Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[i][j] + b[i][j]
		}
	}
	return c
}

// MulVec returns A·x.
func (a Mat3) MulVec(x Vec3) Vec3 {
	return Vec3{
		X: a[0][0]*x.X + a[0][1]*x.Y + a[0][2]*x.Z,
		Y: a[1][0]*x.X + a[1][1]*x.Y + a[1][2]*x.Z,
		Z: a[2][0]*x.X + a[2][1]*x.Y + a[2][2]*x.Z,
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// tiny is the threshold below which a pivot or denominator is treated as
// numerically zero; matches the reference engine's is_tiny() constant.
const tiny = 1e-14

func isTiny(x float64) bool { return abs(x) < tiny }

// assertDim is a programming-error guard for a caller-supplied index into a
// fixed-size type; no function in this package calls it.
func assertDim(i, n int) {
	if i < 0 || i >= n {
		chk.Panic("linalg: index %d out of range [0,%d)", i, n)
	}
}
