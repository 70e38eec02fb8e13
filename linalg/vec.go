// Package linalg implements fixed-dimension vector and matrix algebra for the
// 2-D (and, for the boundary MLS system, 3-D) quantities used throughout the
// SPH core: elementwise arithmetic, dot/cross/norm, mask-producing
// comparisons, outer products, and the small set of matrix factorisations
// (LU, Cholesky, LDLᵀ, Jacobi eigendecomposition) the field operators rely
// on. Types are value types with no heap allocation, matching the
// per-particle/per-edge hot-loop contract; see DESIGN.md for why this is not
// built atop gosl/la.
package linalg

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Vec is a fixed 2-component vector.
type Vec struct {
	X, Y float64
}

// NewVec builds a vector from its components.
func NewVec(x, y float64) Vec { return Vec{X: x, Y: y} }

// Add returns a+b.
func (a Vec) Add(b Vec) Vec { return Vec{a.X + b.X, a.Y + b.Y} }

// Sub returns a-b.
func (a Vec) Sub(b Vec) Vec { return Vec{a.X - b.X, a.Y - b.Y} }

// Scale returns s*a.
func (a Vec) Scale(s float64) Vec { return Vec{s * a.X, s * a.Y} }

// Neg returns -a.
func (a Vec) Neg() Vec { return Vec{-a.X, -a.Y} }

// Dot returns a·b.
func (a Vec) Dot(b Vec) float64 { return a.X*b.X + a.Y*b.Y }

// Cross returns the scalar (z-component of the) 2-D cross product a×b.
func (a Vec) Cross(b Vec) float64 { return a.X*b.Y - a.Y*b.X }

// NormSq returns ‖a‖².
func (a Vec) NormSq() float64 { return a.X*a.X + a.Y*a.Y }

// Norm returns ‖a‖.
func (a Vec) Norm() float64 { return math.Sqrt(a.NormSq()) }

// Normalize returns a/‖a‖; panics on a zero vector (programming error: the
// caller must check first where a zero vector is a legitimate input).
func (a Vec) Normalize() Vec {
	n := a.Norm()
	if n <= 0 {
		chk.Panic("linalg: cannot normalize a zero-length vector")
	}
	return a.Scale(1 / n)
}

// Less returns the elementwise comparison a<b as a boolean mask.
func (a Vec) Less(b Vec) (maskX, maskY bool) {
	return a.X < b.X, a.Y < b.Y
}

// Merge performs a branchless elementwise select: result.X = a.X if
// maskX else b.X (and likewise for Y).
func Merge(maskX, maskY bool, a, b Vec) Vec {
	v := b
	if maskX {
		v.X = a.X
	}
	if maskY {
		v.Y = a.Y
	}
	return v
}

// Outer returns the outer product a⊗b as a 2×2 matrix.
func Outer(a, b Vec) Mat2 {
	return Mat2{
		M00: a.X * b.X, M01: a.X * b.Y,
		M10: a.Y * b.X, M11: a.Y * b.Y,
	}
}

// Vec3 is a fixed 3-component vector, used for the boundary MLS basis
// B_ab = (1, Δx, Δy).
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 builds a 3-vector from its components.
func NewVec3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// BasisFromDelta builds the MLS basis vector (1, dx, dy) from a 2-D offset.
func BasisFromDelta(d Vec) Vec3 { return Vec3{X: 1, Y: d.X, Z: d.Y} }

// Add returns a+b.
func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

// Scale returns s*a.
func (a Vec3) Scale(s float64) Vec3 { return Vec3{s * a.X, s * a.Y, s * a.Z} }

// Dot returns a·b.
func (a Vec3) Dot(b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Outer3 returns the outer product a⊗b as a 3×3 matrix.
func Outer3(a, b Vec3) Mat3 {
	return Mat3{
		{a.X * b.X, a.X * b.Y, a.X * b.Z},
		{a.Y * b.X, a.Y * b.Y, a.Y * b.Z},
		{a.Z * b.X, a.Z * b.Y, a.Z * b.Z},
	}
}
