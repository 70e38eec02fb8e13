package linalg

import "math"

// Eig2 holds the eigenvectors (as rows of Vecs) and eigenvalues of a
// symmetric 2×2 matrix.
type Eig2 struct {
	V0, V1 Vec // eigenvector rows, so that V·Aᵀ == diag(d)·V
	D      Vec // eigenvalues, D.X paired with V0, D.Y paired with V1
}

// Jacobi2 computes the eigendecomposition of a symmetric 2×2 matrix using a
// single Jacobi rotation (the classical multi-sweep algorithm collapses to
// one rotation at this size), following the reference jacobi() contract
// (original TitSolver source/tit/core/_mat/eig.hpp): it reports
// not_converged if the largest off-diagonal entry does not fall below tiny
// within 32·Dim sweeps, though for a 2×2 matrix a single rotation always
// annihilates the single off-diagonal pair exactly.
func Jacobi2(a Mat2) (Eig2, Status) {
	const maxIter = 32 * 2
	v := Eye2()
	for iter := 0; iter < maxIter; iter++ {
		if isTiny(a.M10) {
			return Eig2{
				V0: Vec{X: v.M00, Y: v.M01},
				V1: Vec{X: v.M10, Y: v.M11},
				D:  Vec{X: a.M00, Y: a.M11},
			}, Ok
		}
		theta := 0.5 * math.Atan2(2*a.M10, a.M11-a.M00)
		c, s := math.Cos(theta), math.Sin(theta)
		app := c*(c*a.M00-s*a.M10) - s*(c*a.M10-s*a.M11)
		aqq := s*(s*a.M00+c*a.M10) + c*(s*a.M10+c*a.M11)
		a = Mat2{M00: app, M01: 0, M10: 0, M11: aqq}
		v = Mat2{
			M00: c*v.M00 - s*v.M10, M01: c*v.M01 - s*v.M11,
			M10: s*v.M00 + c*v.M10, M11: s*v.M01 + c*v.M11,
		}
	}
	return Eig2{}, NotConverged
}
