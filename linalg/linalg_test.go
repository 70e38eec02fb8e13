package linalg

import (
	"math"
	"math/rand"
	"testing"
)

const tol = 1e-9

func closeVec(a, b Vec, tol float64) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol
}

func TestVecArithmeticLaws(t *testing.T) {
	a := Vec{1.3, -2.7}
	b := Vec{-0.4, 5.1}
	if !closeVec(a.Add(b), b.Add(a), tol) {
		t.Fatal("addition must commute")
	}
	if !closeVec(a.Add(Vec{}), a, tol) {
		t.Fatal("zero vector must be the additive identity")
	}
	if math.Abs(a.Scale(2).Dot(b)-2*a.Dot(b)) > tol {
		t.Fatal("scaling must distribute over the dot product")
	}
}

func TestOuterDotIdentity(t *testing.T) {
	a := Vec{2, -1}
	b := Vec{0.5, 3}
	c := Vec{-2, 4}
	got := Outer(a, b).MulVec(c)
	want := a.Scale(b.Dot(c))
	if !closeVec(got, want, tol) {
		t.Fatalf("outer(a,b)*c != a*dot(b,c): got %v want %v", got, want)
	}
}

func randSPD2(r *rand.Rand) Mat2 {
	// Build A = B·Bᵀ + εI, guaranteed symmetric positive definite.
	b00, b01, b10, b11 := r.Float64()*2-1, r.Float64()*2-1, r.Float64()*2-1, r.Float64()*2-1
	B := Mat2{b00, b01, b10, b11}
	Bt := B.Transpose()
	A := B.Mul(Bt)
	A.M00 += 1
	A.M11 += 1
	return A
}

func TestCholeskyRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		A := randSPD2(r)
		fact := DecomposeChol2(A)
		if fact.Status() != Ok {
			t.Fatalf("unexpected status %v for SPD matrix %v", fact.Status(), A)
		}
		x := Vec{r.Float64(), r.Float64()}
		b := A.MulVec(x)
		got := fact.Solve(b)
		if !closeVec(got, x, 1e-6) {
			t.Fatalf("solve round trip failed: got %v want %v", got, x)
		}
		wantDet := A.Det()
		if math.Abs(fact.Det()-wantDet) > 1e-6*math.Abs(wantDet)+1e-9 {
			t.Fatalf("det mismatch: got %v want %v", fact.Det(), wantDet)
		}
		inv := fact.Inverse()
		gotInv := inv.MulVec(Vec{1, 1})
		wantInv := DecomposeLU2(A).Solve(Vec{1, 1})
		if !closeVec(gotInv, wantInv, 1e-6) {
			t.Fatalf("inverse mismatch: got %v want %v", gotInv, wantInv)
		}
	}
}

func TestCholesky2x2Example(t *testing.T) {
	// spec.md §8 scenario 5.
	A := Mat2{4, 1, 1, 3}
	fact := DecomposeChol2(A)
	if fact.Status() != Ok {
		t.Fatalf("expected Ok, got %v", fact.Status())
	}
	L := fact.L()
	wantL := Mat2{2, 0, 0.5, math.Sqrt(2.75)}
	if math.Abs(L.M00-wantL.M00) > 1e-12 || math.Abs(L.M10-wantL.M10) > 1e-12 ||
		math.Abs(L.M11-wantL.M11) > 1e-12 {
		t.Fatalf("L mismatch: got %v want %v", L, wantL)
	}
	if math.Abs(fact.Det()-11) > 1e-12 {
		t.Fatalf("det mismatch: got %v want 11", fact.Det())
	}
	x := fact.Solve(Vec{1, 1})
	want := Vec{2.0 / 11.0, 3.0 / 11.0}
	if !closeVec(x, want, 1e-12) {
		t.Fatalf("solve mismatch: got %v want %v", x, want)
	}
}

func randNonSingular2(r *rand.Rand) Mat2 {
	for {
		A := Mat2{r.Float64()*2 - 1, r.Float64()*2 - 1, r.Float64()*2 - 1, r.Float64()*2 - 1}
		if math.Abs(A.Det()) > 0.1 {
			return A
		}
	}
}

func TestLUSolveAndDet(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		A := randNonSingular2(r)
		fact := DecomposeLU2(A)
		if fact.Status() != Ok {
			t.Fatalf("unexpected status %v", fact.Status())
		}
		x := Vec{r.Float64(), r.Float64()}
		b := A.MulVec(x)
		got := fact.Solve(b)
		if !closeVec(got, x, 1e-6) {
			t.Fatalf("solve mismatch: got %v want %v", got, x)
		}
		L, U := fact.L(), fact.U()
		wantDet := L.Det() * U.Det()
		if math.Abs(fact.Det()-wantDet) > 1e-6 {
			t.Fatalf("det mismatch: got %v want %v", fact.Det(), wantDet)
		}
	}
}

func TestJacobi2x2(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		a01 := r.Float64()*4 - 2
		A := Mat2{r.Float64()*4 - 2, a01, a01, r.Float64()*4 - 2}
		eig, status := Jacobi2(A)
		if status != Ok {
			t.Fatalf("unexpected status %v for %v", status, A)
		}
		// V·Aᵀ == diag(d)·V
		row0 := Vec{A.M00*eig.V0.X + A.M10*eig.V0.Y, A.M01*eig.V0.X + A.M11*eig.V0.Y}
		row1 := Vec{A.M00*eig.V1.X + A.M10*eig.V1.Y, A.M01*eig.V1.X + A.M11*eig.V1.Y}
		want0 := eig.V0.Scale(eig.D.X)
		want1 := eig.V1.Scale(eig.D.Y)
		if !closeVec(row0, want0, 1e-6) || !closeVec(row1, want1, 1e-6) {
			t.Fatalf("eigendecomposition mismatch for %v: eig=%+v", A, eig)
		}
	}
}

func TestLDLT3RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 100; i++ {
		// Symmetric positive definite 3x3 from a random B·Bᵀ + I.
		var B Mat3
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				B[i][j] = r.Float64()*2 - 1
			}
		}
		var A Mat3
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				s := 0.0
				for k := 0; k < 3; k++ {
					s += B[i][k] * B[j][k]
				}
				A[i][j] = s
			}
			A[i][i] += 1
		}
		fact := DecomposeLDLT3(A)
		if fact.Status() != Ok {
			t.Fatalf("unexpected status %v", fact.Status())
		}
		x := Vec3{r.Float64(), r.Float64(), r.Float64()}
		b := A.MulVec(x)
		got := fact.Solve(b)
		if math.Abs(got.X-x.X) > 1e-6 || math.Abs(got.Y-x.Y) > 1e-6 || math.Abs(got.Z-x.Z) > 1e-6 {
			t.Fatalf("solve mismatch: got %v want %v", got, x)
		}
	}
}

func TestNearSingularDetection(t *testing.T) {
	if DecomposeChol2(Mat2{1e-30, 0, 0, 1}).Status() != NearSingular {
		t.Fatal("expected near_singular")
	}
	if DecomposeChol2(Mat2{-1, 0, 0, 1}).Status() != NotPositiveDefinite {
		t.Fatal("expected not_positive_definite")
	}
	if DecomposeLU2(Mat2{0, 1, 1, 0}).Status() != NearSingular {
		t.Fatal("expected near_singular (zero pivot)")
	}
}
