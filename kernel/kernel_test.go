package kernel

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"

	"github.com/cpmech/gosph/linalg"
)

var all = []Kernel{
	Gaussian{}, CubicSpline{}, QuarticSpline{}, QuinticSpline{},
	WendlandC2{}, WendlandC4{}, WendlandC6{},
}

func TestCompactSupport(tst *testing.T) {
	for _, k := range all {
		h := 0.7
		R := Radius(k, h)
		r := linalg.Vec{X: R * 1.01, Y: 0}
		if W(k, r, h) != 0 {
			tst.Fatalf("%s: expected zero weight beyond support, got %v", k.Name(), W(k, r, h))
		}
	}
}

func TestGradOddSymmetry(tst *testing.T) {
	for _, k := range all {
		h := 1.3
		r := linalg.Vec{X: 0.2, Y: -0.35}
		g1 := Grad(k, r, h)
		g2 := Grad(k, r.Neg(), h)
		chk.Scalar(tst, k.Name()+" gx", 1e-12, g1.X, -g2.X)
		chk.Scalar(tst, k.Name()+" gy", 1e-12, g1.Y, -g2.Y)
	}
}

// TestUnitIntegral estimates ∫W d²r over the support disc by Monte Carlo
// rejection sampling and checks it converges to 1.
func TestUnitIntegral(tst *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, k := range all {
		h := 1.0
		R := Radius(k, h)
		const n = 400000
		side := 2 * R
		area := side * side
		sum := 0.0
		for i := 0; i < n; i++ {
			x := (r.Float64()*2 - 1) * R
			y := (r.Float64()*2 - 1) * R
			sum += W(k, linalg.Vec{X: x, Y: y}, h)
		}
		integral := sum / n * area
		tol := 0.02
		if math.Abs(integral-1) > tol {
			tst.Fatalf("%s: integral=%v, want ~1", k.Name(), integral)
		}
	}
}

func TestWidthDerivMatchesFiniteDifference(tst *testing.T) {
	for _, k := range all {
		r := linalg.Vec{X: 0.3, Y: 0.1}
		h := 0.9
		dana := WidthDeriv(k, r, h)
		dnum, _ := num.DerivCentral(func(x float64, args ...interface{}) (res float64) {
			return W(k, r, x)
		}, h, 1e-4)
		chk.Scalar(tst, k.Name()+" dWdh", 1e-5, dana, dnum)
	}
}

func TestByNameAndDefault(tst *testing.T) {
	if Default().Name() != "wendland_c2" {
		tst.Fatalf("expected default kernel wendland_c2, got %v", Default().Name())
	}
	for _, k := range all {
		if ByName(k.Name()).Name() != k.Name() {
			tst.Fatalf("ByName round trip failed for %v", k.Name())
		}
	}
}
