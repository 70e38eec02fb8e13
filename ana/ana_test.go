package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestReferencePressureMatchesHydrostaticLaw(tst *testing.T) {
	o := HydrostaticColumn{Rho0: 1000, G: 9.81, H: 0.6, L: 1.2}
	chk.Scalar(tst, "p(y=0)", 1e-9, o.ReferencePressure(0), 1000*9.81*0.6)
	chk.Scalar(tst, "p(y=H)", 1e-9, o.ReferencePressure(0.6), 0)
}

func TestPressureConvergesToReferenceAwayFromTheFarWall(tst *testing.T) {
	o := HydrostaticColumn{Rho0: 1000, G: 9.81, H: 0.6, L: 1.2}
	// Near x=0, the far-wall correction series decays and the closed-form
	// profile should sit within 5% of the one-term reference.
	got := o.Pressure(0, 0.2)
	want := o.ReferencePressure(0.2)
	if math.Abs(got-want)/math.Abs(want) > 0.05 {
		tst.Fatalf("pressure %v not within 5%% of reference %v", got, want)
	}
}

// TestSSPRK33ConvergesAtThirdOrder is spec.md's own test plan, property 3:
// halving dt should shrink the error in v(1) by a factor of at least 7.5
// (2^3 for third-order convergence, minus slack).
func TestSSPRK33ConvergesAtThirdOrder(tst *testing.T) {
	e1 := ExponentialDecayError(0.2)
	e2 := ExponentialDecayError(0.1)
	e3 := ExponentialDecayError(0.05)

	if ratio := e1 / e2; ratio < 7.5 {
		tst.Fatalf("expected error reduction >= 7.5 from dt=0.2 to dt=0.1, got %v", ratio)
	}
	if ratio := e2 / e3; ratio < 7.5 {
		tst.Fatalf("expected error reduction >= 7.5 from dt=0.1 to dt=0.05, got %v", ratio)
	}
}
