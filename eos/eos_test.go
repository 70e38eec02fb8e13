package eos

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestLinearTaitAtReferenceDensityGivesBackgroundPressure(tst *testing.T) {
	var o LinearTait
	o.Init(o.GetPrms(true))
	p := o.Pressure(o.Rho0)
	chk.Scalar(tst, "p(rho0)", 1e-12, p, o.P0)
}

func TestTaitReducesToLinearNearReferenceDensity(tst *testing.T) {
	var lin LinearTait
	lin.Init(lin.GetPrms(true))
	var nl Tait
	nl.Init(nl.GetPrms(true))

	// For rho close to rho0, the nonlinear Tait curve should agree with its
	// linearisation to first order.
	drho := 1e-3
	rho := lin.Rho0 + drho
	pLin := lin.Pressure(rho)
	pNl := nl.Pressure(rho)
	if math.Abs(pLin-pNl) > 1e-3 {
		tst.Fatalf("linear/nonlinear Tait diverge near rho0: %v vs %v", pLin, pNl)
	}
}

func TestTaitSoundSpeedAtReferenceDensity(tst *testing.T) {
	var o Tait
	o.Init(o.GetPrms(true))
	p := o.Pressure(o.Rho0)
	cs := o.SoundSpeed(o.Rho0, p)
	chk.Scalar(tst, "cs(rho0)", 1e-9, cs, o.Cs0)
}

func TestIdealGasPressureAndSoundSpeed(tst *testing.T) {
	var o IdealGas
	o.Init(o.GetPrms(true))
	rho, u := 1.2, 250.0
	p := o.PressureEnergy(rho, u)
	want := (o.Gamma - 1) * rho * u
	chk.Scalar(tst, "p(rho,u)", 1e-12, p, want)
	cs := o.SoundSpeedEnergy(u)
	wantCs := math.Sqrt(o.Gamma * (o.Gamma - 1) * u)
	chk.Scalar(tst, "cs(u)", 1e-12, cs, wantCs)
}

func TestAdiabaticIdealGasMonotonic(tst *testing.T) {
	var o AdiabaticIdealGas
	o.Init(o.GetPrms(true))
	p1 := o.Pressure(1.0)
	p2 := o.Pressure(2.0)
	if p2 <= p1 {
		tst.Fatalf("expected pressure to increase with density: p(1)=%v p(2)=%v", p1, p2)
	}
}

func TestInvalidParamsPanic(tst *testing.T) {
	defer func() {
		if recover() == nil {
			tst.Fatal("expected panic on non-positive reference sound speed")
		}
	}()
	var o LinearTait
	o.Init(o.GetPrms(true))
	o.Cs0 = 0
	o.Init(o.GetPrms(false))
}
