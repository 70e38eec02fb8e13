package eos

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Tait is the full (nonlinear) Tait/Cole equation of state:
// p = p0 + (ρ0·cs0²/γ)·((ρ/ρ0)^γ - 1). Grounded on
// WeaklyCompressibleFluidEquationOfState (original TitSolver
// source/tit/sph/equation_of_state.hpp).
type Tait struct {
	Cs0   float64
	Rho0  float64
	P0    float64
	Gamma float64
}

// Init initialises the model from a parameter list; gamma defaults to 7
// (the standard weakly-compressible exponent) if omitted. An explicit gamma
// must be greater than 1, or Init panics.
func (o *Tait) Init(prms fun.Params) {
	o.Gamma = 7
	for _, p := range prms {
		switch p.N {
		case "cs0":
			o.Cs0 = p.V
		case "rho0":
			o.Rho0 = p.V
		case "p0":
			o.P0 = p.V
		case "gamma":
			o.Gamma = p.V
		}
	}
	if o.Cs0 <= 0 {
		chk.Panic("eos: Tait reference sound speed must be positive, got %v", o.Cs0)
	}
	if o.Rho0 <= 0 {
		chk.Panic("eos: Tait reference density must be positive, got %v", o.Rho0)
	}
	if o.Gamma <= 1 {
		chk.Panic("eos: Tait adiabatic index must be greater than 1, got %v", o.Gamma)
	}
}

// GetPrms returns the current or an example parameter set.
func (o Tait) GetPrms(example bool) fun.Params {
	if example {
		return fun.Params{
			&fun.P{N: "cs0", V: 20 * math.Sqrt(9.81*0.6)},
			&fun.P{N: "rho0", V: 1000},
			&fun.P{N: "p0", V: 0},
			&fun.P{N: "gamma", V: 7},
		}
	}
	return fun.Params{
		&fun.P{N: "cs0", V: o.Cs0},
		&fun.P{N: "rho0", V: o.Rho0},
		&fun.P{N: "p0", V: o.P0},
		&fun.P{N: "gamma", V: o.Gamma},
	}
}

func (o Tait) p1() float64 { return o.Rho0 * o.Cs0 * o.Cs0 / o.Gamma }

// Pressure returns p(ρ).
func (o Tait) Pressure(rho float64) float64 {
	p1 := o.p1()
	return o.P0 + p1*(math.Pow(rho/o.Rho0, o.Gamma)-1)
}

// SoundSpeed returns c(ρ,p).
func (o Tait) SoundSpeed(rho, p float64) float64 {
	return math.Sqrt(o.Gamma * (p - o.P0 + o.p1()) / rho)
}
