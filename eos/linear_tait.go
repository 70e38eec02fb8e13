package eos

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// LinearTait is the linearised Tait (Cole) equation of state, the default
// for the weakly-compressible fluid: p = p0 + cs0²(ρ-ρ0), with a constant
// sound speed. Grounded on
// LinearWeaklyCompressibleFluidEquationOfState (original TitSolver
// source/tit/sph/equation_of_state.hpp).
type LinearTait struct {
	Cs0  float64 // reference sound speed
	Rho0 float64 // reference density
	P0   float64 // background pressure
}

// Init initialises the model from a parameter list, gofem style.
func (o *LinearTait) Init(prms fun.Params) {
	for _, p := range prms {
		switch p.N {
		case "cs0":
			o.Cs0 = p.V
		case "rho0":
			o.Rho0 = p.V
		case "p0":
			o.P0 = p.V
		}
	}
	if o.Cs0 <= 0 {
		chk.Panic("eos: LinearTait reference sound speed must be positive, got %v", o.Cs0)
	}
	if o.Rho0 <= 0 {
		chk.Panic("eos: LinearTait reference density must be positive, got %v", o.Rho0)
	}
}

// GetPrms returns the current or an example parameter set.
func (o LinearTait) GetPrms(example bool) fun.Params {
	if example {
		return fun.Params{
			&fun.P{N: "cs0", V: 20 * math.Sqrt(9.81*0.6)},
			&fun.P{N: "rho0", V: 1000},
			&fun.P{N: "p0", V: 0},
		}
	}
	return fun.Params{
		&fun.P{N: "cs0", V: o.Cs0},
		&fun.P{N: "rho0", V: o.Rho0},
		&fun.P{N: "p0", V: o.P0},
	}
}

// Pressure returns p(ρ).
func (o LinearTait) Pressure(rho float64) float64 {
	return o.P0 + o.Cs0*o.Cs0*(rho-o.Rho0)
}

// SoundSpeed returns the (constant) sound speed.
func (o LinearTait) SoundSpeed(rho, p float64) float64 { return o.Cs0 }
