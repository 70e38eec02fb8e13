package eos

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// AdiabaticIdealGas is the polytropic ideal-gas closure p = κρ^γ, used when
// no energy equation is carried. Grounded on
// AdiabaticIdealGasEquationOfState (original TitSolver
// source/tit/sph/equation_of_state.hpp).
type AdiabaticIdealGas struct {
	Kappa float64
	Gamma float64
}

// Init initialises the model from a parameter list.
func (o *AdiabaticIdealGas) Init(prms fun.Params) {
	o.Kappa, o.Gamma = 1, 1.4
	for _, p := range prms {
		switch p.N {
		case "kappa":
			o.Kappa = p.V
		case "gamma":
			o.Gamma = p.V
		}
	}
	if o.Kappa <= 0 {
		chk.Panic("eos: AdiabaticIdealGas thermal coefficient must be positive, got %v", o.Kappa)
	}
	if o.Gamma <= 1 {
		chk.Panic("eos: AdiabaticIdealGas adiabatic index must be greater than 1, got %v", o.Gamma)
	}
}

// GetPrms returns the current or an example parameter set.
func (o AdiabaticIdealGas) GetPrms(example bool) fun.Params {
	if example {
		return fun.Params{
			&fun.P{N: "kappa", V: 1},
			&fun.P{N: "gamma", V: 1.4},
		}
	}
	return fun.Params{
		&fun.P{N: "kappa", V: o.Kappa},
		&fun.P{N: "gamma", V: o.Gamma},
	}
}

// Pressure returns p(ρ).
func (o AdiabaticIdealGas) Pressure(rho float64) float64 {
	return o.Kappa * math.Pow(rho, o.Gamma)
}

// SoundSpeed returns c(ρ,p).
func (o AdiabaticIdealGas) SoundSpeed(rho, p float64) float64 {
	return math.Sqrt(o.Gamma * p / rho)
}
