package eos

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// IdealGas is the ideal-gas equation of state driven by internal energy:
// p = (γ-1)ρu, cs = sqrt(γ(γ-1)u). Grounded on
// IdealGasEquationOfState (original TitSolver
// source/tit/sph/equation_of_state.hpp); requires the energy equation to
// be active (particle.TrackEnergy), hence EnergyEOS rather than EOS.
type IdealGas struct {
	Gamma float64
}

// Init initialises gamma from a parameter list; defaults to 1.4 (air) if
// omitted. An explicit gamma must be greater than 1, or Init panics.
func (o *IdealGas) Init(prms fun.Params) {
	o.Gamma = 1.4
	for _, p := range prms {
		if p.N == "gamma" {
			o.Gamma = p.V
		}
	}
	if o.Gamma <= 1 {
		chk.Panic("eos: IdealGas adiabatic index must be greater than 1, got %v", o.Gamma)
	}
}

// GetPrms returns the current or an example parameter set.
func (o IdealGas) GetPrms(example bool) fun.Params {
	if example {
		return fun.Params{&fun.P{N: "gamma", V: 1.4}}
	}
	return fun.Params{&fun.P{N: "gamma", V: o.Gamma}}
}

// PressureEnergy returns p(ρ,u).
func (o IdealGas) PressureEnergy(rho, u float64) float64 {
	return (o.Gamma - 1) * rho * u
}

// SoundSpeedEnergy returns c(u), independent of ρ and p for an ideal gas.
func (o IdealGas) SoundSpeedEnergy(u float64) float64 {
	return math.Sqrt(o.Gamma * (o.Gamma - 1) * u)
}
