// Package eos implements the closures relating particle density to
// pressure and sound speed, grounded on the reference engine's equation-
// of-state hierarchy (original TitSolver
// source/tit/sph/equation_of_state.hpp) and constructed the way gofem's
// material models are (Init from a fun.Params list, GetPrms to recover an
// example or the current parameter set -- see mdl/fluid/fluid.go).
package eos

import "github.com/cpmech/gosl/fun"

// EOS relates a particle's density to its pressure and sound speed. Most
// fluid equations of state fit this shape; IdealGas additionally needs the
// particle's internal energy and implements EnergyEOS instead.
type EOS interface {
	// Pressure returns p(ρ).
	Pressure(rho float64) float64
	// SoundSpeed returns c(ρ,p).
	SoundSpeed(rho, p float64) float64
	// GetPrms returns the current parameters, or a representative example
	// set if example is true, mirroring mdl/fluid/fluid.go's GetPrms.
	GetPrms(example bool) fun.Params
}

// EnergyEOS relates a particle's density and internal energy to its
// pressure and sound speed (the ideal-gas family).
type EnergyEOS interface {
	PressureEnergy(rho, u float64) float64
	SoundSpeedEnergy(u float64) float64
	GetPrms(example bool) fun.Params
}
