package force

import (
	"github.com/cpmech/gosph/linalg"
	"github.com/cpmech/gosph/particle"
)

// HeatConductivity computes the optional heat-flux term Q_ab for an
// ordered pair (a,b), used only when the store tracks internal energy.
// Grounded on the heat-conductivity plug-point (original TitSolver
// source/tit/sph/heat_conductivity.hpp).
type HeatConductivity interface {
	Term(store *particle.Store, a, b int, rab linalg.Vec) linalg.Vec
}

// Zero disables heat conduction entirely. Grounded on NoHeatConductivity
// (original TitSolver source/tit/sph/heat_conductivity.hpp); this is the
// default for both reference scenarios, which carry no energy equation.
type Zero struct{}

// Term always returns the zero vector.
func (Zero) Term(*particle.Store, int, int, linalg.Vec) linalg.Vec { return linalg.Vec{} }

// Fourier is a simple Fourier heat-conductivity model:
//
//	Q_ab = 2κ·(u_b-u_a)·rab / (ρ_a·ρ_b·‖rab‖²)
//
// Grounded on HeatConductivity (original TitSolver
// source/tit/sph/heat_conductivity.hpp), with the specific-heat-capacity
// factor folded into κ.
type Fourier struct {
	Kappa float64
}

// Term evaluates Q_ab.
func (f Fourier) Term(store *particle.Store, a, b int, rab linalg.Vec) linalg.Vec {
	r2 := rab.NormSq()
	if isTiny(r2) {
		return linalg.Vec{}
	}
	uba := store.U()[b] - store.U()[a]
	return rab.Scale(2 * f.Kappa * uba / (store.Rho[a] * store.Rho[b] * r2))
}
