package force

import (
	"github.com/cpmech/gosph/linalg"
	"github.com/cpmech/gosph/particle"
)

// Viscosity computes the artificial-viscosity velocity term Π_ab for an
// ordered pair (a,b), given their separation rab = r_a - r_b and relative
// velocity vab = v_a - v_b. Grounded on the viscosity plug-point shape of
// the reference engine (original TitSolver source/tit/sph/viscosity.hpp),
// generalised from a per-pair functor to this interface.
type Viscosity interface {
	Term(store *particle.Store, a, b int, rab, vab linalg.Vec) float64
}

// NoViscosity disables the artificial-viscosity term entirely. Grounded on
// NoViscosity (original TitSolver source/tit/sph/viscosity.hpp).
type NoViscosity struct{}

// Term always returns zero.
func (NoViscosity) Term(*particle.Store, int, int, linalg.Vec, linalg.Vec) float64 { return 0 }

// DeltaSPH is the δ-SPH artificial-viscosity term used by the reference
// scenarios:
//
//	Π_ab = -α·h̄·cs0·ρ0·dot(rab,vab) / (ρ_a·ρ_b·‖rab‖²)
//
// Grounded on spec.md §4.6, which generalises the reference engine's
// LaplacianViscosity shape (original TitSolver
// source/tit/sph/viscosity.hpp) to the coefficients used in the
// hydrostatic-pool/dam-break scenarios.
type DeltaSPH struct {
	Alpha float64 // artificial-viscosity coefficient (default 0.05)
	H     float64 // uniform smoothing length
	Cs0   float64 // reference sound speed
	Rho0  float64 // reference density
}

// DefaultDeltaSPH returns the reference scenario's coefficient (α=0.05).
func DefaultDeltaSPH(h, cs0, rho0 float64) DeltaSPH {
	return DeltaSPH{Alpha: 0.05, H: h, Cs0: cs0, Rho0: rho0}
}

// Term evaluates Π_ab.
func (v DeltaSPH) Term(store *particle.Store, a, b int, rab, vab linalg.Vec) float64 {
	r2 := rab.NormSq()
	if isTiny(r2) {
		return 0
	}
	return -v.Alpha * v.H * v.Cs0 * v.Rho0 * rab.Dot(vab) / (store.Rho[a] * store.Rho[b] * r2)
}
