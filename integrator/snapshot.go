package integrator

import (
	"github.com/cpmech/gosph/linalg"
	"github.com/cpmech/gosph/particle"
)

// snapshot freezes the fluid-particle state the SSPRK(3,3) stage-combination
// step blends against. Grounded on RungeKuttaIntegrator::lincomb_ (original
// TitSolver source/tit/sph/time_integrator.hpp); only the fields the scheme
// actually blends are copied -- position, velocity, density, and, when
// tracked, internal energy and the artificial-viscosity switch.
type snapshot struct {
	fluidLo, fluidHi int
	r                []linalg.Vec
	v                []linalg.Vec
	rho              []float64
	u                []float64
	alpha            []float64
}

func snapshotOf(store *particle.Store, withEnergy, withAlpha bool) snapshot {
	lo, hi := store.Fluid()
	s := snapshot{fluidLo: lo, fluidHi: hi}
	s.r = append([]linalg.Vec(nil), store.R[lo:hi]...)
	s.v = append([]linalg.Vec(nil), store.V[lo:hi]...)
	s.rho = append([]float64(nil), store.Rho[lo:hi]...)
	if withEnergy {
		s.u = append([]float64(nil), store.U()[lo:hi]...)
	}
	if withAlpha {
		s.alpha = append([]float64(nil), store.Alpha()[lo:hi]...)
	}
	return s
}

// lincomb overwrites store's fluid-particle blended fields with
// weight*snapshot + outWeight*store (the just-completed substep's result).
func (s snapshot) lincomb(weight, outWeight float64, store *particle.Store, withEnergy, withAlpha bool) {
	for i, a := 0, s.fluidLo; a < s.fluidHi; i, a = i+1, a+1 {
		store.R[a] = store.R[a].Scale(outWeight).Add(s.r[i].Scale(weight))
		store.V[a] = store.V[a].Scale(outWeight).Add(s.v[i].Scale(weight))
		store.Rho[a] = outWeight*store.Rho[a] + weight*s.rho[i]
	}
	if withEnergy {
		u := store.U()
		for i, a := 0, s.fluidLo; a < s.fluidHi; i, a = i+1, a+1 {
			u[a] = outWeight*u[a] + weight*s.u[i]
		}
	}
	if withAlpha {
		alpha := store.Alpha()
		for i, a := 0, s.fluidLo; a < s.fluidHi; i, a = i+1, a+1 {
			alpha[a] = outWeight*alpha[a] + weight*s.alpha[i]
		}
	}
}
