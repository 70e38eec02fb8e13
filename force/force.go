// Package force implements the momentum equation: pressure gradient,
// artificial viscosity, gravity, velocity divergence/curl, and the
// optional internal-energy equation. Grounded on
// FluidEquations::compute_forces (original TitSolver
// source/tit/sph/fluid_equations.hpp).
package force

import (
	"github.com/cpmech/gosph/eos"
	"github.com/cpmech/gosph/kernel"
	"github.com/cpmech/gosph/linalg"
	"github.com/cpmech/gosph/mesh"
	"github.com/cpmech/gosph/particle"
)

// Config carries the momentum equation's source term and closure choices.
type Config struct {
	Gravity linalg.Vec // uniform body acceleration, g = (0,-g0)

	EOS       eos.EOS       // density-only equation of state
	EnergyEOS eos.EnergyEOS // optional; used instead of EOS when the store tracks energy and this is non-nil

	Viscosity Viscosity        // artificial-viscosity closure (required)
	Heat      HeatConductivity // heat-conduction closure (required; use Zero to disable)
}

// Compute evaluates the momentum (and, when tracked, energy) equation over
// every particle in store, using the adjacency built by msh's last Update.
func Compute(k kernel.Kernel, msh *mesh.Mesh, store *particle.Store, cfg Config) {
	n := store.Size()
	h := store.H
	withEnergy := store.Track().Has(particle.TrackEnergy)
	withDivCurl := store.Track().Has(particle.TrackVelocityGrad)

	for a := 0; a < n; a++ {
		store.DVDt[a] = cfg.Gravity
		if withEnergy {
			store.DUDt()[a] = cfg.Gravity.Dot(store.V[a])
		}
		store.P[a] = pressureAt(cfg, store, a, withEnergy)
		store.Cs[a] = soundSpeedAt(cfg, store, a, withEnergy, store.P[a])
	}

	if withDivCurl {
		divV, curlV := store.DivV(), store.CurlV()
		for a := range divV {
			divV[a], curlV[a] = 0, 0
		}
		mesh.RunBlocksParallel(msh.Blocks(), msh.NumParts(), func(edges []mesh.Edge) {
			for _, e := range edges {
				a, b := e.A, e.B
				rab := store.R[a].Sub(store.R[b])
				vba := store.V[b].Sub(store.V[a])
				gradWab := kernel.Grad(k, rab, h)
				va := store.M / store.Rho[a]
				vb := store.M / store.Rho[b]

				divFlux := vba.Dot(gradWab)
				divV[a] += vb * divFlux
				divV[b] += va * divFlux

				curlFlux := -vba.Cross(gradWab)
				curlV[a] += vb * curlFlux
				curlV[b] += va * curlFlux
			}
		})
	}

	mesh.RunBlocksParallel(msh.Blocks(), msh.NumParts(), func(edges []mesh.Edge) {
		for _, e := range edges {
			a, b := e.A, e.B
			rab := store.R[a].Sub(store.R[b])
			vab := store.V[a].Sub(store.V[b])
			gradWab := kernel.Grad(k, rab, h)

			pa := store.P[a] / (store.Rho[a] * store.Rho[a])
			pb := store.P[b] / (store.Rho[b] * store.Rho[b])
			pi := cfg.Viscosity.Term(store, a, b, rab, vab)

			flux := gradWab.Scale(-pa - pb + pi)
			store.DVDt[a] = store.DVDt[a].Add(flux.Scale(store.M))
			store.DVDt[b] = store.DVDt[b].Sub(flux.Scale(store.M))

			if withEnergy {
				q := cfg.Heat.Term(store, a, b, rab)
				vba := store.V[b].Sub(store.V[a])
				duDt := store.DUDt()

				termA := vba.Scale(pa - pi/2).Sub(q)
				duDt[a] -= store.M * termA.Dot(gradWab)

				termB := vba.Scale(pb - pi/2).Add(q)
				duDt[b] -= store.M * termB.Dot(gradWab)
			}
		}
	})
}

func pressureAt(cfg Config, store *particle.Store, a int, withEnergy bool) float64 {
	if withEnergy && cfg.EnergyEOS != nil {
		return cfg.EnergyEOS.PressureEnergy(store.Rho[a], store.U()[a])
	}
	return cfg.EOS.Pressure(store.Rho[a])
}

func soundSpeedAt(cfg Config, store *particle.Store, a int, withEnergy bool, p float64) float64 {
	if withEnergy && cfg.EnergyEOS != nil {
		return cfg.EnergyEOS.SoundSpeedEnergy(store.U()[a])
	}
	return cfg.EOS.SoundSpeed(store.Rho[a], p)
}

func isTiny(x float64) bool {
	const t = 1e-14
	return x > -t && x < t
}
