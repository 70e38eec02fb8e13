// Package density implements the continuity equation: the density
// gradient, Shepard concentration, free-surface normal, and
// renormalisation fields computed over the particle adjacency, and the
// density time derivative with its δ-SPH diffusion stabilisation term.
// Grounded on FluidEquations::compute_density (original TitSolver
// source/tit/sph/fluid_equations.hpp); the continuity_equation.hpp mass
// source hook is left empty, matching the reference scenarios (no mass
// sources are defined there either).
package density

import (
	"github.com/cpmech/gosph/kernel"
	"github.com/cpmech/gosph/linalg"
	"github.com/cpmech/gosph/mesh"
	"github.com/cpmech/gosph/particle"
)

// Config carries the δ-SPH diffusion coefficient and reference sound
// speed used by the continuity equation's stabilisation term.
type Config struct {
	Cs0   float64 // reference sound speed
	Delta float64 // δ-SPH diffusion coefficient
}

// DefaultConfig returns the reference scenario's δ-SPH coefficient (0.1).
func DefaultConfig(cs0 float64) Config {
	return Config{Cs0: cs0, Delta: 0.1}
}

// Compute evaluates the continuity equation over every particle in store,
// using the adjacency built by msh's last Update.
func Compute(k kernel.Kernel, msh *mesh.Mesh, store *particle.Store, cfg Config) {
	n := store.Size()
	h := store.H

	for a := 0; a < n; a++ {
		store.DRhoDt[a] = 0
	}

	withRenorm := store.Track().Has(particle.TrackRenorm)
	if withRenorm {
		computeRenormFields(k, msh, store, h)
	}

	mesh.RunBlocksParallel(msh.Blocks(), msh.NumParts(), func(edges []mesh.Edge) {
		for _, e := range edges {
			a, b := e.A, e.B
			rab := store.R[a].Sub(store.R[b])
			vba := store.V[b].Sub(store.V[a])
			gradWab := kernel.Grad(k, rab, h)
			psi := diffusionTerm(store, cfg, h, withRenorm, a, b, rab)

			store.DRhoDt[a] -= store.M * vba.Sub(psi.Scale(1/store.Rho[b])).Dot(gradWab)
			store.DRhoDt[b] -= store.M * vba.Add(psi.Scale(1/store.Rho[a])).Dot(gradWab)
		}
	})
}

func computeRenormFields(k kernel.Kernel, msh *mesh.Mesh, store *particle.Store, h float64) {
	gradRho, c, n, l := store.GradRho(), store.C(), store.N(), store.L()
	for a := range gradRho {
		gradRho[a] = linalg.Vec{}
		c[a] = 0
		n[a] = linalg.Vec{}
		l[a] = linalg.Mat2{}
	}

	mesh.RunBlocksParallel(msh.Blocks(), msh.NumParts(), func(edges []mesh.Edge) {
		for _, e := range edges {
			a, b := e.A, e.B
			rab := store.R[a].Sub(store.R[b])
			gradWab := kernel.Grad(k, rab, h)
			wab := kernel.W(k, rab, h)
			va := store.M / store.Rho[a]
			vb := store.M / store.Rho[b]

			gradFlux := gradWab.Scale(store.Rho[b] - store.Rho[a])
			gradRho[a] = gradRho[a].Add(gradFlux.Scale(vb))
			gradRho[b] = gradRho[b].Add(gradFlux.Scale(va))

			c[a] += vb * wab
			c[b] += va * wab

			n[a] = n[a].Add(gradWab.Scale(vb))
			n[b] = n[b].Sub(gradWab.Scale(va))

			lFlux := linalg.Outer(store.R[b].Sub(store.R[a]), gradWab)
			l[a] = l[a].Add(lFlux.Scale(vb))
			l[b] = l[b].Add(lFlux.Scale(va))
		}
	})

	for a := range gradRho {
		if !isTiny(c[a]) {
			store.Rho[a] /= c[a]
		}
		if fact := linalg.DecomposeLDLT2(l[a]); fact.Status() == linalg.Ok {
			n[a] = fact.Solve(n[a])
			gradRho[a] = fact.Solve(gradRho[a])
		}
		if norm := n[a].Norm(); !isTiny(norm) {
			n[a] = n[a].Scale(1 / norm)
		} else {
			n[a] = linalg.Vec{}
		}
	}
}

// diffusionTerm returns Ψ_ab, the δ-SPH density diffusion term for the
// pair (a,b) separated by rab = r_a - r_b.
func diffusionTerm(store *particle.Store, cfg Config, h float64, withRenorm bool, a, b int, rab linalg.Vec) linalg.Vec {
	r2 := rab.NormSq()
	if isTiny(r2) {
		return linalg.Vec{}
	}
	d := 2 * (store.Rho[a] - store.Rho[b])
	if withRenorm {
		l, gradRho := store.L(), store.GradRho()
		corr := l[a].MulVec(gradRho[a]).Add(l[b].MulVec(gradRho[b]))
		d -= corr.Dot(rab)
	}
	return rab.Scale(cfg.Delta * h * cfg.Cs0 * d / r2)
}

func isTiny(x float64) bool {
	const t = 1e-14
	return x > -t && x < t
}
