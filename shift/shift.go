// Package shift implements particle shifting: anti-clustering
// displacements that keep the particle distribution regular, gated by a
// free-surface classification so particles near the free surface are not
// shifted into it. Grounded on FluidEquations::compute_shifts (original
// TitSolver source/tit/sph/fluid_equations.hpp).
//
// Compute requires the store to carry TrackRenorm (it reads the unit
// free-surface normal N computed by the density operator) and TrackShift
// (it writes the displacement dr); TrackFreeSurface is optional and, when
// present, receives the final boolean classification.
//
// The reference engine classifies particles by reading and writing a
// single continuous FS field inside one parallel pair loop, relying on a
// distinct-bit-pattern sentinel so a torn read can never be mistaken for
// a valid comparison. Compute instead resolves that read/write overlap
// with an explicit two-pass structure: the visibility test reads from a
// frozen snapshot taken before the loop and writes into a live array, so
// the result no longer depends on the order pairs are visited in.
package shift

import (
	"math"

	"github.com/cpmech/gosph/kernel"
	"github.com/cpmech/gosph/linalg"
	"github.com/cpmech/gosph/mesh"
	"github.com/cpmech/gosph/particle"
)

// Config carries the shifting algorithm's tunable coefficients.
type Config struct {
	R   float64 // shifting strength coefficient
	Ma  float64 // reference Mach number
	CFL float64 // Courant number, used to scale the "far from surface" threshold
}

// DefaultConfig returns the reference scenario's coefficients.
func DefaultConfig() Config {
	return Config{R: 0.2, Ma: 0.1, CFL: 0.8}
}

// fsOn marks a particle as classified exactly on the free surface; any
// other value signals some degree of distance from it.
const fsOn = math.SmallestNonzeroFloat64

// Compute classifies every particle's distance from the free surface and
// computes the anti-clustering displacement dr, storing both into store.
func Compute(k kernel.Kernel, msh *mesh.Mesh, store *particle.Store, cfg Config) {
	n := store.Size()
	h := store.H
	fsFar := 2 * cfg.CFL * cfg.Ma * h * h

	fluidLo, fluidHi := store.Fluid()
	fixedLo, fixedHi := store.Fixed()

	fs := make([]float64, n)
	dr := store.Dr()
	for a := fluidLo; a < fluidHi; a++ {
		fs[a] = fsOn
		dr[a] = linalg.Vec{}
	}
	for a := fixedLo; a < fixedHi; a++ {
		fs[a] = fsFar
	}

	classifyVisibility(msh, store, fs, fsFar, h)
	classifyNearFar(k, msh, store, fs, fsFar, fluidLo, fluidHi)
	computeDisplacements(k, msh, store, cfg, fs, fsFar, dr, h)

	if store.Track().Has(particle.TrackFreeSurface) {
		out := store.FS()
		for a := range out {
			out[a] = false
		}
		for a := fluidLo; a < fluidHi; a++ {
			out[a] = fs[a] == fsOn
		}
	}
}

// classifyVisibility demotes particles from fsOn to fsFar using Marrone's
// visibility test: a still-fsOn particle a is demoted when a neighbour b
// within 2h lies on the side opposite to N[a], inside the cone where
// (N[a]·r_ab)² >= cos(π/4)·|r_ab|²; b is tested the same way against N[b]
// with r_ab reversed.
func classifyVisibility(msh *mesh.Mesh, store *particle.Store, fs []float64, fsFar, h float64) {
	snapshot := append([]float64(nil), fs...)
	cosFov := math.Cos(math.Pi / 4)
	n := store.N()
	distThreshold := 4 * h * h

	mesh.RunBlocksParallel(msh.Blocks(), msh.NumParts(), func(edges []mesh.Edge) {
		for _, e := range edges {
			a, b := e.A, e.B
			rab := store.R[a].Sub(store.R[b])
			r2 := rab.NormSq()
			if r2 > distThreshold {
				continue
			}
			fovThreshold := cosFov * r2

			if snapshot[a] == fsOn {
				na := n[a].Dot(rab)
				if na > 0 && na*na >= fovThreshold {
					fs[a] = fsFar
				}
			}
			if snapshot[b] == fsOn {
				nb := n[b].Dot(rab)
				if nb < 0 && nb*nb >= fovThreshold {
					fs[b] = fsFar
				}
			}
		}
	})
}

// classifyNearFar refines every particle demoted to fsFar by
// classifyVisibility: particles adjacent to a fixed wall are frozen (their
// shift is effectively disabled), and particles adjacent to a still-fsOn
// particle are scaled by |N[b]·r_ab|/radius for the closest such neighbour
// b, a factor that grows with a's distance from b along b's normal.
func classifyNearFar(k kernel.Kernel, msh *mesh.Mesh, store *particle.Store, fs []float64, fsFar float64, fluidLo, fluidHi int) {
	radius := kernel.Radius(k, store.H)
	n := store.N()

	for a := fluidLo; a < fluidHi; a++ {
		if fs[a] != fsFar {
			continue
		}
		neighbors := msh.Of(a)

		nearWall := false
		for _, b := range neighbors {
			if store.TypeOf(b) == particle.Fixed {
				nearWall = true
				break
			}
		}
		if nearWall {
			fs[a] = 1e-30 * fsFar
			continue
		}

		bestB := -1
		bestDist := math.Inf(1)
		for _, b := range neighbors {
			if fs[b] != fsOn {
				continue
			}
			d := store.R[a].Sub(store.R[b]).NormSq()
			if d < bestDist {
				bestDist = d
				bestB = b
			}
		}
		if bestB >= 0 {
			rab := store.R[a].Sub(store.R[bestB])
			fs[a] *= math.Abs(n[bestB].Dot(rab)) / radius
		}
	}
}

// computeDisplacements accumulates each particle's anti-clustering
// displacement over every close pair, weighted by a kernel-ratio factor
// R·(W(r)/W(h/2))⁴, largest for coincident particles, and by the free-surface
// classification (particles inside the bulk shift fully; particles far
// from the surface but not yet fully interior shift in proportion to a
// tunable coefficient only).
func computeDisplacements(k kernel.Kernel, msh *mesh.Mesh, store *particle.Store, cfg Config, fs []float64, fsFar float64, dr []linalg.Vec, h float64) {
	ref := linalg.NewVec(h/2, 0)
	invW0 := 1 / kernel.W(k, ref, h)

	mesh.RunBlocksParallel(msh.Blocks(), msh.NumParts(), func(edges []mesh.Edge) {
		for _, e := range edges {
			a, b := e.A, e.B
			rab := store.R[a].Sub(store.R[b])
			wab := kernel.W(k, rab, h)
			gradWab := kernel.Grad(k, rab, h)
			chi := cfg.R * math.Pow(wab*invW0, 4)

			xiA, xiB := 0.0, 0.0
			if fs[a] == fsFar {
				xiA = 1
			}
			if fs[b] == fsFar {
				xiB = 1
			}

			dr[a] = dr[a].Sub(gradWab.Scale((xiA + chi) * fs[a] * store.M / store.Rho[b]))
			dr[b] = dr[b].Add(gradWab.Scale((xiB + chi) * fs[b] * store.M / store.Rho[a]))
		}
	})
}
