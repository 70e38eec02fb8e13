// Package bc reconstructs fixed (boundary) particle state from their
// neighboring fluid particles each step: a local moving-least-squares fit
// when enough neighbors support it, falling back to a Shepard (constant)
// average, and finally to a resting reference state. Grounded on
// apply_bcs (original TitSolver source/tit/sph/bcs.hpp); the reference
// engine hard-codes rho0/cs0/gravity as constexpr literals inside the
// function, noted there as "a temporary implementation" -- here they come
// from Config instead.
package bc

import (
	"github.com/cpmech/gosph/geom"
	"github.com/cpmech/gosph/kernel"
	"github.com/cpmech/gosph/linalg"
	"github.com/cpmech/gosph/mesh"
	"github.com/cpmech/gosph/particle"
)

// Config carries the reference state the boundary reconstruction falls
// back to, and the hydrostatic correction it applies.
type Config struct {
	Rho0    float64     // reference (rest) density
	Cs0     float64     // reference sound speed
	Gravity linalg.Vec  // gravitational acceleration
}

// Apply reconstructs every fixed particle's density, velocity, and (when
// tracked) internal energy from its fluid neighbors.
func Apply(k kernel.Kernel, msh *mesh.Mesh, store *particle.Store, domain geom.BBox, cfg Config) {
	withEnergy := store.Track().Has(particle.TrackEnergy)
	lo, hi := store.Fixed()
	for b := lo; b < hi; b++ {
		applyOne(k, msh, store, domain, cfg, b, withEnergy)
	}
}

func applyOne(k kernel.Kernel, msh *mesh.Mesh, store *particle.Store, domain geom.BBox,
	cfg Config, b int, withEnergy bool) {
	searchPoint := store.R[b]
	clippedPoint := domain.Clamp(searchPoint)
	rGhost := clippedPoint.Scale(2).Sub(searchPoint)
	toBoundary := searchPoint.Sub(clippedPoint)
	sn := safeNormalize(toBoundary)
	sd := 2 * toBoundary.Norm()
	hGhost := mesh.RadiusScale * store.H

	neighbors := msh.FixedInterp(b)

	var s float64
	var m linalg.Mat3
	for _, a := range neighbors {
		rDelta := rGhost.Sub(store.R[a])
		bDelta := linalg.BasisFromDelta(rDelta)
		wDelta := kernel.W(k, rDelta, hGhost)
		weight := wDelta * store.M / store.Rho[a]
		s += weight
		m = m.Add(linalg.Outer3(bDelta, bDelta.Scale(weight)))
	}

	var rho, u float64
	var v linalg.Vec

	fact := linalg.DecomposeLDLT3(m)
	switch {
	case fact.Status() == linalg.Ok:
		e := fact.Solve(linalg.Vec3{X: 1})
		for _, a := range neighbors {
			rDelta := rGhost.Sub(store.R[a])
			bDelta := linalg.BasisFromDelta(rDelta)
			wDelta := e.Dot(bDelta) * kernel.W(k, rDelta, hGhost)
			rho += store.M * wDelta
			v = v.Add(store.V[a].Scale(store.M / store.Rho[a] * wDelta))
			if withEnergy {
				u += store.M / store.Rho[a] * store.U()[a] * wDelta
			}
		}
	case !isTiny(s):
		e := 1 / s
		for _, a := range neighbors {
			rDelta := rGhost.Sub(store.R[a])
			wDelta := e * kernel.W(k, rDelta, hGhost)
			rho += store.M * wDelta
			v = v.Add(store.V[a].Scale(store.M / store.Rho[a] * wDelta))
			if withEnergy {
				u += store.M / store.Rho[a] * store.U()[a] * wDelta
			}
		}
	default:
		store.Rho[b] = cfg.Rho0
		store.V[b] = linalg.Vec{}
		if withEnergy {
			store.U()[b] = 0
		}
		return
	}

	// Hydrostatic correction: drho/dn = rho0/cs0^2 * dot(g,n).
	rho += sd * cfg.Rho0 / (cfg.Cs0 * cfg.Cs0) * cfg.Gravity.Dot(sn)
	store.Rho[b] = rho
	if withEnergy {
		store.U()[b] = u
	}

	// Slip-wall reflection: keep the tangential component of velocity and
	// reverse the normal one.
	vn := sn.Scale(v.Dot(sn))
	vt := v.Sub(vn)
	store.V[b] = vt.Sub(vn)
}

func isTiny(x float64) bool {
	const tiny = 1e-14
	return x > -tiny && x < tiny
}

// safeNormalize returns the unit vector along v, or the zero vector if v is
// (numerically) zero -- a fixed particle sitting exactly on the domain
// boundary has no well-defined outward normal, and the reconstruction
// simply skips the hydrostatic correction for it rather than panicking.
func safeNormalize(v linalg.Vec) linalg.Vec {
	n := v.Norm()
	if isTiny(n) {
		return linalg.Vec{}
	}
	return v.Scale(1 / n)
}
