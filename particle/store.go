// Package particle implements the columnar particle storage that every
// other module operates over: a struct-of-arrays split into uniform
// (array-wide scalar) and varying (per-particle) fields, with fluid and
// fixed sub-ranges kept contiguous so operators can loop a type at a time
// without a branch per particle. Grounded on the reference engine's
// ParticleArray (original TitSolver source/tit/sph/particle_array.hpp);
// the field layout follows gofem's Domain struct convention of grouping
// fields under a "stage:"-style banner comment (fem/domain.go).
package particle

import (
	"slices"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gosph/linalg"
)

// Store holds every particle in the simulation, fluid and fixed together,
// contiguous by type so that Fluid() and Fixed() return plain index ranges.
type Store struct {
	track Track

	// ranges[t] is the first index of type t; ranges[numTypes] is the total
	// particle count. Fluid occupies [ranges[Fluid], ranges[Fluid+1]) and so
	// on, mirroring particle_ranges_ in the reference engine.
	ranges [numTypes + 1]int

	// uniform: array-wide constants, shared by every particle.
	H float64 // smoothing length
	M float64 // particle mass

	// varying: always present, core kinematic and thermodynamic state.
	R     []linalg.Vec // position
	V     []linalg.Vec // velocity
	DVDt  []linalg.Vec // acceleration
	Rho   []float64    // density
	DRhoDt []float64   // density rate
	P     []float64    // pressure
	Cs    []float64    // sound speed

	// varying: optional groups, present only when Track requests them.
	gradRho []linalg.Vec  // density gradient
	c       []float64     // Shepard concentration
	n       []linalg.Vec  // free-surface unit normal
	l       []linalg.Mat2 // renormalisation matrix

	divV  []float64 // velocity divergence
	curlV []float64 // velocity curl (scalar in 2-D)

	u    []float64 // internal energy
	duDt []float64 // internal energy rate

	dr []linalg.Vec // shifting displacement

	fs []bool // free-surface classification

	alpha    []float64 // artificial-viscosity switch
	dAlphaDt []float64 // artificial-viscosity switch rate
}

// NewStore creates an empty store carrying the optional field groups in
// track.
func NewStore(track Track) *Store {
	return &Store{track: track}
}

// Track returns the optional field groups this store carries.
func (s *Store) Track() Track { return s.track }

// Size returns the total particle count, fluid and fixed together.
func (s *Store) Size() int { return s.ranges[numTypes] }

// Reserve pre-allocates capacity for n particles across every varying
// column currently tracked.
func (s *Store) Reserve(n int) {
	s.R = growCap(s.R, n)
	s.V = growCap(s.V, n)
	s.DVDt = growCap(s.DVDt, n)
	s.Rho = growCap(s.Rho, n)
	s.DRhoDt = growCap(s.DRhoDt, n)
	s.P = growCap(s.P, n)
	s.Cs = growCap(s.Cs, n)
	if s.track.Has(TrackRenorm) {
		s.gradRho = growCap(s.gradRho, n)
		s.c = growCap(s.c, n)
		s.n = growCap(s.n, n)
		s.l = growCap(s.l, n)
	}
	if s.track.Has(TrackVelocityGrad) {
		s.divV = growCap(s.divV, n)
		s.curlV = growCap(s.curlV, n)
	}
	if s.track.Has(TrackEnergy) {
		s.u = growCap(s.u, n)
		s.duDt = growCap(s.duDt, n)
	}
	if s.track.Has(TrackShift) {
		s.dr = growCap(s.dr, n)
	}
	if s.track.Has(TrackFreeSurface) {
		s.fs = growCap(s.fs, n)
	}
	if s.track.Has(TrackAlpha) {
		s.alpha = growCap(s.alpha, n)
		s.dAlphaDt = growCap(s.dAlphaDt, n)
	}
}

func growCap[T any](col []T, n int) []T {
	if extra := n - cap(col); extra > 0 {
		col = slices.Grow(col, extra)
	}
	return col
}

// Append inserts a new particle of the given type, keeping the type ranges
// contiguous, and returns its index.
func (s *Store) Append(t Type) int {
	if t >= numTypes {
		chk.Panic("particle: invalid particle type %v", t)
	}
	index := s.ranges[t+1]
	for tt := t + 1; tt <= numTypes; tt++ {
		s.ranges[tt]++
	}
	s.R = insertZero(s.R, index)
	s.V = insertZero(s.V, index)
	s.DVDt = insertZero(s.DVDt, index)
	s.Rho = insertZero(s.Rho, index)
	s.DRhoDt = insertZero(s.DRhoDt, index)
	s.P = insertZero(s.P, index)
	s.Cs = insertZero(s.Cs, index)
	if s.track.Has(TrackRenorm) {
		s.gradRho = insertZero(s.gradRho, index)
		s.c = insertZero(s.c, index)
		s.n = insertZero(s.n, index)
		s.l = insertZero(s.l, index)
	}
	if s.track.Has(TrackVelocityGrad) {
		s.divV = insertZero(s.divV, index)
		s.curlV = insertZero(s.curlV, index)
	}
	if s.track.Has(TrackEnergy) {
		s.u = insertZero(s.u, index)
		s.duDt = insertZero(s.duDt, index)
	}
	if s.track.Has(TrackShift) {
		s.dr = insertZero(s.dr, index)
	}
	if s.track.Has(TrackFreeSurface) {
		s.fs = insertZero(s.fs, index)
	}
	if s.track.Has(TrackAlpha) {
		s.alpha = insertZero(s.alpha, index)
		s.dAlphaDt = insertZero(s.dAlphaDt, index)
	}
	return index
}

func insertZero[T any](col []T, index int) []T {
	var zero T
	return slices.Insert(col, index, zero)
}

// Typed returns the [lo,hi) index range occupied by particles of type t.
func (s *Store) Typed(t Type) (lo, hi int) {
	if t >= numTypes {
		chk.Panic("particle: invalid particle type %v", t)
	}
	return s.ranges[t], s.ranges[t+1]
}

// Fluid returns the index range of fluid particles.
func (s *Store) Fluid() (lo, hi int) { return s.Typed(Fluid) }

// Fixed returns the index range of fixed (boundary) particles.
func (s *Store) Fixed() (lo, hi int) { return s.Typed(Fixed) }

// TypeOf returns the type of the particle at index.
func (s *Store) TypeOf(index int) Type {
	for t := Type(0); t < numTypes; t++ {
		if index >= s.ranges[t] && index < s.ranges[t+1] {
			return t
		}
	}
	chk.Panic("particle: index %d out of range", index)
	return numTypes
}

func (s *Store) requireTrack(want Track, name string) {
	if !s.track.Has(want) {
		chk.Panic("particle: field %q was not requested via Track at construction", name)
	}
}

// GradRho returns the per-particle density gradient column.
func (s *Store) GradRho() []linalg.Vec { s.requireTrack(TrackRenorm, "grad_rho"); return s.gradRho }

// C returns the per-particle Shepard concentration column.
func (s *Store) C() []float64 { s.requireTrack(TrackRenorm, "C"); return s.c }

// N returns the per-particle free-surface normal column.
func (s *Store) N() []linalg.Vec { s.requireTrack(TrackRenorm, "N"); return s.n }

// L returns the per-particle renormalisation-matrix column.
func (s *Store) L() []linalg.Mat2 { s.requireTrack(TrackRenorm, "L"); return s.l }

// DivV returns the per-particle velocity-divergence column.
func (s *Store) DivV() []float64 { s.requireTrack(TrackVelocityGrad, "div_v"); return s.divV }

// CurlV returns the per-particle velocity-curl column.
func (s *Store) CurlV() []float64 { s.requireTrack(TrackVelocityGrad, "curl_v"); return s.curlV }

// U returns the per-particle internal-energy column.
func (s *Store) U() []float64 { s.requireTrack(TrackEnergy, "u"); return s.u }

// DUDt returns the per-particle internal-energy-rate column.
func (s *Store) DUDt() []float64 { s.requireTrack(TrackEnergy, "du_dt"); return s.duDt }

// Dr returns the per-particle shifting-displacement column.
func (s *Store) Dr() []linalg.Vec { s.requireTrack(TrackShift, "dr"); return s.dr }

// FS returns the per-particle free-surface classification column.
func (s *Store) FS() []bool { s.requireTrack(TrackFreeSurface, "FS"); return s.fs }

// Alpha returns the per-particle artificial-viscosity switch column.
func (s *Store) Alpha() []float64 { s.requireTrack(TrackAlpha, "alpha"); return s.alpha }

// DAlphaDt returns the per-particle artificial-viscosity switch rate column.
func (s *Store) DAlphaDt() []float64 { s.requireTrack(TrackAlpha, "dalpha_dt"); return s.dAlphaDt }
