package particle

import "github.com/cpmech/gosph/linalg"

// Sink is the persistence boundary a Store writes itself through. It
// mirrors the reference engine's DataSeriesView write target (original
// TitSolver source/tit/sph/particle_array.hpp ParticleArray::write) without
// committing to a storage format: the concrete Sink, supplied by the caller
// of sim's Main.Run, decides whether a time step lands on disk, in memory,
// or over the wire. The sim package has no Sink implementation of its own.
type Sink interface {
	// TimeStep begins a new time step at the given simulation time.
	TimeStep(time float64)
	// Uniform records an array-wide scalar field.
	Uniform(name string, value float64)
	// Scalar records a per-particle scalar field.
	Scalar(name string, values []float64)
	// Vector records a per-particle 2-vector field.
	Vector(name string, values []linalg.Vec)
}

// Write emits the store's fields for the given time step into sink: the
// always-on columns and every tracked group, except the renormalisation
// matrix L, which is not written.
func (s *Store) Write(time float64, sink Sink) {
	sink.TimeStep(time)
	sink.Uniform("h", s.H)
	sink.Uniform("m", s.M)
	sink.Vector("r", s.R)
	sink.Vector("v", s.V)
	sink.Vector("dv_dt", s.DVDt)
	sink.Scalar("rho", s.Rho)
	sink.Scalar("drho_dt", s.DRhoDt)
	sink.Scalar("p", s.P)
	sink.Scalar("cs", s.Cs)
	if s.track.Has(TrackRenorm) {
		sink.Vector("grad_rho", s.gradRho)
		sink.Scalar("C", s.c)
		sink.Vector("N", s.n)
	}
	if s.track.Has(TrackVelocityGrad) {
		sink.Scalar("div_v", s.divV)
		sink.Scalar("curl_v", s.curlV)
	}
	if s.track.Has(TrackEnergy) {
		sink.Scalar("u", s.u)
		sink.Scalar("du_dt", s.duDt)
	}
	if s.track.Has(TrackShift) {
		sink.Vector("dr", s.dr)
	}
	if s.track.Has(TrackFreeSurface) {
		fs := make([]float64, len(s.fs))
		for i, v := range s.fs {
			if v {
				fs[i] = 1
			}
		}
		sink.Scalar("FS", fs)
	}
	if s.track.Has(TrackAlpha) {
		sink.Scalar("alpha", s.alpha)
		sink.Scalar("dalpha_dt", s.dAlphaDt)
	}
}
