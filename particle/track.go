package particle

// Track is a bitmask selecting which optional varying-field groups a Store
// carries. The reference engine resolves this at compile time from the set
// of equations in play (required_fields - modified_fields, per
// particle_array.hpp); Go has no equivalent compile-time field-set algebra,
// so Store.Track records the choice made at construction and every accessor
// for an optional group checks it, panicking (a configuration error, caught
// at startup, not mid-simulation) if the group was never requested.
type Track uint32

const (
	// TrackRenorm carries the density-renormalisation fields: the Shepard
	// concentration C, the free-surface normal N, and the 2x2 renormalisation
	// matrix L (spec.md §4.5).
	TrackRenorm Track = 1 << iota
	// TrackVelocityGrad carries the velocity-gradient invariants div(v) and
	// curl(v), used by some viscosity and shifting formulations.
	TrackVelocityGrad
	// TrackEnergy carries the internal energy u and its rate du/dt, enabled
	// only when the energy equation is active.
	TrackEnergy
	// TrackShift carries the particle-shifting displacement field dr.
	TrackShift
	// TrackFreeSurface carries the boolean free-surface classification FS.
	TrackFreeSurface
	// TrackAlpha carries a per-particle artificial-viscosity switch alpha
	// and its rate dalpha/dt, integrated alongside velocity and energy by
	// the time integrator whenever the store tracks it. Neither reference
	// scenario's closures use it, and no closure in this module writes
	// dalpha/dt.
	TrackAlpha
)

// Has reports whether every bit in want is set in t.
func (t Track) Has(want Track) bool { return t&want == want }
