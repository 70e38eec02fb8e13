// Package sim assembles the reference hydrostatic-pool and dam-break
// scenarios into a runnable simulation: particle generation, the
// integrator configuration, and the time loop. Grounded on
// sph_main (original TitSolver source/titwcsph/wcsph.cpp) for the
// scenario's constants, particle layout, and loop structure, and on
// gofem's fem.Main (fem/main.go) for the Main/Run/onexit driver idiom.
package sim

import (
	"math"
	"time"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gosph/ana"
	"github.com/cpmech/gosph/bc"
	"github.com/cpmech/gosph/density"
	"github.com/cpmech/gosph/eos"
	"github.com/cpmech/gosph/force"
	"github.com/cpmech/gosph/geom"
	"github.com/cpmech/gosph/integrator"
	"github.com/cpmech/gosph/kernel"
	"github.com/cpmech/gosph/linalg"
	"github.com/cpmech/gosph/mesh"
	"github.com/cpmech/gosph/particle"
	"github.com/cpmech/gosph/shift"
)

// Config carries the reference scenario's physical and numerical constants.
// DefaultConfig reproduces sph_main's values exactly.
type Config struct {
	H, L float64 // water column height and length

	PoolWidth, PoolHeight float64 // pool domain extents
	Dr                    float64 // reference particle spacing
	NumFixedLayers        int     // fixed-particle wall thickness, in layers of Dr

	G, Rho0, Cs0 float64 // gravity, reference density, reference sound speed
	H0, M0       float64 // smoothing length and particle mass (both uniform)

	ShiftR, ShiftMa, CFL float64 // particle-shifting coefficients and Courant number
}

// DefaultConfig returns the reference scenario's constants (sph_main,
// H=0.6, dr=H/80, 16 fixed layers, g=9.81).
func DefaultConfig() Config {
	const h = 0.6
	const l = 2 * h
	const dr = h / 80.0
	const g = 9.81
	const rho0 = 1000.0
	cs0 := 20 * math.Sqrt(g*h)
	return Config{
		H: h, L: l,
		PoolWidth: 5.366 * h, PoolHeight: 2.5 * h,
		Dr: dr, NumFixedLayers: 16,
		G: g, Rho0: rho0, Cs0: cs0,
		H0: 2 * dr, M0: rho0 * dr * dr,
		ShiftR: 0.2, ShiftMa: 0.1, CFL: 0.8,
	}
}

// TimeStep returns the reference scenario's fixed step size,
// min(CFL*h0/cs0, 0.25*sqrt(h0/g)).
func (c Config) TimeStep() float64 {
	return math.Min(c.CFL*c.H0/c.Cs0, 0.25*math.Sqrt(c.H0/c.G))
}

// WallThickness is the fixed-particle boundary layer's total thickness.
func (c Config) WallThickness() float64 {
	return c.Dr * float64(c.NumFixedLayers)
}

// ShiftConfig returns the shift package's configuration for this scenario.
func (c Config) ShiftConfig() shift.Config {
	return shift.Config{R: c.ShiftR, Ma: c.ShiftMa, CFL: c.CFL}
}

// BuildPool constructs the reference particle set: a U-shaped fixed-particle
// wall (bottom, left, right, open top) surrounding a fluid column of width
// L and height H, both laid out on a uniform dr-spaced grid per sph_main.
// The polygon-offset wall construction sph_main uses to trace the pool
// boundary is replaced here with the uniform grid it fills in, aligned to
// the same dr lattice as the fluid particles; BuildPool produces the same
// wall thickness and fluid/fixed split without a polygon-geometry library.
// Density is initialised from the closed-form hydrostatic series.
func BuildPool(cfg Config, track particle.Track) (*particle.Store, geom.BBox) {
	store := particle.NewStore(track)
	store.H = cfg.H0
	store.M = cfg.M0

	wall := cfg.WallThickness()

	nx := int(math.Round((cfg.PoolWidth + 2*wall) / cfg.Dr))
	ny := int(math.Round((cfg.PoolHeight + wall) / cfg.Dr))
	numFixed := 0
	for i := 0; i < nx; i++ {
		x := -wall + cfg.Dr*(float64(i)+0.5)
		for j := 0; j < ny; j++ {
			y := -wall + cfg.Dr*(float64(j)+0.5)
			if x >= 0 && x <= cfg.PoolWidth && y >= 0 {
				continue // inside the open pool interior, not wall material
			}
			a := store.Append(particle.Fixed)
			store.R[a] = linalg.NewVec(x, y)
			store.Rho[a] = cfg.Rho0
			numFixed++
		}
	}
	io.Pf("> sim: generated %d fixed particles\n", numFixed)

	waterM := int(math.Round(cfg.L / cfg.Dr))
	waterN := int(math.Round(cfg.H / cfg.Dr))
	column := ana.HydrostaticColumn{Rho0: cfg.Rho0, G: cfg.G, H: cfg.H, L: cfg.L}
	numFluid := 0
	for i := 0; i < waterM; i++ {
		x := cfg.Dr * (float64(i) + 0.5)
		for j := 0; j < waterN; j++ {
			y := cfg.Dr * (float64(j) + 0.5)
			a := store.Append(particle.Fluid)
			store.R[a] = linalg.NewVec(x, y)
			store.Rho[a] = column.Density(x, y, cfg.Cs0)
			numFluid++
		}
	}
	io.Pf("> sim: generated %d fluid particles\n", numFluid)

	// The clamp/mirror domain is the pool box itself, not the wall-extended
	// box: fixed particles must sit outside it so bc.applyOne's ghost-point
	// reflection is non-trivial (original TitSolver
	// source/tit/sph/particle_mesh.hpp's Domain = (0,0)-(POOL_WIDTH,POOL_HEIGHT)).
	domain := geom.NewBBoxFromPoints(
		linalg.NewVec(0, 0),
		linalg.NewVec(cfg.PoolWidth, cfg.PoolHeight),
	)
	return store, domain
}

// Equations selects which momentum-equation closures the reference
// scenario wires in: an inviscid flow stabilised by δ-SPH artificial
// viscosity, no energy equation, and particle shifting (sph_main's
// Riemann=false branch).
type Equations struct {
	EOS       eos.LinearTait
	Viscosity force.Viscosity
	Gravity   linalg.Vec
}

// DefaultEquations builds the reference scenario's closures from cfg.
func DefaultEquations(cfg Config) Equations {
	var o eos.LinearTait
	o.Rho0, o.Cs0 = cfg.Rho0, cfg.Cs0
	return Equations{
		EOS:       o,
		Viscosity: force.DefaultDeltaSPH(cfg.H0, cfg.Cs0, cfg.Rho0),
		Gravity:   linalg.NewVec(0, -cfg.G),
	}
}

// Main drives a single run of the reference scenario: the particle store,
// mesh, and SSPRK(3,3) integrator, wired from Config, plus the time loop
// and periodic persistence. Grounded on gofem's fem.Main (fem/main.go).
type Main struct {
	Cfg   Config
	Store *particle.Store
	Mesh  *mesh.Mesh
	It    *integrator.Integrator

	domain  geom.BBox
	verbose bool
}

// NewMain builds a Main ready to Run the reference scenario. track selects
// which optional field groups the store carries (TrackShift|TrackRenorm is
// required for the shifted, non-Riemann equation set DefaultEquations
// configures).
func NewMain(cfg Config, track particle.Track, verbose bool) *Main {
	store, domain := BuildPool(cfg, track)
	eqs := DefaultEquations(cfg)

	k := kernel.Default()
	icfg := integrator.Config{
		Kernel:  k,
		Domain:  domain,
		BC:      bc.Config{Rho0: cfg.Rho0, Cs0: cfg.Cs0, Gravity: eqs.Gravity},
		Density: density.Config{Cs0: cfg.Cs0, Delta: 0.1},
		Force: force.Config{
			Gravity:   eqs.Gravity,
			EOS:       eqs.EOS,
			Viscosity: eqs.Viscosity,
			Heat:      force.Zero{},
		},
		Shift:   cfg.ShiftConfig(),
		Verbose: verbose,
	}
	it := integrator.New(icfg)

	msh := mesh.NewMesh()
	positions := make([]linalg.Vec, store.Size())
	copy(positions, store.R)
	fluidLo, fluidHi := store.Fluid()
	fixedLo, fixedHi := store.Fixed()
	msh.Update(positions, fluidLo, fluidHi, fixedLo, fixedHi, domain, kernel.Radius(k, cfg.H0), 1)

	return &Main{Cfg: cfg, Store: store, Mesh: msh, It: it, domain: domain, verbose: verbose}
}

// Run advances the simulation with the reference scenario's fixed time
// step until endTime(t*sqrt(g/H)) reports the dimensionless horizon has
// been reached, writing a snapshot to sink every writeEvery steps (and a
// final one at the end). Grounded on sph_main's time loop.
func (m *Main) Run(endTime func(dimensionlessTime float64) bool, writeEvery int, sink particle.Sink) {
	cputime := time.Now()
	dt := m.Cfg.TimeStep()
	scale := math.Sqrt(m.Cfg.G / m.Cfg.H)

	t := 0.0
	if sink != nil {
		m.Store.Write(0, sink)
	}
	for n := 0; ; n++ {
		dimless := t * scale
		if m.verbose {
			io.Pf("> sim: step %d, t*sqrt(g/H)=%v\n", n, dimless)
		}

		m.It.Step(dt, m.Mesh, m.Store)

		end := endTime(dimless)
		if sink != nil && ((writeEvery > 0 && n%writeEvery == 0 && n != 0) || end) {
			m.Store.Write(dimless, sink)
		}
		if end {
			break
		}
		t += dt
	}
	if m.verbose {
		io.Pf("> sim: done in %v\n", time.Since(cputime))
	}
}
