// Package ana provides closed-form reference solutions used to check the
// solver against known results, independent of any particle store.
// Grounded on gofem's ana.ColumnFluidPressure (cpmech/gofem ana/colpresfluid.go),
// which plays the same role for a finite-element fluid column.
package ana

import "math"

// HydrostaticColumn is the closed-form reference for a rectangular water
// column at rest against a side wall: the hydrostatic pressure decays to
// zero across the wall over a lengthscale of H, via the Poisson series the
// reference scenario uses to initialise particle density. Grounded on the
// density-initialisation loop in source/titwcsph/wcsph.cpp sph_main.
type HydrostaticColumn struct {
	Rho0 float64 // reference (rest) density
	G    float64 // gravitational acceleration magnitude
	H    float64 // column height
	L    float64 // column length
}

// Pressure evaluates the column's closed-form hydrostatic pressure at (x,
// y), including the correction series that makes p vanish smoothly at the
// far wall x = L instead of jumping discontinuously.
func (o HydrostaticColumn) Pressure(x, y float64) float64 {
	p := o.Rho0 * o.G * (o.H - y)
	for n := 1; n < 100; n += 2 {
		nf := float64(n)
		p -= 8 * o.Rho0 * o.G * o.H / (math.Pi * math.Pi) *
			(math.Exp(nf*math.Pi*(x-o.L)/(2*o.H)) * math.Cos(nf*math.Pi*y/(2*o.H))) / (nf * nf)
	}
	return p
}

// Density evaluates the density the reference equation of state assigns to
// Pressure(x,y), i.e. the field the driver assigns to every fluid particle
// at t=0.
func (o HydrostaticColumn) Density(x, y, cs0 float64) float64 {
	return o.Rho0 + o.Pressure(x, y)/(cs0*cs0)
}

// ReferencePressure is the simple one-term hydrostatic profile a settled
// pool is expected to match within tolerance, ignoring the near-wall
// correction that only matters while the column is still adjusting.
func (o HydrostaticColumn) ReferencePressure(y float64) float64 {
	return o.Rho0 * o.G * (o.H - y)
}

// SSPRK33Step advances y by one step of dt under dy/dt = f(y), using the
// same third-order strong-stability-preserving Runge-Kutta scheme as
// package integrator (RungeKuttaIntegrator, original TitSolver
// source/tit/sph/time_integrator.hpp), specialised to a single scalar
// state instead of a particle store.
func SSPRK33Step(dt float64, y float64, f func(float64) float64) float64 {
	y1 := y + dt*f(y)
	y2 := 0.75*y + 0.25*(y1+dt*f(y1))
	y3 := y/3 + (2.0/3.0)*(y2+dt*f(y2))
	return y3
}

// ExponentialDecayError integrates dv/dt = -v from v(0) = 1 to t = 1 with
// fixed step dt using SSPRK33Step, and returns the absolute error against
// the closed-form solution v(1) = exp(-1).
func ExponentialDecayError(dt float64) float64 {
	v := 1.0
	steps := int(math.Round(1 / dt))
	for i := 0; i < steps; i++ {
		v = SSPRK33Step(dt, v, func(y float64) float64 { return -y })
	}
	return math.Abs(v - math.Exp(-1))
}
