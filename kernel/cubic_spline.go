package kernel

// CubicSpline is the classical cubic B-spline, M4 (original TitSolver
// source/tit/sph/kernel.hpp CubicSplineKernel).
type CubicSpline struct{}

func (CubicSpline) Name() string        { return "cubic_spline" }
func (CubicSpline) unitRadius() float64 { return 2 }
func (CubicSpline) weight2D() float64   { return 10.0 / (7.0 * piVal) }

func (CubicSpline) unitValue(q float64) float64 {
	switch {
	case q < 1:
		return 1 - 1.5*pow2(q) + 0.75*pow3(q)
	case q < 2:
		return 0.25 * pow3(2-q)
	default:
		return 0
	}
}

func (CubicSpline) unitDeriv(q float64) float64 {
	switch {
	case q < 1:
		return -3*q + 2.25*pow2(q)
	case q < 2:
		return -0.75 * pow2(2-q)
	default:
		return 0
	}
}
