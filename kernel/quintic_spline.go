package kernel

// QuinticSpline is the quintic B-spline, M6 (original TitSolver
// source/tit/sph/kernel.hpp QuinticSplineKernel).
type QuinticSpline struct{}

func (QuinticSpline) Name() string        { return "quintic_spline" }
func (QuinticSpline) unitRadius() float64 { return 3 }
func (QuinticSpline) weight2D() float64   { return 7.0 / (478.0 * piVal) }

func (QuinticSpline) unitValue(q float64) float64 {
	switch {
	case q < 1:
		return pow5(3-q) - 6*pow5(2-q) + 15*pow5(1-q)
	case q < 2:
		return pow5(3-q) - 6*pow5(2-q)
	case q < 3:
		return pow5(3 - q)
	default:
		return 0
	}
}

func (QuinticSpline) unitDeriv(q float64) float64 {
	switch {
	case q < 1:
		return -5*pow4(3-q) + 30*pow4(2-q) - 75*pow4(1-q)
	case q < 2:
		return -5*pow4(3-q) + 30*pow4(2-q)
	case q < 3:
		return -5 * pow4(3-q)
	default:
		return 0
	}
}
