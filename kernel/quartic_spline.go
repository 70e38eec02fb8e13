package kernel

// QuarticSpline is the quartic B-spline, M5 (original TitSolver
// source/tit/sph/kernel.hpp QuarticSplineKernel).
type QuarticSpline struct{}

func (QuarticSpline) Name() string        { return "quartic_spline" }
func (QuarticSpline) unitRadius() float64 { return 2.5 }
func (QuarticSpline) weight2D() float64   { return 96.0 / (1199.0 * piVal) }

func (QuarticSpline) unitValue(q float64) float64 {
	switch {
	case q < 0.5:
		return pow4(2.5-q) - 5*pow4(1.5-q) + 10*pow4(0.5-q)
	case q < 1.5:
		return pow4(2.5-q) - 5*pow4(1.5-q)
	case q < 2.5:
		return pow4(2.5 - q)
	default:
		return 0
	}
}

func (QuarticSpline) unitDeriv(q float64) float64 {
	switch {
	case q < 0.5:
		return -4*pow3(2.5-q) + 20*pow3(1.5-q) - 40*pow3(0.5-q)
	case q < 1.5:
		return -4*pow3(2.5-q) + 20*pow3(1.5-q)
	case q < 2.5:
		return -4 * pow3(2.5-q)
	default:
		return 0
	}
}
