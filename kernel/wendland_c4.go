package kernel

// WendlandC4 is the sixth-order Wendland kernel (C⁴ smoothness), original
// TitSolver source/tit/sph/kernel.hpp SixthOrderWendlandKernel.
type WendlandC4 struct{}

func (WendlandC4) Name() string        { return "wendland_c4" }
func (WendlandC4) unitRadius() float64 { return 2 }
func (WendlandC4) weight2D() float64   { return 9.0 / (4.0 * piVal) }

func (WendlandC4) unitValue(q float64) float64 {
	if q >= 2 {
		return 0
	}
	u := 1 - 0.5*q
	g := 35.0/12.0*pow2(q) + 3*q + 1
	return pow6(u) * g
}

func (WendlandC4) unitDeriv(q float64) float64 {
	if q >= 2 {
		return 0
	}
	u := 1 - 0.5*q
	return -(7.0 / 3.0) * q * (5*q + 2) * pow5(u)
}
