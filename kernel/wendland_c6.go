package kernel

// WendlandC6 is the eighth-order Wendland kernel (C⁶ smoothness), original
// TitSolver source/tit/sph/kernel.hpp EighthOrderWendlandKernel.
type WendlandC6 struct{}

func (WendlandC6) Name() string        { return "wendland_c6" }
func (WendlandC6) unitRadius() float64 { return 2 }
func (WendlandC6) weight2D() float64   { return 39.0 / (14.0 * piVal) }

func (WendlandC6) unitValue(q float64) float64 {
	if q >= 2 {
		return 0
	}
	u := 1 - 0.5*q
	g := 4*pow3(q) + 25.0/4.0*pow2(q) + 4*q + 1
	return pow8(u) * g
}

func (WendlandC6) unitDeriv(q float64) float64 {
	if q >= 2 {
		return 0
	}
	u := 1 - 0.5*q
	return -(11.0 / 4.0) * q * (8*pow2(q) + 7*q + 2) * pow7(u)
}
