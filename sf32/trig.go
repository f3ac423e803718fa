package sf32

// Transcendentals implemented purely through F's own arithmetic (range
// reduction plus a fixed-degree Taylor/Horner evaluation), mirroring the
// original's f32_sin/f32_cos/f32_atan/f32_atan2 free functions: never
// math.Sin/Cos/Atan/Atan2 on a converted hardware value.

var (
	invFact2  = FromHardware(1.0 / 2)
	invFact3  = FromHardware(1.0 / 6)
	invFact4  = FromHardware(1.0 / 24)
	invFact5  = FromHardware(1.0 / 120)
	invFact6  = FromHardware(1.0 / 720)
	invFact7  = FromHardware(1.0 / 5040)
	invFact8  = FromHardware(1.0 / 40320)
	invFact9  = FromHardware(1.0 / 362880)
	invFact10 = FromHardware(1.0 / 3628800)
	invFact11 = FromHardware(1.0 / 39916800)
	invFact12 = FromHardware(1.0 / 479001600)
	invFact13 = FromHardware(1.0 / 6227020800)

	atanC3  = FromHardware(1.0 / 3)
	atanC5  = FromHardware(1.0 / 5)
	atanC7  = FromHardware(1.0 / 7)
	atanC9  = FromHardware(1.0 / 9)
	atanC11 = FromHardware(1.0 / 11)
	atanC13 = FromHardware(1.0 / 13)
	atanC15 = FromHardware(1.0 / 15)
)

// reduceToPi brings x into (-PI, PI] via the 2*PI periodicity of sin/cos.
func reduceToPi(x F) F {
	r := x.Mod(TwoPi)
	if r.Gt(PI) {
		r = r.Sub(TwoPi)
	} else if r.Le(PI.Neg()) {
		r = r.Add(TwoPi)
	}
	return r
}

func sinSeries(x F) F {
	x2 := x.Mul(x)
	p := invFact13
	p = invFact11.Neg().Add(x2.Mul(p))
	p = invFact9.Add(x2.Mul(p))
	p = invFact7.Neg().Add(x2.Mul(p))
	p = invFact5.Add(x2.Mul(p))
	p = invFact3.Neg().Add(x2.Mul(p))
	p = One.Add(x2.Mul(p))
	return x.Mul(p)
}

func cosSeries(x F) F {
	x2 := x.Mul(x)
	p := invFact12
	p = invFact10.Neg().Add(x2.Mul(p))
	p = invFact8.Add(x2.Mul(p))
	p = invFact6.Neg().Add(x2.Mul(p))
	p = invFact4.Add(x2.Mul(p))
	p = invFact2.Neg().Add(x2.Mul(p))
	p = One.Add(x2.Mul(p))
	return p
}

// Sin returns the software-float sine of x (x in radians).
func Sin(x F) F { return sinSeries(reduceToPi(x)) }

// Cos returns the software-float cosine of x (x in radians).
func Cos(x F) F { return cosSeries(reduceToPi(x)) }

// Tan returns the software-float tangent of x.
func Tan(x F) F { return Sin(x).Div(Cos(x)) }

func atanSeries(x F) F {
	// Halve the angle first, atan(x) = 2*atan(x/(1+sqrt(1+x*x))), so the
	// series argument stays within tan(PI/8) for |x| <= 1.
	x = x.Div(One.Add(One.Add(x.Mul(x)).Sqrt()))
	x2 := x.Mul(x)
	p := atanC15.Neg()
	p = atanC13.Add(x2.Mul(p))
	p = atanC11.Neg().Add(x2.Mul(p))
	p = atanC9.Add(x2.Mul(p))
	p = atanC7.Neg().Add(x2.Mul(p))
	p = atanC5.Add(x2.Mul(p))
	p = atanC3.Neg().Add(x2.Mul(p))
	p = One.Add(x2.Mul(p))
	return Two.Mul(x.Mul(p))
}

// Atan returns the software-float arctangent of x, in (-PI/2, PI/2).
func Atan(x F) F {
	if x.Abs().Gt(One) {
		r := atanSeries(One.Div(x.Abs()))
		result := HalfPi.Sub(r)
		if x.Lt(Zero) {
			result = result.Neg()
		}
		return result
	}
	return atanSeries(x)
}

// Atan2 returns the software-float angle of the vector (x, y), in (-PI, PI].
func Atan2(y, x F) F {
	switch {
	case x.Gt(Zero):
		return Atan(y.Div(x))
	case x.Lt(Zero):
		if y.Ge(Zero) {
			return Atan(y.Div(x)).Add(PI)
		}
		return Atan(y.Div(x)).Sub(PI)
	case y.Gt(Zero):
		return HalfPi
	case y.Lt(Zero):
		return HalfPi.Neg()
	default:
		return Zero
	}
}
