package colorspace

import "math"

// reference white D65, matching the GPU path bit-for-bit.
const (
	whiteX = 0.95047
	whiteY = 1.00000
	whiteZ = 1.08883

	labKappa = 903.3
	labEps   = 6.0 / 29.0 // t > labEps^3 switches f(t) branch
)

// Lab is the CIE L*a*b* representation of a color, used only for the
// ΔE (CIE76) distance metric.
type Lab struct{ L, A, B float64 }

func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Linear converts gamma-encoded sRGB to linear-light sRGB via the
// standard piecewise gamma.
func (c RgbColor) Linear() [3]float64 {
	return [3]float64{srgbToLinear(c.R), srgbToLinear(c.G), srgbToLinear(c.B)}
}

// xyzFromLinear converts linear sRGB to CIE XYZ under the D65 illuminant.
func xyzFromLinear(lin [3]float64) [3]float64 {
	r, g, b := lin[0], lin[1], lin[2]
	return [3]float64{
		0.4124564*r + 0.3575761*g + 0.1804375*b,
		0.2126729*r + 0.7151522*g + 0.0721750*b,
		0.0193339*r + 0.1191920*g + 0.9503041*b,
	}
}

func labF(t float64) float64 {
	if t > labEps*labEps*labEps {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// Lab converts the color to CIE L*a*b* via sRGB -> linear -> XYZ -> Lab.
func (c RgbColor) Lab() Lab {
	xyz := xyzFromLinear(c.Linear())
	fx := labF(xyz[0] / whiteX)
	fy := labF(xyz[1] / whiteY)
	fz := labF(xyz[2] / whiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// DeltaE is the CIE76 Euclidean distance between two colors' Lab
// representations.
func DeltaE(a, b RgbColor) float64 {
	la, lb := a.Lab(), b.Lab()
	dl, da, db := la.L-lb.L, la.A-lb.A, la.B-lb.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// RgbEuclidean is the straight L2 distance on [0,1]^3 components.
func RgbEuclidean(a, b RgbColor) float64 {
	dr, dg, db := a.R-b.R, a.G-b.G, a.B-b.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
