package trace

import (
	"math"

	"github.com/fogleman/pt/pt"
)

// Geometrical optics on unit vectors. The normal n may face either way; it is flipped to
// face against the incident direction d where that matters.

func facing(d, n pt.Vector) (pt.Vector, float64) {
	cosI := -n.Dot(d)
	if cosI < 0 {
		return n.Negate(), -cosI
	}
	return n, cosI
}

// Reflect mirrors the incident direction d about the normal n.
func Reflect(d, n pt.Vector) pt.Vector {
	r := d.Sub(n.MulScalar(2 * n.Dot(d))).Normalize()
	verifyReflectionLaw(d, n, r)
	return r
}

// IsTotalInternalReflection reports whether a ray travelling along d from a medium of index
// n1 into a medium of index n2 cannot be refracted.
func IsTotalInternalReflection(d, n pt.Vector, n1, n2 float64) bool {
	_, cosI := facing(d, n)
	eta := n1 / n2
	sinT2 := eta * eta * (1 - cosI*cosI)
	return sinT2 > 1
}

// Refract bends d through the interface with normal n following Snell's law.
//
// The caller must rule out total internal reflection first.
func Refract(d, n pt.Vector, n1, n2 float64) pt.Vector {
	n, cosI := facing(d, n)
	eta := n1 / n2
	sinT2 := eta * eta * (1 - cosI*cosI)
	if sinT2 > 1 {
		panic("Code bug: refraction under total internal reflection")
	}
	cosT := math.Sqrt(1 - sinT2)
	t := d.MulScalar(eta).Add(n.MulScalar(eta*cosI - cosT)).Normalize()
	verifySnellLaw(d, n, t, n1, n2)
	return t
}
