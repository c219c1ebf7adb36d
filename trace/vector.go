package trace

import (
	"github.com/fogleman/pt/pt"
)

// V is a shorthand constructor for pt.Vector
func V(X, Y, Z float64) pt.Vector {
	return pt.Vector{X: X, Y: Y, Z: Z}
}

// C is a shorthand constructor for pt.Color
func C(R, G, B float64) pt.Color {
	return pt.Color{R: R, G: G, B: B}
}

// perpendicular returns some unit vector perpendicular to a, or the zero vector if a is zero.
func perpendicular(a pt.Vector) pt.Vector {
	if a.X == 0 && a.Y == 0 {
		if a.Z == 0 {
			return pt.Vector{}
		}
		return V(0, 1, 0)
	}
	return V(-a.Y, a.X, 0).Normalize()
}

// basis returns two unit vectors u, v such that (u, v, normal) is an orthonormal frame.
func basis(normal pt.Vector) (u, v pt.Vector) {
	u = perpendicular(normal).Normalize()
	v = u.Cross(normal).Normalize()
	return u, v
}

func isBlack(c pt.Color) bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}
