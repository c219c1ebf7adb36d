package trace

import (
	"math"

	"github.com/fogleman/pt/pt"
)

// Plane is an infinite open surface. Its U and V axes parametrize texture lookups, one
// texture repeat per Scale scene units.
type Plane struct {
	Point  pt.Vector
	Normal pt.Vector
	U, V   pt.Vector
	Scale  float64

	primitive *Primitive
}

func MakePlane(point, normal pt.Vector, primitive *Primitive) *Plane {
	normal = normal.Normalize()
	u, v := basis(normal)
	return &Plane{Point: point, Normal: normal, U: u, V: v, Scale: 1, primitive: primitive}
}

func (p *Plane) Primitive() *Primitive { return p.primitive }

func (p *Plane) IsClosed() bool { return false }

func (p *Plane) Contains(pt.Vector) bool { return false }

// Project expresses point in the plane's (U, V) coordinates.
func (p *Plane) Project(point pt.Vector) pt.Vector {
	d := point.Sub(p.Point)
	x := d.Dot(p.U)
	y := d.Dot(p.V)
	return V(x, y, 0)
}

func (p *Plane) Intersect(r pt.Ray, tMax float64) (Intersection, bool) {
	denom := p.Normal.Dot(r.Direction)
	if denom > -1e-9 && denom < 1e-9 {
		return Intersection{}, false
	}
	t := p.Point.Sub(r.Origin).Dot(p.Normal) / denom
	if t <= Epsilon || t > tMax {
		return Intersection{}, false
	}
	position := r.Position(t)
	normal, _ := orient(p.Normal, r.Direction)
	uv := p.uv(position)
	return Intersection{
		Geometry: p,
		T:        t,
		Position: position,
		Normal:   normal,
		UV:       &uv,
	}, true
}

func (p *Plane) uv(position pt.Vector) pt.Vector {
	scale := p.Scale
	if scale <= 0 {
		scale = 1
	}
	proj := p.Project(position)
	u := proj.X / scale
	v := proj.Y / scale
	return V(u-math.Floor(u), v-math.Floor(v), 0)
}
