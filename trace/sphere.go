package trace

import (
	"math"

	"github.com/fogleman/pt/pt"
)

// Sphere is a closed geometry.
type Sphere struct {
	Center    pt.Vector
	Radius    float64
	primitive *Primitive
}

func NewSphere(center pt.Vector, radius float64, primitive *Primitive) *Sphere {
	return &Sphere{Center: center, Radius: radius, primitive: primitive}
}

func (s *Sphere) Primitive() *Primitive { return s.primitive }

func (s *Sphere) IsClosed() bool { return true }

func (s *Sphere) Contains(p pt.Vector) bool {
	return p.Sub(s.Center).Length() < s.Radius-Epsilon
}

func (s *Sphere) Intersect(r pt.Ray, tMax float64) (Intersection, bool) {
	oc := r.Origin.Sub(s.Center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return Intersection{}, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t <= Epsilon {
		t = -b + sq
	}
	if t <= Epsilon || t > tMax {
		return Intersection{}, false
	}
	position := r.Position(t)
	normal, inside := orient(position.Sub(s.Center).Normalize(), r.Direction)
	uv := s.uv(position)
	return Intersection{
		Geometry: s,
		T:        t,
		Position: position,
		Normal:   normal,
		UV:       &uv,
		Inside:   inside,
	}, true
}

// uv maps a surface point to longitude/latitude in [0, 1].
func (s *Sphere) uv(p pt.Vector) pt.Vector {
	d := p.Sub(s.Center).Normalize()
	u := 0.5 + math.Atan2(d.Z, d.X)/(2*math.Pi)
	v := 0.5 - math.Asin(math.Max(-1, math.Min(1, d.Y)))/math.Pi
	return V(u, v, 0)
}
