package trace

import (
	"github.com/fogleman/pt/pt"
)

// Primitive is a named scene object. Its geometries share its material.
type Primitive struct {
	Name     string
	Material *Material
}

// NewPrimitive returns a primitive, falling back to the default material.
func NewPrimitive(name string, material *Material) *Primitive {
	if material == nil {
		material = DefaultMaterial()
	}
	return &Primitive{Name: name, Material: material}
}

// Geometry is a shape that rays can hit.
type Geometry interface {
	// Intersect returns the nearest hit with Epsilon < t <= tMax.
	Intersect(r pt.Ray, tMax float64) (Intersection, bool)
	// Contains reports whether p lies strictly inside the volume. Open geometries contain nothing.
	Contains(p pt.Vector) bool
	// IsClosed reports whether the geometry encloses a volume.
	IsClosed() bool
	Primitive() *Primitive
}

// GeometrySpace answers the geometric queries the shaders need.
type GeometrySpace interface {
	// NearestIntersection returns a copy of r carrying its nearest intersection within
	// tMax, or r unchanged when nothing is hit.
	NearestIntersection(r Ray, tMax float64) Ray
	// ListInsideGeometry returns the closed geometries whose interior contains p.
	ListInsideGeometry(p pt.Vector) []Geometry
}

// Space is a flat list of geometries, scanned linearly. Meshes bring their own BVH.
type Space struct {
	Geometries []Geometry
}

func NewSpace(geometries ...Geometry) *Space {
	return &Space{Geometries: geometries}
}

func (s *Space) Add(g ...Geometry) {
	s.Geometries = append(s.Geometries, g...)
}

func (s *Space) NearestIntersection(r Ray, tMax float64) Ray {
	var nearest *Intersection
	for _, g := range s.Geometries {
		hit, ok := g.Intersect(r.Ray, tMax)
		if !ok {
			continue
		}
		if nearest == nil || hit.T < nearest.T {
			h := hit
			nearest = &h
		}
	}
	if nearest != nil {
		r.Intersection = nearest
	}
	return r
}

func (s *Space) ListInsideGeometry(p pt.Vector) []Geometry {
	var inside []Geometry
	for _, g := range s.Geometries {
		if g.IsClosed() && g.Contains(p) {
			inside = append(inside, g)
		}
	}
	return inside
}

// orient flips the outward normal n to face against the ray direction d. The second
// result is true when the ray was leaving the surface, i.e. started inside.
func orient(n, d pt.Vector) (pt.Vector, bool) {
	if n.Dot(d) > 0 {
		return n.Negate(), true
	}
	return n, false
}
