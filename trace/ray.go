package trace

import (
	"github.com/fogleman/pt/pt"
)

// Epsilon is the smallest ray parameter accepted as a hit. It keeps secondary rays from
// re-intersecting the surface they start on.
const Epsilon = 1e-6

// INF is used as t_max for rays that may travel indefinitely.
const INF = 1e9

// VacuumIndex is the refractive index of empty space.
const VacuumIndex = 1.0

// Intersection describes where a ray met the geometry space.
type Intersection struct {
	Geometry Geometry
	// Ray parameter of the hit
	T        float64
	Position pt.Vector
	// Unit shading normal, oriented against the ray direction
	Normal pt.Vector
	// Surface parametrization at the hit, nil when the geometry has none
	UV *pt.Vector
	// The ray started inside the (closed) geometry it hit
	Inside bool
}

// Ray is a ray travelling through a medium, optionally carrying its nearest intersection.
type Ray struct {
	pt.Ray
	// Refractive index of the medium the ray currently travels through
	RefractiveIndex float64
	// Populated exactly once by a GeometrySpace
	Intersection *Intersection
}

// NewRay returns a ray with a normalized direction.
func NewRay(origin, direction pt.Vector, refractiveIndex float64) Ray {
	return Ray{
		Ray:             pt.Ray{Origin: origin, Direction: direction.Normalize()},
		RefractiveIndex: refractiveIndex,
	}
}

func (r Ray) Intersected() bool {
	return r.Intersection != nil
}

// CastRecursiveRay starts a new ray at this ray's intersection point.
func (r Ray) CastRecursiveRay(direction pt.Vector, refractiveIndex float64) Ray {
	if r.Intersection == nil {
		panic("Code bug: casting a recursive ray from a ray without intersection")
	}
	return NewRay(r.Intersection.Position, direction, refractiveIndex)
}

// material returns the material of the intersected geometry's primitive.
func (r Ray) material() *Material {
	return r.Intersection.Geometry.Primitive().Material
}
