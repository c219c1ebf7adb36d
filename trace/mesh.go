package trace

import (
	"errors"
	"fmt"

	"github.com/fogleman/pt/pt"
	"github.com/hpinc/go3mf"
)

// Mesh is a triangle mesh backed by pt's BVH. Whether it encloses a volume is up to the
// caller; a closed mesh must be watertight with consistently outward winding.
type Mesh struct {
	M         *pt.Mesh
	closed    bool
	primitive *Primitive
}

// insideProbe is deliberately off-axis so parity rays rarely graze edges.
var insideProbe = V(0.5773, 0.5774, 0.5772).Normalize()

// maxCrossings bounds the parity walk through a mesh.
const maxCrossings = 4096

func NewMesh(triangles []*pt.Triangle, closed bool, primitive *Primitive) (*Mesh, error) {
	if len(triangles) == 0 {
		return nil, errors.New("mesh has no triangles")
	}
	m := pt.NewMesh(triangles)
	m.Compile()
	return &Mesh{M: m, closed: closed, primitive: primitive}, nil
}

func (m *Mesh) Primitive() *Primitive { return m.primitive }

func (m *Mesh) IsClosed() bool { return m.closed }

// nearest intersects the mesh ignoring hits closer than Epsilon.
func (m *Mesh) nearest(r pt.Ray) (pt.Hit, float64, bool) {
	shifted := pt.Ray{Origin: r.Position(Epsilon), Direction: r.Direction}
	hit := m.M.Intersect(shifted)
	if !hit.Ok() {
		return hit, 0, false
	}
	return hit, hit.T + Epsilon, true
}

func (m *Mesh) Intersect(r pt.Ray, tMax float64) (Intersection, bool) {
	hit, t, ok := m.nearest(r)
	if !ok || t > tMax {
		return Intersection{}, false
	}
	triangle, ok := hit.Shape.(*pt.Triangle)
	if !ok {
		panic("Code bug: mesh hit a non-triangle shape")
	}
	normal, inside := orient(triangle.Normal(), r.Direction)
	return Intersection{
		Geometry: m,
		T:        t,
		Position: r.Position(t),
		Normal:   normal,
		Inside:   inside && m.closed,
	}, true
}

// onSurface reports whether p lies on one of the mesh's triangles. The ray starts just
// behind p so the triangle p sits on is in front of it.
func (m *Mesh) onSurface(p pt.Vector) bool {
	r := pt.Ray{Origin: p.Sub(insideProbe.MulScalar(2 * Epsilon)), Direction: insideProbe}
	hit := m.M.Intersect(r)
	return hit.Ok() && hit.T < 4*Epsilon
}

// Contains counts surface crossings along a probe ray; an odd count means inside. Points on
// the surface are outside.
func (m *Mesh) Contains(p pt.Vector) bool {
	if !m.closed || m.onSurface(p) {
		return false
	}
	r := pt.Ray{Origin: p, Direction: insideProbe}
	crossings := 0
	for i := 0; i < maxCrossings; i++ {
		_, t, ok := m.nearest(r)
		if !ok {
			break
		}
		crossings++
		r.Origin = r.Position(t)
	}
	return crossings%2 == 1
}

// Load3MF reads every object of a 3MF model into its own Mesh. Objects are matched to
// primitives by name, falling back to the "default" entry.
//
// Vertex coordinates are divided by scale (3MF models are usually in millimeters).
func Load3MF(filepath string, scale float64, primitives map[string]*Primitive, closed bool) ([]*Mesh, error) {
	var model go3mf.Model
	r, err := go3mf.OpenReader(filepath)
	if err != nil {
		return nil, fmt.Errorf("opening 3MF model: %w", err)
	}
	defer r.Close()
	if err := r.Decode(&model); err != nil {
		return nil, fmt.Errorf("decoding 3MF model: %w", err)
	}
	if scale == 0 {
		scale = 1
	}

	var meshes []*Mesh
	for _, item := range model.Build.Items {
		obj, ok := model.FindObject(item.ObjectPath(), item.ObjectID)
		if !ok || obj.Mesh == nil {
			continue
		}

		primitive, ok := primitives[obj.Name]
		if !ok {
			primitive = primitives["default"]
		}
		if primitive == nil {
			primitive = NewPrimitive(obj.Name, nil)
		}

		vertex := func(i int) pt.Vector {
			v := obj.Mesh.Vertices.Vertex[i]
			return V(float64(v.X())/scale, float64(v.Y())/scale, float64(v.Z())/scale)
		}
		triangles := make([]*pt.Triangle, 0, len(obj.Mesh.Triangles.Triangle))
		for _, t := range obj.Mesh.Triangles.Triangle {
			tri := pt.NewTriangle(vertex(int(t.V1)), vertex(int(t.V2)), vertex(int(t.V3)), pt.Vector{}, pt.Vector{}, pt.Vector{}, pt.Material{})
			triangles = append(triangles, tri)
		}
		mesh, err := NewMesh(triangles, closed, primitive)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", obj.Name, err)
		}
		meshes = append(meshes, mesh)
	}
	if len(meshes) == 0 {
		return nil, fmt.Errorf("3MF model %s contains no meshes", filepath)
	}
	return meshes, nil
}
