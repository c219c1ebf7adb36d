package trace

import (
	"github.com/fogleman/pt/pt"
)

// maxOccluders bounds the surfaces a shadow ray may cross. A light behind more surfaces than
// that is treated as blocked.
const maxOccluders = 64

// ShadowQuery tests whether a light reaches an intersection point and how much of its
// color survives semi-transparent occluders on the way.
type ShadowQuery struct {
	inShadow bool
	filtered pt.Color
}

// NewShadowQuery walks from the intersection of r towards light through space. r must
// carry an intersection.
func NewShadowQuery(r Ray, light Light, space GeometrySpace) ShadowQuery {
	q := ShadowQuery{filtered: light.Color()}

	var toLight pt.Vector
	remaining := INF
	switch l := light.(type) {
	case DirectionalLight:
		toLight = l.Orientation().Negate()
	case positioned:
		d := l.position().Sub(r.Intersection.Position)
		remaining = d.Length()
		toLight = d.Normalize()
	default:
		return q
	}

	origin := r.Intersection.Position
	for crossed := 0; remaining > Epsilon; crossed++ {
		if crossed == maxOccluders {
			return ShadowQuery{inShadow: true, filtered: pt.Black}
		}
		shadowRay := space.NearestIntersection(NewRay(origin, toLight, VacuumIndex), remaining)
		if !shadowRay.Intersected() {
			break
		}
		hit := shadowRay.Intersection
		material := shadowRay.material()
		if !material.IsTransparent() {
			return ShadowQuery{inShadow: true, filtered: pt.Black}
		}
		q.filtered = TransmitLight(q.filtered, material, hit.UV, !hit.Inside)
		if isBlack(q.filtered) {
			return ShadowQuery{inShadow: true, filtered: pt.Black}
		}
		remaining -= hit.T
		origin = hit.Position
	}
	return q
}

func (q ShadowQuery) IsInShadow() bool {
	return q.inShadow
}

// FilteredLight is the light color after transparent occluders, black when in shadow.
func (q ShadowQuery) FilteredLight() pt.Color {
	return q.filtered
}
