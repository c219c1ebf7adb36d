package trace

import (
	"fmt"

	"github.com/fogleman/pt/pt"
	"github.com/stretchr/testify/assert"
)

func assertColor(assert *assert.Assertions, want, got pt.Color, msgAndArgs ...interface{}) {
	msg := fmt.Sprintf("want {%f, %f, %f}, got {%f, %f, %f}", want.R, want.G, want.B, got.R, got.G, got.B)
	assert.InDelta(want.R, got.R, 1e-6, append([]interface{}{msg}, msgAndArgs...)...)
	assert.InDelta(want.G, got.G, 1e-6, append([]interface{}{msg}, msgAndArgs...)...)
	assert.InDelta(want.B, got.B, 1e-6, append([]interface{}{msg}, msgAndArgs...)...)
}

func assertVector(assert *assert.Assertions, want, got pt.Vector, msgAndArgs ...interface{}) {
	msg := fmt.Sprintf("want {%f, %f, %f}, got {%f, %f, %f}", want.X, want.Y, want.Z, got.X, got.Y, got.Z)
	assert.Less(want.Sub(got).Length(), 1e-6, append([]interface{}{msg}, msgAndArgs...)...)
}

func gray(v float64) pt.Color {
	return C(v, v, v)
}

// countingSpace records the rays submitted for intersection.
type countingSpace struct {
	*Space
	calls int
	rays  []Ray
}

func (s *countingSpace) NearestIntersection(r Ray, tMax float64) Ray {
	s.calls++
	s.rays = append(s.rays, r)
	return s.Space.NearestIntersection(r, tMax)
}

func opaque(diffuse pt.Color) *Material {
	return &Material{Ambient: diffuse, Diffuse: diffuse, Index: VacuumIndex}
}

func glass(index float64, transmission pt.Color, transparency float64) *Material {
	return &Material{TransparencyColor: transmission, Transparency: transparency, Index: index}
}
