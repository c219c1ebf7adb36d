package trace

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/fogleman/pt/pt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShader(t *testing.T, space GeometrySpace, lights []Light, mode ReflectionMode, maxDepth int) *Shader {
	params := DefaultShaderParams()
	params.Mode = mode
	if maxDepth > 0 {
		params.Recursion = &RecursionParams{MaxDepth: maxDepth}
	}
	s, err := NewShader(space, lights, params)
	require.NoError(t, err)
	return s
}

type fakeLight struct{}

func (fakeLight) Color() pt.Color { return pt.White }
func (fakeLight) isLight()        {}

func TestNewShaderValidation(t *testing.T) {
	assert := assert.New(t)
	space := NewSpace()

	_, err := NewShader(nil, nil, DefaultShaderParams())
	assert.Error(err)

	params := DefaultShaderParams()
	params.TMax = Epsilon
	_, err = NewShader(space, nil, params)
	assert.ErrorIs(err, ErrInvalidTMax)

	params = DefaultShaderParams()
	params.Mode = ReflectionMode(99)
	_, err = NewShader(space, nil, params)
	assert.ErrorIs(err, ErrUnknownReflectionMode)

	params = DefaultShaderParams()
	params.Recursion = &RecursionParams{MaxDepth: 0}
	_, err = NewShader(space, nil, params)
	assert.ErrorIs(err, ErrInvalidDepth)

	_, err = NewShader(space, []Light{AmbientLight{Col: pt.White}, fakeLight{}}, DefaultShaderParams())
	assert.ErrorIs(err, ErrUnknownLight)

	_, err = NewShader(space, []Light{InterferenceLight{Col: pt.White, Axis: V(0, 0, 1)}}, DefaultShaderParams())
	assert.ErrorIs(err, ErrInvalidAperture)

	s, err := NewShader(space, nil, DefaultShaderParams())
	assert.NoError(err)
	assert.Equal(Blinn, s.Mode())
	assert.False(s.Recursive())
	assert.NotNil(s.Diagnostics())
}

func TestShadeRejectsIntersectedRay(t *testing.T) {
	assert := assert.New(t)

	for _, depth := range []int{0, 3} {
		s := newShader(t, NewSpace(), nil, Blinn, depth)
		r := NewRay(V(0, 0, 0), V(0, 0, 1), 1)
		r.Intersection = &Intersection{}
		_, err := s.Shade(r)
		assert.ErrorIs(err, ErrRayAlreadyIntersected)
	}
}

func TestShadeMissIsBlack(t *testing.T) {
	assert := assert.New(t)
	lights := []Light{
		AmbientLight{Col: pt.White},
		DirectionalLight{Col: pt.White, Direction: V(0, -1, 0)},
		PointLight{Col: pt.White, Position: V(0, 5, 0), Amplification: 10},
	}
	space := NewSpace(NewSphere(V(0, 0, 10), 1, NewPrimitive("ball", opaque(pt.White))))

	for _, depth := range []int{0, 1, 4} {
		for mode := NoLight; mode <= Blinn; mode++ {
			s := newShader(t, space, lights, mode, depth)
			c, err := s.Shade(NewRay(V(0, 0, 0), V(0, 1, 0), 1))
			assert.NoError(err)
			assert.Equal(pt.Black, c, "%v at depth %d", mode, depth)
		}
	}
}

func TestShadeAmbientOnlySphere(t *testing.T) {
	assert := assert.New(t)
	material := &Material{Ambient: gray(0.3), Diffuse: pt.White, Specular: pt.White, Shininess: 10, Index: 1}
	space := NewSpace(NewSphere(V(0, 0, 5), 1, NewPrimitive("ball", material)))
	s := newShader(t, space, []Light{AmbientLight{Col: pt.White}}, Blinn, 0)

	c, err := s.Shade(s.PrimaryRay(V(0, 0, 0), V(0, 0, 1)))
	assert.NoError(err)
	assertColor(assert, gray(0.3), c)
}

func TestShadeDirectModes(t *testing.T) {
	assert := assert.New(t)
	material := &Material{
		Ambient:   C(0.1, 0.2, 0.3),
		Diffuse:   gray(0.5),
		Specular:  gray(0.25),
		Shininess: 8,
		Index:     1,
	}
	space := NewSpace(MakePlane(V(0, 0, 0), V(0, 1, 0), NewPrimitive("floor", material)))
	lights := []Light{
		AmbientLight{Col: pt.White},
		DirectionalLight{Col: pt.White, Direction: V(0, -1, 0)},
	}
	// Looking straight down with the light straight down maximizes every term
	ambient := C(0.1, 0.2, 0.3)
	diffuse := gray(0.5)
	specular := gray(0.25)

	for _, tc := range []struct {
		mode ReflectionMode
		want pt.Color
	}{
		{NoLight, gray(0.5)},
		{Ambient, ambient},
		{Diffuse, diffuse},
		{PhongSpecular, specular},
		{BlinnSpecular, specular},
		{NoSpecularReflection, ambient.Add(diffuse)},
		{Phong, ambient.Add(diffuse).Add(specular)},
		{Blinn, ambient.Add(diffuse).Add(specular)},
	} {
		s := newShader(t, space, lights, tc.mode, 0)
		c, err := s.Shade(NewRay(V(0, 2, 0), V(0, -1, 0), 1))
		assert.NoError(err)
		assertColor(assert, tc.want, c, tc.mode.String())
	}
}

func TestShadePointLightAttenuation(t *testing.T) {
	assert := assert.New(t)
	space := NewSpace(MakePlane(V(0, 0, 0), V(0, 1, 0), NewPrimitive("floor", opaque(gray(0.5)))))
	light := PointLight{Col: pt.White, Position: V(0, 2, 0), Amplification: 2, Falloff: Attenuation{Quadratic: 1}}
	s := newShader(t, space, []Light{light}, Diffuse, 0)

	c, err := s.Shade(NewRay(V(0, 1, 0), V(0, -1, 0), 1))
	assert.NoError(err)
	assertColor(assert, gray(0.25), c)
}

func TestShadeInterferenceLight(t *testing.T) {
	assert := assert.New(t)
	space := NewSpace(MakePlane(V(0, 0, 0), V(0, 1, 0), NewPrimitive("screen", opaque(gray(0.5)))))
	light := InterferenceLight{
		Col:           C(1, 0, 0),
		Position:      V(0, 4, 0),
		Axis:          V(0, -1, 0),
		Aperture:      Aperture{Kind: LinearAperture, Wavelength: 1, Width: 2},
		Amplification: 3,
	}
	s := newShader(t, space, []Light{light}, Blinn, 0)

	// The central maximum is the light's color, unfiltered by the surface
	c, err := s.Shade(NewRay(V(0, 1, 0), V(0, -1, 0), 1))
	assert.NoError(err)
	assertColor(assert, C(3, 0, 0), c)
}

func TestShadeShadowedSurface(t *testing.T) {
	assert := assert.New(t)
	space := NewSpace(
		MakePlane(V(0, 0, 0), V(0, 1, 0), NewPrimitive("floor", opaque(gray(0.5)))),
		NewSphere(V(0, 3, 0), 0.5, NewPrimitive("blocker", opaque(pt.White))),
	)
	lights := []Light{
		AmbientLight{Col: gray(0.2)},
		DirectionalLight{Col: pt.White, Direction: V(0, -1, 0)},
	}
	s := newShader(t, space, lights, NoSpecularReflection, 0)

	c, err := s.Shade(NewRay(V(0, 1, 1), V(0, -1, -1), 1))
	assert.NoError(err)
	assertColor(assert, gray(0.1), c)

	c, err = s.Shade(NewRay(V(2, 1, 0), V(0, -1, 0), 1))
	assert.NoError(err)
	assertColor(assert, gray(0.6), c)
}

func TestShadeMirrorIntoVoid(t *testing.T) {
	assert := assert.New(t)
	mirror := &Material{Reflectivity: 1, Index: 1}
	space := &countingSpace{Space: NewSpace(NewSphere(V(0, 0, 5), 1, NewPrimitive("mirror", mirror)))}
	s := newShader(t, space, []Light{AmbientLight{Col: pt.White}}, Blinn, 1)

	c, err := s.Shade(NewRay(V(0, 0, 0), V(0, 0, 1), 1))
	assert.NoError(err)
	assert.Equal(pt.Black, c)
	assert.Equal(1, space.calls)
}

func TestShadeRecursionDepth(t *testing.T) {
	assert := assert.New(t)
	mirror := &Material{Ambient: gray(0.1), Reflectivity: 1, Index: 1}
	space := &countingSpace{Space: NewSpace(
		MakePlane(V(0, 0, 0), V(0, 1, 0), NewPrimitive("floor", mirror)),
		MakePlane(V(0, 2, 0), V(0, -1, 0), NewPrimitive("ceiling", mirror)),
	)}

	for depth := 1; depth <= 5; depth++ {
		space.calls = 0
		s := newShader(t, space, []Light{AmbientLight{Col: pt.White}}, Ambient, depth)
		c, err := s.Shade(NewRay(V(0, 1, 0), V(0, -1, 0), 1))
		assert.NoError(err)
		assert.Equal(depth, space.calls)
		assertColor(assert, gray(0.1*float64(depth)), c)
		assert.Equal(int64(depth), s.Diagnostics().RaysShaded())
	}
}

func TestShadeReflectivityScalesIndirect(t *testing.T) {
	assert := assert.New(t)
	floor := &Material{Reflectivity: 0.5, Index: 1}
	ceiling := opaque(gray(0.8))
	space := NewSpace(
		MakePlane(V(0, 0, 0), V(0, 1, 0), NewPrimitive("floor", floor)),
		MakePlane(V(0, 2, 0), V(0, -1, 0), NewPrimitive("ceiling", ceiling)),
	)
	s := newShader(t, space, []Light{AmbientLight{Col: pt.White}}, Ambient, 2)

	c, err := s.Shade(NewRay(V(0, 1, 0), V(0, -1, 0), 1))
	assert.NoError(err)
	assertColor(assert, gray(0.4), c)
}

func TestShadeRefractionThroughSphere(t *testing.T) {
	assert := assert.New(t)
	ball := glass(1, gray(0.5), 0.8)
	wall := &Material{Ambient: pt.White, Index: 1}
	space := NewSpace(
		NewSphere(V(0, 0, 0), 1, NewPrimitive("ball", ball)),
		MakePlane(V(0, 0, 5), V(0, 0, -1), NewPrimitive("wall", wall)),
	)
	lights := []Light{AmbientLight{Col: gray(0.5)}}

	// Entering tints by the transmission color, leaving scales by the transparency
	s := newShader(t, space, lights, Ambient, 3)
	c, err := s.Shade(NewRay(V(0, 0, -5), V(0, 0, 1), 1))
	assert.NoError(err)
	assertColor(assert, gray(0.5*0.8*0.5), c)

	// One bounce short of the wall
	s = newShader(t, space, lights, Ambient, 2)
	c, err = s.Shade(NewRay(V(0, 0, -5), V(0, 0, 1), 1))
	assert.NoError(err)
	assertColor(assert, pt.Black, c)
}

func TestShadeSkipsTotalInternalReflection(t *testing.T) {
	assert := assert.New(t)
	ball := glass(1.5, pt.White, 1)
	space := &countingSpace{Space: NewSpace(NewSphere(V(0, 0, 0), 1, NewPrimitive("ball", ball)))}
	s := newShader(t, space, nil, Blinn, 5)

	// sin(theta) = 0.9 inside glass is past the critical angle
	c, err := s.Shade(NewRay(V(0, 0.9, 0), V(1, 0, 0), 1.5))
	assert.NoError(err)
	assert.Equal(pt.Black, c)
	assert.Equal(1, space.calls)

	// sin(theta) = 0.3 refracts out into the void
	space.calls = 0
	c, err = s.Shade(NewRay(V(0, 0.3, 0), V(1, 0, 0), 1.5))
	assert.NoError(err)
	assert.Equal(pt.Black, c)
	assert.Equal(2, space.calls)
}

func TestShadeOpenTransparentSurfaceDoesNotRefract(t *testing.T) {
	assert := assert.New(t)
	pane := glass(1.5, pt.White, 1)
	space := &countingSpace{Space: NewSpace(MakePlane(V(0, 0, 0), V(0, 1, 0), NewPrimitive("pane", pane)))}
	s := newShader(t, space, nil, Blinn, 4)

	_, err := s.Shade(NewRay(V(0, 1, 0), V(0, -1, 0), 1))
	assert.NoError(err)
	assert.Equal(1, space.calls)
}

func TestEvaluateRefractiveIndex(t *testing.T) {
	assert := assert.New(t)
	var logs bytes.Buffer
	diagnostics := &Diagnostics{}
	space := NewSpace(
		NewSphere(V(0, 0, 0), 2, NewPrimitive("water", glass(1.2, pt.White, 1))),
		NewSphere(V(1, 0, 0), 2, NewPrimitive("glass", glass(1.6, pt.White, 1))),
		NewSphere(V(10, 0, 0), 1, NewPrimitive("stone", opaque(pt.White))),
		MakePlane(V(0, -5, 0), V(0, 1, 0), NewPrimitive("floor", glass(2, pt.White, 1))),
	)
	params := DefaultShaderParams()
	params.Diagnostics = diagnostics
	params.Logger = log.New(&logs, "", 0)
	s, err := NewShader(space, nil, params)
	require.NoError(t, err)

	assert.Equal(VacuumIndex, s.EvaluateRefractiveIndex(V(0, 50, 0)))
	assert.Equal(1.2, s.EvaluateRefractiveIndex(V(-1.5, 0, 0)))
	assert.Equal(1.6, s.EvaluateRefractiveIndex(V(2.5, 0, 0)))
	// Inside an opaque geometry
	assert.Equal(VacuumIndex, s.EvaluateRefractiveIndex(V(10, 0, 0)))
	assert.Equal(int64(0), diagnostics.AmbiguousMedia())
	assert.Empty(logs.String())

	// Overlap of the two transparent spheres
	assert.InDelta(1.4, s.EvaluateRefractiveIndex(V(0.5, 0, 0)), 1e-12)
	assert.InDelta(1.4, s.EvaluateRefractiveIndex(V(0.5, 0.5, 0)), 1e-12)
	assert.Equal(int64(2), diagnostics.AmbiguousMedia())
	assert.Equal(1, strings.Count(logs.String(), "\n"))
}

func TestPrimaryRayStartsInEnclosingMedium(t *testing.T) {
	assert := assert.New(t)
	space := NewSpace(NewSphere(V(0, 0, 0), 10, NewPrimitive("tank", glass(1.33, pt.White, 1))))
	s := newShader(t, space, nil, Blinn, 0)

	assert.Equal(1.33, s.PrimaryRay(V(0, 0, 0), V(1, 0, 0)).RefractiveIndex)
	assert.Equal(VacuumIndex, s.PrimaryRay(V(0, 20, 0), V(1, 0, 0)).RefractiveIndex)
}

func TestShadeRefractionOutOfMesh(t *testing.T) {
	assert := assert.New(t)
	space := &countingSpace{Space: NewSpace(tetrahedron(NewPrimitive("prism", glass(1.5, pt.White, 1))))}
	s := newShader(t, space, nil, Blinn, 3)

	assert.Equal(VacuumIndex, s.EvaluateRefractiveIndex(V(0, 0.2, 0.2)))
	assert.Equal(VacuumIndex, s.EvaluateRefractiveIndex(V(0.2, 0.2, 0)))
	assert.Equal(1.5, s.EvaluateRefractiveIndex(V(0.1, 0.1, 0.1)))

	d := V(1, 1, 0.6).Normalize()
	_, err := s.Shade(NewRay(V(0.1, 0.1, 0.1), d, 1.5))
	require.NoError(t, err)
	require.Equal(t, 2, space.calls)

	// The ray leaves the glass through the slanted face into vacuum
	exit := space.rays[1]
	assert.Equal(VacuumIndex, exit.RefractiveIndex)
	want := Refract(d, V(1, 1, 1).Normalize(), 1.5, VacuumIndex)
	assertVector(assert, want, exit.Direction)
	assert.Greater(exit.Direction.Sub(d).Length(), 1e-3)
}
