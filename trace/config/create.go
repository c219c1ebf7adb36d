package config

import (
	"fmt"

	"github.com/fogleman/pt/pt"

	"github.com/jdginn/go-whitted/trace"
)

// Light types
const (
	LightAmbient             = "ambient"
	LightDirectional         = "directional"
	LightPoint               = "point"
	LightLinearAperture      = "linear_aperture"
	LightRectangularAperture = "rectangular_aperture"
	LightEllipticalAperture  = "elliptical_aperture"
	LightApertureMask        = "aperture_mask"
)

// Defaults
const (
	DefaultThumbnailWidth = 256
	DefaultHistogramBins  = 32
)

func vec(v [3]float64) pt.Vector {
	return trace.V(v[0], v[1], v[2])
}

func col(c [3]float64) pt.Color {
	return trace.C(c[0], c[1], c[2])
}

// Create builds the material, loading its texture if one is set
func (m Material) Create() (*trace.Material, error) {
	material := &trace.Material{
		Ambient:           col(m.Ambient),
		Diffuse:           col(m.Diffuse),
		Specular:          col(m.Specular),
		TransparencyColor: col(m.TransparencyColor),
		Shininess:         m.Shininess,
		Reflectivity:      m.Reflectivity,
		Transparency:      m.Transparency,
		Index:             m.RefractiveIndex,
	}
	if material.Index == 0 {
		material.Index = trace.VacuumIndex
	}
	if m.Texture != "" {
		texture, err := trace.LoadTexture(m.Texture)
		if err != nil {
			return nil, err
		}
		material.Texture = texture
	}
	return material, nil
}

// Create builds every material by name
func (m *Materials) Create() (map[string]*trace.Material, error) {
	materials := make(map[string]*trace.Material, len(m.Inline))
	for name, material := range m.Inline {
		created, err := material.Create()
		if err != nil {
			return nil, fmt.Errorf("material %s: %w", name, err)
		}
		materials[name] = created
	}
	return materials, nil
}

// SurfaceAssignmentMap maps 3MF object names to primitives carrying their materials
func (c *SceneConfig) SurfaceAssignmentMap(materials map[string]*trace.Material) map[string]*trace.Primitive {
	primitives := make(map[string]*trace.Primitive, len(c.SurfaceAssignments.Inline))
	for surface, material := range c.SurfaceAssignments.Inline {
		primitives[surface] = trace.NewPrimitive(surface, materials[material])
	}
	return primitives
}

// Create builds the geometry of a primitive
func (p Primitive) Create(materials map[string]*trace.Material) (trace.Geometry, error) {
	primitive := trace.NewPrimitive(p.Name, materials[p.Material])
	switch {
	case p.Sphere != nil:
		return trace.NewSphere(vec(p.Sphere.Center), p.Sphere.Radius, primitive), nil
	case p.Plane != nil:
		plane := trace.MakePlane(vec(p.Plane.Point), vec(p.Plane.Normal), primitive)
		if p.Plane.Scale > 0 {
			plane.Scale = p.Plane.Scale
		}
		return plane, nil
	}
	return nil, fmt.Errorf("primitive %q has no geometry", p.Name)
}

func (a Attenuation) Create() trace.Attenuation {
	attenuation := trace.Attenuation{
		Constant:  a.Constant,
		Linear:    a.Linear,
		Quadratic: a.Quadratic,
	}
	if len(a.Curve) > 0 {
		attenuation.Curve = trace.NewAttenuationCurve(a.Curve)
	}
	return attenuation
}

func (l Light) amplification() float64 {
	if l.Amplification == nil {
		return 1
	}
	return *l.Amplification
}

var apertureKinds = map[string]trace.ApertureKind{
	LightLinearAperture:      trace.LinearAperture,
	LightRectangularAperture: trace.RectangularAperture,
	LightEllipticalAperture:  trace.EllipticalAperture,
	LightApertureMask:        trace.ApertureMask,
}

// Create builds the light
func (l Light) Create() (trace.Light, error) {
	switch l.Type {
	case LightAmbient:
		return trace.AmbientLight{Col: col(l.Color)}, nil
	case LightDirectional:
		return trace.DirectionalLight{Col: col(l.Color), Direction: vec(l.Direction)}, nil
	case LightPoint:
		return trace.PointLight{
			Col:           col(l.Color),
			Position:      vec(l.Position),
			Amplification: l.amplification(),
			Falloff:       l.Attenuation.Create(),
		}, nil
	}
	kind, ok := apertureKinds[l.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", trace.ErrUnknownLight, l.Type)
	}
	aperture := trace.Aperture{
		Kind:       kind,
		Wavelength: l.Aperture.Wavelength,
		Width:      l.Aperture.Width,
		Height:     l.Aperture.Height,
	}
	if len(l.Aperture.Mask) > 0 {
		aperture.Mask = trace.NewApertureMask(l.Aperture.Mask)
	}
	return trace.InterferenceLight{
		Col:           col(l.Color),
		Position:      vec(l.Position),
		Axis:          vec(l.Axis),
		Aperture:      aperture,
		Amplification: l.amplification(),
		Falloff:       l.Attenuation.Create(),
	}, nil
}

func (c Camera) Create() trace.Camera {
	return trace.Camera{
		Position:   vec(c.Position),
		LookAt:     vec(c.LookAt),
		Up:         vec(c.Up),
		FovDegrees: c.FovDegrees,
	}
}

// Params converts the shader section into shader parameters
func (s Shader) Params() (trace.ShaderParams, error) {
	params := trace.DefaultShaderParams()
	mode, err := trace.ParseReflectionMode(s.Mode)
	if err != nil {
		return params, err
	}
	params.Mode = mode
	if s.TMax != 0 {
		params.TMax = s.TMax
	}
	if s.MaxDepth > 0 {
		params.Recursion = &trace.RecursionParams{MaxDepth: s.MaxDepth}
	}
	return params, nil
}

func (i Image) RenderParams(workers int) trace.RenderParams {
	return trace.RenderParams{Width: i.Width, Height: i.Height, Workers: workers}
}

func (o Output) ThumbnailWidthOrDefault() uint {
	if o.ThumbnailWidth <= 0 {
		return DefaultThumbnailWidth
	}
	return uint(o.ThumbnailWidth)
}

func (o Output) HistogramBinsOrDefault() int {
	if o.HistogramBins <= 0 {
		return DefaultHistogramBins
	}
	return o.HistogramBins
}

// Scene builds the geometry space, lights and camera described by the config
func (c *SceneConfig) Scene() (*trace.Scene, error) {
	materials, err := c.Materials.Create()
	if err != nil {
		return nil, fmt.Errorf("creating materials: %w", err)
	}

	space := trace.NewSpace()
	for _, p := range c.Primitives {
		geometry, err := p.Create(materials)
		if err != nil {
			return nil, err
		}
		space.Add(geometry)
	}

	if c.Input.Mesh.Path != "" {
		meshes, err := trace.Load3MF(c.Input.Mesh.Path, c.Input.Mesh.Scale, c.SurfaceAssignmentMap(materials), c.Input.Mesh.Closed)
		if err != nil {
			return nil, err
		}
		for _, m := range meshes {
			space.Add(m)
		}
	}

	lights := make([]trace.Light, 0, len(c.Lights))
	for i, l := range c.Lights {
		light, err := l.Create()
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		lights = append(lights, light)
	}

	return &trace.Scene{
		Space:  space,
		Lights: lights,
		Camera: c.Camera.Create(),
	}, nil
}
