package trace

import (
	"fmt"
	"log"

	"github.com/fogleman/pt/pt"
)

// RecursionParams enables indirect illumination.
type RecursionParams struct {
	// Maximum number of surfaces a primary ray's descendants may hit, at least 1
	MaxDepth int
}

// ShaderParams configures a Shader.
type ShaderParams struct {
	// Maximum distance a ray may travel, larger than Epsilon
	TMax float64
	Mode ReflectionMode
	// nil restricts the shader to direct illumination
	Recursion *RecursionParams
	// Shared with the other shaders of a render; a private one is created when nil
	Diagnostics *Diagnostics
	// Defaults to log.Default()
	Logger *log.Logger
}

// DefaultShaderParams is a direct-illumination Blinn shader with unbounded rays.
func DefaultShaderParams() ShaderParams {
	return ShaderParams{TMax: INF, Mode: DefaultReflectionMode}
}

// Shader computes the color seen along a ray. It combines direct illumination from every
// light (ambient, Lambertian diffuse, Phong or Blinn specular, with shadows) and, when
// recursion is enabled, indirect illumination through mirror reflection and refraction.
//
// A Shader is immutable after construction and safe for concurrent use.
type Shader struct {
	space       GeometrySpace
	lights      []Light
	tMax        float64
	mode        ReflectionMode
	maxDepth    int
	diagnostics *Diagnostics
	logger      *log.Logger
}

// NewShader validates the configuration up front so that shading never meets an unknown
// mode or light.
func NewShader(space GeometrySpace, lights []Light, params ShaderParams) (*Shader, error) {
	if space == nil {
		return nil, fmt.Errorf("shader needs a geometry space")
	}
	if !(params.TMax > Epsilon) {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidTMax, params.TMax)
	}
	if !params.Mode.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownReflectionMode, params.Mode)
	}
	maxDepth := 0
	if params.Recursion != nil {
		if params.Recursion.MaxDepth < 1 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidDepth, params.Recursion.MaxDepth)
		}
		maxDepth = params.Recursion.MaxDepth
	}
	for i, l := range lights {
		if err := validateLight(l); err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
	}
	diagnostics := params.Diagnostics
	if diagnostics == nil {
		diagnostics = &Diagnostics{}
	}
	logger := params.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Shader{
		space:       space,
		lights:      append([]Light(nil), lights...),
		tMax:        params.TMax,
		mode:        params.Mode,
		maxDepth:    maxDepth,
		diagnostics: diagnostics,
		logger:      logger,
	}, nil
}

func (s *Shader) Mode() ReflectionMode { return s.mode }

// Recursive reports whether indirect illumination is enabled.
func (s *Shader) Recursive() bool { return s.maxDepth > 0 }

func (s *Shader) MaxDepth() int { return s.maxDepth }

func (s *Shader) Diagnostics() *Diagnostics { return s.diagnostics }

// PrimaryRay starts a ray in whatever medium encloses origin.
func (s *Shader) PrimaryRay(origin, direction pt.Vector) Ray {
	return NewRay(origin, direction, s.EvaluateRefractiveIndex(origin))
}

// Shade returns the color seen along r. Rays that hit nothing are black.
func (s *Shader) Shade(r Ray) (pt.Color, error) {
	if r.Intersected() {
		return pt.Black, ErrRayAlreadyIntersected
	}
	if s.Recursive() {
		return s.recursiveShade(r, 1)
	}
	r = s.intersect(r)
	if !r.Intersected() {
		return pt.Black, nil
	}
	material := r.material()
	if s.mode == NoLight {
		return material.DiffuseAt(r.Intersection.UV), nil
	}
	return s.directIllumination(r, material)
}

func (s *Shader) intersect(r Ray) Ray {
	s.diagnostics.raysShaded.Add(1)
	return s.space.NearestIntersection(r, s.tMax)
}

func (s *Shader) recursiveShade(r Ray, depth int) (pt.Color, error) {
	if depth > s.maxDepth {
		return pt.Black, nil
	}
	r = s.intersect(r)
	if !r.Intersected() {
		return pt.Black, nil
	}
	material := r.material()
	if s.mode == NoLight {
		return material.DiffuseAt(r.Intersection.UV), nil
	}
	color, err := s.directIllumination(r, material)
	if err != nil {
		return pt.Black, err
	}
	indirect, err := s.indirectIllumination(r, material, depth)
	if err != nil {
		return pt.Black, err
	}
	return color.Add(indirect), nil
}

// directIllumination sums the contribution of every light, in list order.
func (s *Shader) directIllumination(r Ray, material *Material) (pt.Color, error) {
	color := pt.Black
	for _, light := range s.lights {
		c, err := s.shadeWithLight(r, light, material)
		if err != nil {
			return pt.Black, err
		}
		color = color.Add(c)
	}
	return color, nil
}

func (s *Shader) shadeWithLight(r Ray, light Light, material *Material) (pt.Color, error) {
	hit := r.Intersection
	switch l := light.(type) {
	case AmbientLight:
		return s.ambientTerm(l.Col, material.AmbientAt(hit.UV))
	case DirectionalLight:
		shadow := NewShadowQuery(r, l, s.space)
		if shadow.IsInShadow() {
			return pt.Black, nil
		}
		return s.orientedLight(shadow.FilteredLight(), r, material, l.Orientation())
	case PointLight:
		shadow := NewShadowQuery(r, l, s.space)
		if shadow.IsInShadow() {
			return pt.Black, nil
		}
		c, err := s.orientedLight(shadow.FilteredLight(), r, material, l.Orientation(hit.Position))
		if err != nil {
			return pt.Black, err
		}
		return c.MulScalar(l.Amplification * l.Attenuation(hit.Position)), nil
	case InterferenceLight:
		shadow := NewShadowQuery(r, l, s.space)
		if shadow.IsInShadow() {
			return pt.Black, nil
		}
		factor := l.Amplification * l.Attenuation(hit.Position) * l.RelativeIntensity(hit.Position)
		return l.Col.MulScalar(factor), nil
	}
	return pt.Black, fmt.Errorf("%w: %T", ErrUnknownLight, light)
}

// orientedLight is the diffuse plus specular contribution of a light travelling along d.
func (s *Shader) orientedLight(light pt.Color, r Ray, material *Material, d pt.Vector) (pt.Color, error) {
	hit := r.Intersection
	diffuse, err := s.diffuseTerm(light, material.DiffuseAt(hit.UV), hit.Normal, d)
	if err != nil {
		return pt.Black, err
	}
	specular, err := s.specularTerm(light, material.SpecularAt(hit.UV), hit.Normal, d, r.Direction, material.Shininess)
	if err != nil {
		return pt.Black, err
	}
	return diffuse.Add(specular), nil
}

func (s *Shader) ambientTerm(light, material pt.Color) (pt.Color, error) {
	ok, err := s.mode.hasAmbient()
	if err != nil || !ok {
		return pt.Black, err
	}
	return AmbientReflection(light, material), nil
}

func (s *Shader) diffuseTerm(light, material pt.Color, normal, d pt.Vector) (pt.Color, error) {
	ok, err := s.mode.hasDiffuse()
	if err != nil || !ok {
		return pt.Black, err
	}
	return LambertianReflection(light, material, normal, d), nil
}

func (s *Shader) specularTerm(light, material pt.Color, normal, d, v pt.Vector, shininess float64) (pt.Color, error) {
	model, err := s.mode.specular()
	if err != nil {
		return pt.Black, err
	}
	switch model {
	case phongSpecular:
		return PhongSpecularReflection(light, material, normal, d, v, shininess), nil
	case blinnSpecular:
		return BlinnSpecularReflection(light, material, normal, d, v, shininess), nil
	}
	return pt.Black, nil
}

// indirectIllumination follows the mirror and refracted rays spawned at r's intersection.
func (s *Shader) indirectIllumination(r Ray, material *Material, depth int) (pt.Color, error) {
	color := pt.Black
	hit := r.Intersection

	if material.IsReflective() {
		reflected := r.CastRecursiveRay(Reflect(r.Direction, hit.Normal), r.RefractiveIndex)
		c, err := s.recursiveShade(reflected, depth+1)
		if err != nil {
			return pt.Black, err
		}
		color = color.Add(c.MulScalar(material.Reflectivity))
	}

	if material.IsTransparent() && hit.Geometry.IsClosed() {
		n1 := r.RefractiveIndex
		fromOutside := !hit.Inside
		var n2 float64
		if fromOutside {
			n2 = material.RefractiveIndex()
		} else {
			n2 = s.EvaluateRefractiveIndex(hit.Position)
		}
		if IsTotalInternalReflection(r.Direction, hit.Normal, n1, n2) {
			return color, nil
		}
		refracted := r.CastRecursiveRay(Refract(r.Direction, hit.Normal, n1, n2), n2)
		c, err := s.recursiveShade(refracted, depth+1)
		if err != nil {
			return pt.Black, err
		}
		if fromOutside {
			c = c.Mul(material.TransparencyAt(hit.UV))
		} else {
			c = c.MulScalar(material.Transparency)
		}
		color = color.Add(c)
	}
	return color, nil
}

// EvaluateRefractiveIndex returns the refractive index of the medium at p: vacuum outside
// every closed geometry, the enclosing material's index inside exactly one.
//
// Inside several nested geometries the true medium is ambiguous; the mean of their indices
// is used and the first occurrence is logged.
func (s *Shader) EvaluateRefractiveIndex(p pt.Vector) float64 {
	inside := s.space.ListInsideGeometry(p)
	switch len(inside) {
	case 0:
		return VacuumIndex
	case 1:
		return inside[0].Primitive().Material.RefractiveIndex()
	}
	if s.diagnostics.recordAmbiguousMedium() {
		s.logger.Printf("note: point %v lies inside %d geometries, using the mean of their refractive indices (reported once)", p, len(inside))
	}
	sum := 0.0
	for _, g := range inside {
		sum += g.Primitive().Material.RefractiveIndex()
	}
	return sum / float64(len(inside))
}
