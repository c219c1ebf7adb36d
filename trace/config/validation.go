package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/jdginn/go-whitted/trace"
)

// Validation helper functions
func validatePositive(field string, value float64) []ValidationError {
	if value <= 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be positive",
		}}
	}
	return nil
}

func validateNonNegative(field string, value float64) []ValidationError {
	if value < 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be non-negative",
		}}
	}
	return nil
}

func validateInRange(field string, value, min, max float64) []ValidationError {
	if value < min || value > max {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
		}}
	}
	return nil
}

func validateNonZeroVector(field string, vec [3]float64) []ValidationError {
	length := math.Sqrt(vec[0]*vec[0] + vec[1]*vec[1] + vec[2]*vec[2])
	if length < 1e-9 {
		return []ValidationError{{
			Field:   field,
			Message: "must be a non-zero vector",
		}}
	}
	return nil
}

func validateColor(field string, c [3]float64) []ValidationError {
	for _, channel := range c {
		if channel < 0 {
			return []ValidationError{{
				Field:   field,
				Message: "color channels must be non-negative",
			}}
		}
	}
	return nil
}

// ValidationError represents a structured validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FormatValidationErrors groups errors by top-level section
func FormatValidationErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Validation Errors:\n")

	// Group errors by category, keeping first-seen order
	var order []string
	categories := map[string][]ValidationError{}
	for _, err := range errs {
		category := strings.Split(err.Field, ".")[0]
		if _, seen := categories[category]; !seen {
			order = append(order, category)
		}
		categories[category] = append(categories[category], err)
	}

	for _, category := range order {
		b.WriteString(fmt.Sprintf("\n%s:\n", strings.ToUpper(category)))
		for _, err := range categories[category] {
			// Remove category prefix from field for cleaner display
			field := strings.TrimPrefix(err.Field, category+".")
			if field == category {
				field = "general"
			}
			b.WriteString(fmt.Sprintf("  - %s: %s\n", field, err.Message))
		}
	}

	return b.String()
}

// Validate performs validation on the entire configuration
func (c *SceneConfig) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.Input.Validate()...)
	errors = append(errors, c.Materials.Validate()...)
	if c.Input.Mesh.Path != "" {
		errors = append(errors, c.SurfaceAssignments.Validate(&c.Materials)...)
	}
	if len(c.Primitives) == 0 && c.Input.Mesh.Path == "" {
		errors = append(errors, ValidationError{
			Field:   "primitives",
			Message: "scene has no geometry",
		})
	}
	for i, p := range c.Primitives {
		errors = append(errors, p.Validate(fmt.Sprintf("primitives.%d", i), &c.Materials)...)
	}
	for i, l := range c.Lights {
		errors = append(errors, l.Validate(fmt.Sprintf("lights.%d", i))...)
	}
	errors = append(errors, c.Camera.Validate()...)
	errors = append(errors, c.Image.Validate()...)
	errors = append(errors, c.Shader.Validate()...)
	errors = append(errors, c.Output.Validate()...)
	return errors
}

func (i *Input) Validate() []ValidationError {
	return validateNonNegative("input.mesh.scale", i.Mesh.Scale)
}

func (m *Materials) Validate() []ValidationError {
	var errors []ValidationError

	if m.Inline == nil && m.FromFile == "" {
		errors = append(errors, ValidationError{
			Field:   "materials",
			Message: "either inline or from_file must be specified",
		})
		return errors
	}

	for name, material := range m.Inline {
		errors = append(errors, material.Validate(fmt.Sprintf("materials.inline.%s", name))...)
	}

	return errors
}

func (m Material) Validate(field string) []ValidationError {
	var errors []ValidationError
	errors = append(errors, validateColor(field+".ambient", m.Ambient)...)
	errors = append(errors, validateColor(field+".diffuse", m.Diffuse)...)
	errors = append(errors, validateColor(field+".specular", m.Specular)...)
	errors = append(errors, validateColor(field+".transparency_color", m.TransparencyColor)...)
	errors = append(errors, validateNonNegative(field+".shininess", m.Shininess)...)
	errors = append(errors, validateInRange(field+".reflectivity", m.Reflectivity, 0, 1)...)
	errors = append(errors, validateInRange(field+".transparency", m.Transparency, 0, 1)...)
	if m.Transparency > 0 {
		errors = append(errors, validatePositive(field+".refractive_index", m.RefractiveIndex)...)
	}
	return errors
}

func (sa *SurfaceAssignments) Validate(materials *Materials) []ValidationError {
	var errors []ValidationError

	if sa.Inline == nil && sa.FromFile == "" {
		errors = append(errors, ValidationError{
			Field:   "surface_assignments",
			Message: "either inline or from_file must be specified",
		})
		return errors
	}

	if sa.Inline != nil {
		// Check for default material
		_, hasDefault := sa.Inline["default"]
		if !hasDefault {
			errors = append(errors, ValidationError{
				Field:   "surface_assignments.inline",
				Message: "must include a default material",
			})
		}

		// Validate material references
		for surface, material := range sa.Inline {
			if !materials.HasMaterial(material) {
				errors = append(errors, ValidationError{
					Field:   fmt.Sprintf("surface_assignments.inline.%s", surface),
					Message: fmt.Sprintf("references undefined material '%s'", material),
				})
			}
		}
	}

	return errors
}

func (p *Primitive) Validate(field string, materials *Materials) []ValidationError {
	var errors []ValidationError

	if p.Material != "" && !materials.HasMaterial(p.Material) {
		errors = append(errors, ValidationError{
			Field:   field + ".material",
			Message: fmt.Sprintf("references undefined material '%s'", p.Material),
		})
	}

	switch {
	case p.Sphere != nil && p.Plane != nil:
		errors = append(errors, ValidationError{
			Field:   field,
			Message: "exactly one of sphere or plane must be specified",
		})
	case p.Sphere != nil:
		errors = append(errors, validatePositive(field+".sphere.radius", p.Sphere.Radius)...)
	case p.Plane != nil:
		errors = append(errors, validateNonZeroVector(field+".plane.normal", p.Plane.Normal)...)
		errors = append(errors, validateNonNegative(field+".plane.scale", p.Plane.Scale)...)
	default:
		errors = append(errors, ValidationError{
			Field:   field,
			Message: "exactly one of sphere or plane must be specified",
		})
	}

	return errors
}

func (l *Light) Validate(field string) []ValidationError {
	var errors []ValidationError

	errors = append(errors, validateColor(field+".color", l.Color)...)
	if l.Amplification != nil {
		errors = append(errors, validateNonNegative(field+".amplification", *l.Amplification)...)
	}

	switch l.Type {
	case LightAmbient:
	case LightDirectional:
		errors = append(errors, validateNonZeroVector(field+".direction", l.Direction)...)
	case LightPoint:
		errors = append(errors, l.Attenuation.Validate(field+".attenuation")...)
	case LightLinearAperture, LightRectangularAperture, LightEllipticalAperture:
		errors = append(errors, validateNonZeroVector(field+".axis", l.Axis)...)
		errors = append(errors, l.Attenuation.Validate(field+".attenuation")...)
		errors = append(errors, validatePositive(field+".aperture.wavelength", l.Aperture.Wavelength)...)
		errors = append(errors, validatePositive(field+".aperture.width", l.Aperture.Width)...)
		if l.Type != LightLinearAperture {
			errors = append(errors, validatePositive(field+".aperture.height", l.Aperture.Height)...)
		}
	case LightApertureMask:
		errors = append(errors, validateNonZeroVector(field+".axis", l.Axis)...)
		errors = append(errors, l.Attenuation.Validate(field+".attenuation")...)
		if len(l.Aperture.Mask) == 0 {
			errors = append(errors, ValidationError{
				Field:   field + ".aperture.mask",
				Message: "aperture mask needs at least one angle",
			})
		}
		for angle := range l.Aperture.Mask {
			errors = append(errors, validateInRange(field+".aperture.mask", angle, 0, 90)...)
		}
	default:
		errors = append(errors, ValidationError{
			Field:   field + ".type",
			Message: fmt.Sprintf("unknown light type '%s'", l.Type),
		})
	}

	return errors
}

func (a *Attenuation) Validate(field string) []ValidationError {
	var errors []ValidationError
	errors = append(errors, validateNonNegative(field+".constant", a.Constant)...)
	errors = append(errors, validateNonNegative(field+".linear", a.Linear)...)
	errors = append(errors, validateNonNegative(field+".quadratic", a.Quadratic)...)
	for distance, factor := range a.Curve {
		errors = append(errors, validateNonNegative(field+".curve", distance)...)
		errors = append(errors, validateNonNegative(field+".curve", factor)...)
	}
	return errors
}

func (c *Camera) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, validateInRange("camera.fov_degrees", c.FovDegrees, 1e-3, 179)...)
	errors = append(errors, validateNonZeroVector("camera.up", c.Up)...)
	if c.Position == c.LookAt {
		errors = append(errors, ValidationError{
			Field:   "camera.look_at",
			Message: "must differ from the camera position",
		})
	}

	return errors
}

func (i *Image) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, validatePositive("image.width", float64(i.Width))...)
	errors = append(errors, validatePositive("image.height", float64(i.Height))...)
	return errors
}

func (s *Shader) Validate() []ValidationError {
	var errors []ValidationError

	if _, err := trace.ParseReflectionMode(s.Mode); err != nil {
		errors = append(errors, ValidationError{
			Field:   "shader.mode",
			Message: err.Error(),
		})
	}
	if s.TMax != 0 && s.TMax <= trace.Epsilon {
		errors = append(errors, ValidationError{
			Field:   "shader.t_max",
			Message: fmt.Sprintf("must exceed %g", trace.Epsilon),
		})
	}
	errors = append(errors, validateNonNegative("shader.max_depth", float64(s.MaxDepth))...)
	errors = append(errors, validateNonNegative("shader.workers", float64(s.Workers))...)

	return errors
}

func (o *Output) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, validateNonNegative("output.thumbnail_width", float64(o.ThumbnailWidth))...)
	errors = append(errors, validateNonNegative("output.histogram_bins", float64(o.HistogramBins))...)
	return errors
}
