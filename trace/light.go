package trace

import (
	"fmt"
	"math"

	"github.com/fogleman/pt/pt"
	lin "github.com/sgreben/piecewiselinear"
)

// Light is a light source. The set of variants is closed: AmbientLight, DirectionalLight,
// PointLight and InterferenceLight.
type Light interface {
	Color() pt.Color
	isLight()
}

// AmbientLight lights every surface uniformly and is never shadowed.
type AmbientLight struct {
	Col pt.Color
}

func (l AmbientLight) Color() pt.Color { return l.Col }
func (AmbientLight) isLight()          {}

// DirectionalLight is infinitely far away, shining along Direction.
type DirectionalLight struct {
	Col       pt.Color
	Direction pt.Vector
}

func (l DirectionalLight) Color() pt.Color { return l.Col }
func (DirectionalLight) isLight()          {}

// Orientation returns the (unit) direction the light travels.
func (l DirectionalLight) Orientation() pt.Vector {
	return l.Direction.Normalize()
}

// Attenuation describes how light fades with distance.
//
// With a Curve the attenuation is read from the curve at the distance; otherwise it is
// 1/(Constant + Linear*d + Quadratic*d^2). The zero value does not attenuate.
type Attenuation struct {
	Constant  float64
	Linear    float64
	Quadratic float64
	// Tabulated attenuation by distance in scene units
	Curve *lin.Function
}

// NewAttenuationCurve builds a tabulated attenuation from a map of distance to factor.
func NewAttenuationCurve(points map[float64]float64) *lin.Function {
	f := lin.Function{}
	for _, d := range sortedKeys(points) {
		f.X = append(f.X, d)
		f.Y = append(f.Y, points[d])
	}
	return &f
}

func (a Attenuation) At(distance float64) float64 {
	if a.Curve != nil && len(a.Curve.X) > 0 {
		return math.Max(0, curveAt(a.Curve, distance))
	}
	denom := a.Constant + a.Linear*distance + a.Quadratic*distance*distance
	if denom == 0 {
		return 1
	}
	return 1 / denom
}

// PointLight radiates from Position in every direction.
type PointLight struct {
	Col           pt.Color
	Position      pt.Vector
	Amplification float64
	Falloff       Attenuation
}

func (l PointLight) Color() pt.Color { return l.Col }
func (PointLight) isLight()          {}

// Orientation returns the direction the light travels when reaching p.
func (l PointLight) Orientation(p pt.Vector) pt.Vector {
	return p.Sub(l.Position).Normalize()
}

func (l PointLight) Attenuation(p pt.Vector) float64 {
	return l.Falloff.At(p.Sub(l.Position).Length())
}

// InterferenceLight is a coherent source behind an aperture. Its intensity varies with the
// direction of emission according to the aperture's diffraction pattern.
type InterferenceLight struct {
	Col      pt.Color
	Position pt.Vector
	// Emission axis, normal to the aperture
	Axis          pt.Vector
	Aperture      Aperture
	Amplification float64
	Falloff       Attenuation
}

func (l InterferenceLight) Color() pt.Color { return l.Col }
func (InterferenceLight) isLight()          {}

func (l InterferenceLight) Orientation(p pt.Vector) pt.Vector {
	return p.Sub(l.Position).Normalize()
}

func (l InterferenceLight) Attenuation(p pt.Vector) float64 {
	return l.Falloff.At(p.Sub(l.Position).Length())
}

// RelativeIntensity returns the diffraction intensity towards p relative to the on-axis
// intensity, in [0, 1].
func (l InterferenceLight) RelativeIntensity(p pt.Vector) float64 {
	axis := l.Axis.Normalize()
	w := p.Sub(l.Position).Normalize()
	if w.Dot(axis) <= 0 {
		return 0
	}
	u, v := basis(axis)
	return l.Aperture.intensity(w.Dot(u), w.Dot(v), w.Dot(axis))
}

// positioned is implemented by lights with a location in the scene.
type positioned interface {
	position() pt.Vector
}

func (l PointLight) position() pt.Vector        { return l.Position }
func (l InterferenceLight) position() pt.Vector { return l.Position }

func validateLight(l Light) error {
	switch l := l.(type) {
	case AmbientLight:
		return nil
	case DirectionalLight:
		if l.Direction.Length() == 0 {
			return fmt.Errorf("%w: directional light without direction", ErrUnknownLight)
		}
		return nil
	case PointLight:
		return nil
	case InterferenceLight:
		if l.Axis.Length() == 0 {
			return fmt.Errorf("%w: interference light without axis", ErrUnknownLight)
		}
		return l.Aperture.validate()
	case nil:
		return fmt.Errorf("%w: nil light", ErrUnknownLight)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownLight, l)
	}
}
