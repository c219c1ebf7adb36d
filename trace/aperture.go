package trace

import (
	"fmt"
	"math"
	"sort"

	lin "github.com/sgreben/piecewiselinear"
)

// ApertureKind enumerates the interference light apertures.
type ApertureKind int

const (
	// LinearAperture is a single slit of Width along the light's first transverse axis.
	LinearAperture ApertureKind = iota + 1
	// RectangularAperture is a Width x Height rectangle.
	RectangularAperture
	// EllipticalAperture has semi-axes Width and Height.
	EllipticalAperture
	// ApertureMask reads the intensity from a tabulated angular profile.
	ApertureMask
)

func (k ApertureKind) String() string {
	switch k {
	case LinearAperture:
		return "linear_aperture"
	case RectangularAperture:
		return "rectangular_aperture"
	case EllipticalAperture:
		return "elliptical_aperture"
	case ApertureMask:
		return "aperture_mask"
	}
	return fmt.Sprintf("ApertureKind(%d)", int(k))
}

// Aperture parametrizes an interference light's diffraction pattern. Lengths share the unit
// of Wavelength.
type Aperture struct {
	Kind       ApertureKind
	Wavelength float64
	Width      float64
	Height     float64
	// Relative intensity by off-axis angle in degrees, for ApertureMask
	Mask *lin.Function
}

// NewApertureMask builds a mask profile from a map of off-axis angle (degrees) to intensity.
func NewApertureMask(profile map[float64]float64) *lin.Function {
	f := lin.Function{}
	for _, angle := range sortedKeys(profile) {
		f.X = append(f.X, angle)
		f.Y = append(f.Y, profile[angle])
	}
	return &f
}

func sortedKeys(m map[float64]float64) []float64 {
	keys := make([]float64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Float64s(keys)
	return keys
}

func (a Aperture) validate() error {
	switch a.Kind {
	case LinearAperture, RectangularAperture, EllipticalAperture:
		if a.Wavelength <= 0 {
			return fmt.Errorf("%w: %v needs a positive wavelength", ErrInvalidAperture, a.Kind)
		}
		if a.Width <= 0 || (a.Kind != LinearAperture && a.Height <= 0) {
			return fmt.Errorf("%w: %v needs positive dimensions", ErrInvalidAperture, a.Kind)
		}
		return nil
	case ApertureMask:
		if a.Mask == nil || len(a.Mask.X) == 0 {
			return fmt.Errorf("%w: aperture mask without profile", ErrInvalidAperture)
		}
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInvalidAperture, a.Kind)
}

// curveAt evaluates f, holding the end values outside its domain.
func curveAt(f *lin.Function, x float64) float64 {
	x = math.Max(f.X[0], math.Min(f.X[len(f.X)-1], x))
	return f.At(x)
}

func sinc(x float64) float64 {
	if math.Abs(x) < 1e-12 {
		return 1
	}
	return math.Sin(x) / x
}

// airy is the normalized Airy pattern (2 J1(x)/x)^2.
func airy(x float64) float64 {
	if math.Abs(x) < 1e-12 {
		return 1
	}
	j := 2 * math.J1(x) / x
	return j * j
}

// intensity takes the direction cosines of the emission direction against the aperture
// frame (su, sv transverse, cosAxis along the axis).
func (a Aperture) intensity(su, sv, cosAxis float64) float64 {
	k := math.Pi / a.Wavelength
	switch a.Kind {
	case LinearAperture:
		s := sinc(k * a.Width * su)
		return s * s
	case RectangularAperture:
		x := sinc(k * a.Width * su)
		y := sinc(k * a.Height * sv)
		return x * x * y * y
	case EllipticalAperture:
		rho := 2 * k * math.Hypot(a.Width*su, a.Height*sv)
		return airy(rho)
	case ApertureMask:
		angle := math.Acos(math.Min(1, cosAxis)) * 180 / math.Pi
		return math.Min(1, math.Max(0, curveAt(a.Mask, angle)))
	}
	panic("Code bug: unvalidated aperture")
}
