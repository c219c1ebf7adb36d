package trace

import (
	"math"

	"github.com/fogleman/pt/pt"
)

// Local illumination terms. Vectors are unit length. The light orientation d is the
// direction the light travels, so a light shining straight onto a surface with normal N
// has d = -N.

// AmbientReflection filters the ambient light color by the material color.
func AmbientReflection(light, material pt.Color) pt.Color {
	return light.Mul(material)
}

// LambertianReflection is the diffuse term light*material*cos(theta), black when the light
// is behind the surface.
func LambertianReflection(light, material pt.Color, normal, d pt.Vector) pt.Color {
	cosTheta := normal.Dot(d.Negate())
	if cosTheta < 0 {
		return pt.Black
	}
	return light.Mul(material).MulScalar(cosTheta)
}

// BlinnSpecularReflection uses the half vector between the light and the viewer. v is the
// viewing ray direction (towards the surface).
func BlinnSpecularReflection(light, material pt.Color, normal, d, v pt.Vector, shininess float64) pt.Color {
	h := v.Negate().Sub(d)
	if h.Length() == 0 {
		return pt.Black
	}
	cosAlpha := normal.Dot(h.Normalize())
	if cosAlpha < 0 {
		return pt.Black
	}
	return light.Mul(material).MulScalar(math.Pow(cosAlpha, shininess))
}

// PhongSpecularReflection compares the mirrored light direction with the direction towards
// the viewer.
func PhongSpecularReflection(light, material pt.Color, normal, d, v pt.Vector, shininess float64) pt.Color {
	r := Reflect(d, normal)
	cosAlpha := math.Max(0, r.Dot(v.Negate()))
	if cosAlpha == 0 {
		return pt.Black
	}
	return light.Mul(material).MulScalar(math.Pow(cosAlpha, shininess))
}

// TransmitLight filters light crossing a transparent surface. Entering the material filters
// by its transmission color; leaving only scales by the scalar transparency since the color
// was applied on entry.
func TransmitLight(light pt.Color, material *Material, uv *pt.Vector, entering bool) pt.Color {
	if entering {
		return light.Mul(material.TransparencyAt(uv))
	}
	return light.MulScalar(material.Transparency)
}
