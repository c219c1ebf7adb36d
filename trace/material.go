package trace

import (
	"github.com/fogleman/pt/pt"
)

// Texture is a color lookup by surface coordinate. pt.Texture satisfies it.
type Texture interface {
	Sample(u, v float64) pt.Color
}

// Material describes how a surface interacts with light.
//
// Reflectivity and Transparency are in [0, 1]. A nonzero value switches the corresponding
// indirect illumination branch on.
type Material struct {
	Ambient           pt.Color
	Diffuse           pt.Color
	Specular          pt.Color
	TransparencyColor pt.Color
	Shininess         float64
	Reflectivity      float64
	Transparency      float64
	// Only meaningful when the material is transparent
	Index float64
	// Optional, modulates the ambient and diffuse colors
	Texture Texture
}

// DefaultMaterial is a plain opaque white material.
func DefaultMaterial() *Material {
	return &Material{
		Ambient:  pt.White,
		Diffuse:  pt.White,
		Specular: pt.Black,
		Index:    VacuumIndex,
	}
}

func (m *Material) IsReflective() bool {
	return m.Reflectivity != 0
}

func (m *Material) IsTransparent() bool {
	return m.Transparency != 0
}

// RefractiveIndex returns the material's index, or the vacuum index for opaque materials.
func (m *Material) RefractiveIndex() float64 {
	if !m.IsTransparent() {
		return VacuumIndex
	}
	return m.Index
}

func (m *Material) textured(c pt.Color, uv *pt.Vector) pt.Color {
	if m.Texture == nil || uv == nil {
		return c
	}
	return c.Mul(m.Texture.Sample(uv.X, uv.Y))
}

// AmbientAt returns the ambient color, modulated by the texture when uv is known.
func (m *Material) AmbientAt(uv *pt.Vector) pt.Color {
	return m.textured(m.Ambient, uv)
}

// DiffuseAt returns the diffuse color, modulated by the texture when uv is known.
func (m *Material) DiffuseAt(uv *pt.Vector) pt.Color {
	return m.textured(m.Diffuse, uv)
}

// SpecularAt returns the specular color. Textures do not affect highlights.
func (m *Material) SpecularAt(uv *pt.Vector) pt.Color {
	return m.Specular
}

func (m *Material) TransparencyAt(uv *pt.Vector) pt.Color {
	return m.TransparencyColor
}
