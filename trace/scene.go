package trace

import (
	"fmt"

	"github.com/fogleman/pt/pt"
)

// Scene is everything a render needs besides the shader settings.
type Scene struct {
	Space  *Space
	Lights []Light
	Camera Camera
}

// NewShader builds a shader over the scene's geometry and lights.
func (s *Scene) NewShader(params ShaderParams) (*Shader, error) {
	return NewShader(s.Space, s.Lights, params)
}

// LoadTexture decodes an image file (PNG, JPEG, GIF) into a texture sampled by uv.
func LoadTexture(path string) (Texture, error) {
	texture, err := pt.LoadTexture(path)
	if err != nil {
		return nil, fmt.Errorf("loading texture %s: %w", path, err)
	}
	return texture, nil
}
