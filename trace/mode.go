package trace

import (
	"fmt"
	"strings"
)

// ReflectionMode selects which of the ambient, diffuse and specular terms a shader evaluates.
type ReflectionMode int

const (
	// NoLight skips lighting entirely and shows raw diffuse surface colors.
	NoLight ReflectionMode = iota
	Ambient
	Diffuse
	PhongSpecular
	BlinnSpecular
	// NoSpecularReflection is ambient plus diffuse.
	NoSpecularReflection
	Phong
	Blinn
)

// DefaultReflectionMode is the full Blinn model.
const DefaultReflectionMode = Blinn

var modeNames = map[ReflectionMode]string{
	NoLight:              "no_light",
	Ambient:              "ambient",
	Diffuse:              "diffuse",
	PhongSpecular:        "phong_specular",
	BlinnSpecular:        "blinn_specular",
	NoSpecularReflection: "no_specular_reflection",
	Phong:                "phong",
	Blinn:                "blinn",
}

func (m ReflectionMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("ReflectionMode(%d)", int(m))
}

func (m ReflectionMode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// ParseReflectionMode accepts the snake_case mode names; the empty string selects the default.
func ParseReflectionMode(s string) (ReflectionMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultReflectionMode, nil
	}
	for mode, name := range modeNames {
		if name == s {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownReflectionMode, s)
}

func (m ReflectionMode) hasAmbient() (bool, error) {
	switch m {
	case NoLight, Diffuse, PhongSpecular, BlinnSpecular:
		return false, nil
	case Ambient, NoSpecularReflection, Phong, Blinn:
		return true, nil
	}
	return false, fmt.Errorf("%w: %v", ErrUnknownReflectionMode, m)
}

func (m ReflectionMode) hasDiffuse() (bool, error) {
	switch m {
	case NoLight, Ambient, PhongSpecular, BlinnSpecular:
		return false, nil
	case Diffuse, NoSpecularReflection, Phong, Blinn:
		return true, nil
	}
	return false, fmt.Errorf("%w: %v", ErrUnknownReflectionMode, m)
}

type specularModel int

const (
	noSpecular specularModel = iota
	phongSpecular
	blinnSpecular
)

func (m ReflectionMode) specular() (specularModel, error) {
	switch m {
	case NoLight, Ambient, Diffuse, NoSpecularReflection:
		return noSpecular, nil
	case PhongSpecular, Phong:
		return phongSpecular, nil
	case BlinnSpecular, Blinn:
		return blinnSpecular, nil
	}
	return noSpecular, fmt.Errorf("%w: %v", ErrUnknownReflectionMode, m)
}
