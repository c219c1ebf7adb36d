package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReflectionModeComponents(t *testing.T) {
	assert := assert.New(t)

	for _, tc := range []struct {
		mode     ReflectionMode
		ambient  bool
		diffuse  bool
		specular specularModel
	}{
		{NoLight, false, false, noSpecular},
		{Ambient, true, false, noSpecular},
		{Diffuse, false, true, noSpecular},
		{PhongSpecular, false, false, phongSpecular},
		{BlinnSpecular, false, false, blinnSpecular},
		{NoSpecularReflection, true, true, noSpecular},
		{Phong, true, true, phongSpecular},
		{Blinn, true, true, blinnSpecular},
	} {
		ambient, err := tc.mode.hasAmbient()
		assert.NoError(err)
		assert.Equal(tc.ambient, ambient, tc.mode.String())

		diffuse, err := tc.mode.hasDiffuse()
		assert.NoError(err)
		assert.Equal(tc.diffuse, diffuse, tc.mode.String())

		specular, err := tc.mode.specular()
		assert.NoError(err)
		assert.Equal(tc.specular, specular, tc.mode.String())
	}

	_, err := ReflectionMode(42).hasAmbient()
	assert.ErrorIs(err, ErrUnknownReflectionMode)
	_, err = ReflectionMode(-1).specular()
	assert.ErrorIs(err, ErrUnknownReflectionMode)
}

func TestParseReflectionMode(t *testing.T) {
	assert := assert.New(t)

	for mode := NoLight; mode <= Blinn; mode++ {
		parsed, err := ParseReflectionMode(mode.String())
		assert.NoError(err)
		assert.Equal(mode, parsed)
	}

	mode, err := ParseReflectionMode("")
	assert.NoError(err)
	assert.Equal(Blinn, mode)

	mode, err = ParseReflectionMode("  Phong ")
	assert.NoError(err)
	assert.Equal(Phong, mode)

	_, err = ParseReflectionMode("cook_torrance")
	assert.ErrorIs(err, ErrUnknownReflectionMode)

	assert.False(ReflectionMode(8).Valid())
	assert.Equal("ReflectionMode(8)", ReflectionMode(8).String())
}
