package trace

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmbientReflection(t *testing.T) {
	assert := assert.New(t)

	assertColor(assert, C(0.5, 0, 0), AmbientReflection(gray(0.5), C(1, 0, 0)))
	assertColor(assert, C(0.1, 0.2, 0.3), AmbientReflection(C(0.2, 0.4, 0.6), gray(0.5)))
}

func TestLambertianReflection(t *testing.T) {
	assert := assert.New(t)
	normal := V(0, 1, 0)

	// Straight on
	assertColor(assert, C(0.5, 0.25, 0), LambertianReflection(C(1, 0.5, 0), gray(0.5), normal, V(0, -1, 0)))

	// 60 degrees off the normal
	d := V(math.Sin(math.Pi/3), -math.Cos(math.Pi/3), 0)
	assertColor(assert, gray(0.5), LambertianReflection(gray(1), gray(1), normal, d))

	// From behind and grazing
	assertColor(assert, C(0, 0, 0), LambertianReflection(gray(1), gray(1), normal, V(0, 1, 0)))
	assertColor(assert, C(0, 0, 0), LambertianReflection(gray(1), gray(1), normal, V(1, 0, 0)))
}

func TestBlinnSpecularReflection(t *testing.T) {
	assert := assert.New(t)
	normal := V(0, 1, 0)

	// Viewer looking straight down at a light shining straight down
	assertColor(assert, gray(0.8), BlinnSpecularReflection(gray(1), gray(0.8), normal, V(0, -1, 0), V(0, -1, 0), 50))

	// Half vector 45 degrees off the normal
	d := V(1, -1, 0).Normalize()
	v := V(0, -1, 0)
	h := v.Negate().Sub(d).Normalize()
	want := math.Pow(h.Dot(normal), 10)
	assertColor(assert, gray(want), BlinnSpecularReflection(gray(1), gray(1), normal, d, v, 10))

	// Light and viewer on opposite sides of the surface
	assertColor(assert, gray(0), BlinnSpecularReflection(gray(1), gray(1), normal, V(0, 1, 0), V(0, 1, 0), 10))
}

func TestPhongSpecularReflection(t *testing.T) {
	assert := assert.New(t)
	normal := V(0, 1, 0)

	// Mirror direction points back at the viewer
	assertColor(assert, gray(0.5), PhongSpecularReflection(gray(1), gray(0.5), normal, V(0, -1, 0), V(0, -1, 0), 20))

	// Mirror direction 45 degrees away from the viewer
	d := V(1, -1, 0).Normalize()
	want := math.Pow(math.Cos(math.Pi/4), 4)
	assertColor(assert, gray(want), PhongSpecularReflection(gray(1), gray(1), normal, d, V(0, -1, 0), 4))

	// Mirror direction perpendicular to the viewer
	assertColor(assert, gray(0), PhongSpecularReflection(gray(1), gray(1), normal, V(0, -1, 0), V(1, 0, 0), 4))
}

func TestTransmitLight(t *testing.T) {
	assert := assert.New(t)
	material := glass(1.5, C(1, 0.5, 0), 0.8)

	assertColor(assert, C(0.5, 0.25, 0), TransmitLight(gray(0.5), material, nil, true))
	assertColor(assert, gray(0.4), TransmitLight(gray(0.5), material, nil, false))
}
