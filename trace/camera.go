package trace

import (
	"math"

	"github.com/fogleman/pt/pt"
)

// Camera is a pinhole camera.
type Camera struct {
	Position pt.Vector
	LookAt   pt.Vector
	Up       pt.Vector
	// Vertical field of view
	FovDegrees float64
}

// Forward is the unit viewing direction.
func (c Camera) Forward() pt.Vector {
	return c.LookAt.Sub(c.Position).Normalize()
}

// Right is the unit vector pointing to the right of the image.
func (c Camera) Right() pt.Vector {
	return c.Forward().Cross(c.Up).Normalize()
}

// TrueUp is the unit vector pointing to the top of the image, orthogonal to Forward.
func (c Camera) TrueUp() pt.Vector {
	return c.Right().Cross(c.Forward()).Normalize()
}

// Direction returns the unit direction through the center of pixel (x, y) of a
// width x height image. Pixel (0, 0) is the top-left corner.
func (c Camera) Direction(x, y, width, height int) pt.Vector {
	halfHeight := math.Tan(c.FovDegrees * math.Pi / 180 / 2)
	halfWidth := halfHeight * float64(width) / float64(height)
	u := (2*(float64(x)+0.5)/float64(width) - 1) * halfWidth
	v := (1 - 2*(float64(y)+0.5)/float64(height)) * halfHeight
	return c.Forward().
		Add(c.Right().MulScalar(u)).
		Add(c.TrueUp().MulScalar(v)).
		Normalize()
}
