//go:build verify_optics
// +build verify_optics

package trace

import (
	"fmt"
	"math"

	"github.com/fogleman/pt/pt"
)

const (
	angleEpsilon       = 1e-7
	coplanarityEpsilon = 1e-6
)

func init() {
	fmt.Println("Optics verification enabled.")
}

func verifyReflectionLaw(incident, normal, reflected pt.Vector) {
	incidentAngle := math.Acos(math.Abs(incident.Dot(normal)))
	reflectedAngle := math.Acos(math.Abs(reflected.Dot(normal)))
	if math.Abs(incidentAngle-reflectedAngle) > angleEpsilon {
		panic("Angle of incidence should equal angle of reflection")
	}
	if math.Abs(incident.Cross(reflected).Dot(normal)) > coplanarityEpsilon {
		panic("Incident, normal and reflected vectors should be coplanar")
	}
}

func verifySnellLaw(incident, normal, refracted pt.Vector, n1, n2 float64) {
	sinI := incident.Cross(normal).Length()
	sinT := refracted.Cross(normal).Length()
	if math.Abs(n1*sinI-n2*sinT) > coplanarityEpsilon {
		panic(fmt.Sprintf("Snell's law violated: %f*%f != %f*%f", n1, sinI, n2, sinT))
	}
}
