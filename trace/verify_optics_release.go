//go:build !verify_optics
// +build !verify_optics

package trace

import "github.com/fogleman/pt/pt"

// Empty stubs that will be optimized out
func verifyReflectionLaw(incident, normal, reflected pt.Vector) {}

func verifySnellLaw(incident, normal, refracted pt.Vector, n1, n2 float64) {}
