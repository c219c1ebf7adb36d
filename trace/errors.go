package trace

import "errors"

var (
	// ErrRayAlreadyIntersected is returned when a ray carrying an intersection is shaded again.
	ErrRayAlreadyIntersected = errors.New("ray already carries an intersection")
	ErrUnknownReflectionMode = errors.New("reflection mode not recognized")
	ErrUnknownLight          = errors.New("light variant not implemented")
	ErrInvalidTMax           = errors.New("t_max must exceed the intersection epsilon")
	ErrInvalidDepth          = errors.New("recursion depth must be at least 1")
	ErrInvalidAperture       = errors.New("aperture not recognized")
)
