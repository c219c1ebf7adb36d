package trace

import (
	"sync/atomic"
)

// Diagnostics collects counters shared by every shader of a render. It is safe for
// concurrent use.
type Diagnostics struct {
	ambiguousMedia atomic.Int64
	raysShaded     atomic.Int64
}

// AmbiguousMedia is how many times a point was found inside more than one closed geometry
// while looking up a refractive index.
func (d *Diagnostics) AmbiguousMedia() int64 {
	return d.ambiguousMedia.Load()
}

// RaysShaded counts every ray (primary or secondary) submitted for intersection.
func (d *Diagnostics) RaysShaded() int64 {
	return d.raysShaded.Load()
}

// recordAmbiguousMedium reports whether this was the first occurrence.
func (d *Diagnostics) recordAmbiguousMedium() bool {
	return d.ambiguousMedia.Add(1) == 1
}
