package trace

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"runtime"
	"time"

	"github.com/fogleman/pt/pt"
	"golang.org/x/sync/errgroup"
)

// RenderParams sizes a render.
type RenderParams struct {
	Width  int
	Height int
	// Rows rendered concurrently; runtime.NumCPU() when <= 0
	Workers int
}

// RenderStats summarizes a finished render.
type RenderStats struct {
	Width          int
	Height         int
	RaysShaded     int64
	AmbiguousMedia int64
	Elapsed        time.Duration
}

// Render shades one primary ray per pixel. Rows are independent units of work; the first
// shading error cancels the remaining rows and is returned.
func Render(ctx context.Context, shader *Shader, camera Camera, params RenderParams) (*image.RGBA, RenderStats, error) {
	if params.Width <= 0 || params.Height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("invalid image size %dx%d", params.Width, params.Height)
	}
	workers := params.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	start := time.Now()
	raysBefore := shader.Diagnostics().RaysShaded()
	ambiguousBefore := shader.Diagnostics().AmbiguousMedia()

	img := image.NewRGBA(image.Rect(0, 0, params.Width, params.Height))
	// Every primary ray starts in the medium around the camera.
	index := shader.EvaluateRefractiveIndex(camera.Position)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y := 0; y < params.Height; y++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for x := 0; x < params.Width; x++ {
				r := NewRay(camera.Position, camera.Direction(x, y, params.Width, params.Height), index)
				c, err := shader.Shade(r)
				if err != nil {
					return fmt.Errorf("pixel (%d, %d): %w", x, y, err)
				}
				img.SetRGBA(x, y, toRGBA(c))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, err
	}

	return img, RenderStats{
		Width:          params.Width,
		Height:         params.Height,
		RaysShaded:     shader.Diagnostics().RaysShaded() - raysBefore,
		AmbiguousMedia: shader.Diagnostics().AmbiguousMedia() - ambiguousBefore,
		Elapsed:        time.Since(start),
	}, nil
}

// toRGBA clamps each channel to [0, 1].
func toRGBA(c pt.Color) color.RGBA {
	channel := func(v float64) uint8 {
		if math.IsNaN(v) {
			return 0
		}
		return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return color.RGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 255}
}
