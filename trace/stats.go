package trace

import (
	"image"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ImageStats describes the luminance distribution of a rendered image.
type ImageStats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	// Fraction of pixels that are exactly black
	BlackFraction float64 `json:"blackFraction"`
}

// Luminance returns the Rec. 709 relative luminance of every pixel, in [0, 1], row by row.
func Luminance(img image.Image) []float64 {
	b := img.Bounds()
	lum := make([]float64, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			lum = append(lum, (0.2126*float64(r)+0.7152*float64(g)+0.0722*float64(bl))/0xffff)
		}
	}
	return lum
}

func ComputeImageStats(img image.Image) ImageStats {
	lum := Luminance(img)
	if len(lum) == 0 {
		return ImageStats{}
	}
	black := 0
	for _, l := range lum {
		if l == 0 {
			black++
		}
	}
	sorted := append([]float64(nil), lum...)
	sort.Float64s(sorted)
	return ImageStats{
		Mean:          stat.Mean(lum, nil),
		StdDev:        stat.StdDev(lum, nil),
		Median:        stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Min:           floats.Min(lum),
		Max:           floats.Max(lum),
		BlackFraction: float64(black) / float64(len(lum)),
	}
}
