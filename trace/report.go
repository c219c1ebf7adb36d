package trace

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveImage writes img as a PNG.
func SaveImage(filename string, img *image.RGBA) error {
	dc := gg.NewContextForRGBA(img)
	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("saving image: %w", err)
	}
	return nil
}

// Thumbnail scales img to the given width, keeping its aspect ratio.
func Thumbnail(img image.Image, width uint) image.Image {
	return resize.Resize(width, 0, img, resize.Lanczos3)
}

func SaveThumbnail(filename string, img image.Image, width uint) error {
	if err := gg.SavePNG(filename, Thumbnail(img, width)); err != nil {
		return fmt.Errorf("saving thumbnail: %w", err)
	}
	return nil
}

// PlotLuminanceHistogram saves a histogram of the pixel luminances of img.
func PlotLuminanceHistogram(filename string, img image.Image, X, Y int, bins int) error {
	p := plot.New()
	p.Title.Text = "Luminance"
	p.X.Label.Text = "Relative luminance"
	p.Y.Label.Text = "Pixels"

	hist, err := plotter.NewHist(plotter.Values(Luminance(img)), bins)
	if err != nil {
		return fmt.Errorf("building histogram: %w", err)
	}
	p.Add(hist)
	if err := p.Save(vg.Points(float64(X)), vg.Points(float64(Y)), filename); err != nil {
		return fmt.Errorf("saving histogram: %w", err)
	}
	return nil
}
