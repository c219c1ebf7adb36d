package trace

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fogleman/pt/pt"
)

// JSON schema types
type VectorJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type CameraJSON struct {
	Position   VectorJSON `json:"position"`
	LookAt     VectorJSON `json:"lookAt"`
	Up         VectorJSON `json:"up"`
	FovDegrees float64    `json:"fovDegrees"`
}

type ShaderJSON struct {
	Mode     string  `json:"mode"`
	TMax     float64 `json:"tMax"`
	MaxDepth int     `json:"maxDepth,omitempty"`
	Lights   int     `json:"lights"`
}

type RenderSummaryJSON struct {
	Width          int        `json:"width"`
	Height         int        `json:"height"`
	Camera         CameraJSON `json:"camera"`
	Shader         ShaderJSON `json:"shader"`
	RaysShaded     int64      `json:"raysShaded"`
	AmbiguousMedia int64      `json:"ambiguousMedia"`
	ElapsedMS      int64      `json:"elapsedMs"`
	Luminance      ImageStats `json:"luminance"`
}

// Conversion functions
func VectorToJSON(v pt.Vector) VectorJSON {
	return VectorJSON{X: v.X, Y: v.Y, Z: v.Z}
}

func CameraToJSON(c Camera) CameraJSON {
	return CameraJSON{
		Position:   VectorToJSON(c.Position),
		LookAt:     VectorToJSON(c.LookAt),
		Up:         VectorToJSON(c.Up),
		FovDegrees: c.FovDegrees,
	}
}

// NewRenderSummary collects everything worth keeping about a finished render.
func NewRenderSummary(shader *Shader, camera Camera, stats RenderStats, luminance ImageStats) RenderSummaryJSON {
	return RenderSummaryJSON{
		Width:  stats.Width,
		Height: stats.Height,
		Camera: CameraToJSON(camera),
		Shader: ShaderJSON{
			Mode:     shader.Mode().String(),
			TMax:     shader.tMax,
			MaxDepth: shader.MaxDepth(),
			Lights:   len(shader.lights),
		},
		RaysShaded:     stats.RaysShaded,
		AmbiguousMedia: stats.AmbiguousMedia,
		ElapsedMS:      stats.Elapsed.Milliseconds(),
		Luminance:      luminance,
	}
}

// SaveRenderSummaryJSON writes the summary as indented JSON.
func SaveRenderSummaryJSON(filename string, summary RenderSummaryJSON) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling render summary: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}
