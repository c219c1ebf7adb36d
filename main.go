package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/jdginn/go-whitted/trace"
	traceConfig "github.com/jdginn/go-whitted/trace/config"
	traceExperiment "github.com/jdginn/go-whitted/trace/experiment"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(18)
	docStyle   = lipgloss.NewStyle().Margin(1, 2)
)

var CLI struct {
	Render   RenderCmd   `cmd:"" help:"Render a scene"`
	Validate ValidateCmd `cmd:"" help:"Validate a scene config without rendering"`
}

func loadConfig(path string) (*traceConfig.SceneConfig, error) {
	return traceConfig.LoadFromFile(path, traceConfig.LoadOptions{
		ValidateImmediately: true,
		ResolvePaths:        true,
		MergeFiles:          true,
	})
}

type RenderCmd struct {
	Config       string `arg:"" name:"config" help:"scene config to render"`
	NoExperiment bool   `name:"no-experiment" help:"write outputs to --output instead of a new experiment directory"`
	Output       string `name:"output" default:"." help:"output directory when --no-experiment is set"`
	Experiments  string `name:"experiments" default:"experiments" help:"root directory for experiment directories"`
	Publish      bool   `name:"publish" help:"upload the experiment directory to S3"`
	EnvFile      string `name:"env-file" default:".env" help:"file holding S3_* settings"`
}

func (c RenderCmd) Run() error {
	config, err := loadConfig(c.Config)
	if err != nil {
		return err
	}

	scene, err := config.Scene()
	if err != nil {
		return err
	}
	params, err := config.Shader.Params()
	if err != nil {
		return err
	}
	params.Diagnostics = &trace.Diagnostics{}
	params.Logger = log.Default()
	shader, err := scene.NewShader(params)
	if err != nil {
		return err
	}

	img, stats, err := trace.Render(context.Background(), shader, scene.Camera, config.Image.RenderParams(config.Shader.Workers))
	if err != nil {
		return err
	}

	var expDir *traceExperiment.ExperimentDir
	filePath := func(name string) string { return name }
	if c.NoExperiment {
		if err := os.MkdirAll(c.Output, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		filePath = func(name string) string { return filepath.Join(c.Output, name) }
	} else {
		expDir, err = traceExperiment.CreateExperimentDirectory(c.Experiments)
		if err != nil {
			return fmt.Errorf("creating experiment directory: %w", err)
		}
		filePath = expDir.GetFilePath
		if err := traceConfig.SaveToFile(config, filePath("config.yaml")); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
	}

	luminance := trace.ComputeImageStats(img)

	if err := trace.SaveImage(filePath("render.png"), img); err != nil {
		return err
	}
	if err := trace.SaveThumbnail(filePath("thumbnail.png"), img, config.Output.ThumbnailWidthOrDefault()); err != nil {
		return err
	}
	if err := trace.PlotLuminanceHistogram(filePath("histogram.png"), img, 400, 300, config.Output.HistogramBinsOrDefault()); err != nil {
		return err
	}
	summary := trace.NewRenderSummary(shader, scene.Camera, stats, luminance)
	if err := trace.SaveRenderSummaryJSON(filePath("summary.json"), summary); err != nil {
		return err
	}

	if c.Publish {
		if expDir == nil {
			return fmt.Errorf("--publish requires an experiment directory")
		}
		publishConfig, err := traceExperiment.PublishConfigFromEnv(c.EnvFile)
		if err != nil {
			return err
		}
		publisher, err := traceExperiment.NewPublisher(publishConfig)
		if err != nil {
			return err
		}
		if err := publisher.Publish(context.Background(), expDir); err != nil {
			return err
		}
	}

	location := c.Output
	if expDir != nil {
		location = expDir.Path
	}
	fmt.Println(renderReport(shader, stats, luminance, location))
	return nil
}

func renderReport(shader *trace.Shader, stats trace.RenderStats, luminance trace.ImageStats, location string) string {
	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
	}
	depth := "direct"
	if shader.Recursive() {
		depth = fmt.Sprintf("recursive, depth %d", shader.MaxDepth())
	}
	lines := []string{
		titleStyle.Render("Render complete"),
		row("image", fmt.Sprintf("%dx%d", stats.Width, stats.Height)),
		row("shader", fmt.Sprintf("%s (%s)", shader.Mode(), depth)),
		row("rays shaded", fmt.Sprint(stats.RaysShaded)),
		row("ambiguous media", fmt.Sprint(stats.AmbiguousMedia)),
		row("elapsed", stats.Elapsed.String()),
		row("mean luminance", fmt.Sprintf("%.4f", luminance.Mean)),
		row("output", location),
	}
	return docStyle.Render(strings.Join(lines, "\n"))
}

type ValidateCmd struct {
	Config string `arg:"" name:"config" help:"scene config to validate"`
}

func (c ValidateCmd) Run() error {
	config, err := traceConfig.LoadFromFile(c.Config, traceConfig.LoadOptions{
		ResolvePaths: true,
		MergeFiles:   true,
	})
	if err != nil {
		return err
	}
	if errs := config.Validate(); len(errs) > 0 {
		return fmt.Errorf("validation errors:\n%s", traceConfig.FormatValidationErrors(errs))
	}

	scene, err := config.Scene()
	if err != nil {
		return err
	}
	params, err := config.Shader.Params()
	if err != nil {
		return err
	}
	if _, err := scene.NewShader(params); err != nil {
		return err
	}
	fmt.Println(titleStyle.Render(fmt.Sprintf("%s: %d geometries, %d lights", c.Config, len(scene.Space.Geometries), len(scene.Lights))))
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)
	err := ctx.Run()
	if err != nil {
		log.Fatal(err)
	}
}
