package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadOptions configures the behavior of config loading
type LoadOptions struct {
	ValidateImmediately bool
	ResolvePaths        bool
	MergeFiles          bool
}

// LoadFromFile loads a SceneConfig from a YAML file
func LoadFromFile(path string, opts LoadOptions) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := &SceneConfig{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if opts.ResolvePaths {
		baseDir, err := filepath.Abs(filepath.Dir(path))
		if err != nil {
			return nil, fmt.Errorf("resolving config directory: %w", err)
		}
		resolver := NewPathResolver(baseDir)
		if err := config.ResolvePaths(resolver); err != nil {
			return nil, fmt.Errorf("resolving paths: %w", err)
		}
	}

	if opts.MergeFiles {
		if err := config.LoadAndMerge(); err != nil {
			return nil, fmt.Errorf("merging external files: %w", err)
		}
	}

	if opts.ValidateImmediately {
		if errs := config.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("validation errors:\n%s", FormatValidationErrors(errs))
		}
	}

	return config, nil
}

// SaveToFile saves a SceneConfig to a YAML file
func SaveToFile(config *SceneConfig, path string) error {
	// Update metadata before saving
	collector := NewMetadataCollector()
	collector.PopulateMetadata(config)

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ResolvePaths resolves all relative paths in the config to absolute paths
func (c *SceneConfig) ResolvePaths(resolver *PathResolver) error {
	c.Input.Mesh.Path = resolver.ResolvePath(c.Input.Mesh.Path)

	if c.Materials.FromFile != "" {
		c.Materials.FromFile = resolver.ResolvePath(c.Materials.FromFile)
	}
	for name, material := range c.Materials.Inline {
		material.Texture = resolver.ResolvePath(material.Texture)
		c.Materials.Inline[name] = material
	}

	if c.SurfaceAssignments.FromFile != "" {
		c.SurfaceAssignments.FromFile = resolver.ResolvePath(c.SurfaceAssignments.FromFile)
	}

	return nil
}
