package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MergeMaterials merges materials from a file with inline materials
func (m *Materials) MergeMaterials() error {
	if m.FromFile == "" {
		return nil
	}

	// Read and parse the materials file
	data, err := os.ReadFile(m.FromFile)
	if err != nil {
		return fmt.Errorf("reading materials file: %w", err)
	}

	var fileMaterials map[string]Material
	if err := json.Unmarshal(data, &fileMaterials); err != nil {
		return fmt.Errorf("parsing materials file: %w", err)
	}

	// Initialize inline map if it doesn't exist
	if m.Inline == nil {
		m.Inline = make(map[string]Material)
	}

	// Textures in the materials file are relative to that file
	resolver := NewPathResolver(filepath.Dir(m.FromFile))

	// Merge materials, with inline taking precedence
	for name, material := range fileMaterials {
		if _, exists := m.Inline[name]; !exists {
			material.Texture = resolver.ResolvePath(material.Texture)
			m.Inline[name] = material
		}
	}

	return nil
}

// MergeSurfaceAssignments adds the 3MF object to material assignments from the assignments
// file. Inline assignments win. Every assignment taken from the file must name a known
// material, so merge materials first.
func (sa *SurfaceAssignments) MergeSurfaceAssignments(materials *Materials) error {
	if sa.FromFile == "" {
		return nil
	}

	data, err := os.ReadFile(sa.FromFile)
	if err != nil {
		return fmt.Errorf("reading surface assignments file: %w", err)
	}

	var fileAssignments map[string]string
	if err := json.Unmarshal(data, &fileAssignments); err != nil {
		return fmt.Errorf("parsing surface assignments file: %w", err)
	}

	var unknown []string
	for object, material := range fileAssignments {
		if _, overridden := sa.Inline[object]; overridden {
			continue
		}
		if !materials.HasMaterial(material) {
			unknown = append(unknown, fmt.Sprintf("%s -> %s", object, material))
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%s assigns undefined materials: %s", sa.FromFile, strings.Join(unknown, ", "))
	}

	if sa.Inline == nil {
		sa.Inline = make(map[string]string, len(fileAssignments))
	}
	for object, material := range fileAssignments {
		if _, exists := sa.Inline[object]; !exists {
			sa.Inline[object] = material
		}
	}
	return nil
}

// HasMaterial reports whether a material of that name is defined inline or was merged in
func (m *Materials) HasMaterial(name string) bool {
	_, exists := m.Inline[name]
	return exists
}

// LoadAndMerge pulls the materials file and then the surface assignments file into the
// inline sections
func (c *SceneConfig) LoadAndMerge() error {
	if err := c.Materials.MergeMaterials(); err != nil {
		return fmt.Errorf("merging materials: %w", err)
	}
	if err := c.SurfaceAssignments.MergeSurfaceAssignments(&c.Materials); err != nil {
		return fmt.Errorf("merging surface assignments: %w", err)
	}
	return nil
}
