package experiment

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const (
	ExperimentsDir = "experiments"
	LatestSymlink  = "latest"
)

type ExperimentDir struct {
	Path      string    // Absolute path to experiment directory
	ID        string    // Unique experiment identifier
	Timestamp time.Time // When the experiment was created
}

// CreateExperimentDirectory creates a new experiment directory under root (ExperimentsDir
// when empty) and points the latest symlink at it
func CreateExperimentDirectory(root string) (*ExperimentDir, error) {
	if root == "" {
		root = ExperimentsDir
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating experiments directory: %w", err)
	}

	id := GenerateExperimentID()

	absPath, err := filepath.Abs(filepath.Join(root, id))
	if err != nil {
		return nil, fmt.Errorf("getting absolute path: %w", err)
	}

	if err := os.Mkdir(absPath, 0755); err != nil {
		return nil, fmt.Errorf("creating experiment directory: %w", err)
	}

	latestPath := filepath.Join(root, LatestSymlink)
	_ = os.Remove(latestPath) // Remove existing symlink if it exists
	if err := os.Symlink(id, latestPath); err != nil {
		// Don't fail if symlink creation fails
		fmt.Printf("Warning: failed to create latest symlink: %v\n", err)
	}

	return &ExperimentDir{
		Path:      absPath,
		ID:        id,
		Timestamp: time.Now().UTC(),
	}, nil
}

// GetFilePath returns the absolute path for a file in the experiment directory
func (e *ExperimentDir) GetFilePath(filename string) string {
	return filepath.Join(e.Path, filename)
}

// Files lists the regular files written to the experiment directory, sorted by name
func (e *ExperimentDir) Files() ([]string, error) {
	entries, err := os.ReadDir(e.Path)
	if err != nil {
		return nil, fmt.Errorf("listing experiment directory: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}
