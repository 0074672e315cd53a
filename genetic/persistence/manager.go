// Package persistence checkpoints a candidate pool to disk so an
// interrupted training run can resume from its last saved generation.
// Checkpoints are YAML: slower than a binary format but diffable, and
// checkpoint I/O is nowhere near the training hot path.
package persistence

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/neat-arena/genetic"
)

// Manager handles save/load for one named population file. It is generic
// over the solution type S so one Manager[*neat.Genome] instance serves a
// NEAT trainer checkpoint without any NEAT-specific code living here.
type Manager[S genetic.Solution] struct {
	basePath string
}

// NewManager creates a manager rooted at the given base directory.
func NewManager[S genetic.Solution](basePath string) *Manager[S] {
	return &Manager[S]{basePath: basePath}
}

// FilePath returns the checkpoint path for a population name.
func (m *Manager[S]) FilePath(name string) string {
	return filepath.Join(m.basePath, name+".yaml")
}

// Exists checks if a checkpoint file exists.
func (m *Manager[S]) Exists(name string) bool {
	_, err := os.Stat(m.FilePath(name))
	return err == nil
}

// Save writes the population checkpoint to disk.
func (m *Manager[S]) Save(name string, dto PopulationDTO[S]) error {
	if err := os.MkdirAll(m.basePath, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(dto)
	if err != nil {
		return err
	}

	return os.WriteFile(m.FilePath(name), data, 0644)
}

// Load reads a population checkpoint from disk.
func (m *Manager[S]) Load(name string) (PopulationDTO[S], error) {
	var dto PopulationDTO[S]

	data, err := os.ReadFile(m.FilePath(name))
	if err != nil {
		return dto, err
	}

	if err := yaml.Unmarshal(data, &dto); err != nil {
		return dto, err
	}

	return dto, nil
}
