package sinks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lixenwraith/neat-arena/config"
	"github.com/lixenwraith/neat-arena/neat"
	"github.com/lixenwraith/neat-arena/simerr"
)

// Metadata is the envelope written alongside a champion snapshot. Config
// holds run-level knobs (CLI flags, seed, run id) as loose key/values;
// the typed simulation and evolution configs ride along verbatim so a
// snapshot is replayable without the original command line.
type Metadata struct {
	Timestamp            string           `json:"timestamp"`
	DurationS            float64          `json:"duration_s"`
	Generation           int              `json:"generation"`
	Config               map[string]any   `json:"config"`
	SimulationConfig     config.SimConfig `json:"simulation_config"`
	EvolutionConfig      config.EvoConfig `json:"evolution_config"`
	FitnessWeights       FitnessWeights   `json:"fitness_weights"`
	ChampionFitnessNaive float64          `json:"champion_fitness_naive"`
}

// FitnessWeights names the scoring weights in the envelope.
type FitnessWeights struct {
	Health    float64 `json:"health"`
	Damage    float64 `json:"damage"`
	Kills     float64 `json:"kills"`
	TimeBonus float64 `json:"time_bonus"`
}

// SnapshotSink receives champion snapshots during training.
type SnapshotSink interface {
	WriteSnapshot(champion *neat.Genome, meta Metadata) error
}

// DirSnapshot writes champion snapshots into one run's output directory:
// every write updates champion_latest.json and adds a generation-stamped
// champion_gen_NNN.json.
type DirSnapshot struct {
	dir string
}

// NewDirSnapshot creates the output directory if needed.
func NewDirSnapshot(dir string) (*DirSnapshot, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: create snapshot dir %s: %v", simerr.ErrSinkFailure, dir, err)
	}
	return &DirSnapshot{dir: dir}, nil
}

// Dir returns the run output directory.
func (s *DirSnapshot) Dir() string { return s.dir }

// WriteSnapshot serializes the champion with its metadata envelope.
func (s *DirSnapshot) WriteSnapshot(champion *neat.Genome, meta Metadata) error {
	payload := struct {
		Metadata Metadata     `json:"metadata"`
		Genome   *neat.Genome `json:"genome"`
	}{Metadata: meta, Genome: champion}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal snapshot: %v", simerr.ErrSinkFailure, err)
	}

	latest := filepath.Join(s.dir, "champion_latest.json")
	stamped := filepath.Join(s.dir, fmt.Sprintf("champion_gen_%03d.json", meta.Generation))
	if err := os.WriteFile(latest, data, 0644); err != nil {
		return fmt.Errorf("%w: write %s: %v", simerr.ErrSinkFailure, latest, err)
	}
	if err := os.WriteFile(stamped, data, 0644); err != nil {
		return fmt.Errorf("%w: write %s: %v", simerr.ErrSinkFailure, stamped, err)
	}
	return nil
}

// LoadGenome reads a genome back from a snapshot file, accepting either a
// bare genome serialization or the {metadata, genome} envelope. The
// decoded genome's innovation counter is rebuilt so it can be mutated
// further.
func LoadGenome(path string) (*neat.Genome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Genome *neat.Genome `json:"genome"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Genome != nil && len(envelope.Genome.Nodes) > 0 {
		envelope.Genome.RebuildInnovationCounter()
		return envelope.Genome, nil
	}

	g := &neat.Genome{}
	if err := json.Unmarshal(data, g); err != nil {
		return nil, err
	}
	if len(g.Nodes) == 0 {
		return nil, fmt.Errorf("no genome found in %s", path)
	}
	g.RebuildInnovationCounter()
	return g, nil
}
