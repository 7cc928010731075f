package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/avik-so/lorenzlab/internal/dynamo"
	"github.com/avik-so/lorenzlab/internal/sim"
)

// Store persists completed runs under a base directory, one subdirectory per
// run holding metadata.json, trajectory.csv and maxima.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Field       string             `json:"field"`
	Integrator  string             `json:"integrator"`
	Timestamp   time.Time          `json:"timestamp"`
	Dt          float64            `json:"dt"`
	Steps       int                `json:"steps"`
	Params      map[string]float64 `json:"params"`
	MaximaCount int                `json:"maxima_count"`
}

// Save writes a run and returns its ID.
func (s *Store) Save(fieldName, integrator string, params map[string]float64, traj *sim.Trajectory, maxima []float64) (string, error) {
	runID := fmt.Sprintf("%s_%s", fieldName, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Field:       fieldName,
		Integrator:  integrator,
		Timestamp:   time.Now(),
		Dt:          traj.Dt,
		Steps:       traj.Len(),
		Params:      params,
		MaximaCount: len(maxima),
	}

	if err := s.writeMetadata(runDir, meta); err != nil {
		return "", err
	}
	if err := s.writeTrajectory(runDir, traj); err != nil {
		return "", err
	}
	if err := s.writeMaxima(runDir, maxima); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) writeMetadata(runDir string, meta RunMetadata) error {
	f, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func (s *Store) writeTrajectory(runDir string, traj *sim.Trajectory) error {
	f, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"time", "x", "y", "z"}); err != nil {
		return err
	}

	for i, st := range traj.States {
		row := make([]string, 0, 4)
		row = append(row, strconv.FormatFloat(float64(i)*traj.Dt, 'g', -1, 64))
		for _, v := range st {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) writeMaxima(runDir string, maxima []float64) error {
	f, err := os.Create(filepath.Join(runDir, "maxima.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"n", "value"}); err != nil {
		return err
	}
	for i, m := range maxima {
		if err := w.Write([]string{strconv.Itoa(i), strconv.FormatFloat(m, 'g', -1, 64)}); err != nil {
			return err
		}
	}
	return nil
}

// TrajectoryPath returns where a run's trajectory CSV lives on disk.
func (s *Store) TrajectoryPath(runID string) string {
	return filepath.Join(s.baseDir, runID, "trajectory.csv")
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectory reads a run's states back into a trajectory.
func (s *Store) LoadTrajectory(runID string) (*sim.Trajectory, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("store: trajectory for %s is empty", runID)
	}

	states := make([]dynamo.State, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		st := make(dynamo.State, 0, len(record)-1)
		for _, cell := range record[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("store: parse trajectory for %s: %w", runID, err)
			}
			st = append(st, v)
		}
		states = append(states, st)
	}

	return &sim.Trajectory{States: states, Dt: meta.Dt}, nil
}

// LoadMaxima reads a run's maxima sequence.
func (s *Store) LoadMaxima(runID string) ([]float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "maxima.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	maxima := make([]float64, 0, len(records))
	for i, record := range records {
		if i == 0 || len(record) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("store: parse maxima for %s: %w", runID, err)
		}
		maxima = append(maxima, v)
	}
	return maxima, nil
}
