package gen

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/elektrokombinacija/jumper-router/internal/core"
)

// ProblemFile is the on-disk form of a generated problem.
type ProblemFile struct {
	Name            string                      `json:"name"`
	Seed            int64                       `json:"seed"`
	TargetCrossings int                         `json:"targetCrossings"`
	Grid            GridParams                  `json:"grid"`
	Graph           *core.SerializedGraph       `json:"graph"`
	Connections     []core.SerializedConnection `json:"connections"`
}

// NewProblemFile serializes a problem together with its generation
// inputs.
func NewProblemFile(name string, seed int64, grid GridParams, p *core.Problem) *ProblemFile {
	conns := make([]core.SerializedConnection, len(p.Connections))
	for i, c := range p.Connections {
		conns[i] = c.ToSerialized()
	}
	return &ProblemFile{
		Name:            name,
		Seed:            seed,
		TargetCrossings: p.TargetCrossings,
		Grid:            grid,
		Graph:           p.Graph.ToSerialized(),
		Connections:     conns,
	}
}

// Problem rebuilds the live problem from the file.
func (f *ProblemFile) Problem() (*core.Problem, error) {
	g, err := core.FromSerialized(f.Graph)
	if err != nil {
		return nil, err
	}
	conns := make([]*core.Connection, len(f.Connections))
	for i, sc := range f.Connections {
		if conns[i], err = core.ConnectionFromSerialized(g, sc); err != nil {
			return nil, err
		}
	}
	return &core.Problem{Graph: g, Connections: conns, TargetCrossings: f.TargetCrossings}, nil
}

// Save writes the problem file as indented JSON.
func (f *ProblemFile) Save(path string) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadProblemFile reads a problem file from disk.
func LoadProblemFile(path string) (*ProblemFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f ProblemFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &f, nil
}
