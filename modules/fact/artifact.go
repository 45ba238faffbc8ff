package fact

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"CairoProgramHash/modules/fields"
	"CairoProgramHash/modules/program"
)

// Artifact is the part of an execution artifact the fact depends on.
type Artifact struct {
	Program       *program.Program
	ProgramOutput []*big.Int
	OutputBuiltin *OutputBuiltinData
	// ExplicitTopology overrides the topology derived from OutputBuiltin
	ExplicitTopology *FactTopology
}

// Topology returns the explicit topology if any, else the one recorded by
// the output builtin, else a single page.
func (a *Artifact) Topology() (FactTopology, error) {
	outputSize := uint64(len(a.ProgramOutput))

	if a.ExplicitTopology != nil {
		ft := *a.ExplicitTopology
		if err := ft.Validate(); err != nil {
			return FactTopology{}, err
		}
		return ft, nil
	}
	return TopologyFromOutputBuiltin(outputSize, a.OutputBuiltin)
}

type artifactJSON struct {
	Program       json.RawMessage    `json:"program"`
	ProgramOutput []json.RawMessage  `json:"program_output"`
	OutputBuiltin *OutputBuiltinData `json:"output_builtin"`
	FactTopology  *FactTopology      `json:"fact_topology"`
}

// DecodeArtifact reads an artifact document. The program and every output
// element must be canonical in f.
func DecodeArtifact(r io.Reader, f fields.FieldEnum) (*Artifact, error) {
	var aj artifactJSON
	if err := json.NewDecoder(r).Decode(&aj); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArtifact, err)
	}

	if aj.ProgramOutput == nil {
		return nil, artifactf(`missing "program_output"`)
	}

	p, err := program.FromJSON(aj.Program, f)
	if err != nil {
		return nil, err
	}

	output := make([]*big.Int, len(aj.ProgramOutput))
	for i, raw := range aj.ProgramOutput {
		text := strings.Trim(strings.TrimSpace(string(raw)), `"`)
		if output[i], err = fields.ParseElement(f, text); err != nil {
			return nil, fmt.Errorf("%w: program_output[%d]: %w", ErrInvalidArtifact, i, err)
		}
	}

	return &Artifact{
		Program:          p,
		ProgramOutput:    output,
		OutputBuiltin:    aj.OutputBuiltin,
		ExplicitTopology: aj.FactTopology,
	}, nil
}

// ReadArtifactFile loads an artifact file.
func ReadArtifactFile(path string, f fields.FieldEnum) (*Artifact, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact file: %w", err)
	}
	defer file.Close()

	return DecodeArtifact(file, f)
}
