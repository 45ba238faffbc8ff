package circuit

import (
	"fmt"

	"CairoProgramHash/modules/programhash"
	"CairoProgramHash/modules/transcript"

	"github.com/consensys/gnark/frontend"
)

// ProgramHashCircuit proves that Digest is the MiMC commitment of a private
// hash chain input of len(Input) elements.
type ProgramHashCircuit struct {
	Backend programhash.BackendEnum
	Input   []frontend.Variable
	Digest  frontend.Variable `gnark:",public"`
}

// Define declares the circuit constraints
func (c *ProgramHashCircuit) Define(api frontend.API) error {
	t, err := transcript.NewMiMCTranscript(api)
	if err != nil {
		return err
	}

	t.AppendFs(c.Input...)

	var digest frontend.Variable
	switch c.Backend {
	case programhash.ChainBackend:
		digest = t.Fold()
	case programhash.SpongeBackend:
		digest = t.Squeeze()
	default:
		return fmt.Errorf("unknown backend enum %d", uint(c.Backend))
	}

	api.AssertIsEqual(digest, c.Digest)
	return nil
}

// NewPlaceholder is the shape the circuit is compiled from.
func NewPlaceholder(inputLen int, backend programhash.BackendEnum) *ProgramHashCircuit {
	return &ProgramHashCircuit{
		Backend: backend,
		Input:   make([]frontend.Variable, inputLen),
	}
}
