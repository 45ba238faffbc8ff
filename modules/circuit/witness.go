package circuit

import (
	"errors"
	"fmt"

	"CairoProgramHash/modules/fields"
	"CairoProgramHash/modules/program"
	"CairoProgramHash/modules/programhash"

	"github.com/consensys/gnark/frontend"
)

// ErrUnsupportedField is returned for primitives without an in-circuit form.
var ErrUnsupportedField = errors.New("circuit needs a bn254 primitive")

// Assign computes the commitment of p natively with lib and returns the
// matching circuit assignment. lib must work over BN254, i.e. be MiMC.
func Assign(
	lib programhash.Primitives,
	p *program.Program,
	backend programhash.BackendEnum,
	opts ...programhash.Option,
) (*ProgramHashCircuit, error) {
	if lib.Field() != fields.BN254 {
		return nil, fmt.Errorf("%w, got %s", ErrUnsupportedField, lib.Field())
	}

	input, err := programhash.HashChainInput(fields.BN254, p, opts...)
	if err != nil {
		return nil, err
	}

	digest, err := programhash.Compute(lib, p, backend, opts...)
	if err != nil {
		return nil, err
	}

	assignment := NewPlaceholder(len(input), backend)
	for i, v := range input {
		assignment.Input[i] = v
	}
	assignment.Digest = frontend.Variable(digest)

	return assignment, nil
}
