package circuit

import (
	"errors"
	"fmt"

	"CairoProgramHash/modules/programhash"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
)

// ErrUnsatisfied is returned when an assignment does not solve the R1CS.
var ErrUnsatisfied = errors.New("R1CS not satisfied")

// Compile builds the R1CS for hash chain inputs of inputLen elements.
func Compile(inputLen int, backend programhash.BackendEnum) (constraint.ConstraintSystem, error) {
	return frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, NewPlaceholder(inputLen, backend))
}

// Solve builds the full witness of assignment and checks it against cs.
func Solve(cs constraint.ConstraintSystem, assignment *ProgramHashCircuit) (witness.Witness, error) {
	w, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return nil, err
	}

	if err = cs.IsSolved(w); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsatisfied, err)
	}
	return w, nil
}

// Prove solves assignment and proves it under pk.
func Prove(cs constraint.ConstraintSystem, pk groth16.ProvingKey, assignment *ProgramHashCircuit) (groth16.Proof, error) {
	w, err := Solve(cs, assignment)
	if err != nil {
		return nil, err
	}
	return groth16.Prove(cs, pk, w)
}

// Verify checks proof against the public digest of assignment.
func Verify(proof groth16.Proof, vk groth16.VerifyingKey, assignment *ProgramHashCircuit) error {
	w, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return err
	}

	publicWitness, err := w.Public()
	if err != nil {
		return err
	}
	return groth16.Verify(proof, vk, publicWitness)
}
