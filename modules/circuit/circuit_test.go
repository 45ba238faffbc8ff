package circuit

import (
	"math/big"
	"testing"

	"CairoProgramHash/modules/cryptolib"
	"CairoProgramHash/modules/program"
	"CairoProgramHash/modules/programhash"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func openContext(t *testing.T, primitive cryptolib.PrimitiveEnum) *cryptolib.Context {
	lib, err := cryptolib.Open(cryptolib.Config{Primitive: primitive, Logger: zerolog.Nop()})
	require.NoError(t, err)
	t.Cleanup(func() { lib.Close() })
	return lib
}

func sampleProgram() *program.Program {
	return program.FromUint64s(5, []string{"output", "pedersen"}, 0x40780017fff7fff, 0x208b7fff7fff7ffe)
}

func TestCircuitMatchesNative(t *testing.T) {
	lib := openContext(t, cryptolib.MiMC)

	for _, backend := range []programhash.BackendEnum{programhash.ChainBackend, programhash.SpongeBackend} {
		t.Run(backend.String(), func(t *testing.T) {
			assignment, err := Assign(lib, sampleProgram(), backend, programhash.WithBootloaderVersion(1))
			require.NoError(t, err)
			require.Len(t, assignment.Input, 7)

			cs, err := Compile(len(assignment.Input), backend)
			require.NoError(t, err, "compile circuit error")

			_, err = Solve(cs, assignment)
			require.NoError(t, err, "native digest must satisfy the circuit")

			assignment.Digest = new(big.Int).Add(assignment.Digest.(*big.Int), big.NewInt(1))
			_, err = Solve(cs, assignment)
			require.ErrorIs(t, err, ErrUnsatisfied)
		})
	}
}

func TestAssignRejectsStarkPrimitives(t *testing.T) {
	for _, primitive := range []cryptolib.PrimitiveEnum{cryptolib.Pedersen, cryptolib.Poseidon, cryptolib.Keccak} {
		_, err := Assign(openContext(t, primitive), sampleProgram(), programhash.ChainBackend)
		require.ErrorIs(t, err, ErrUnsupportedField)
	}
}

func TestGroth16RoundTrip(t *testing.T) {
	lib := openContext(t, cryptolib.MiMC)

	assignment, err := Assign(lib, program.FromUint64s(0, nil, 7, 8, 9), programhash.ChainBackend)
	require.NoError(t, err)

	cs, err := Compile(len(assignment.Input), programhash.ChainBackend)
	require.NoError(t, err)

	pk, vk, err := groth16.Setup(cs)
	require.NoError(t, err)

	proof, err := Prove(cs, pk, assignment)
	require.NoError(t, err)
	require.NoError(t, Verify(proof, vk, assignment))

	other, err := Assign(lib, program.FromUint64s(0, nil, 7, 8, 10), programhash.ChainBackend)
	require.NoError(t, err)
	require.Error(t, Verify(proof, vk, other), "proof is bound to the digest")
}
