package transcript

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

// MiMCFieldHasher is a wrapper around the gnark MiMC hasher, implementing
// FieldHasher. It recomputes in-circuit what primitives/mimc computes natively.
type MiMCFieldHasher struct {
	mimc.MiMC
}

func NewMiMCFieldHasher(api frontend.API) (MiMCFieldHasher, error) {
	mimc, err := mimc.NewMiMC(api)
	if err != nil {
		return MiMCFieldHasher{}, err
	}

	return MiMCFieldHasher{MiMC: mimc}, nil
}

func (m *MiMCFieldHasher) Compress(a, b frontend.Variable) frontend.Variable {
	return m.HashMany(a, b)
}

func (m *MiMCFieldHasher) HashMany(fs ...frontend.Variable) frontend.Variable {
	m.MiMC.Reset()
	m.MiMC.Write(fs...)
	return m.MiMC.Sum()
}
