package mimc

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
)

// Hasher is a wrapper around the gnark-crypto BN254 MiMC hash, in the
// Miyaguchi-Preneel mode gnark also uses in-circuit, so every digest can be
// recomputed by std/hash/mimc.
type Hasher struct{}

func New() Hasher {
	return Hasher{}
}

func writeElement(h interface{ Write([]byte) (int, error) }, v *big.Int) error {
	if v == nil || v.Sign() < 0 || v.Cmp(fr.Modulus()) >= 0 {
		return fmt.Errorf("mimc input %v is not a canonical bn254 scalar", v)
	}

	var block [fr.Bytes]byte
	v.FillBytes(block[:])
	_, err := h.Write(block[:])
	return err
}

// Compress is MiMC over the two blocks a, b.
func (Hasher) Compress(a, b *big.Int) (*big.Int, error) {
	return Hasher{}.HashMany([]*big.Int{a, b})
}

// HashMany absorbs every element as one 32 byte block, with no length padding.
func (Hasher) HashMany(fs []*big.Int) (*big.Int, error) {
	h := mimc.NewMiMC()
	for _, f := range fs {
		if err := writeElement(h, f); err != nil {
			return nil, err
		}
	}
	return new(big.Int).SetBytes(h.Sum(nil)), nil
}
