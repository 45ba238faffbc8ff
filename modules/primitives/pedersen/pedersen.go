package pedersen

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	pedersenhash "github.com/consensys/gnark-crypto/ecc/stark-curve/pedersen-hash"
)

// Hasher is the Starknet pedersen hash over the stark curve.
type Hasher struct{}

func New() Hasher {
	return Hasher{}
}

func toElement(v *big.Int) (*fp.Element, error) {
	if v == nil || v.Sign() < 0 || v.Cmp(fp.Modulus()) >= 0 {
		return nil, fmt.Errorf("pedersen input %v is not a canonical stark field element", v)
	}
	return new(fp.Element).SetBigInt(v), nil
}

// Compress is pedersen(a, b).
func (Hasher) Compress(a, b *big.Int) (*big.Int, error) {
	ea, err := toElement(a)
	if err != nil {
		return nil, err
	}
	eb, err := toElement(b)
	if err != nil {
		return nil, err
	}

	digest := pedersenhash.Pedersen(ea, eb)
	return digest.BigInt(new(big.Int)), nil
}

// HashMany is compute_hash_on_elements: pedersen folded over fs from the
// left starting at 0, then hashed once more with len(fs).
func (Hasher) HashMany(fs []*big.Int) (*big.Int, error) {
	elems := make([]*fp.Element, len(fs))
	for i, f := range fs {
		e, err := toElement(f)
		if err != nil {
			return nil, err
		}
		elems[i] = e
	}

	digest := pedersenhash.PedersenArray(elems...)
	return digest.BigInt(new(big.Int)), nil
}
