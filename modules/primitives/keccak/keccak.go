package keccak

import (
	"fmt"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// MaskBits is the number of low digest bits kept, 2^250 < P so every masked
// digest is a canonical stark field element.
const MaskBits = 250

var mask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), MaskBits), big.NewInt(1))

// Hasher hashes field elements as big-endian uint256 words with keccak256 and
// keeps the low 250 bits of the digest.
type Hasher struct{}

func New() Hasher {
	return Hasher{}
}

// Words packs fs as consecutive 32 byte big-endian words.
func Words(fs []*big.Int) ([]byte, error) {
	packed := make([]byte, 32*len(fs))
	for i, f := range fs {
		if f == nil || f.Sign() < 0 || f.BitLen() > 256 {
			return nil, fmt.Errorf("keccak input %v does not fit a uint256 word", f)
		}
		f.FillBytes(packed[32*i : 32*(i+1)])
	}
	return packed, nil
}

// Compress is keccak(a || b) masked to 250 bits.
func (Hasher) Compress(a, b *big.Int) (*big.Int, error) {
	return Hasher{}.HashMany([]*big.Int{a, b})
}

// HashMany is keccak over the packed words, masked to 250 bits. Inputs of
// different length have different byte lengths, so no padding is added.
func (Hasher) HashMany(fs []*big.Int) (*big.Int, error) {
	packed, err := Words(fs)
	if err != nil {
		return nil, err
	}

	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(packed)

	digest := new(big.Int).SetBytes(hasher.Sum(nil))
	return digest.And(digest, mask), nil
}
