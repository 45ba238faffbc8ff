package hashchain

import "math/big"

// Compressor is the binary compression primitive used by the hash chain.
// Implementations take canonical field elements and must return one; they
// should be safe for concurrent use with disjoint inputs.
type Compressor interface {
	Compress(a, b *big.Int) (*big.Int, error)
}

// Sponge is the variable-arity primitive used by the multi-hash. It must
// absorb inputs of different length unambiguously on its own, no length is
// added on the caller side.
type Sponge interface {
	HashMany(fs []*big.Int) (*big.Int, error)
}

// CompressorFunc adapts a plain function to a Compressor.
type CompressorFunc func(a, b *big.Int) (*big.Int, error)

func (f CompressorFunc) Compress(a, b *big.Int) (*big.Int, error) {
	return f(a, b)
}

// SpongeFunc adapts a plain function to a Sponge.
type SpongeFunc func(fs []*big.Int) (*big.Int, error)

func (f SpongeFunc) HashMany(fs []*big.Int) (*big.Int, error) {
	return f(fs)
}
