package hashchain

import "math/big"

// HashMany hands the whole sequence to the sponge in one call. Unlike Fold,
// no length is prepended; length separation is up to the sponge padding.
func HashMany(s Sponge, fs []*big.Int) (*big.Int, error) {
	absorbBuffer := make([]*big.Int, len(fs))
	copy(absorbBuffer, fs)

	h, err := s.HashMany(absorbBuffer)
	if err != nil {
		return nil, AsPrimitiveFailure("hash_many", err)
	}
	if h == nil {
		return nil, AsPrimitiveFailure("hash_many", errNilDigest)
	}
	return h, nil
}
