package hashchain

import (
	"errors"
	"math/big"
)

var errNilDigest = errors.New("primitive returned no digest")

// Fold computes the hash chain over fs, length included:
//
//	chain = [len(fs), fs[0], ..., fs[n-1]]
//	Fold  = h(chain[0], h(chain[1], ... h(chain[n], 0)))
//
// The accumulator is seeded with zero and the chain is consumed from the last
// element to the first, so chain[0] feeds the outermost call.
func Fold(c Compressor, fs []*big.Int) (*big.Int, error) {
	chain := make([]*big.Int, 0, len(fs)+1)
	chain = append(chain, new(big.Int).SetUint64(uint64(len(fs))))
	chain = append(chain, fs...)

	acc := new(big.Int)
	for i := len(chain) - 1; i >= 0; i-- {
		next, err := c.Compress(chain[i], acc)
		if err != nil {
			return nil, AsPrimitiveFailure("compress", err)
		}
		if next == nil {
			return nil, AsPrimitiveFailure("compress", errNilDigest)
		}
		acc = next
	}

	return acc, nil
}
