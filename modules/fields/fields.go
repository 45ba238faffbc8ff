package fields

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc"
	starkFp "github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

// FieldEnum is the enum value indicating the prime field a primitive suite
// (and therefore every commitment computed with it) lives in.
type FieldEnum uint64

const (
	// StarkField is the FieldEnum for the Cairo/Starknet field,
	// P = 2^251 + 17 * 2^192 + 1
	StarkField FieldEnum = 1
	// BN254 is the FieldEnum for the BN254 scalar field
	BN254 FieldEnum = 2
)

// ParseFieldEnum maps a field name onto a FieldEnum.
func ParseFieldEnum(name string) (FieldEnum, error) {
	switch strings.ToLower(name) {
	case "stark", "starkfield", "cairo":
		return StarkField, nil
	case "bn254":
		return BN254, nil
	default:
		return 0, fmt.Errorf(`unknown field "%s"`, name)
	}
}

func (f FieldEnum) String() string {
	switch f {
	case StarkField:
		return "stark"
	case BN254:
		return "bn254"
	default:
		return fmt.Sprintf("FieldEnum(%d)", uint64(f))
	}
}

// FieldModulus finds the modulus for the prime field tied to the field enum.
// The returned value is a fresh copy and may be modified by the caller.
func (f FieldEnum) FieldModulus() *big.Int {
	switch f {
	case StarkField:
		return starkFp.Modulus()
	case BN254:
		return new(big.Int).Set(ecc.BN254.ScalarField())
	default:
		panic(fmt.Sprintf("unknown field enum %d", uint64(f)))
	}
}

// FieldBytes stand for the number of bytes of the field modulus
func (f FieldEnum) FieldBytes() uint {
	bitLen := f.FieldModulus().BitLen()
	// NOTE: round up against bit-byte rate
	return (uint(bitLen) + 8 - 1) / 8
}

// ShortStringBytes is the longest byte string whose big-endian value is
// guaranteed to be smaller than the modulus.
func (f FieldEnum) ShortStringBytes() uint {
	bitLen := f.FieldModulus().BitLen()
	return uint(bitLen-1) / 8
}

// Contains reports whether v is a canonical element, i.e. 0 <= v < P.
func (f FieldEnum) Contains(v *big.Int) bool {
	return v != nil && v.Sign() >= 0 && v.Cmp(f.FieldModulus()) < 0
}

// Check returns an EncodingError if v is not a canonical element.
func (f FieldEnum) Check(v *big.Int) error {
	if v == nil {
		return encodingf("<nil>", "missing field element")
	}
	if !f.Contains(v) {
		return encodingf(v.String(), "not in [0, P) for the %s field", f)
	}
	return nil
}

// Reduce returns v mod P as a new value, mapping negative inputs into range.
func (f FieldEnum) Reduce(v *big.Int) *big.Int {
	return new(big.Int).Mod(v, f.FieldModulus())
}

// FromUint64 lifts a small integer into the field.
func (f FieldEnum) FromUint64(v uint64) *big.Int {
	return f.Reduce(new(big.Int).SetUint64(v))
}
