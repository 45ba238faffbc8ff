package cryptolib

import (
	"fmt"
	"strings"

	"CairoProgramHash/modules/fields"
	"CairoProgramHash/modules/hashchain"
	"CairoProgramHash/modules/primitives/keccak"
	"CairoProgramHash/modules/primitives/mimc"
	"CairoProgramHash/modules/primitives/pedersen"
	"CairoProgramHash/modules/primitives/poseidon"
)

// PrimitiveEnum selects the compression primitive suite of a Context.
type PrimitiveEnum uint

const (
	// Poseidon is the Hades permutation over the stark field
	Poseidon PrimitiveEnum = iota
	// MiMC is the gnark-crypto BN254 MiMC hash, verifiable in a gnark circuit
	MiMC
	// Keccak is keccak256 masked to 250 bits, over the stark field
	Keccak
	// Pedersen is the Starknet pedersen hash over the stark curve
	Pedersen
)

// ParsePrimitive maps a primitive name onto a PrimitiveEnum.
func ParsePrimitive(name string) (PrimitiveEnum, error) {
	switch strings.ToLower(name) {
	case "poseidon":
		return Poseidon, nil
	case "mimc":
		return MiMC, nil
	case "keccak":
		return Keccak, nil
	case "pedersen":
		return Pedersen, nil
	default:
		return 0, fmt.Errorf(`unknown primitive "%s", expected one of pedersen/poseidon/mimc/keccak`, name)
	}
}

func (p PrimitiveEnum) String() string {
	switch p {
	case Poseidon:
		return "poseidon"
	case MiMC:
		return "mimc"
	case Keccak:
		return "keccak"
	case Pedersen:
		return "pedersen"
	default:
		return fmt.Sprintf("PrimitiveEnum(%d)", uint(p))
	}
}

// Field is the prime field the primitive suite operates on.
func (p PrimitiveEnum) Field() (fields.FieldEnum, error) {
	switch p {
	case Pedersen, Poseidon, Keccak:
		return fields.StarkField, nil
	case MiMC:
		return fields.BN254, nil
	default:
		return 0, fmt.Errorf("unknown primitive enum %d", uint(p))
	}
}

type suite interface {
	hashchain.Compressor
	hashchain.Sponge
}

func newSuite(p PrimitiveEnum, poseidonParams *poseidon.Parameters) (s suite, err error) {
	switch p {
	case Poseidon:
		if poseidonParams == nil {
			s = poseidon.New()
		} else {
			s, err = poseidon.NewWithParameters(*poseidonParams)
		}
	case MiMC:
		s = mimc.New()
	case Keccak:
		s = keccak.New()
	case Pedersen:
		s = pedersen.New()
	default:
		err = fmt.Errorf("unknown primitive enum %d", uint(p))
	}
	return
}
