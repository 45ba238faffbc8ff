package programhash

import (
	"fmt"
	"math/big"
	"strings"

	"CairoProgramHash/modules/fields"
	"CairoProgramHash/modules/hashchain"
	"CairoProgramHash/modules/program"
)

// BackendEnum selects how the assembled input is committed to.
type BackendEnum uint

const (
	// ChainBackend folds the input with the binary primitive, length first
	ChainBackend BackendEnum = iota
	// SpongeBackend absorbs the input with the sponge primitive, no length
	SpongeBackend
)

// ParseBackend maps "chain" or "sponge" onto a BackendEnum.
func ParseBackend(name string) (BackendEnum, error) {
	switch strings.ToLower(name) {
	case "chain":
		return ChainBackend, nil
	case "sponge":
		return SpongeBackend, nil
	default:
		return 0, fmt.Errorf(`unknown backend "%s", expected chain or sponge`, name)
	}
}

func (b BackendEnum) String() string {
	switch b {
	case ChainBackend:
		return "chain"
	case SpongeBackend:
		return "sponge"
	default:
		return fmt.Sprintf("BackendEnum(%d)", uint(b))
	}
}

// Primitives is what a commitment needs from a crypto context: both
// primitives and the field they operate on.
type Primitives interface {
	hashchain.Compressor
	hashchain.Sponge
	Field() fields.FieldEnum
}

type options struct {
	bootloaderVersion   uint64
	requireNonEmptyData bool
}

// Option tunes a commitment computation.
type Option func(*options)

// WithBootloaderVersion sets the version tag placed first in the input.
func WithBootloaderVersion(v uint64) Option {
	return func(o *options) { o.bootloaderVersion = v }
}

// RequireNonEmptyData rejects programs without data.
func RequireNonEmptyData() Option {
	return func(o *options) { o.requireNonEmptyData = true }
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// HashChainInput assembles
//
//	[bootloader_version, main, len(builtins), builtin_0, ..., builtin_n-1] ++ data
//
// with every builtin name encoded in field f.
func HashChainInput(f fields.FieldEnum, p *program.Program, opts ...Option) ([]*big.Int, error) {
	o := newOptions(opts)

	if err := p.Validate(f); err != nil {
		return nil, err
	}
	if o.requireNonEmptyData && len(p.Data) == 0 {
		return nil, program.Invalidf("program has no data")
	}

	// The program header below is missing the data length, the chain backend
	// prepends the length of the whole input instead.
	programHeader := make([]*big.Int, 0, 3+len(p.Builtins))
	programHeader = append(programHeader,
		f.FromUint64(o.bootloaderVersion),
		new(big.Int).Set(p.Main),
		new(big.Int).SetUint64(uint64(len(p.Builtins))),
	)

	for _, builtin := range p.Builtins {
		encoded, err := fields.EncodeIdentifier(f, builtin)
		if err != nil {
			return nil, fmt.Errorf("builtin %q: %w", builtin, err)
		}
		programHeader = append(programHeader, encoded)
	}

	dataChain := make([]*big.Int, 0, len(programHeader)+len(p.Data))
	dataChain = append(dataChain, programHeader...)
	for _, d := range p.Data {
		dataChain = append(dataChain, new(big.Int).Set(d))
	}

	return dataChain, nil
}

// Compute commits to p with the given backend. The result is stable for a
// fixed program, backend, primitive suite and bootloader version.
func Compute(lib Primitives, p *program.Program, backend BackendEnum, opts ...Option) (*big.Int, error) {
	dataChain, err := HashChainInput(lib.Field(), p, opts...)
	if err != nil {
		return nil, err
	}

	switch backend {
	case ChainBackend:
		return hashchain.Fold(lib, dataChain)
	case SpongeBackend:
		return hashchain.HashMany(lib, dataChain)
	default:
		return nil, fmt.Errorf("unknown backend enum %d", uint(backend))
	}
}

// ComputeHex is Compute followed by fields.FormatHex32.
func ComputeHex(lib Primitives, p *program.Program, backend BackendEnum, opts ...Option) (string, error) {
	h, err := Compute(lib, p, backend, opts...)
	if err != nil {
		return "", err
	}
	return fields.FormatHex32(h), nil
}
