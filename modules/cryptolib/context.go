package cryptolib

import (
	"errors"
	"fmt"
	"math/big"
	"sync/atomic"

	"CairoProgramHash/modules/fields"
	"CairoProgramHash/modules/hashchain"
	"CairoProgramHash/modules/primitives/poseidon"

	"github.com/rs/zerolog"
)

// FlavorEnum is the build flavor of a crypto context.
type FlavorEnum uint

const (
	// Release checks primitive inputs only
	Release FlavorEnum = iota
	// Debug also range checks every primitive output and traces each call
	Debug
	// RelWithDebInfo behaves like Release and reports call counts on Close
	RelWithDebInfo
)

// ParseFlavor accepts the flavor names Debug, Release and RelWithDebInfo.
func ParseFlavor(name string) (FlavorEnum, error) {
	switch name {
	case "Release":
		return Release, nil
	case "Debug":
		return Debug, nil
	case "RelWithDebInfo":
		return RelWithDebInfo, nil
	default:
		return 0, fmt.Errorf(`unknown flavor "%s", expected one of Debug/Release/RelWithDebInfo`, name)
	}
}

func (f FlavorEnum) String() string {
	switch f {
	case Release:
		return "Release"
	case Debug:
		return "Debug"
	case RelWithDebInfo:
		return "RelWithDebInfo"
	default:
		return fmt.Sprintf("FlavorEnum(%d)", uint(f))
	}
}

// ErrClosed is returned by every primitive call on a closed Context.
var ErrClosed = errors.New("crypto context is closed")

// Config describes the context to open.
type Config struct {
	Primitive PrimitiveEnum
	Flavor    FlavorEnum

	// PoseidonParameters replaces the default poseidon constants when set
	PoseidonParameters *poseidon.Parameters

	Logger zerolog.Logger
}

// Context is a scoped handle on a primitive suite: acquire it with Open,
// release it with Close. It implements hashchain.Compressor and
// hashchain.Sponge and is safe for concurrent use.
type Context struct {
	primitive PrimitiveEnum
	flavor    FlavorEnum
	field     fields.FieldEnum
	suite     suite
	logger    zerolog.Logger

	closed atomic.Bool

	// helper field: counting primitive invocations
	count atomic.Uint64
}

// Open acquires a context for cfg.
func Open(cfg Config) (*Context, error) {
	field, err := cfg.Primitive.Field()
	if err != nil {
		return nil, err
	}

	s, err := newSuite(cfg.Primitive, cfg.PoseidonParameters)
	if err != nil {
		return nil, fmt.Errorf("open %s context: %w", cfg.Primitive, err)
	}

	ctx := &Context{
		primitive: cfg.Primitive,
		flavor:    cfg.Flavor,
		field:     field,
		suite:     s,
		logger: cfg.Logger.With().
			Str("primitive", cfg.Primitive.String()).
			Str("flavor", cfg.Flavor.String()).
			Logger(),
	}
	ctx.logger.Debug().Str("field", field.String()).Msg("crypto context opened")

	return ctx, nil
}

// Close releases the context. Closing twice is a no-op.
func (c *Context) Close() error {
	if c.closed.Swap(true) {
		return nil
	}

	event := c.logger.Debug()
	if c.flavor == RelWithDebInfo {
		event = c.logger.Info()
	}
	event.Uint64("calls", c.count.Load()).Msg("crypto context closed")

	return nil
}

func (c *Context) Primitive() PrimitiveEnum {
	return c.primitive
}

func (c *Context) Flavor() FlavorEnum {
	return c.flavor
}

// Field is the field of every input and output of the context.
func (c *Context) Field() fields.FieldEnum {
	return c.field
}

// GetCount returns the number of primitive invocations so far.
func (c *Context) GetCount() uint64 {
	return c.count.Load()
}

func (c *Context) ResetCount() {
	c.count.Store(0)
}

func (c *Context) check(op string, fs ...*big.Int) error {
	if c.closed.Load() {
		return &hashchain.PrimitiveError{Primitive: c.primitive.String(), Err: ErrClosed}
	}

	for _, f := range fs {
		if err := c.field.Check(f); err != nil {
			return fmt.Errorf("%s %s: %w", c.primitive, op, err)
		}
	}
	return nil
}

func (c *Context) finish(op string, nInputs int, h *big.Int, err error) (*big.Int, error) {
	c.count.Add(1)

	if err != nil {
		return nil, hashchain.AsPrimitiveFailure(c.primitive.String(), err)
	}

	if c.flavor == Debug {
		if !c.field.Contains(h) {
			return nil, &hashchain.PrimitiveError{
				Primitive: c.primitive.String(),
				Err:       fmt.Errorf("%s returned a non canonical digest %v", op, h),
			}
		}
		c.logger.Trace().Str("op", op).Int("inputs", nInputs).Str("digest", fields.FormatHex32(h)).Send()
	}

	return h, nil
}

// Compress runs the binary primitive on canonical a, b.
func (c *Context) Compress(a, b *big.Int) (*big.Int, error) {
	if err := c.check("compress", a, b); err != nil {
		return nil, err
	}

	h, err := c.suite.Compress(a, b)
	return c.finish("compress", 2, h, err)
}

// HashMany runs the sponge primitive on canonical fs.
func (c *Context) HashMany(fs []*big.Int) (*big.Int, error) {
	if err := c.check("hash_many", fs...); err != nil {
		return nil, err
	}

	h, err := c.suite.HashMany(fs)
	return c.finish("hash_many", len(fs), h, err)
}
