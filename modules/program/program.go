package program

import (
	"math/big"

	"CairoProgramHash/modules/fields"
)

// Program is the part of a compiled program the commitment depends on.
// It is built once by New or a loader and treated as read-only afterwards.
type Program struct {
	// Main is the entry point offset
	Main *big.Int
	// Builtins are the builtin names, in declaration order
	Builtins []string
	// Data is the compiled instruction and constant stream
	Data []*big.Int
}

// New copies its arguments into a fresh Program.
func New(main *big.Int, builtins []string, data []*big.Int) *Program {
	p := &Program{
		Builtins: append([]string(nil), builtins...),
		Data:     make([]*big.Int, len(data)),
	}
	if main != nil {
		p.Main = new(big.Int).Set(main)
	}
	for i, d := range data {
		if d != nil {
			p.Data[i] = new(big.Int).Set(d)
		}
	}
	return p
}

// FromUint64s is a convenience constructor for small programs.
func FromUint64s(main uint64, builtins []string, data ...uint64) *Program {
	bigData := make([]*big.Int, len(data))
	for i, d := range data {
		bigData[i] = new(big.Int).SetUint64(d)
	}
	return New(new(big.Int).SetUint64(main), builtins, bigData)
}

// Validate checks that every element of the program is canonical in f.
func (p *Program) Validate(f fields.FieldEnum) error {
	if p == nil {
		return Invalidf("missing program")
	}
	if p.Main == nil {
		return Invalidf("missing main")
	}
	if err := f.Check(p.Main); err != nil {
		return invalidWrap(err, "main")
	}
	for i, d := range p.Data {
		if err := f.Check(d); err != nil {
			return invalidWrap(err, "data[%d]", i)
		}
	}
	return nil
}
