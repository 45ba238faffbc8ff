package transcript

import (
	"github.com/consensys/gnark/frontend"
)

// FieldHasher is the in-circuit side of the native hashchain primitives.
// Compress and HashMany must agree with the native Compressor and Sponge of
// the same primitive on canonical inputs.
type FieldHasher interface {
	Compress(a, b frontend.Variable) frontend.Variable
	HashMany(fs ...frontend.Variable) frontend.Variable
}

// Transcript collects the hash chain input inside a circuit and commits to it
// with one of the two backends.
type Transcript struct {
	// The hash function
	hasher FieldHasher

	// The values to feed the hash function
	dataPool []frontend.Variable

	// helper field: counting, irrelevant to circuit
	count uint
}

// NewMiMCTranscript is the transcript over BN254 MiMC, the only primitive
// with a native in-circuit form.
func NewMiMCTranscript(api frontend.API) (*Transcript, error) {
	hasher, err := NewMiMCFieldHasher(api)
	if err != nil {
		return nil, err
	}
	return NewTranscript(&hasher), nil
}

func NewTranscript(hasher FieldHasher) *Transcript {
	return &Transcript{
		hasher:   hasher,
		dataPool: make([]frontend.Variable, 0),
	}
}

func (t *Transcript) AppendF(f frontend.Variable) {
	t.dataPool = append(t.dataPool, f)
}

func (t *Transcript) AppendFs(fs ...frontend.Variable) {
	t.dataPool = append(t.dataPool, fs...)
}

// Fold is the chain commitment of the pool, with the pool length prepended
// as a constant and the accumulator seeded with zero. The pool is emptied.
func (t *Transcript) Fold() frontend.Variable {
	chain := make([]frontend.Variable, 0, len(t.dataPool)+1)
	chain = append(chain, len(t.dataPool))
	chain = append(chain, t.dataPool...)

	var acc frontend.Variable = 0
	for i := len(chain) - 1; i >= 0; i-- {
		acc = t.hasher.Compress(chain[i], acc)
		t.count++
	}

	t.dataPool = nil
	return acc
}

// Squeeze absorbs the whole pool in one sponge call and empties it.
func (t *Transcript) Squeeze() frontend.Variable {
	h := t.hasher.HashMany(t.dataPool...)
	t.count++

	t.dataPool = nil
	return h
}

func (t *Transcript) GetCount() uint {
	return t.count
}

func (t *Transcript) ResetCount() {
	t.count = 0
}
