package poseidon

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"strconv"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

const (
	// StateWidth is the number of field elements in the permutation state.
	StateWidth = 3
	// Rate is the number of state elements absorbed per permutation.
	Rate = 2

	DefaultFullRounds    uint = 8
	DefaultPartialRounds uint = 83
)

// DefaultName names the published Starknet constant table.
const DefaultName = "Hades"

// Parameters fully describe a Hades permutation over the Stark field with the
// x^3 s-box and the [[3,1,1],[1,-1,1],[1,1,-2]] MDS matrix.
type Parameters struct {
	FullRounds     uint
	PartialRounds  uint
	RoundConstants [][StateWidth]fp.Element
}

// DefaultParameters are the Starknet Poseidon parameters: 8 full and 83
// partial rounds over the constants generated from DefaultName.
func DefaultParameters() Parameters {
	return GenerateParameters(DefaultName, DefaultFullRounds, DefaultPartialRounds)
}

// GenerateParameters fills the round constants with
//
//	rc[i][j] = sha256(name + decimal(StateWidth*i + j)) mod P
//
// read as a big-endian integer.
func GenerateParameters(name string, fullRounds, partialRounds uint) Parameters {
	roundConstants := make([][StateWidth]fp.Element, fullRounds+partialRounds)
	for i := range roundConstants {
		for j := 0; j < StateWidth; j++ {
			digest := sha256.Sum256([]byte(name + strconv.Itoa(StateWidth*i+j)))
			roundConstants[i][j].SetBytes(digest[:])
		}
	}

	return Parameters{
		FullRounds:     fullRounds,
		PartialRounds:  partialRounds,
		RoundConstants: roundConstants,
	}
}

// Validate checks the shape of the parameters.
func (p *Parameters) Validate() error {
	if p.FullRounds == 0 || p.FullRounds%2 != 0 {
		return fmt.Errorf("full rounds must be a positive even number, got %d", p.FullRounds)
	}
	if uint(len(p.RoundConstants)) != p.FullRounds+p.PartialRounds {
		return fmt.Errorf("expected %d rows of round constants, got %d",
			p.FullRounds+p.PartialRounds, len(p.RoundConstants))
	}
	return nil
}

func sBox(f *fp.Element) {
	var sq fp.Element
	sq.Square(f)
	f.Mul(f, &sq)
}

// mdsApply multiplies the state by [[3,1,1],[1,-1,1],[1,1,-2]]
func mdsApply(state *[StateWidth]fp.Element) {
	var t, twice, thrice fp.Element
	t.Add(&state[0], &state[1])
	t.Add(&t, &state[2])

	twice.Double(&state[0])
	state[0].Add(&t, &twice)

	twice.Double(&state[1])
	state[1].Sub(&t, &twice)

	thrice.Double(&state[2])
	thrice.Add(&thrice, &state[2])
	state[2].Sub(&t, &thrice)
}

func roundConstantApply(state *[StateWidth]fp.Element, rc *[StateWidth]fp.Element) {
	for i := 0; i < StateWidth; i++ {
		state[i].Add(&state[i], &rc[i])
	}
}

// Permutate runs the Hades permutation in place: half the full rounds, the
// partial rounds with the s-box on the last element only, then the remaining
// full rounds.
func (p *Parameters) Permutate(state *[StateWidth]fp.Element) {
	partialRoundEnds := p.FullRounds/2 + p.PartialRounds
	allRoundEnds := p.FullRounds + p.PartialRounds

	for i := uint(0); i < allRoundEnds; i++ {
		roundConstantApply(state, &p.RoundConstants[i])

		if i < p.FullRounds/2 || i >= partialRoundEnds {
			for j := 0; j < StateWidth; j++ {
				sBox(&state[j])
			}
		} else {
			sBox(&state[StateWidth-1])
		}

		mdsApply(state)
	}
}

// Hasher exposes the permutation as the binary and variable-arity primitives
// of the commitment scheme. The zero value is not usable, call New.
type Hasher struct {
	params Parameters
}

// New builds a Hasher over the default parameters.
func New() *Hasher {
	return &Hasher{params: DefaultParameters()}
}

// NewWithParameters builds a Hasher over custom parameters, e.g. a reduced
// round count or another constant table.
func NewWithParameters(params Parameters) (*Hasher, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Hasher{params: params}, nil
}

func toElement(v *big.Int) (fp.Element, error) {
	var e fp.Element
	if v == nil || v.Sign() < 0 || v.Cmp(fp.Modulus()) >= 0 {
		return e, fmt.Errorf("poseidon input %v is not a canonical stark field element", v)
	}
	e.SetBigInt(v)
	return e, nil
}

// Compress hashes a pair with the capacity element set to 2:
// permute([a, b, 2])[0].
func (h *Hasher) Compress(a, b *big.Int) (*big.Int, error) {
	var state [StateWidth]fp.Element
	var err error

	if state[0], err = toElement(a); err != nil {
		return nil, err
	}
	if state[1], err = toElement(b); err != nil {
		return nil, err
	}
	state[2].SetUint64(2)

	h.params.Permutate(&state)
	return state[0].BigInt(new(big.Int)), nil
}

// HashMany absorbs fs Rate elements at a time after appending a single 1 and
// zero padding up to a multiple of Rate, and squeezes state[0].
func (h *Hasher) HashMany(fs []*big.Int) (*big.Int, error) {
	numChunks := len(fs)/Rate + 1

	absorbBuffer := make([]fp.Element, numChunks*Rate)
	for i, f := range fs {
		e, err := toElement(f)
		if err != nil {
			return nil, err
		}
		absorbBuffer[i] = e
	}
	absorbBuffer[len(fs)].SetOne()

	var state [StateWidth]fp.Element
	for i := 0; i < numChunks; i++ {
		for j := 0; j < Rate; j++ {
			state[j].Add(&state[j], &absorbBuffer[i*Rate+j])
		}
		h.params.Permutate(&state)
	}

	return state[0].BigInt(new(big.Int)), nil
}
