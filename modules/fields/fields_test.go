package fields

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldModulus(t *testing.T) {
	starkPrime := new(big.Int).Lsh(big.NewInt(1), 251)
	starkPrime.Add(starkPrime, new(big.Int).Lsh(big.NewInt(17), 192))
	starkPrime.Add(starkPrime, big.NewInt(1))

	require.Equal(t, 0, StarkField.FieldModulus().Cmp(starkPrime), "stark prime mismatch")
	require.Equal(t, uint(32), StarkField.FieldBytes())
	require.Equal(t, uint(31), StarkField.ShortStringBytes())

	require.Equal(t, uint(32), BN254.FieldBytes())
	require.Equal(t, uint(31), BN254.ShortStringBytes())
	require.True(t, StarkField.FieldModulus().Cmp(BN254.FieldModulus()) < 0,
		"every stark element should embed into bn254")

	// callers get a copy
	m := StarkField.FieldModulus()
	m.SetInt64(0)
	require.Equal(t, 0, StarkField.FieldModulus().Cmp(starkPrime))
}

func TestParseFieldEnum(t *testing.T) {
	f, err := ParseFieldEnum("Stark")
	require.NoError(t, err)
	require.Equal(t, StarkField, f)

	f, err = ParseFieldEnum("bn254")
	require.NoError(t, err)
	require.Equal(t, BN254, f)

	_, err = ParseFieldEnum("goldilocks")
	require.Error(t, err)
}

func TestEncodeIdentifier(t *testing.T) {
	testcases := []struct {
		Name     string
		Expected *big.Int
	}{
		{Name: "output", Expected: new(big.Int).SetBytes([]byte("output"))},
		{Name: "pedersen", Expected: big.NewInt(0x706564657273656e)},
		{Name: "a", Expected: big.NewInt(0x61)},
		{Name: strings.Repeat("z", 31), Expected: new(big.Int).SetBytes([]byte(strings.Repeat("z", 31)))},
	}

	for _, testcase := range testcases {
		for _, f := range []FieldEnum{StarkField, BN254} {
			v, err := EncodeIdentifier(f, testcase.Name)
			require.NoError(t, err)
			require.Equal(t, 0, testcase.Expected.Cmp(v), "encoding of %s", testcase.Name)
			require.True(t, f.Contains(v))

			decoded, err := DecodeIdentifier(v)
			require.NoError(t, err)
			require.Equal(t, testcase.Name, decoded)
		}
	}
}

func TestEncodeFullWidthIdentifier(t *testing.T) {
	testcases := []struct {
		Field    FieldEnum
		Accepted string
		Rejected string
	}{
		// P starts with 0x08 and r with 0x30
		{Field: StarkField, Accepted: "\x07" + strings.Repeat("z", 31), Rejected: "\x08" + strings.Repeat("\x01", 31)},
		{Field: BN254, Accepted: "/" + strings.Repeat("z", 31), Rejected: "0" + strings.Repeat("z", 31)},
	}

	for _, testcase := range testcases {
		require.Len(t, testcase.Accepted, int(testcase.Field.FieldBytes()))

		v, err := EncodeIdentifier(testcase.Field, testcase.Accepted)
		require.NoError(t, err, "%s", testcase.Field)
		require.True(t, testcase.Field.Contains(v))
		require.Equal(t, 0, new(big.Int).SetBytes([]byte(testcase.Accepted)).Cmp(v))

		_, err = EncodeIdentifier(testcase.Field, testcase.Rejected)
		require.ErrorIs(t, err, ErrEncoding, "%s", testcase.Field)

		_, err = EncodeIdentifier(testcase.Field, strings.Repeat("\x01", 33))
		require.ErrorIs(t, err, ErrEncoding, "%s", testcase.Field)
	}
}

func TestEncodeIdentifierErrors(t *testing.T) {
	for _, name := range []string{"", "pédersen", strings.Repeat("x", 32), strings.Repeat("x", 33)} {
		_, err := EncodeIdentifier(StarkField, name)
		require.Error(t, err, "name %q", name)
		require.True(t, errors.Is(err, ErrEncoding))

		var encErr *EncodingError
		require.True(t, errors.As(err, &encErr))
		require.Equal(t, name, encErr.Value)
	}
}

func TestFormatHex32(t *testing.T) {
	one := FormatHex32(big.NewInt(1))
	require.Equal(t, "0x0000000000000000000000000000000000000000000000000000000000000001", one)
	require.Len(t, one, 2+HexDigits32)

	require.Equal(t, "0x"+strings.Repeat("0", HexDigits32), FormatHex32(big.NewInt(0)))
	require.Equal(t, "0x"+strings.Repeat("0", HexDigits32), FormatHex32(nil))

	p := StarkField.FieldModulus()
	require.Equal(t, "0x0800000000000011000000000000000000000000000000000000000000000001", FormatHex32(p))

	wide := new(big.Int).Lsh(big.NewInt(1), 260)
	require.Len(t, FormatHex32(wide), 2+66, "wide values are not truncated")
}

func TestPadHex32(t *testing.T) {
	formatted := "0x00000000000000000000000000000000000000000000000000000000000000ab"

	require.Equal(t, formatted, PadHex32("0xab"))
	require.Equal(t, formatted, PadHex32("ab"))
	require.Equal(t, formatted, PadHex32("0xAB"))
	require.Equal(t, formatted, PadHex32(formatted))
	require.Equal(t, PadHex32(formatted), PadHex32(PadHex32(formatted)))
}

func TestParseElement(t *testing.T) {
	v, err := ParseElement(StarkField, "0x40780017fff7fff")
	require.NoError(t, err)
	require.Equal(t, uint64(0x40780017fff7fff), v.Uint64())

	v, err = ParseElement(StarkField, "12345")
	require.NoError(t, err)
	require.Equal(t, int64(12345), v.Int64())

	v, err = ParseElement(StarkField, "010")
	require.NoError(t, err)
	require.Equal(t, int64(10), v.Int64(), "leading zeros are decimal, not octal")

	pMinusOne := new(big.Int).Sub(StarkField.FieldModulus(), big.NewInt(1))
	v, err = ParseElement(StarkField, "0x"+pMinusOne.Text(16))
	require.NoError(t, err)
	require.Equal(t, 0, pMinusOne.Cmp(v))

	for _, s := range []string{"0x" + StarkField.FieldModulus().Text(16), "-1", "0xzz", "", "1_000"} {
		_, err := ParseElement(StarkField, s)
		require.ErrorIs(t, err, ErrEncoding, "input %q", s)
	}

	// the stark modulus is a valid bn254 element
	_, err = ParseElement(BN254, "0x"+StarkField.FieldModulus().Text(16))
	require.NoError(t, err)
}

func TestReduce(t *testing.T) {
	p := StarkField.FieldModulus()
	require.Equal(t, 0, StarkField.Reduce(p).Sign())
	require.Equal(t, 0, StarkField.Reduce(big.NewInt(-1)).Cmp(new(big.Int).Sub(p, big.NewInt(1))))
	require.Equal(t, uint64(42), StarkField.FromUint64(42).Uint64())
	require.ErrorIs(t, StarkField.Check(p), ErrEncoding)
	require.ErrorIs(t, StarkField.Check(nil), ErrEncoding)
	require.NoError(t, StarkField.Check(big.NewInt(0)))
}

func TestBytes32(t *testing.T) {
	b, err := Bytes32(big.NewInt(0x0102))
	require.NoError(t, err)
	require.Equal(t, byte(0x01), b[30])
	require.Equal(t, byte(0x02), b[31])

	_, err = Bytes32(new(big.Int).Lsh(big.NewInt(1), 256))
	require.ErrorIs(t, err, ErrEncoding)
}
