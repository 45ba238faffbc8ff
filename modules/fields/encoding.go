package fields

import (
	"fmt"
	"math/big"
	"strings"
)

// HexDigits32 is the number of hex digits of a 32 byte word.
const HexDigits32 = 64

// EncodeIdentifier interprets the raw ASCII bytes of name as a big-endian
// integer. The name must be non-empty and pure ASCII. It may be up to
// FieldBytes long as long as its value stays below P: every name of at most
// ShortStringBytes passes, a full width name only when it is small enough.
func EncodeIdentifier(f FieldEnum, name string) (*big.Int, error) {
	if len(name) == 0 {
		return nil, encodingf(name, "empty identifier")
	}

	for i := 0; i < len(name); i++ {
		if name[i] > 0x7f {
			return nil, encodingf(name, "non-ASCII byte 0x%02x at offset %d", name[i], i)
		}
	}

	if maxLen := f.FieldBytes(); uint(len(name)) > maxLen {
		return nil, encodingf(name, "%d bytes exceed the %d byte width of the %s field", len(name), maxLen, f)
	}

	v := new(big.Int).SetBytes([]byte(name))
	if !f.Contains(v) {
		return nil, encodingf(name, "value is not below the %s modulus", f)
	}
	return v, nil
}

// DecodeIdentifier is the inverse of EncodeIdentifier.
func DecodeIdentifier(v *big.Int) (string, error) {
	if v == nil || v.Sign() <= 0 {
		return "", encodingf(fmt.Sprint(v), "not an encoded identifier")
	}

	raw := v.Bytes()
	for i, b := range raw {
		if b > 0x7f || b == 0 {
			return "", encodingf(v.String(), "byte 0x%02x at offset %d is not printable ASCII", b, i)
		}
	}
	return string(raw), nil
}

// FormatHex32 renders v as "0x" followed by exactly 64 lowercase hex digits.
// Values wider than 32 bytes are not truncated.
func FormatHex32(v *big.Int) string {
	if v == nil {
		v = new(big.Int)
	}
	return PadHex32(v.Text(16))
}

// PadHex32 strips an optional "0x" prefix, left pads the digits with zeros up
// to 64 and re-applies the prefix. It is idempotent on its own output.
func PadHex32(hexStr string) string {
	hexStr = strings.TrimPrefix(hexStr, "0x")
	hexStr = strings.TrimPrefix(hexStr, "0X")
	hexStr = strings.ToLower(hexStr)

	if len(hexStr) < HexDigits32 {
		hexStr = strings.Repeat("0", HexDigits32-len(hexStr)) + hexStr
	}
	return "0x" + hexStr
}

// ParseElement reads a "0x" prefixed hex or a decimal string and checks that
// the value is canonical in f.
func ParseElement(f FieldEnum, s string) (*big.Int, error) {
	digits, base := strings.TrimSpace(s), 10
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits, base = digits[2:], 16
	}

	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, encodingf(s, "not a hex or decimal integer")
	}

	if err := f.Check(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Bytes32 returns the big-endian 32 byte encoding of a canonical element.
func Bytes32(v *big.Int) ([32]byte, error) {
	var out [32]byte
	if v == nil || v.Sign() < 0 || v.BitLen() > 256 {
		return out, encodingf(fmt.Sprint(v), "does not fit in 32 bytes")
	}
	v.FillBytes(out[:])
	return out, nil
}
