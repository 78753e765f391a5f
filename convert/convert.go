// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package convert provides reference binary.BinaryValueConverter
// implementations: unsigned and signed (two's complement) integers, an
// ASCII string, and an enum lookup. Integer conversions follow the
// bit-width-aware shifting/masking conventions visible throughout
// erigon's binary codecs (encoding/binary plus math/bits for width
// bookkeeping), reimplemented here at bit rather than byte granularity.
package convert

import (
	"math/bits"

	"github.com/hubuk/Binary"
)

// unsignedConverter converts a BitValue to/from an unsigned integer of
// up to 64 bits.
type unsignedConverter struct{}

// Unsigned is a stateless binary.BinaryValueConverter for unsigned
// integers.
var Unsigned binary.BinaryValueConverter = unsignedConverter{}

func (unsignedConverter) ConvertFrom(_ binary.EvalContext, raw binary.BitValue) binary.Outcome[any] {
	return binary.Ok[any](raw.Bits)
}

func (unsignedConverter) ConvertTo(_ binary.EvalContext, value any, bitLength int) binary.Outcome[binary.BitValue] {
	u, ok := toUint64(value)
	if !ok {
		return binary.Err[binary.BitValue](binary.NewError(binary.ErrConversionError, "value is not an unsigned integer"))
	}
	if bitLength < 64 && bits.Len64(u) > bitLength {
		return binary.Err[binary.BitValue](binary.NewError(binary.ErrConversionError, "value does not fit in the requested bit length"))
	}
	return binary.Ok(binary.BitValue{Bits: u, Length: bitLength})
}

func toUint64(value any) (uint64, bool) {
	switch v := value.(type) {
	case uint64:
		return v, true
	case uint32:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint8:
		return uint64(v), true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// signedConverter converts a BitValue to/from a two's-complement
// signed integer.
type signedConverter struct{}

// Signed is a stateless binary.BinaryValueConverter for two's
// complement signed integers.
var Signed binary.BinaryValueConverter = signedConverter{}

func (signedConverter) ConvertFrom(_ binary.EvalContext, raw binary.BitValue) binary.Outcome[any] {
	if raw.Length == 0 || raw.Length > 64 {
		return binary.Err[any](binary.NewError(binary.ErrConversionError, "invalid signed field width"))
	}
	signBit := uint64(1) << uint(raw.Length-1)
	if raw.Bits&signBit == 0 {
		return binary.Ok[any](int64(raw.Bits))
	}
	// Sign-extend: fill the high bits above Length with ones.
	mask := ^uint64(0) << uint(raw.Length)
	return binary.Ok[any](int64(raw.Bits | mask))
}

func (signedConverter) ConvertTo(_ binary.EvalContext, value any, bitLength int) binary.Outcome[binary.BitValue] {
	i, ok := value.(int64)
	if !ok {
		if iv, isInt := value.(int); isInt {
			i = int64(iv)
			ok = true
		}
	}
	if !ok {
		return binary.Err[binary.BitValue](binary.NewError(binary.ErrConversionError, "value is not a signed integer"))
	}
	mask := ^uint64(0)
	if bitLength < 64 {
		mask = (uint64(1) << uint(bitLength)) - 1
	}
	return binary.Ok(binary.BitValue{Bits: uint64(i) & mask, Length: bitLength})
}

// stringConverter converts a BitValue to/from an ASCII string, one
// byte per 8 bits of the field (bitLength must be a multiple of 8).
type stringConverter struct{}

// String is a stateless binary.BinaryValueConverter for fixed-width
// ASCII strings.
var String binary.BinaryValueConverter = stringConverter{}

func (stringConverter) ConvertFrom(_ binary.EvalContext, raw binary.BitValue) binary.Outcome[any] {
	if raw.Length%8 != 0 || raw.Length > 64 {
		return binary.Err[any](binary.NewError(binary.ErrConversionError, "string field width must be a multiple of 8, up to 64"))
	}
	n := raw.Length / 8
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		shift := uint(8 * (n - 1 - i))
		b[i] = byte(raw.Bits >> shift)
	}
	return binary.Ok[any](string(b))
}

func (stringConverter) ConvertTo(_ binary.EvalContext, value any, bitLength int) binary.Outcome[binary.BitValue] {
	s, ok := value.(string)
	if !ok {
		return binary.Err[binary.BitValue](binary.NewError(binary.ErrConversionError, "value is not a string"))
	}
	n := bitLength / 8
	if bitLength%8 != 0 || len(s) > n {
		return binary.Err[binary.BitValue](binary.NewError(binary.ErrConversionError, "string does not fit in the requested bit length"))
	}
	padded := make([]byte, n)
	copy(padded, s)
	var bitsVal uint64
	for _, c := range padded {
		bitsVal = (bitsVal << 8) | uint64(c)
	}
	return binary.Ok(binary.BitValue{Bits: bitsVal, Length: bitLength})
}

// EnumConverter converts a BitValue to/from a named enum value via a
// bidirectional lookup table, demonstrating ConversionError
// suppression to a caller-supplied default on an unrecognized code.
type EnumConverter struct {
	ToName map[uint64]string
	ToCode map[string]uint64
}

// NewEnumConverter builds an EnumConverter from a code→name table.
func NewEnumConverter(names map[uint64]string) *EnumConverter {
	toCode := make(map[string]uint64, len(names))
	for code, name := range names {
		toCode[name] = code
	}
	return &EnumConverter{ToName: names, ToCode: toCode}
}

// ConvertFrom looks up raw.Bits in the code→name table, failing with
// ErrConversionError on an unrecognized code (callers supply a default
// to MapField to suppress this).
func (c *EnumConverter) ConvertFrom(_ binary.EvalContext, raw binary.BitValue) binary.Outcome[any] {
	name, ok := c.ToName[raw.Bits]
	if !ok {
		return binary.Err[any](binary.NewError(binary.ErrConversionError, "unrecognized enum code"))
	}
	return binary.Ok[any](name)
}

// ConvertTo looks up value in the name→code table.
func (c *EnumConverter) ConvertTo(_ binary.EvalContext, value any, bitLength int) binary.Outcome[binary.BitValue] {
	name, ok := value.(string)
	if !ok {
		return binary.Err[binary.BitValue](binary.NewError(binary.ErrConversionError, "value is not a string enum name"))
	}
	code, ok := c.ToCode[name]
	if !ok {
		return binary.Err[binary.BitValue](binary.NewError(binary.ErrConversionError, "unrecognized enum name"))
	}
	return binary.Ok(binary.BitValue{Bits: code, Length: bitLength})
}
