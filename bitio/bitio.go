// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bitio provides reference, in-memory implementations of
// binary.BitReader and binary.BitWriter: a byte-slice-backed,
// bit-addressable cursor. The core engine is agnostic to how bits are
// physically packed; this package packs most-significant-bit-first
// within each byte, the conventional network-byte-order convention
// encoding/binary's BigEndian helpers follow, and unpacks bit groups
// the way other_examples' ion-zion-decoder.go unpacks its bucket
// references — a running accumulator shifted in from the high end.
package bitio

import (
	"github.com/hubuk/Binary"
)

// Reader is a reference binary.BitReader over a fixed byte slice.
type Reader struct {
	data []byte
	pos  int64 // bits from origin
}

// NewReader wraps data for bit-addressable reading.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Position returns the current bit offset from the start of data.
func (r *Reader) Position() int64 { return r.pos }

// Move advances or retreats the cursor. Moving outside [0, len(data)*8]
// fails with ErrStreamError.
func (r *Reader) Move(offset int64) binary.Outcome[binary.Unit] {
	next := r.pos + offset
	if next < 0 || next > int64(len(r.data))*8 {
		return binary.Err[binary.Unit](binary.NewError(binary.ErrStreamError, "move past end of buffer"))
	}
	r.pos = next
	return binary.Done()
}

// Read consumes the next n bits, most-significant-bit first, failing
// with ErrStreamError on underrun. n must be between 1 and 64.
func (r *Reader) Read(n int) binary.Outcome[binary.BitValue] {
	if n <= 0 || n > 64 {
		return binary.Err[binary.BitValue](binary.NewError(binary.ErrArgumentInvalid, "read width must be in [1, 64]"))
	}
	if r.pos+int64(n) > int64(len(r.data))*8 {
		return binary.Err[binary.BitValue](binary.NewError(binary.ErrStreamError, "read past end of buffer"))
	}
	var bits uint64
	for i := 0; i < n; i++ {
		bitIdx := r.pos + int64(i)
		byteIdx := bitIdx / 8
		shift := 7 - uint(bitIdx%8)
		bit := (r.data[byteIdx] >> shift) & 1
		bits = (bits << 1) | uint64(bit)
	}
	r.pos += int64(n)
	return binary.Ok(binary.BitValue{Bits: bits, Length: n})
}

// Writer is a reference binary.BitWriter growing an in-memory buffer.
type Writer struct {
	data []byte
	pos  int64
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Position returns the number of bits written so far.
func (w *Writer) Position() int64 { return w.pos }

// Move advances the cursor, zero-filling skipped bits. Retreating
// within already-written bits repositions for overwrite; retreating
// before the start fails with ErrStreamError.
func (w *Writer) Move(offset int64) binary.Outcome[binary.Unit] {
	next := w.pos + offset
	if next < 0 {
		return binary.Err[binary.Unit](binary.NewError(binary.ErrStreamError, "move before start of buffer"))
	}
	if next > w.pos {
		for w.pos < next {
			n := next - w.pos
			if n > 64 {
				n = 64
			}
			if o := w.Write(binary.BitValue{Bits: 0, Length: int(n)}); o.IsErr() {
				return o
			}
		}
		return binary.Done()
	}
	w.pos = next
	return binary.Done()
}

// Write appends the low v.Length bits of v.Bits, most-significant-bit
// first, growing the buffer as needed.
func (w *Writer) Write(v binary.BitValue) binary.Outcome[binary.Unit] {
	if v.Length <= 0 || v.Length > 64 {
		return binary.Err[binary.Unit](binary.NewError(binary.ErrArgumentInvalid, "write width must be in [1, 64]"))
	}
	for i := v.Length - 1; i >= 0; i-- {
		bit := byte((v.Bits >> uint(i)) & 1)
		byteIdx := w.pos / 8
		for int64(len(w.data)) <= byteIdx {
			w.data = append(w.data, 0)
		}
		shift := 7 - uint(w.pos%8)
		if bit == 1 {
			w.data[byteIdx] |= 1 << shift
		} else {
			w.data[byteIdx] &^= 1 << shift
		}
		w.pos++
	}
	return binary.Done()
}

// Bytes returns the written bits, zero-padded to a whole number of
// bytes.
func (w *Writer) Bytes() []byte {
	return w.data
}
