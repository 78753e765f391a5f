// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binary

// BitValue is a bit-level payload: the low Length bits of Bits, most
// significant bit first, plus the bit length it carries so position
// accounting stays correct (spec.md §4.5: "advances the cursor by
// value.length"). Fields wider than 64 bits cannot be represented. The
// core never inspects Bits directly — only Length.
type BitValue struct {
	Bits   uint64
	Length int
}

// BitSeeker is the minimal positionable-cursor contract shared by
// [BitReader] and [BitWriter].
type BitSeeker interface {
	// Position returns the current cursor position, in bits from the
	// stream origin.
	Position() int64
	// Move advances (offset > 0) or retreats (offset < 0) the cursor.
	// Implementations report cursor errors (e.g. past EOF) as a
	// failed outcome with ErrStreamError.
	Move(offset int64) Outcome[Unit]
}

// BitReader is the external bit-stream reader contract (spec.md §6).
type BitReader interface {
	BitSeeker
	// Read consumes n bits and advances the cursor by n.
	Read(n int) Outcome[BitValue]
}

// BitWriter is the external bit-stream writer contract (spec.md §6).
type BitWriter interface {
	BitSeeker
	// Write appends v and advances the cursor by v.Length.
	Write(v BitValue) Outcome[Unit]
}

// FieldReader is the external logical field tree reader contract,
// consumed by [EncodingContext].
type FieldReader interface {
	ReadField(path Path) Outcome[any]
}

// FieldWriter is the external logical field tree writer contract,
// consumed by [DecodingContext].
type FieldWriter interface {
	WriteField(path Path, value any) Outcome[Unit]
}

// TransactionalFieldWriter is a [FieldWriter] that additionally
// supports snapshot/rollback, so [DecodingContext] can compose it into
// its own transaction fan-out.
type TransactionalFieldWriter interface {
	FieldWriter
	BeginTransaction() *Transaction
}

// EvalContext is the read-only subset of [CodingContext] that late-
// bound evaluation closures (path, length, default, condition, switch
// value expressions, per spec.md §4.9) are evaluated against. Every
// [CodingContext] implementation satisfies EvalContext; blocks are
// given the full context since they also need to mutate it, but
// closures should treat their argument as EvalContext in spirit.
type EvalContext interface {
	Path() Path
	Position() int64
	GetVariable(name string) Outcome[any]
	GetFieldMapping(fieldPath Path) Outcome[FieldMapping]
}

// BinaryValueConverter is the external value-conversion contract
// (spec.md §6): ConvertFrom turns a raw [BitValue] read off the wire
// into a typed logical value (decoding); ConvertTo turns a typed
// logical value into its on-wire [BitValue] (encoding).
type BinaryValueConverter interface {
	ConvertFrom(ctx EvalContext, raw BitValue) Outcome[any]
	ConvertTo(ctx EvalContext, value any, bitLength int) Outcome[BitValue]
}
