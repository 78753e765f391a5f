// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binary

// OffsetBlock advances or retreats the bit position by a late-bound
// number of bits.
type OffsetBlock struct {
	OffsetFn OffsetFn
}

// Offset constructs an OffsetBlock from its bit-delta closure.
func Offset(offsetFn OffsetFn) *OffsetBlock {
	return &OffsetBlock{OffsetFn: offsetFn}
}

// Process evaluates the offset and moves the context's cursor.
func (b *OffsetBlock) Process(ctx CodingContext) Outcome[Unit] {
	return ctx.Move(b.OffsetFn(ctx))
}
