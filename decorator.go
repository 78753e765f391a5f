// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binary

// bufferedWindowContext decorates a [CodingContext] to expose a
// re-scoped, bounded view of the bit position, for [Buffer]. It embeds
// the inner context so every operation other than Position/Move/
// MapField passes through unchanged, grounded on the teacher's
// writerDispatchHandler delegation pattern (writer.go) generalized
// from effect dispatch to full interface embedding.
type bufferedWindowContext struct {
	CodingContext
	start  int64
	length int64
}

// newBufferedWindow wraps inner with a window of length bits starting
// at inner's current position.
func newBufferedWindow(inner CodingContext, length int64) *bufferedWindowContext {
	return &bufferedWindowContext{CodingContext: inner, start: inner.Position(), length: length}
}

// Position reports the position relative to the window's start.
func (b *bufferedWindowContext) Position() int64 {
	return b.CodingContext.Position() - b.start
}

// Move verifies the prospective relative position lies in [0, length]
// before delegating, per spec.md §4.8.
func (b *bufferedWindowContext) Move(offset int64) Outcome[Unit] {
	next := b.Position() + offset
	if next < 0 || next > b.length {
		return Err[Unit](NewError(ErrPositionOutOfWindow, "move would leave the buffered window"))
	}
	return b.CodingContext.Move(offset)
}

// MapField verifies the prospective relative end position lies in
// [0, length] before delegating.
func (b *bufferedWindowContext) MapField(fieldPath Path, length int, converter BinaryValueConverter, defaultValue any) Outcome[Unit] {
	next := b.Position() + int64(length)
	if next < 0 || next > b.length {
		return Err[Unit](NewError(ErrPositionOutOfWindow, "field would leave the buffered window"))
	}
	return b.CodingContext.MapField(fieldPath, length, converter, defaultValue)
}
