// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binary

// BufferBlock evaluates a late-bound length and processes its inner
// block against a context wrapped in the buffered-window decorator
// (decorator.go), so any move or field that would step outside
// [0, length] fails with ErrPositionOutOfWindow. The window is not
// padded — an inner block that stops short of length bits is fine.
type BufferBlock struct {
	LengthFn LengthFn
	Inner    Block
}

// Buffer constructs a BufferBlock from its length closure and inner
// block.
func Buffer(lengthFn LengthFn, inner Block) *BufferBlock {
	return &BufferBlock{LengthFn: lengthFn, Inner: inner}
}

// Process wraps ctx in a bounded window and runs Inner against it.
func (b *BufferBlock) Process(ctx CodingContext) Outcome[Unit] {
	length := b.LengthFn(ctx)
	windowed := newBufferedWindow(ctx, int64(length))
	return b.Inner.Process(windowed)
}
