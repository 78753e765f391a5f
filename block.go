// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binary

// Block is a node in the codec description tree. Blocks are immutable
// after construction and reusable across runs; Process is the single
// operation every block exposes, mirroring the teacher's small,
// single-method effect operations (effect.go's Op/Perform shape)
// generalized from "suspend and let a handler resume" to "recurse into
// a concrete CodingContext directly," since this spec's combinators
// are a closed, concrete algebra rather than an open effect system.
type Block interface {
	Process(ctx CodingContext) Outcome[Unit]
}

// Evaluation closures are late-bound expressions read at processing
// time from the evaluation context (spec.md §4.9, Design Notes §9).

// PathFn resolves a path expression against ctx.
type PathFn func(ctx CodingContext) Path

// LengthFn resolves a bit-length expression against ctx.
type LengthFn func(ctx CodingContext) int

// DefaultFn resolves a field's fallback value against ctx.
type DefaultFn func(ctx CodingContext) any

// ConverterFn resolves a field's converter against ctx.
type ConverterFn func(ctx CodingContext) BinaryValueConverter

// ConditionFn resolves a boolean expression against ctx.
type ConditionFn func(ctx CodingContext) bool

// SwitchFn resolves a Choice block's scrutinee against ctx.
type SwitchFn func(ctx CodingContext) any

// TestFn resolves one Choice case's comparison value against ctx.
type TestFn func(ctx CodingContext) any

// IndexNameFn resolves a Repeat block's loop-variable name against ctx.
type IndexNameFn func(ctx CodingContext) string

// OffsetFn resolves an Offset block's bit delta against ctx.
type OffsetFn func(ctx CodingContext) int64
