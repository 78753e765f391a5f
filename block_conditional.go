// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binary

// ConditionalBlock processes Inner only when its condition holds;
// otherwise it succeeds without side effects.
type ConditionalBlock struct {
	ConditionFn ConditionFn
	Inner       Block
}

// Conditional constructs a ConditionalBlock.
func Conditional(conditionFn ConditionFn, inner Block) *ConditionalBlock {
	return &ConditionalBlock{ConditionFn: conditionFn, Inner: inner}
}

// Process evaluates the condition and runs Inner when true.
func (b *ConditionalBlock) Process(ctx CodingContext) Outcome[Unit] {
	if !b.ConditionFn(ctx) {
		return Done()
	}
	return b.Inner.Process(ctx)
}

// ConditionalElseBlock is [ConditionalBlock] with an explicit else
// branch.
type ConditionalElseBlock struct {
	ConditionFn ConditionFn
	Then        Block
	Else        Block
}

// ConditionalElse constructs a ConditionalElseBlock.
func ConditionalElse(conditionFn ConditionFn, then, els Block) *ConditionalElseBlock {
	return &ConditionalElseBlock{ConditionFn: conditionFn, Then: then, Else: els}
}

// Process runs Then when the condition holds, Else otherwise.
func (b *ConditionalElseBlock) Process(ctx CodingContext) Outcome[Unit] {
	if b.ConditionFn(ctx) {
		return b.Then.Process(ctx)
	}
	return b.Else.Process(ctx)
}
