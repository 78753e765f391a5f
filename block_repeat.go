// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binary

// RepeatBlock processes Inner while ConditionFn holds, threading an
// integer loop counter through the context's variables, grounded on
// the teacher's ModifyState/GetState pairing (state.go: read-modify-
// write a state cell each step) wrapped with a guaranteed save/restore
// around the whole loop, the way resource.go's Bracket guarantees
// release regardless of how the body exits.
type RepeatBlock struct {
	ConditionFn ConditionFn
	IndexNameFn IndexNameFn
	Inner       Block
}

// Repeat constructs a RepeatBlock.
func Repeat(conditionFn ConditionFn, indexNameFn IndexNameFn, inner Block) *RepeatBlock {
	return &RepeatBlock{ConditionFn: conditionFn, IndexNameFn: indexNameFn, Inner: inner}
}

// Process resolves the loop-variable name, saves its prior value (if
// any), runs Inner while ConditionFn holds (incrementing the variable
// between iterations), and restores the prior value on every exit
// path.
func (b *RepeatBlock) Process(ctx CodingContext) (result Outcome[Unit]) {
	name := b.IndexNameFn(ctx)

	priorOutcome := ctx.GetVariable(name)
	hadPrior := priorOutcome.IsOk()
	var priorValue any
	if hadPrior {
		priorValue = priorOutcome.Unwrap()
	}
	defer func() {
		if hadPrior {
			ctx.SetVariable(name, priorValue)
		} else {
			ctx.DeleteVariable(name)
		}
	}()

	if o := ctx.SetVariable(name, 0); o.IsErr() {
		return o
	}
	for b.ConditionFn(ctx) {
		if o := b.Inner.Process(ctx); o.IsErr() {
			return o
		}
		current := ctx.GetVariable(name).Unwrap()
		next, o := incrementIndex(current)
		if o.IsErr() {
			return o
		}
		if o := ctx.SetVariable(name, next); o.IsErr() {
			return o
		}
	}
	return Done()
}

// incrementIndex advances an integer loop counter. Repeat's index
// variable is conventionally an int; a condition/body that replaces it
// with a non-int value is a programmer error.
func incrementIndex(v any) (any, Outcome[Unit]) {
	i, ok := v.(int)
	if !ok {
		return nil, Err[Unit](NewError(ErrArgumentInvalid, "repeat index variable must hold an int"))
	}
	return i + 1, Done()
}
