// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binary

import "reflect"

// ChoiceCase pairs a list of test-value closures with the body to run
// when any of them structurally equals the switch value. The
// "IBinaryValue.Equals" contract referenced by spec.md §9 is absent
// from the source material; per §9's own fallback, this implementation
// treats it as structural equality (reflect.DeepEqual) between the
// converted switch value and each test value.
type ChoiceCase struct {
	Tests []TestFn
	Body  Block
}

// ChoiceBlock evaluates its switch expression once, then runs every
// case whose test values structurally match — not just the first.
// spec.md §9 is explicit that this broadcast dispatch (possibly a bug
// in the source, possibly intentional) must be preserved rather than
// optimized to single-case dispatch.
type ChoiceBlock struct {
	SwitchFn SwitchFn
	Cases    []ChoiceCase
}

// Choice constructs a ChoiceBlock from its switch closure and cases.
func Choice(switchFn SwitchFn, cases ...ChoiceCase) *ChoiceBlock {
	return &ChoiceBlock{SwitchFn: switchFn, Cases: cases}
}

// Process evaluates the switch value, then runs every matching case's
// body in order, stopping at the first error.
func (b *ChoiceBlock) Process(ctx CodingContext) Outcome[Unit] {
	switchValue := b.SwitchFn(ctx)
	for _, c := range b.Cases {
		matched := false
		for _, test := range c.Tests {
			if reflect.DeepEqual(test(ctx), switchValue) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		if o := c.Body.Process(ctx); o.IsErr() {
			return o
		}
	}
	return Done()
}
