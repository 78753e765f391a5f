// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binary

// GroupBlock processes an ordered list of children in sequence,
// short-circuiting on the first error, grounded on the teacher's Then
// chain (monad.go) and its trampoline's "stop at the first
// non-resumable result" loop (effect.go's handleDispatch). GroupBlock
// opens no transaction of its own; a caller wanting to speculate over
// a group wraps it in [Fill] or opens an explicit transaction.
type GroupBlock struct {
	Children []Block
}

// Group constructs a GroupBlock from its ordered children.
func Group(children ...Block) *GroupBlock {
	return &GroupBlock{Children: children}
}

// Process runs each child in order, returning the first error.
func (b *GroupBlock) Process(ctx CodingContext) Outcome[Unit] {
	for _, child := range b.Children {
		if o := child.Process(ctx); o.IsErr() {
			return o
		}
	}
	return Done()
}
