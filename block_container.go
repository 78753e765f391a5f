// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binary

// ContainerBlock re-roots a subtree so its inner block can use paths
// relative to a nested structure: it saves the current path, changes
// to the container's path, processes inner, and restores the saved
// path on every exit path (success, error, or panic).
type ContainerBlock struct {
	PathFn PathFn
	Inner  Block
}

// Container constructs a ContainerBlock from its path closure and
// inner block.
func Container(pathFn PathFn, inner Block) *ContainerBlock {
	return &ContainerBlock{PathFn: pathFn, Inner: inner}
}

// Process re-roots the path, runs Inner, and restores the prior path.
func (b *ContainerBlock) Process(ctx CodingContext) Outcome[Unit] {
	saved := ctx.Path()
	defer func() { ctx.ChangePath(saved) }()

	if o := ctx.ChangePath(b.PathFn(ctx)); o.IsErr() {
		return o
	}
	return b.Inner.Process(ctx)
}
