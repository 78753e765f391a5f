// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binary

// deferredScratch is what a DeferredBlock records into block_scratch:
// the launch site's path and position, captured at Process time rather
// than construction time.
type deferredScratch struct {
	path     Path
	position int64
}

// DeferredBlock records its current (path, position) into block_scratch
// under its own identity and succeeds without processing Inner. A
// later [ProcessBlock] referencing this block executes Inner at the
// captured site. Grounded on the teacher's Reify/Reflect bridge
// (bridge.go): capture a computation's launch-site state now, replay
// it precisely later, at a different point in the driving loop.
type DeferredBlock struct {
	id    BlockID
	Inner Block
}

// Deferred constructs a DeferredBlock wrapping inner. The returned
// block's identity is what a [NewProcess] call must reference.
func Deferred(inner Block) *DeferredBlock {
	return &DeferredBlock{id: NewBlockID(), Inner: inner}
}

// Process records the current path/position as this block's scratch
// data and succeeds; Inner is not processed now.
func (b *DeferredBlock) Process(ctx CodingContext) Outcome[Unit] {
	ctx.StoreBlockData(b.id, deferredScratch{path: ctx.Path(), position: ctx.Position()})
	return Done()
}

// ProcessBlock executes a specific [DeferredBlock]'s inner block at
// that block's captured launch site, then restores the caller's own
// (path, position) — deferred execution is position-neutral to its
// caller, per spec.md §9.
type ProcessBlock struct {
	Target *DeferredBlock
}

// NewProcess constructs a ProcessBlock referencing target. Named
// NewProcess, not Process, so it does not collide with the Block
// interface's Process method.
func NewProcess(target *DeferredBlock) *ProcessBlock {
	return &ProcessBlock{Target: target}
}

// Process jumps to the target's captured site, runs its inner block,
// and restores the caller's path/position on every exit path.
func (b *ProcessBlock) Process(ctx CodingContext) (result Outcome[Unit]) {
	data, ok := ctx.RetrieveBlockData(b.Target.id)
	if !ok {
		return Err[Unit](NewError(ErrKeyNotFound, "deferred block has not recorded its site yet"))
	}
	scratch := data.(deferredScratch)

	callerPath := ctx.Path()
	callerPosition := ctx.Position()
	defer func() {
		ctx.ChangePath(callerPath)
		ctx.Move(callerPosition - ctx.Position())
	}()

	if o := ctx.ChangePath(scratch.path); o.IsErr() {
		return o
	}
	if o := ctx.Move(scratch.position - ctx.Position()); o.IsErr() {
		return o
	}
	return b.Target.Inner.Process(ctx)
}
