// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binary

// DeferredBinaryWriter wraps an underlying [BitWriter] and buffers
// writes until they are explicitly drained, grounded on the teacher's
// Writer effect (writer.go: Tell appends to an accumulator now,
// surfaced later) generalized to flush into an external collaborator.
//
// Write appends to an internal ordered queue and advances the virtual
// cursor by the value's length without touching the underlying
// stream, so position accounting stays correct mid-parse (spec.md
// §4.5). BeginTransaction's rollback drops whatever this transaction
// queued; its commit only merges the queue upward — the actual,
// irreversible flush into the underlying writer happens once, via
// Drain, after the whole encode run succeeds (see DESIGN.md,
// "Deferred binary/field writers").
type DeferredBinaryWriter struct {
	inner BitWriter
	queue []BitValue
	pos   int64
}

// NewDeferredBinaryWriter wraps inner.
func NewDeferredBinaryWriter(inner BitWriter) *DeferredBinaryWriter {
	return &DeferredBinaryWriter{inner: inner, pos: inner.Position()}
}

// Position returns the virtual cursor position, including queued but
// not yet flushed writes.
func (w *DeferredBinaryWriter) Position() int64 { return w.pos }

// Move advances the virtual cursor. A deferred writer cannot rewind
// past bits it has already queued for writing, since it never reads
// back from the underlying stream; any negative offset fails with
// ErrStreamError. Advancing enqueues a zero-valued filler
// of the requested width, consistent with Write's "advance by length"
// contract.
func (w *DeferredBinaryWriter) Move(offset int64) Outcome[Unit] {
	if offset == 0 {
		return Done()
	}
	if offset < 0 {
		return Err[Unit](WrapError(ErrStreamError, "cannot rewind a deferred binary writer", nil))
	}
	return w.Write(BitValue{Bits: 0, Length: int(offset)})
}

// Write enqueues v and advances the virtual cursor by v.Length.
func (w *DeferredBinaryWriter) Write(v BitValue) Outcome[Unit] {
	if v.Length <= 0 {
		return Err[Unit](NewError(ErrArgumentInvalid, "length must be positive"))
	}
	w.queue = append(w.queue, v)
	w.pos += int64(v.Length)
	return Done()
}

// BeginTransaction returns a [Transaction] scoped to writes queued
// from this point on: rollback truncates the queue back to its length
// at begin time (and restores the virtual cursor); commit is a no-op,
// leaving the queue (and the cursor) exactly as accumulated, to be
// merged into whatever enclosing transaction committed it.
func (w *DeferredBinaryWriter) BeginTransaction() *Transaction {
	startLen := len(w.queue)
	startPos := w.pos
	return NewTransaction(
		func() {
			w.queue = w.queue[:startLen]
			w.pos = startPos
		},
		nil,
		nil,
	)
}

// Drain flushes the entire queue into the underlying writer, in
// insertion order, and empties the queue. This is the one point at
// which a deferred binary writer performs irreversible I/O; callers
// invoke it once, after a top-level encode run has fully succeeded.
func (w *DeferredBinaryWriter) Drain() Outcome[Unit] {
	for _, v := range w.queue {
		if o := w.inner.Write(v); o.IsErr() {
			return o
		}
	}
	w.queue = nil
	return Done()
}
