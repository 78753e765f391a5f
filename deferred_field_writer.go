// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binary

// deferredFieldEntry is a single queued (path, value) write.
type deferredFieldEntry struct {
	path  Path
	value any
}

// DeferredFieldWriter wraps an underlying [FieldWriter] (the external
// logical field tree) and queues (path, value) pairs until drained,
// the same pattern as [DeferredBinaryWriter] applied to spec.md §4.6.
type DeferredFieldWriter struct {
	inner FieldWriter
	queue []deferredFieldEntry
}

// NewDeferredFieldWriter wraps inner.
func NewDeferredFieldWriter(inner FieldWriter) *DeferredFieldWriter {
	return &DeferredFieldWriter{inner: inner}
}

// WriteField enqueues the (path, value) pair.
func (w *DeferredFieldWriter) WriteField(path Path, value any) Outcome[Unit] {
	w.queue = append(w.queue, deferredFieldEntry{path: path, value: value})
	return Done()
}

// BeginTransaction returns a [Transaction] scoped to entries queued
// from this point on, mirroring [DeferredBinaryWriter.BeginTransaction].
func (w *DeferredFieldWriter) BeginTransaction() *Transaction {
	startLen := len(w.queue)
	return NewTransaction(
		func() { w.queue = w.queue[:startLen] },
		nil,
		nil,
	)
}

// Drain applies every queued (path, value) pair to the underlying
// field writer, in insertion order, stopping at the first failure.
func (w *DeferredFieldWriter) Drain() Outcome[Unit] {
	for _, e := range w.queue {
		if o := w.inner.WriteField(e.path, e.value); o.IsErr() {
			return o
		}
	}
	w.queue = nil
	return Done()
}
