// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fieldtree provides a reference, map-based implementation of
// binary.FieldReader/FieldWriter/TransactionalFieldWriter: a flat map
// keyed by normalized path string, with copy-on-begin, swap-on-rollback
// transaction support. Grounded on the transactional-store idiom
// visible in other_examples' nornicdb storage/transaction.go and
// agent-task's internal/store/tx.go.
package fieldtree

import (
	"github.com/hubuk/Binary"
)

// Tree is a reference logical field tree.
type Tree struct {
	data map[string]any
}

// New constructs an empty Tree, optionally pre-populated from initial
// (useful for seeding an encode run from a caller-built field set).
func New(initial map[string]any) *Tree {
	t := &Tree{data: make(map[string]any, len(initial))}
	for k, v := range initial {
		t.data[k] = v
	}
	return t
}

// ReadField implements binary.FieldReader.
func (t *Tree) ReadField(path binary.Path) binary.Outcome[any] {
	v, ok := t.data[path.String()]
	if !ok {
		return binary.Err[any](binary.NewError(binary.ErrKeyNotFound, "no field at "+path.String()))
	}
	return binary.Ok(v)
}

// WriteField implements binary.FieldWriter.
func (t *Tree) WriteField(path binary.Path, value any) binary.Outcome[binary.Unit] {
	t.data[path.String()] = value
	return binary.Done()
}

// BeginTransaction implements binary.TransactionalFieldWriter: it
// snapshots the current tree and returns a handle whose rollback
// restores it.
func (t *Tree) BeginTransaction() *binary.Transaction {
	snapshot := make(map[string]any, len(t.data))
	for k, v := range t.data {
		snapshot[k] = v
	}
	return binary.NewTransaction(
		func() { t.data = snapshot },
		nil,
		nil,
	)
}

// Snapshot returns a shallow copy of the tree's contents, for test
// assertions and round-trip comparisons.
func (t *Tree) Snapshot() map[string]any {
	out := make(map[string]any, len(t.data))
	for k, v := range t.data {
		out[k] = v
	}
	return out
}
