// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binary

import "fmt"

// TransactionalMap is a snapshot-capable key→value store. BeginTransaction
// clones the current mapping into a side buffer; on rollback the live
// mapping is atomically replaced by that clone, on commit the clone is
// discarded. Nested transactions stack snapshots, so an inner rollback
// restores exactly the state at its own begin, not an outer one's.
//
// Snapshots are shallow: values are assumed immutable, or copy-on-write
// by the caller's convention, matching spec.md §4.3 and the full-clone
// strategy spec.md §9 names as the source's own choice (acceptable
// when the maps involved are small, as the coding context's are).
type TransactionalMap[K comparable, V any] struct {
	data map[K]V
}

// NewTransactionalMap constructs an empty TransactionalMap.
func NewTransactionalMap[K comparable, V any]() *TransactionalMap[K, V] {
	return &TransactionalMap[K, V]{data: make(map[K]V)}
}

// Get returns the value at key and whether it was present.
func (m *TransactionalMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.data[key]
	return v, ok
}

// Add inserts key/value, failing with ErrDuplicateKey if key is
// already present. No partial mutation occurs on failure.
func (m *TransactionalMap[K, V]) Add(key K, value V) Outcome[Unit] {
	if _, exists := m.data[key]; exists {
		return Err[Unit](NewError(ErrDuplicateKey, fmt.Sprintf("key %v already mapped", key)))
	}
	m.data[key] = value
	return Done()
}

// Set inserts or overwrites key/value unconditionally.
func (m *TransactionalMap[K, V]) Set(key K, value V) {
	m.data[key] = value
}

// Delete removes key, if present.
func (m *TransactionalMap[K, V]) Delete(key K) {
	delete(m.data, key)
}

// Len returns the number of entries currently stored.
func (m *TransactionalMap[K, V]) Len() int { return len(m.data) }

// Snapshot returns a shallow clone of the current mapping, suitable
// for later restoration via Restore. [TransactionalMap.BeginTransaction]
// takes its snapshot through it.
func (m *TransactionalMap[K, V]) Snapshot() map[K]V {
	clone := make(map[K]V, len(m.data))
	for k, v := range m.data {
		clone[k] = v
	}
	return clone
}

// Restore atomically replaces the live mapping with snapshot.
func (m *TransactionalMap[K, V]) Restore(snapshot map[K]V) {
	m.data = snapshot
}

// BeginTransaction snapshots the current mapping and returns a
// [Transaction] whose rollback restores it; commit discards the
// snapshot, leaving the live mapping (and whatever it has since
// accumulated) in place.
func (m *TransactionalMap[K, V]) BeginTransaction() *Transaction {
	snapshot := m.Snapshot()
	return NewTransaction(
		func() { m.Restore(snapshot) },
		nil,
		nil,
	)
}
