// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binary

// txStatus tracks a Transaction's lifecycle. A transaction starts
// pending (rollback mode, per spec.md §4.4) and moves to exactly one
// terminal state.
type txStatus int

const (
	txPending txStatus = iota
	txCommitted
	txRolledBack
)

// Transaction is a disposable bundle of rollback/commit/finalize
// callbacks, grounded on the teacher's acquire-use-release Bracket
// pattern (resource.go) generalized to an arbitrary fan-out of child
// transactions. A Transaction starts in rollback mode; Commit flips it.
// Disposal (via Dispose, or implicitly by Rollback/Commit) is
// idempotent.
type Transaction struct {
	status     txStatus
	onRollback func()
	onCommit   func()
	onFinalize func()
	children   []*Transaction
	finalized  bool
}

// NewTransaction builds a Transaction from its three callbacks. Any of
// the three may be nil, in which case that step is a no-op.
func NewTransaction(onRollback, onCommit, onFinalize func()) *Transaction {
	return &Transaction{onRollback: onRollback, onCommit: onCommit, onFinalize: onFinalize}
}

// RegisterTransaction composes child into t: committing or rolling
// back t deterministically drives child's matching operation first
// (children are driven in the order registered for commit, and in
// reverse order for rollback, so the most recently opened nested scope
// unwinds first).
func (t *Transaction) RegisterTransaction(child *Transaction) {
	if child == nil {
		panic("binary: RegisterTransaction called with a nil child")
	}
	t.children = append(t.children, child)
}

// Commit finalizes the transaction's side effects. A no-op if the
// transaction is not pending.
func (t *Transaction) Commit() {
	if t.status != txPending {
		return
	}
	t.status = txCommitted
	for _, c := range t.children {
		c.Commit()
	}
	if t.onCommit != nil {
		t.onCommit()
	}
	t.runFinalize()
}

// Rollback undoes the transaction's side effects. A no-op if the
// transaction is not pending.
func (t *Transaction) Rollback() {
	if t.status != txPending {
		return
	}
	t.status = txRolledBack
	for i := len(t.children) - 1; i >= 0; i-- {
		t.children[i].Rollback()
	}
	if t.onRollback != nil {
		t.onRollback()
	}
	t.runFinalize()
}

// Dispose ends the transaction: rolling it back if still pending
// (a transaction that was never explicitly committed is discarded),
// then running finalize. Dispose is idempotent.
func (t *Transaction) Dispose() {
	if t.status == txPending {
		t.Rollback()
		return
	}
	t.runFinalize()
}

func (t *Transaction) runFinalize() {
	if t.finalized {
		return
	}
	t.finalized = true
	if t.onFinalize != nil {
		t.onFinalize()
	}
}
