// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	binary "github.com/hubuk/Binary"
)

func TestTransactionCommitRunsCallbackOnce(t *testing.T) {
	commits := 0
	tx := binary.NewTransaction(nil, func() { commits++ }, nil)
	tx.Commit()
	tx.Commit()
	assert.Equal(t, 1, commits)
}

func TestTransactionRollbackAfterCommitIsNoop(t *testing.T) {
	rollbacks, commits := 0, 0
	tx := binary.NewTransaction(func() { rollbacks++ }, func() { commits++ }, nil)
	tx.Commit()
	tx.Rollback()
	assert.Equal(t, 1, commits)
	assert.Equal(t, 0, rollbacks)
}

func TestTransactionFinalizeRunsAfterEitherOutcome(t *testing.T) {
	finalized := 0
	commit := binary.NewTransaction(nil, nil, func() { finalized++ })
	commit.Commit()
	assert.Equal(t, 1, finalized)

	rollback := binary.NewTransaction(nil, nil, func() { finalized++ })
	rollback.Rollback()
	assert.Equal(t, 2, finalized)
}

func TestTransactionDisposeRollsBackPending(t *testing.T) {
	rollbacks := 0
	tx := binary.NewTransaction(func() { rollbacks++ }, nil, nil)
	tx.Dispose()
	tx.Dispose()
	assert.Equal(t, 1, rollbacks)
}

func TestTransactionRegisterTransactionFansOutCommit(t *testing.T) {
	var order []string
	parent := binary.NewTransaction(nil, func() { order = append(order, "parent") }, nil)
	child := binary.NewTransaction(nil, func() { order = append(order, "child") }, nil)
	parent.RegisterTransaction(child)
	parent.Commit()
	assert.Equal(t, []string{"child", "parent"}, order)
}

func TestTransactionRegisterTransactionFansOutRollbackInReverse(t *testing.T) {
	var order []string
	parent := binary.NewTransaction(func() { order = append(order, "parent") }, nil, nil)
	first := binary.NewTransaction(func() { order = append(order, "first") }, nil, nil)
	second := binary.NewTransaction(func() { order = append(order, "second") }, nil, nil)
	parent.RegisterTransaction(first)
	parent.RegisterTransaction(second)
	parent.Rollback()
	assert.Equal(t, []string{"second", "first", "parent"}, order)
}
