// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	binary "github.com/hubuk/Binary"
)

func TestTransactionalMapAddRejectsDuplicate(t *testing.T) {
	m := binary.NewTransactionalMap[string, int]()
	require.True(t, m.Add("a", 1).IsOk())
	result := m.Add("a", 2)
	require.True(t, result.IsErr())
	assert.Equal(t, binary.ErrDuplicateKey, result.Error().Kind)

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v, "failed Add must not partially mutate")
}

func TestTransactionalMapRollbackRestoresSnapshot(t *testing.T) {
	m := binary.NewTransactionalMap[string, int]()
	m.Set("a", 1)
	tx := m.BeginTransaction()
	m.Set("a", 2)
	m.Set("b", 3)
	tx.Rollback()

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = m.Get("b")
	assert.False(t, ok)
}

func TestTransactionalMapCommitKeepsChanges(t *testing.T) {
	m := binary.NewTransactionalMap[string, int]()
	tx := m.BeginTransaction()
	m.Set("a", 1)
	tx.Commit()

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestTransactionalMapNestedRollbackOnlyUndoesInnerScope(t *testing.T) {
	m := binary.NewTransactionalMap[string, int]()
	m.Set("a", 1)
	outer := m.BeginTransaction()
	m.Set("a", 2)
	inner := m.BeginTransaction()
	m.Set("a", 3)
	inner.Rollback()

	v, _ := m.Get("a")
	assert.Equal(t, 2, v, "inner rollback should restore to outer's mid-state, not pre-outer state")

	outer.Rollback()
	v, _ = m.Get("a")
	assert.Equal(t, 1, v)
}
