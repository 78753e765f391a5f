// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	binary "github.com/hubuk/Binary"
	"github.com/hubuk/Binary/bitio"
	"github.com/hubuk/Binary/convert"
	"github.com/hubuk/Binary/fieldtree"
)

func TestMapFieldRejectsNonPositiveLength(t *testing.T) {
	ctx, _ := newDecodeCtx([]byte{0xFF})
	result := ctx.MapField(binary.ParsePath("/x"), 0, convert.Unsigned, uint64(0))
	require.True(t, result.IsErr())
	assert.Equal(t, binary.ErrArgumentInvalid, result.Error().Kind)
}

func TestMapFieldRejectsRootResultingPath(t *testing.T) {
	ctx, _ := newDecodeCtx([]byte{0xFF})
	result := ctx.MapField(binary.ParsePath("/"), 8, convert.Unsigned, uint64(0))
	require.True(t, result.IsErr())
	assert.Equal(t, binary.ErrArgumentInvalid, result.Error().Kind)
}

func TestMapFieldRejectsDuplicatePath(t *testing.T) {
	ctx, tree := newDecodeCtx([]byte{0xFF, 0xFF})
	require.True(t, ctx.MapField(binary.ParsePath("/x"), 8, convert.Unsigned, uint64(0)).IsOk())
	positionBefore := ctx.Position()

	result := ctx.MapField(binary.ParsePath("/x"), 8, convert.Unsigned, uint64(0))
	require.True(t, result.IsErr())
	assert.Equal(t, binary.ErrDuplicateKey, result.Error().Kind)

	assert.Equal(t, positionBefore, ctx.Position(), "a rejected duplicate must not consume bits")
	require.True(t, ctx.Drain().IsOk())
	assert.Len(t, tree.Snapshot(), 1, "a rejected duplicate must not queue a second field write")
}

func TestSetVariableRejectsBlankName(t *testing.T) {
	ctx, _ := newDecodeCtx(nil)
	result := ctx.SetVariable("   ", 1)
	require.True(t, result.IsErr())
	assert.Equal(t, binary.ErrArgumentInvalid, result.Error().Kind)
}

func TestGetVariableRejectsBlankName(t *testing.T) {
	ctx, _ := newDecodeCtx(nil)
	result := ctx.GetVariable("")
	require.True(t, result.IsErr())
	assert.Equal(t, binary.ErrArgumentInvalid, result.Error().Kind)
}

func TestGetFieldMappingRejectsRelativePath(t *testing.T) {
	ctx, _ := newDecodeCtx(nil)
	result := ctx.GetFieldMapping(binary.ParsePath("x"))
	require.True(t, result.IsErr())
	assert.Equal(t, binary.ErrArgumentInvalid, result.Error().Kind)
}

// A rolled-back transaction restores every layer of context state: the
// path, a variable, the field map, and the reader's position, exactly
// as spec.md §3's layered-state invariant requires.
func TestBeginTransactionRollbackRestoresEveryLayer(t *testing.T) {
	ctx, _ := newDecodeCtx([]byte{0xAA, 0xBB})
	require.True(t, ctx.SetVariable("v", 1).IsOk())
	require.True(t, ctx.ChangePath(binary.ParsePath("/a")).IsOk())
	require.True(t, ctx.MapField(binary.ParsePath("x"), 8, convert.Unsigned, uint64(0)).IsOk())

	savedPath := ctx.Path()
	savedPosition := ctx.Position()

	txOutcome := ctx.BeginTransaction()
	require.True(t, txOutcome.IsOk())
	tx := txOutcome.Unwrap()

	require.True(t, ctx.SetVariable("v", 2).IsOk())
	require.True(t, ctx.ChangePath(binary.ParsePath("/b")).IsOk())
	require.True(t, ctx.MapField(binary.ParsePath("y"), 8, convert.Unsigned, uint64(0)).IsOk())

	tx.Rollback()

	assert.True(t, ctx.Path().Equal(savedPath))
	assert.Equal(t, savedPosition, ctx.Position())
	assert.Equal(t, 1, ctx.GetVariable("v").Unwrap())

	_, stillThere := func() (binary.FieldMapping, bool) {
		o := ctx.GetFieldMapping(binary.ParsePath("/a/x"))
		return o.Value()
	}()
	assert.True(t, stillThere)

	missing := ctx.GetFieldMapping(binary.ParsePath("/b/y"))
	assert.True(t, missing.IsErr(), "rollback must undo the field mapped inside the transaction")
}

func TestEncodingContextMapFieldRejectsDuplicatePathWithoutPartialMutation(t *testing.T) {
	source := fieldtree.New(map[string]any{"/x": uint64(5)})
	writer := bitio.NewWriter()
	ctx := binary.NewEncodingContext(writer, source, nil)

	require.True(t, ctx.MapField(binary.ParsePath("/x"), 8, convert.Unsigned, uint64(0)).IsOk())
	positionBefore := ctx.Position()

	result := ctx.MapField(binary.ParsePath("/x"), 8, convert.Unsigned, uint64(0))
	require.True(t, result.IsErr())
	assert.Equal(t, binary.ErrDuplicateKey, result.Error().Kind)

	assert.Equal(t, positionBefore, ctx.Position(), "a rejected duplicate must not advance the virtual cursor")
	require.True(t, ctx.Drain().IsOk())
	assert.Len(t, writer.Bytes(), 1, "a rejected duplicate must not enqueue a second write")
}
