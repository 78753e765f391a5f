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

func TestOutcomeOkErr(t *testing.T) {
	ok := binary.Ok(42)
	require.True(t, ok.IsOk())
	require.False(t, ok.IsErr())
	require.Equal(t, 42, ok.Unwrap())

	err := binary.Err[int](binary.NewError(binary.ErrKeyNotFound, "missing"))
	require.True(t, err.IsErr())
	require.Equal(t, binary.ErrKeyNotFound, err.Error().Kind)
}

func TestOutcomeErrPanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { binary.Err[int](nil) })
}

func TestOutcomeUnwrapPanicsOnError(t *testing.T) {
	o := binary.Err[int](binary.NewError(binary.ErrInvalidOperation, "bad"))
	assert.Panics(t, func() { o.Unwrap() })
}

func TestOutcomeOnError(t *testing.T) {
	err := binary.Err[int](binary.NewError(binary.ErrKeyNotFound, "missing"))
	assert.Equal(t, 7, err.OnError(7).Unwrap())
	assert.Equal(t, 42, binary.Ok(42).OnError(7).Unwrap())
}

func TestContinueWithPropagatesError(t *testing.T) {
	err := binary.Err[int](binary.NewError(binary.ErrKeyNotFound, "missing"))
	result := binary.ContinueWith(err, func(v int) binary.Outcome[string] {
		t.Fatal("should not be called on error")
		return binary.Ok("")
	})
	require.True(t, result.IsErr())
	assert.Equal(t, binary.ErrKeyNotFound, result.Error().Kind)
}

func TestContinueWithCapturesPanic(t *testing.T) {
	ok := binary.Ok(1)
	result := binary.ContinueWith(ok, func(v int) binary.Outcome[int] {
		panic("boom")
	})
	require.True(t, result.IsErr())
	assert.Equal(t, binary.ErrInvalidOperation, result.Error().Kind)
}

func TestContinueWithRejectsNilCallable(t *testing.T) {
	assert.Panics(t, func() {
		binary.ContinueWith(binary.Ok(1), (func(int) binary.Outcome[int])(nil))
	})
}

func TestMapAndBind(t *testing.T) {
	doubled := binary.Map(binary.Ok(21), func(v int) int { return v * 2 })
	assert.Equal(t, 42, doubled.Unwrap())

	bound := binary.Bind(binary.Ok(21), func(v int) binary.Outcome[int] { return binary.Ok(v * 2) })
	assert.Equal(t, 42, bound.Unwrap())
}

func TestMatch(t *testing.T) {
	got := binary.Match(binary.Ok(5),
		func(v int) string { return "ok" },
		func(e *binary.CodecError) string { return "err" },
	)
	assert.Equal(t, "ok", got)

	got = binary.Match(binary.Err[int](binary.NewError(binary.ErrStreamError, "x")),
		func(v int) string { return "ok" },
		func(e *binary.CodecError) string { return "err" },
	)
	assert.Equal(t, "err", got)
}

func TestFlatten(t *testing.T) {
	nested := binary.Ok(binary.Ok(3))
	assert.Equal(t, 3, binary.Flatten(nested).Unwrap())

	nestedErr := binary.Ok(binary.Err[int](binary.NewError(binary.ErrStreamError, "inner")))
	flat := binary.Flatten(nestedErr)
	require.True(t, flat.IsErr())
	assert.Equal(t, binary.ErrStreamError, flat.Error().Kind)
}

func TestWrapErrorPreservesCause(t *testing.T) {
	cause := assert.AnError
	wrapped := binary.WrapError(binary.ErrStreamError, "read failed", cause)
	assert.ErrorIs(t, wrapped, cause)
}
