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

func TestPathNormalization(t *testing.T) {
	cases := map[string]string{
		"/a/b/../c": "/a/c",
		"./a":       "a",
		"/":         "/",
		"":          ".",
		"a/./b":     "a/b",
		"../a":      "../a",
		"/../a":     "/a",
	}
	for in, want := range cases {
		assert.Equal(t, want, binary.ParsePath(in).String(), "normalize(%q)", in)
	}
}

func TestPathNormalizationIsIdempotent(t *testing.T) {
	for _, s := range []string{"/a/b/../c", "./a", "/", "", "a/./b", "../../x/y"} {
		once := binary.ParsePath(s).String()
		twice := binary.ParsePath(once).String()
		assert.Equal(t, once, twice)
	}
}

func TestPathCombine(t *testing.T) {
	a := binary.ParsePath("/a/b")
	rel := binary.ParsePath("c")
	abs := binary.ParsePath("/z")

	assert.Equal(t, "/a/b/c", a.Combine(rel).String())
	assert.Equal(t, "/z", a.Combine(abs).String())
	assert.True(t, a.Combine(abs).IsAbsolute())
}

func TestPathRelativeTo(t *testing.T) {
	a := binary.ParsePath("/a/b/c")
	base := binary.ParsePath("/a/x")
	rel := a.RelativeTo(base)
	require.True(t, rel.IsOk())
	assert.Equal(t, "../b/c", rel.Unwrap().String())
}

func TestPathRelativeToRejectsMixedKinds(t *testing.T) {
	abs := binary.ParsePath("/a")
	rel := binary.ParsePath("a")
	result := abs.RelativeTo(rel)
	require.True(t, result.IsErr())
	assert.Equal(t, binary.ErrArgumentInvalid, result.Error().Kind)
}

func TestPathParentOfRootIsRoot(t *testing.T) {
	root := binary.ParsePath("/")
	assert.True(t, root.Parent().IsRoot())
}

func TestPathCompareAcrossKindsFails(t *testing.T) {
	result := binary.ParsePath("/a").Compare(binary.ParsePath("a"))
	require.True(t, result.IsErr())
}

func TestPathCompareOrdering(t *testing.T) {
	less := binary.ParsePath("/a")
	more := binary.ParsePath("/a/b")
	cmp := less.Compare(more)
	require.True(t, cmp.IsOk())
	assert.Equal(t, -1, cmp.Unwrap())
}

func TestPathCommonPrefix(t *testing.T) {
	a := binary.ParsePath("/a/b/c")
	b := binary.ParsePath("/a/b/d")
	assert.Equal(t, "/a/b", a.CommonPrefix(b).String())
}
