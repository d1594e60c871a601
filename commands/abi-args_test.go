package commands

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jaanek/abienc/abi"
	"github.com/jaanek/abienc/abistr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, sig string) *abistr.Type {
	t.Helper()
	typ, err := abistr.Parse(sig)
	require.NoError(t, err)
	return typ
}

func TestBuildUintValue(t *testing.T) {
	v, err := BuildValue(mustParse(t, "uint256"), "255")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%064x", 255), abi.EncodeToString(v))
}

func TestBuildUintValueRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "abc", "-1", "0x10"} {
		_, err := BuildValue(mustParse(t, "uint"), input)
		assert.Error(t, err, input)
	}
}

func TestBuildTupleValue(t *testing.T) {
	v, err := BuildValue(mustParse(t, "(uint,uint,uint)"), "1,2,3")
	require.NoError(t, err)
	want := fmt.Sprintf("%064x%064x%064x", 1, 2, 3)
	assert.Equal(t, want, abi.EncodeToString(v))
}

func TestBuildTupleValueArityMismatch(t *testing.T) {
	_, err := BuildValue(mustParse(t, "(uint,uint)"), "1,2,3")
	assert.Error(t, err)
}

func TestBuildDynArrayOfUints(t *testing.T) {
	v, err := BuildValue(mustParse(t, "uint[]"), "7,8")
	require.NoError(t, err)
	want := fmt.Sprintf("%064x%064x%064x", 2, 7, 8)
	assert.Equal(t, want, abi.EncodeToString(v))
}

func TestBuildEmptyDynArray(t *testing.T) {
	v, err := BuildValue(mustParse(t, "uint[]"), "")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("0", 64), abi.EncodeToString(v))
}

func TestBuildFixedArrayChecksLength(t *testing.T) {
	_, err := BuildValue(mustParse(t, "uint[3]"), "1,2")
	assert.Error(t, err)

	v, err := BuildValue(mustParse(t, "uint[2]"), "1,2")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%064x%064x", 1, 2), abi.EncodeToString(v))
}

func TestBuildDynArrayOfTuples(t *testing.T) {
	v, err := BuildValue(mustParse(t, "(uint,uint)[]"), "1,2;3,4")
	require.NoError(t, err)
	want := fmt.Sprintf("%064x%064x%064x%064x%064x", 2, 1, 2, 3, 4)
	assert.Equal(t, want, abi.EncodeToString(v))
}

func TestBuildRejectsDeepNesting(t *testing.T) {
	// tuples whose elements are containers cannot be written as a
	// flat comma list
	_, err := BuildValue(mustParse(t, "(uint,uint[])"), "1,2")
	assert.Error(t, err)

	_, err = BuildValue(mustParse(t, "(uint[])[]"), "1;2")
	assert.Error(t, err)
}

func TestPackValuesWrapsArgumentsInTuple(t *testing.T) {
	types := []*abistr.Type{mustParse(t, "uint"), mustParse(t, "uint[]")}
	v, err := PackValues(types, []string{"5", "6,7"})
	require.NoError(t, err)
	// head: inline 5 and the offset of the dynamic array (2*32 bytes),
	// tail: count-prefixed elements
	want := fmt.Sprintf("%064x%064x%064x%064x%064x", 5, 0x40, 2, 6, 7)
	assert.Equal(t, want, abi.EncodeToString(v))
}
