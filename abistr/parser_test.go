package abistr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUint(t *testing.T) {
	for _, sig := range []string{"uint", "uint8", "uint256"} {
		typ, err := Parse(sig)
		require.NoError(t, err, sig)
		assert.Equal(t, UintTy, typ.T, sig)
	}
}

func TestParseTuple(t *testing.T) {
	typ, err := Parse("(uint,uint256)")
	require.NoError(t, err)
	require.Equal(t, TupleTy, typ.T)
	require.Len(t, typ.TupleElems, 2)
	assert.Equal(t, UintTy, typ.TupleElems[0].T)
	assert.Equal(t, UintTy, typ.TupleElems[1].T)
}

func TestParseFixedArrayOfTuples(t *testing.T) {
	typ, err := Parse("(uint,uint)[13]")
	require.NoError(t, err)
	require.Equal(t, ArrayTy, typ.T)
	assert.Equal(t, 13, typ.Size)
	require.Equal(t, TupleTy, typ.Elem.T)
	require.Len(t, typ.Elem.TupleElems, 2)
}

func TestParseDynamicArrayOfTuples(t *testing.T) {
	typ, err := Parse("(uint,uint)[]")
	require.NoError(t, err)
	require.Equal(t, SliceTy, typ.T)
	require.Equal(t, TupleTy, typ.Elem.T)
	require.Len(t, typ.Elem.TupleElems, 2)
}

func TestParseNestedTuple(t *testing.T) {
	typ, err := Parse("(uint,(uint,uint)[],uint)")
	require.NoError(t, err)
	require.Equal(t, TupleTy, typ.T)
	require.Len(t, typ.TupleElems, 3)
	assert.Equal(t, SliceTy, typ.TupleElems[1].T)
}

func TestParseArraySuffixInsideTuple(t *testing.T) {
	typ, err := Parse("(uint[3],uint)")
	require.NoError(t, err)
	require.Len(t, typ.TupleElems, 2)
	arr := typ.TupleElems[0]
	require.Equal(t, ArrayTy, arr.T)
	assert.Equal(t, 3, arr.Size)
	assert.Equal(t, UintTy, arr.Elem.T)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"", ErrEndOfInput},
		{"x", ErrUnexpectedSymbol},
		{"(uint,uint", ErrEndOfInput},
		{"()", ErrUnexpectedSymbol},
		{"(uint,)", ErrUnexpectedSymbol},
		{"uint[2][3]", ErrUnexpectedSymbol},
		{"uint[2", ErrEndOfInput},
		{"uint[x]", ErrUnexpectedSymbol},
		{"(uint;uint)", ErrUnexpectedSymbol},
		{"uintx", ErrUnexpectedSymbol},
	}
	for _, tt := range tests {
		typ, err := Parse(tt.input)
		assert.Nil(t, typ, tt.input)
		assert.ErrorIs(t, err, tt.want, tt.input)
	}
}

func TestIsDynamicType(t *testing.T) {
	static, err := Parse("(uint,uint)[4]")
	require.NoError(t, err)
	assert.False(t, IsDynamicType(static))

	dynamic, err := Parse("(uint,uint[])")
	require.NoError(t, err)
	assert.True(t, IsDynamicType(dynamic))

	wrapped, err := Parse("(uint,uint[])[2]")
	require.NoError(t, err)
	assert.True(t, IsDynamicType(wrapped))
}

func TestTypeSize(t *testing.T) {
	uintTyp, err := Parse("uint256")
	require.NoError(t, err)
	assert.Equal(t, 32, TypeSize(uintTyp))

	tup, err := Parse("(uint,uint,uint)")
	require.NoError(t, err)
	assert.Equal(t, 96, TypeSize(tup))

	arr, err := Parse("(uint,uint)[13]")
	require.NoError(t, err)
	assert.Equal(t, 13*64, TypeSize(arr))

	dyn, err := Parse("uint[]")
	require.NoError(t, err)
	assert.Equal(t, 32, TypeSize(dyn))
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"uint", "uint256"},
		{"(uint8,uint)", "(uint256,uint256)"},
		{"(uint,uint)[13]", "(uint256,uint256)[13]"},
		{"uint[]", "uint256[]"},
	}
	for _, tt := range tests {
		typ, err := Parse(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, typ.String(), tt.input)
	}
}
