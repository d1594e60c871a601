// Package abistr parses textual ABI type signatures, for example
// "(uint,uint256)[3]", into shape trees. The trees describe structure
// only; they carry no values and are never converted to abi values
// automatically.
package abistr

import (
	"strconv"
	"strings"
)

// Type enumerator
const (
	UintTy  byte = iota // unsigned integer, one word
	TupleTy             // ordered heterogeneous elements
	ArrayTy             // fixed-size, length in Size
	SliceTy             // dynamic-size
)

// Type is one node of a parsed type signature. All unsigned integers are
// treated as the single internal 256-bit width; a width suffix in the
// signature is accepted and discarded.
type Type struct {
	T    byte
	Elem *Type // element type for ArrayTy/SliceTy
	Size int   // element count for ArrayTy

	TupleElems []*Type // element types for TupleTy
}

// IsDynamicType returns true if the type is dynamic.
// The following types are called “dynamic”:
// * T[] for any T
// * T[k] for any dynamic T and any k >= 0
// * (T1,...,Tk) if Ti is dynamic for some 1 <= i <= k
func IsDynamicType(t *Type) bool {
	if t.T == TupleTy {
		for _, elem := range t.TupleElems {
			if IsDynamicType(elem) {
				return true
			}
		}
		return false
	}
	return t.T == SliceTy || (t.T == ArrayTy && IsDynamicType(t.Elem))
}

// TypeSize returns the size in bytes that the type occupies in its
// enclosing head region. Static types are encoded in place and report
// their full size; a dynamic type reports the fixed 32 bytes of its
// offset word.
func TypeSize(t *Type) int {
	if t.T == ArrayTy && !IsDynamicType(t.Elem) {
		return t.Size * TypeSize(t.Elem)
	} else if t.T == TupleTy && !IsDynamicType(t) {
		total := 0
		for _, elem := range t.TupleElems {
			total += TypeSize(elem)
		}
		return total
	}
	return 32
}

// String re-renders the canonical signature of the type.
func (t *Type) String() string {
	switch t.T {
	case UintTy:
		return "uint256"
	case TupleTy:
		parts := make([]string, 0, len(t.TupleElems))
		for _, elem := range t.TupleElems {
			parts = append(parts, elem.String())
		}
		return "(" + strings.Join(parts, ",") + ")"
	case ArrayTy:
		return t.Elem.String() + "[" + strconv.Itoa(t.Size) + "]"
	case SliceTy:
		return t.Elem.String() + "[]"
	}
	return "<invalid>"
}
