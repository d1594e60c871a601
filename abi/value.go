// Package abi packs typed values into the canonical contract-ABI wire
// format. Values form an owned tree built once through the Pack
// constructors and encoded to lowercase hex text with Encode. There is
// no decoding direction.
package abi

import (
	"github.com/jaanek/abienc/word"
)

// WordHexLen is the size of one ABI word (32 bytes) in hex characters.
// An unsigned integer or an offset occupies exactly one word.
const WordHexLen = word.HexLen

// Value is one node of an encodable value tree. Container values own
// their children; a tree's shape is fixed at construction and trees must
// not be shared between goroutines.
type Value interface {
	// IsDynamic reports whether the encoded length of the value
	// depends on its contents rather than its shape alone.
	IsDynamic() bool

	// StaticHeadLength is the number of hex characters the value
	// occupies in its parent's head region. Only meaningful when
	// IsDynamic is false; calling it on a dynamic tuple or array is
	// an invariant violation.
	StaticHeadLength() int

	// EncodedLen is the total number of hex characters Encode writes
	// for this value.
	EncodedLen() int

	// write encodes the value at buf[0:] and returns the number of
	// hex characters written. The caller has already validated that
	// buf is large enough.
	write(buf []byte) int
}

// Uint is an unsigned 256-bit integer value. Static, one word.
type Uint struct {
	w word.Word
}

// Tuple is an ordered sequence of heterogeneous values. Static iff every
// child is static.
type Tuple struct {
	elems []Value
}

// Array is a fixed-size sequence of values. Its encoding rules are
// identical to Tuple's; the distinct type exists to mirror the ABI type
// system's naming.
type Array struct {
	Tuple
}

// DynArray is a dynamically-sized sequence: an element count word
// followed by the elements encoded as a tuple. Always dynamic.
type DynArray struct {
	elems Tuple
}

// PackUint64 wraps n in a 256-bit word value.
func PackUint64(n uint64) Value {
	return Uint{w: word.FromUint64(n)}
}

// PackWord wraps a full 256-bit word value.
func PackWord(w word.Word) Value {
	return Uint{w: w}
}

// PackTuple builds a tuple from the given children. Ownership of the
// children moves into the tuple; callers must not pack them again.
func PackTuple(children ...Value) Value {
	return Tuple{elems: children}
}

// PackArray builds a fixed-size array from the given children, taking
// ownership like PackTuple.
func PackArray(children ...Value) Value {
	return Array{Tuple{elems: children}}
}

// PackDynArray builds a dynamic array from the given elements, taking
// ownership like PackTuple. An empty element list is valid and encodes
// to a single zero count word.
func PackDynArray(elems ...Value) Value {
	return DynArray{elems: Tuple{elems: elems}}
}

func (v Uint) IsDynamic() bool       { return false }
func (v Uint) StaticHeadLength() int { return WordHexLen }
func (v Uint) EncodedLen() int       { return WordHexLen }

// Word returns the backing 256-bit word.
func (v Uint) Word() word.Word { return v.w }

func (t Tuple) IsDynamic() bool {
	for _, e := range t.elems {
		if e.IsDynamic() {
			return true
		}
	}
	return false
}

func (t Tuple) StaticHeadLength() int {
	if t.IsDynamic() {
		panic("abi: static head length requested for a dynamic tuple")
	}
	total := 0
	for _, e := range t.elems {
		total += e.StaticHeadLength()
	}
	return total
}

// headLen is the size of the tuple's head region in hex characters: one
// offset word per dynamic child, the full inline encoding per static
// child.
func (t Tuple) headLen() int {
	total := 0
	for _, e := range t.elems {
		if e.IsDynamic() {
			total += WordHexLen
		} else {
			total += e.StaticHeadLength()
		}
	}
	return total
}

func (t Tuple) EncodedLen() int {
	total := t.headLen()
	for _, e := range t.elems {
		if e.IsDynamic() {
			total += e.EncodedLen()
		}
	}
	return total
}

// Len returns the number of direct children.
func (t Tuple) Len() int { return len(t.elems) }

func (a DynArray) IsDynamic() bool       { return true }
func (a DynArray) StaticHeadLength() int { return WordHexLen }

func (a DynArray) EncodedLen() int {
	return WordHexLen + a.elems.EncodedLen()
}

// Len returns the element count.
func (a DynArray) Len() int { return a.elems.Len() }
