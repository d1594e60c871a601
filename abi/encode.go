package abi

import (
	"fmt"

	"github.com/jaanek/abienc/word"
)

// Encode writes v's full encoding into buf as lowercase hex characters
// and returns the number of characters written. The required size is
// validated up front: if buf is too small, ErrBufferTooSmall is returned
// and buf is left untouched.
func Encode(v Value, buf []byte) (int, error) {
	need := v.EncodedLen()
	if len(buf) < need {
		return 0, fmt.Errorf("%w: value needs %d hex chars, buffer holds %d", ErrBufferTooSmall, need, len(buf))
	}
	return v.write(buf), nil
}

// EncodeToString encodes v into a freshly allocated string.
func EncodeToString(v Value) string {
	buf := make([]byte, v.EncodedLen())
	v.write(buf)
	return string(buf)
}

func writeWord(buf []byte, w word.Word) int {
	w.AppendHex(buf[:0])
	return word.HexLen
}

func (v Uint) write(buf []byte) int {
	return writeWord(buf, v.w)
}

// write lays the tuple out as a head region followed by a tail region.
// Static children are encoded inline in the head; each dynamic child
// contributes one offset word to the head and its encoding to the tail.
// Offsets are byte offsets relative to the start of this tuple's own
// region, which keeps the layout composable under recursion.
func (t Tuple) write(buf []byte) int {
	headSize := t.headLen()
	headCursor, tailCursor := 0, 0
	for _, e := range t.elems {
		if e.IsDynamic() {
			// Buffers hold hex characters, ABI offsets count bytes.
			offset := uint64(headSize+tailCursor) / 2
			headCursor += writeWord(buf[headCursor:], word.FromUint64(offset))
			tailCursor += e.write(buf[headSize+tailCursor:])
		} else {
			headCursor += e.write(buf[headCursor:])
		}
	}
	if headCursor != headSize {
		panic("abi: tuple head region size mismatch")
	}
	return headSize + tailCursor
}

// write encodes the element count word followed by the elements as a
// tuple. Element offsets, if any, are relative to the region right after
// the count word.
func (a DynArray) write(buf []byte) int {
	n := writeWord(buf, word.FromUint64(uint64(a.elems.Len())))
	return n + a.elems.write(buf[n:])
}
