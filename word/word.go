// Package word implements the fixed 256-bit unsigned integer used as the
// backing store for ABI words. A Word performs no arithmetic: it is
// constructed once and rendered as fixed-length big-endian hex on demand.
package word

import (
	"github.com/holiman/uint256"
)

const (
	// Limbs is the number of 64-bit limbs in a Word.
	Limbs = 4
	// Bits is the total bit width of a Word.
	Bits = Limbs * 64
	// HexLen is the number of hex characters a rendered Word occupies.
	HexLen = Bits / 4
)

const hexDigits = "0123456789abcdef"

// Word is a 256-bit unsigned integer held as four 64-bit limbs,
// most-significant limb first. The fixed-size array makes the limb count
// a compile-time property.
type Word [Limbs]uint64

// FromUint64 returns a Word with v in the least-significant limb and all
// higher limbs zero.
func FromUint64(v uint64) Word {
	return Word{0, 0, 0, v}
}

// FromLimbs returns a Word holding the given limbs verbatim,
// most-significant limb first.
func FromLimbs(limbs [Limbs]uint64) Word {
	return Word(limbs)
}

// FromUint256 converts a uint256.Int into a Word. uint256 stores its
// limbs least-significant first, a Word most-significant first.
func FromUint256(v *uint256.Int) Word {
	return Word{v[3], v[2], v[1], v[0]}
}

// Uint256 converts the Word back into a uint256.Int.
func (w Word) Uint256() *uint256.Int {
	return &uint256.Int{w[3], w[2], w[1], w[0]}
}

// Hex renders the Word as exactly HexLen lowercase hex characters: each
// limb zero-padded to 16 digits, concatenated most-significant first.
func (w Word) Hex() string {
	return string(w.AppendHex(make([]byte, 0, HexLen)))
}

// AppendHex appends the Word's HexLen hex characters to dst and returns
// the extended buffer.
func (w Word) AppendHex(dst []byte) []byte {
	for _, limb := range w {
		for shift := 60; shift >= 0; shift -= 4 {
			dst = append(dst, hexDigits[(limb>>uint(shift))&0xf])
		}
	}
	return dst
}
