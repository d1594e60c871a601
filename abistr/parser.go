package abistr

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedSymbol is returned when the input contains a
	// character that matches no grammar production at its position.
	ErrUnexpectedSymbol = errors.New("abistr: unexpected symbol")
	// ErrEndOfInput is returned when the parser needed another
	// character but the input was exhausted.
	ErrEndOfInput = errors.New("abistr: unexpected end of input")
)

// Parse converts a type signature into a Type tree. The grammar is
//
//	Type   := Scalar ( "[" Number? "]" )?
//	Scalar := "uint" Number? | "(" Type ("," Type)* ")"
//
// A trailing "[N]" wraps the scalar in a fixed-size array, "[]" in a
// dynamic one. Each production recognizes at most one bracket suffix;
// the whole input must be consumed, so "uint[2][3]" is rejected.
func Parse(input string) (*Type, error) {
	p := &parser{input: input}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if p.column != len(p.input) {
		return nil, p.errUnexpected()
	}
	return t, nil
}

// parser scans an immutable input string with a single mutable column.
type parser struct {
	input  string
	column int
}

func (p *parser) parseType() (*Type, error) {
	t, err := p.parseScalar()
	if err != nil {
		return nil, err
	}
	if p.column < len(p.input) && p.input[p.column] == '[' {
		p.column++
		size, sized := p.scanNumber()
		c, err := p.peek()
		if err != nil {
			return nil, err
		}
		if c != ']' {
			return nil, p.errUnexpected()
		}
		p.column++
		if sized {
			t = &Type{T: ArrayTy, Elem: t, Size: size}
		} else {
			t = &Type{T: SliceTy, Elem: t}
		}
	}
	return t, nil
}

func (p *parser) parseScalar() (*Type, error) {
	c, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch {
	case c == '(':
		return p.parseTuple()
	case hasPrefixAt(p.input, p.column, "uint"):
		p.column += len("uint")
		// An optional bit-width suffix, e.g. uint256, is accepted
		// and discarded. A single internal width is always used.
		p.scanNumber()
		return &Type{T: UintTy}, nil
	default:
		return nil, p.errUnexpected()
	}
}

// parseTuple parses "(" Type ("," Type)* ")". An empty tuple is a
// grammar violation.
func (p *parser) parseTuple() (*Type, error) {
	p.column++ // consume '('
	var elems []*Type
	for {
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		c, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch c {
		case ',':
			p.column++
		case ')':
			p.column++
			return &Type{T: TupleTy, TupleElems: elems}, nil
		default:
			return nil, p.errUnexpected()
		}
	}
}

// scanNumber consumes a run of decimal digits at the current column and
// reports whether any were present.
func (p *parser) scanNumber() (value int, found bool) {
	for p.column < len(p.input) && p.input[p.column] >= '0' && p.input[p.column] <= '9' {
		value = value*10 + int(p.input[p.column]-'0')
		p.column++
		found = true
	}
	return value, found
}

func (p *parser) peek() (byte, error) {
	if p.column >= len(p.input) {
		return 0, fmt.Errorf("%w at column %d", ErrEndOfInput, p.column)
	}
	return p.input[p.column], nil
}

func (p *parser) errUnexpected() error {
	if p.column >= len(p.input) {
		return fmt.Errorf("%w at column %d", ErrEndOfInput, p.column)
	}
	return fmt.Errorf("%w %q at column %d", ErrUnexpectedSymbol, p.input[p.column], p.column)
}

func hasPrefixAt(s string, at int, prefix string) bool {
	return len(s)-at >= len(prefix) && s[at:at+len(prefix)] == prefix
}
