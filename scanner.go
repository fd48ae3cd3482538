// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package bigjson

import (
	"fmt"

	"go4.org/mem"
)

var (
	litTrue  = mem.S("true")
	litFalse = mem.S("false")
	litNull  = mem.S("null")
)

// Scan returns the next token of the input and advances the cursor past it.
// Whitespace, commas, and colons are consumed silently.
//
// At the end of the input, or once any scan has failed, Scan returns a Value
// of Kind Error and leaves the cursor where the failure occurred; Reader.Err
// reports the cause. Errors are sticky: every Scan after a failure returns
// the same Error value without consuming input.
func (r *Reader) Scan() Value {
	if r.err != nil {
		return r.errTok
	}
	for r.pos < len(r.data) {
		switch c := r.data[r.pos]; {
		case isSpace(c) || c == ',' || c == ':':
			r.pos++

		case c == '{' || c == '[':
			kind := Object
			if c == '[' {
				kind = Array
			}
			r.pos++
			r.depth++
			return Value{Kind: kind, Span: Span{Pos: r.pos - 1, End: r.pos}, Depth: r.depth}

		case c == '}' || c == ']':
			if r.depth == 0 {
				return r.fail(ErrStrayClose, fmt.Sprintf("stray %q with no open container", c))
			}
			r.pos++
			r.depth--
			return Value{Kind: End, Span: Span{Pos: r.pos - 1, End: r.pos}, Depth: r.depth}

		case c == '"':
			return r.scanString()

		case c == '-' || isDigit(c):
			return r.scanNumber()

		case c == 't':
			return r.scanLiteral(litTrue, Bool)
		case c == 'f':
			return r.scanLiteral(litFalse, Bool)
		case c == 'n':
			return r.scanLiteral(litNull, Null)

		default:
			return r.fail(ErrUnknownToken, fmt.Sprintf("unknown token %q", c))
		}
	}
	return r.fail(ErrUnexpectedEOF, "unexpected end of input")
}

// scanString consumes a string literal. The returned span excludes the
// quotation marks, and escape sequences are skipped rather than decoded: a
// backslash unconditionally protects the byte that follows it.
func (r *Reader) scanString() Value {
	start := r.pos + 1
	for i := start; i < len(r.data); i++ {
		switch r.data[i] {
		case '\\':
			i++ // the escaped byte cannot close the string
		case '"':
			r.pos = i + 1
			return Value{Kind: String, Span: Span{Pos: start, End: i}, Depth: r.depth}
		}
	}
	return r.fail(ErrUnclosedString, "unclosed string")
}

// scanNumber consumes a maximal run of number bytes. The run is not checked
// against the JSON number grammar: "1.2.3" is one Number token, and
// projecting it with Float64 yields NaN.
func (r *Reader) scanNumber() Value {
	start := r.pos
	for r.pos < len(r.data) && isNumByte(r.data[r.pos]) {
		r.pos++
	}
	return Value{Kind: Number, Span: Span{Pos: start, End: r.pos}, Depth: r.depth}
}

// scanLiteral matches one of the constants true, false, or null,
// case-sensitively.
func (r *Reader) scanLiteral(want mem.RO, kind Kind) Value {
	end := r.pos + want.Len()
	if end > len(r.data) {
		return r.fail(ErrUnexpectedEOF, "unexpected end of input")
	}
	if got := mem.B(r.data[r.pos:end]); !got.Equal(want) {
		return r.fail(ErrUnknownToken, fmt.Sprintf("unknown token %q", got.StringCopy()))
	}
	v := Value{Kind: kind, Span: Span{Pos: r.pos, End: end}, Depth: r.depth}
	r.pos = end
	return v
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }
func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// isNumByte reports whether c may appear anywhere in a number run.
func isNumByte(c byte) bool {
	return isDigit(c) || c == '-' || c == '+' || c == '.' || c == 'e' || c == 'E'
}
