// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package bigjson

// A Reader is a cursor over a complete JSON input resident in memory. Each
// call to Scan classifies and consumes exactly one token. There is one scan
// position per input: iterators layered over a Reader share it by pointer,
// so advancing through a nested value is visible to every layer.
//
// A Reader must not be driven by more than one logical consumer at a time;
// it performs no internal locking.
type Reader struct {
	data  []byte
	pos   int
	depth int

	err    *DecodeError
	errTok Value
}

// NewReader constructs a Reader that scans tokens from data. The Reader
// borrows data without copying it; the caller must not modify the buffer
// while the Reader is in use.
func NewReader(data []byte) *Reader { return &Reader{data: data} }

// Offset reports the current byte offset of the cursor.
func (r *Reader) Offset() int { return r.pos }

// Depth reports the number of currently open arrays and objects.
func (r *Reader) Depth() int { return r.depth }

// Err returns the sticky scan error, or nil if no scan has failed.
// Accessor type mismatches are returned by the accessors and never stored.
func (r *Reader) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

// fail records the first scan error along with the Error token every
// subsequent Scan will return. A later failure never overwrites the first.
func (r *Reader) fail(code ErrCode, msg string) Value {
	if r.err != nil {
		return r.errTok
	}
	r.err = &DecodeError{Code: code, Offset: r.pos, Message: msg}
	r.errTok = Value{Kind: Error, Span: Span{Pos: r.pos, End: r.pos}, Depth: r.depth}
	return r.errTok
}

// skipAbove scans and discards tokens until the nesting depth is at most max
// or a scan fails. It is how an iterator leaves behind whatever part of a
// nested value its caller chose not to consume.
func (r *Reader) skipAbove(max int) {
	for r.err == nil && r.depth > max {
		r.Scan()
	}
}
