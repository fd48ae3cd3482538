// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package bigjson

import "fmt"

// A Span describes a contiguous span of the input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A LineCol describes the line number and column of a location in the input.
// Both values are 1-based.
type LineCol struct {
	Line   int
	Column int
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// Location reports the line and column of the cursor's current offset. It
// recounts newlines from the start of the input on every call, so it is
// meant for diagnostics, not for the scanning path.
func (r *Reader) Location() LineCol { return r.locate(r.pos) }

// LocationOf reports the line and column of the start of v.
func (r *Reader) LocationOf(v Value) LineCol { return r.locate(v.Pos) }

func (r *Reader) locate(offset int) LineCol {
	if offset > len(r.data) {
		offset = len(r.data)
	}
	lc := LineCol{Line: 1, Column: 1}
	for _, c := range r.data[:offset] {
		if c == '\n' {
			lc.Line++
			lc.Column = 1
		} else {
			lc.Column++
		}
	}
	return lc
}
