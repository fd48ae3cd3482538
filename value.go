// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package bigjson

import (
	"fmt"
	"math"
	"strconv"

	"go4.org/mem"
)

// Text returns the raw input bytes spanned by v. For String values the span
// excludes the quotation marks and keeps escape sequences verbatim. The
// result aliases the Reader's input; the caller must not modify it.
func (r *Reader) Text(v Value) []byte { return r.data[v.Pos:v.End] }

// StringText returns the text of a String value. Escape sequences are not
// decoded. It reports ErrTypeMismatch if v is not a String.
func (r *Reader) StringText(v Value) (string, error) {
	if v.Kind != String {
		return "", r.typeErr(String, v)
	}
	return string(r.Text(v)), nil
}

// Float64 returns the value of a Number token. The span is parsed
// best-effort: a run the scanner accepted but that is not a valid number,
// such as "1.2.3", yields NaN with a nil error. It reports ErrTypeMismatch
// if v is not a Number.
func (r *Reader) Float64(v Value) (float64, error) {
	if v.Kind != Number {
		return 0, r.typeErr(Number, v)
	}
	f, err := strconv.ParseFloat(string(r.Text(v)), 64)
	if err != nil {
		return math.NaN(), nil
	}
	return f, nil
}

// Bool returns the value of a Bool token. It reports ErrTypeMismatch if v is
// not a Bool.
func (r *Reader) Bool(v Value) (bool, error) {
	if v.Kind != Bool {
		return false, r.typeErr(Bool, v)
	}
	return mem.B(r.Text(v)).Equal(litTrue), nil
}

// IsNull reports whether v is the null constant.
func IsNull(v Value) bool { return v.Kind == Null }

// typeErr reports an accessor applied to the wrong Kind. Unlike scan
// failures it is not sticky: the Reader remains usable.
func (r *Reader) typeErr(want Kind, got Value) error {
	return &DecodeError{
		Code:    ErrTypeMismatch,
		Offset:  got.Pos,
		Message: fmt.Sprintf("cannot read %v as %v", got.Kind, want),
	}
}
