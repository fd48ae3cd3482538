// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package bigjson

import "fmt"

// ErrCode identifies the failure class of a DecodeError.
type ErrCode byte

// Constants defining the valid ErrCode values.
const (
	ErrNone           ErrCode = iota // no error
	ErrUnexpectedEOF                 // input ended where a token was required
	ErrUnclosedString                // input ended inside a string literal
	ErrUnknownToken                  // byte that cannot begin a token
	ErrStrayClose                    // "}" or "]" with no open container
	ErrObjectEnd                     // object closed where a member value was required
	ErrTypeMismatch                  // accessor applied to a Value of the wrong Kind
)

var errStr = [...]string{
	ErrNone:           "no error",
	ErrUnexpectedEOF:  "unexpected end of input",
	ErrUnclosedString: "unclosed string",
	ErrUnknownToken:   "unknown token",
	ErrStrayClose:     "stray container close",
	ErrObjectEnd:      "unexpected object end",
	ErrTypeMismatch:   "type mismatch",
}

func (c ErrCode) String() string {
	if int(c) >= len(errStr) {
		return "invalid error code"
	}
	return errStr[c]
}

// A DecodeError reports a failure to scan or project a token, and the byte
// offset at which the failure was detected.
type DecodeError struct {
	Code    ErrCode
	Offset  int
	Message string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Message, e.Offset)
}
