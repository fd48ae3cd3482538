// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package bigjson

// Kind is the type of a token scanned from JSON input.
type Kind byte

// Constants defining the valid Kind values. The numeric values are fixed and
// part of the public contract; do not reorder.
const (
	Error  Kind = iota // scan failed, see Reader.Err
	End                // close of the innermost open array or object
	Array              // array open "["
	Object             // object open "{"
	Number             // number literal
	String             // string literal
	Bool               // constant: true or false
	Null               // constant: null
)

var kindStr = [...]string{
	Error:  "error",
	End:    "end",
	Array:  "array",
	Object: "object",
	Number: "number",
	String: "string",
	Bool:   "bool",
	Null:   "null",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[Error]
	}
	return kindStr[k]
}

// A Value describes one scanned token: its kind, the span of input bytes it
// covers, and the nesting depth in effect once the token has been applied.
// For a container-open token the depth includes the container itself; for an
// End token it does not. String spans exclude the surrounding quotation marks
// and keep escape sequences verbatim.
//
// A Value is a description of the input, not a copy of it. It is only
// meaningful while the Reader that produced it has not scanned past its span.
type Value struct {
	Kind Kind
	Span
	Depth int
}
