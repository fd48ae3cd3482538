// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package bigjson

import (
	"fmt"
	"iter"
)

// An ArrayIter is a forward-only iterator over the elements of one array
// value. It shares its Reader's cursor: a nested container element is
// returned as its open token, and the caller may descend into it with a
// child iterator over the same Reader, or not. Whatever part of an element
// the caller leaves unconsumed is discarded before the next element is
// produced.
//
// The sequence is not restartable. If the shared cursor is advanced by some
// other consumer between calls, iteration continues from wherever the cursor
// now sits.
type ArrayIter struct {
	r   *Reader
	arr Value
}

// Array returns an iterator over the elements of the array value v. The
// result is only meaningful if v was the most recently scanned token.
func (r *Reader) Array(v Value) ArrayIter { return ArrayIter{r: r, arr: v} }

// Next returns the next element of the array. It reports false when the
// array's closing bracket is reached or a scan fails; after a failure,
// Reader.Err holds the cause.
func (it ArrayIter) Next() (Value, bool) {
	it.r.skipAbove(it.arr.Depth)
	v := it.r.Scan()
	if v.Kind == Error || v.Kind == End {
		return v, false
	}
	return v, true
}

// All returns the remaining elements of the array as a one-shot sequence.
// Breaking out of the range leaves the cursor inside the array, exactly as
// abandoning an explicit Next loop would.
func (it ArrayIter) All() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// A Member is one key/value pair of an object.
type Member struct {
	Key   Value
	Value Value
}

// An ObjectIter is a forward-only iterator over the members of one object
// value, with the same cursor sharing and discard behavior as an ArrayIter.
type ObjectIter struct {
	r   *Reader
	obj Value
}

// Object returns an iterator over the members of the object value v. The
// result is only meaningful if v was the most recently scanned token.
func (r *Reader) Object(v Value) ObjectIter { return ObjectIter{r: r, obj: v} }

// Next returns the next member of the object. It reports false when the
// object's closing brace is reached or a scan fails. An object that closes
// where a member's value belongs fails the Reader with ErrObjectEnd.
//
// The key token's Kind is not checked: malformed input can produce
// non-String keys, and they are passed through for the caller to judge.
func (it ObjectIter) Next() (Member, bool) {
	it.r.skipAbove(it.obj.Depth)
	key := it.r.Scan()
	if key.Kind == Error || key.Kind == End {
		return Member{}, false
	}
	val := it.r.Scan()
	switch val.Kind {
	case Error:
		return Member{}, false
	case End:
		it.r.fail(ErrObjectEnd, fmt.Sprintf("object ended where the value for %q belongs", it.r.Text(key)))
		return Member{}, false
	}
	return Member{Key: key, Value: val}, true
}

// All returns the remaining members of the object as a one-shot key/value
// sequence, with the same early-exit behavior as ArrayIter.All.
func (it ObjectIter) All() iter.Seq2[Value, Value] {
	return func(yield func(Value, Value) bool) {
		for {
			m, ok := it.Next()
			if !ok || !yield(m.Key, m.Value) {
				return
			}
		}
	}
}
