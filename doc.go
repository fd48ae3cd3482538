// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package bigjson implements a streaming reader for JSON text that is
// already resident in memory.
//
// # Scanning
//
// A Reader is a cursor over one input buffer. Each call to Scan classifies
// and consumes exactly one token, returning a Value that records the token's
// kind, the span of input it covers, and the nesting depth in effect once
// the token has been applied. No document tree is built; the caller observes
// structure through container-open and End tokens and the depth they carry.
//
//	r := bigjson.NewReader(data)
//	for {
//		v := r.Scan()
//		if v.Kind == bigjson.Error {
//			log.Fatal(r.Err())
//		}
//		// ... use v ...
//		if v.Depth == 0 {
//			break // root value complete
//		}
//	}
//
// Scan errors are sticky: after the first failure every later Scan returns
// the same Error value without consuming input, so iteration loops terminate
// through their normal exhaustion path. Reader.Err reports the cause, and
// Reader.Location resolves the cursor to a 1-based line and column for
// diagnostics.
//
// # Iteration
//
// Array and Object return pull-based iterators over a container value. The
// iterators share the Reader's cursor: a nested container may be entered by
// constructing a child iterator over the same Reader, and however much of
// the child the caller leaves unconsumed is discarded automatically before
// the parent produces its next element.
//
//	root := r.Scan()
//	it := r.Object(root)
//	for {
//		m, ok := it.Next()
//		if !ok {
//			break
//		}
//		// ... r.Text(m.Key), m.Value ...
//	}
//
// The All methods adapt the same contract to range-over-func iteration.
//
// # Looseness
//
// The reader tokenizes; it does not validate. A number is any maximal run of
// number bytes ("1.2.3" is a single Number token, projected as NaN), string
// spans are returned with escape sequences intact, object keys are not
// required to be strings, and commas and colons are skipped without checking
// their placement. Input that needs strict RFC 8259 validation should be
// checked by other means before scanning.
package bigjson
