// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ash0

import "runtime"

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "ash0: " + string(e) }

var (
	// ErrBadMagic is returned when a container's first four bytes are not
	// the ASCII sequence "ASH0".
	ErrBadMagic error = Error("invalid container magic")

	// ErrTruncated is returned when a bit reader's refill would read past
	// the end of its backing buffer.
	ErrTruncated error = Error("stream is truncated")

	// ErrInvalidReference is returned when an LZ77 copy references a
	// distance or length that falls outside the already-produced output.
	ErrInvalidReference error = Error("invalid back-reference")

	// ErrInputTooLarge is returned by Compress when the payload does not
	// fit in the container's 24-bit size field.
	ErrInputTooLarge error = Error("input exceeds 2^24-1 bytes")

	// ErrAlloc corresponds to spec.md §7's AllocFailure: a scratch
	// allocation (tree arrays, token vector, DP node array) failed. Go's
	// allocator reports this as a fatal, unrecoverable runtime error
	// rather than a panic errRecover can catch, so in practice this value
	// is reserved for callers that want to pre-flight a size estimate
	// themselves; nothing in this package returns it directly.
	ErrAlloc error = Error("allocation too large")
)

// errRecover turns a panic raised by the decode/encode state machines into
// an ordinary error return at the public API boundary. Run-time errors
// (index out of range, nil dereference, and the like) are bugs, not data
// errors, and are re-panicked rather than swallowed.
func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
