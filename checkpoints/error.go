// Copyright (c) 2025 The komodo-daemon developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package checkpoints

import (
	"errors"
)

// ErrorKind identifies a kind of error.  It has full support for
// errors.Is and errors.As, so the caller can directly check against an error
// kind when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrNotInitialized indicates the chain identity has not been
	// established yet, so activation parameters cannot be resolved.  The
	// caller should retry once configuration is loaded.
	ErrNotInitialized ErrorKind = "ErrNotInitialized"

	// ErrNotConfigured indicates no sync checkpoint activation parameters
	// exist for the resolved chain.  The checkpoint feature is simply off
	// for that chain; this is not a failure condition.
	ErrNotConfigured ErrorKind = "ErrNotConfigured"

	// ErrPersistenceFailure indicates the checkpoint store rejected a
	// read or write.  This is fatal to the startup sequence and requires
	// operator intervention.
	ErrPersistenceFailure ErrorKind = "ErrPersistenceFailure"

	// ErrCorruption indicates the persisted checkpoint state is
	// internally inconsistent: unreadable after a healing attempt, or
	// referencing a block hash absent from the local block index.  The
	// operator must remove the checkpoint store and resynchronize.
	ErrCorruption ErrorKind = "ErrCorruption"
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a sync checkpoint resolution or bootstrap error.  It has
// full support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// IsErrorKind returns whether or not the provided error is an Error with the
// provided error kind.
func IsErrorKind(err error, kind ErrorKind) bool {
	return errors.Is(err, kind)
}
