// SPDX-License-Identifier: MIT
// Package: lvrand/random
//
// errors.go - sentinel errors for the random package.
//
// Error policy:
//   • Only sentinel variables are part of the contract; branch with errors.Is.
//   • Call sites attach context with %w, never by building new sentinel text.
//   • File and stream failures surface as *IOError, which matches ErrIO.
//   • Nothing is retried and nothing is substituted: a zero bound is an error,
//     never a silent 1.

package random

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a caller error: zero bound, nil source,
// negative sample count or a count larger than the population.
var ErrInvalidArgument = errors.New("random: invalid argument")

// ErrIO indicates that a file or stream could not be opened, read or written.
// The concrete error is an *IOError.
var ErrIO = errors.New("random: i/o failure")

// ErrDeserialization indicates that a text form does not describe a valid
// seed + generator state pair.
var ErrDeserialization = errors.New("random: malformed engine state")

// ErrAlreadyInitialized indicates that a seeder was installed after the
// dispenser had already minted a seed, or installed twice.
var ErrAlreadyInitialized = errors.New("random: seed dispenser already initialized")

// IOError records a failed file or stream operation.
// Path is empty for stream (io.Reader/io.Writer) operations.
type IOError struct {
	Op   string // "open", "create", "read", "write", "close"
	Path string
	Err  error
}

// Error implements error.
func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("random: %s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("random: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *IOError) Unwrap() error { return e.Err }

// Is makes every *IOError match ErrIO.
func (e *IOError) Is(target error) bool { return target == ErrIO }

// Method names used as error prefixes.
const (
	methodUniformInt = "UniformInt"
	methodShuffle    = "Shuffle"
	methodSample     = "Sample"
	methodDecode     = "Decode"
	methodInstall    = "Install"
	methodPerm       = "Perm"
)

// errorf wraps sentinel with method context: "<method>: <msg>: <sentinel>".
func errorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
