// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binary

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind identifies the nominal category of a [CodecError].
type ErrorKind int

const (
	// ErrArgumentInvalid marks a programmer error: an empty/whitespace
	// variable name, a non-positive field length, or a path of the
	// wrong kind (root/relative where absolute was required, or vice
	// versa). A nil callable is not reported this way; it panics.
	ErrArgumentInvalid ErrorKind = iota
	// ErrKeyNotFound marks a variable, field, or block-scratch lookup
	// miss.
	ErrKeyNotFound
	// ErrDuplicateKey marks an attempt to map a field path that is
	// already present in the field map.
	ErrDuplicateKey
	// ErrPositionOutOfWindow marks a [Buffer] containment violation.
	ErrPositionOutOfWindow
	// ErrStreamError marks a failure reported by a bit-stream reader
	// or writer.
	ErrStreamError
	// ErrConversionError marks a failure reported by a
	// [BinaryValueConverter].
	ErrConversionError
	// ErrInvalidOperation marks a misuse of an outcome combinator,
	// such as a ContinueWith callback that panicked.
	ErrInvalidOperation
)

// String renders the kind's name.
func (k ErrorKind) String() string {
	switch k {
	case ErrArgumentInvalid:
		return "ArgumentInvalid"
	case ErrKeyNotFound:
		return "KeyNotFound"
	case ErrDuplicateKey:
		return "DuplicateKey"
	case ErrPositionOutOfWindow:
		return "PositionOutOfWindow"
	case ErrStreamError:
		return "StreamError"
	case ErrConversionError:
		return "ConversionError"
	case ErrInvalidOperation:
		return "InvalidOperation"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// CodecError is the concrete error type carried by a failed [Outcome].
// The cause chain, when present, is built with github.com/pkg/errors so
// that errors originating in an external collaborator (a stream read,
// a converter) keep a stack trace through ConvertFrom/ConvertTo and
// Read/Write failures.
type CodecError struct {
	Kind   ErrorKind
	Detail string
	cause  error
}

// Error implements the error interface.
func (e *CodecError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/As.
func (e *CodecError) Unwrap() error { return e.cause }

// NewError builds a CodecError with no wrapped cause.
func NewError(kind ErrorKind, detail string) *CodecError {
	return &CodecError{Kind: kind, Detail: detail}
}

// WrapError builds a CodecError around an external collaborator's
// error, preserving a stack trace via github.com/pkg/errors.
func WrapError(kind ErrorKind, detail string, cause error) *CodecError {
	if cause == nil {
		return NewError(kind, detail)
	}
	return &CodecError{Kind: kind, Detail: detail, cause: errors.Wrap(cause, detail)}
}

// Unit is the void payload type, used where the source spec calls for
// an outcome with no value (a successful write, a successful move).
type Unit struct{}

// Outcome is a tagged union of success (optionally carrying a value of
// type T) and failure (carrying a typed [*CodecError]). It is the
// universal return value of every fallible operation in this package.
//
// A zero-value Outcome is a failure with a nil error; use [Ok] or [Err]
// to construct one.
type Outcome[T any] struct {
	ok    bool
	value T
	err   *CodecError
}

// Ok constructs a successful outcome carrying value.
func Ok[T any](value T) Outcome[T] { return Outcome[T]{ok: true, value: value} }

// Done constructs a successful void outcome.
func Done() Outcome[Unit] { return Ok(Unit{}) }

// Err constructs a failed outcome carrying err. Passing a nil err is a
// programmer error and panics, mirroring the source's rejection of nil
// callables/outcomes as argument errors rather than data errors.
func Err[T any](err *CodecError) Outcome[T] {
	if err == nil {
		panic("binary: Err called with nil *CodecError")
	}
	return Outcome[T]{ok: false, err: err}
}

// IsOk reports whether the outcome succeeded.
func (o Outcome[T]) IsOk() bool { return o.ok }

// IsErr reports whether the outcome failed.
func (o Outcome[T]) IsErr() bool { return !o.ok }

// Error returns the carried error, or nil on success.
func (o Outcome[T]) Error() *CodecError { return o.err }

// Value returns the carried value and whether the outcome succeeded,
// without panicking on failure.
func (o Outcome[T]) Value() (T, bool) { return o.value, o.ok }

// Unwrap returns the value, re-raising the carried error as a panic on
// failure. Top-level callers that want to convert back to ordinary Go
// error handling should prefer [Match] or a type switch on
// [Outcome.Error]; Unwrap is for call sites that have already
// established success via IsOk.
func (o Outcome[T]) Unwrap() T {
	if !o.ok {
		panic(o.err)
	}
	return o.value
}

// OnError substitutes v when the outcome failed, otherwise passes the
// success value through unchanged.
func (o Outcome[T]) OnError(v T) Outcome[T] {
	if o.ok {
		return o
	}
	return Ok(v)
}

// Match forces resolution of the outcome into a plain value by calling
// onOk or onErr. Both callbacks must be non-nil; passing a nil callback
// is a programmer error and panics.
func Match[T, U any](o Outcome[T], onOk func(T) U, onErr func(*CodecError) U) U {
	if onOk == nil || onErr == nil {
		panic("binary: Match called with a nil callback")
	}
	if o.ok {
		return onOk(o.value)
	}
	return onErr(o.err)
}

// ContinueWith implements the source's continue_with: if o is a
// failure, the failure propagates unchanged; otherwise f is invoked
// with the success value, and any panic raised by f is captured into
// an ErrInvalidOperation outcome rather than escaping. f must be
// non-nil; a nil callable is a programmer error and panics
// immediately, before any capturing applies.
func ContinueWith[T, U any](o Outcome[T], f func(T) Outcome[U]) (result Outcome[U]) {
	if f == nil {
		panic("binary: ContinueWith called with a nil callable")
	}
	if o.IsErr() {
		return Err[U](o.err)
	}
	defer func() {
		if r := recover(); r != nil {
			result = Err[U](NewError(ErrInvalidOperation, fmt.Sprintf("continue_with callback panicked: %v", r)))
		}
	}()
	return f(o.value)
}

// Bind is ContinueWith under the monadic name used elsewhere in the
// package's combinators.
func Bind[T, U any](o Outcome[T], f func(T) Outcome[U]) Outcome[U] {
	return ContinueWith(o, f)
}

// Map applies a pure transformation to a successful outcome's value,
// propagating failure unchanged. f must be non-nil.
func Map[T, U any](o Outcome[T], f func(T) U) Outcome[U] {
	if f == nil {
		panic("binary: Map called with a nil callable")
	}
	if o.IsErr() {
		return Err[U](o.err)
	}
	return Ok(f(o.value))
}

// Flatten collapses a successful outcome of an outcome into a single
// outcome, propagating whichever layer failed first.
func Flatten[T any](o Outcome[Outcome[T]]) Outcome[T] {
	if o.IsErr() {
		return Err[T](o.err)
	}
	return o.value
}
