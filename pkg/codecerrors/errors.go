// Package codecerrors provides structured error handling for the
// engine/wire columnar codec, with rich context, stack traces, and
// error categorization consistent across encode and decode paths.
//
// # Error Kinds
//
// The codec raises exactly three kinds of error:
//   - TypeMismatch: the engine column's element type or nullability
//     disagrees with the declared wire type.
//   - NotImplemented: the wire field type is outside the supported
//     closed set.
//   - LogicalError: a post-dispatch invariant was broken (decimal width
//     probe failed for every width, an unreachable branch was hit).
//
// All three abort the whole column conversion; the codec performs no
// retry and no local recovery.
package codecerrors

import (
	"errors"
	"fmt"
	"runtime"
)

// Kind categorizes a codec error.
type Kind string

const (
	// KindTypeMismatch marks an engine/wire type or nullability disagreement.
	KindTypeMismatch Kind = "type_mismatch"
	// KindNotImplemented marks a wire field type outside the supported set.
	KindNotImplemented Kind = "not_implemented"
	// KindLogicalError marks a broken post-dispatch invariant.
	KindLogicalError Kind = "logical_error"
)

// Error is a structured codec error carrying enough context for
// operator diagnostics: which column, what engine type, and why.
type Error struct {
	Kind       Kind
	Message    string
	Column     string
	EngineType string
	Cause      error
	Details    map[string]interface{}
	Stack      []StackFrame
}

// StackFrame is a single call-stack frame captured at error creation.
type StackFrame struct {
	Function string
	File     string
	Line     int
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.Column != "" {
		msg = fmt.Sprintf("%s (column=%s)", msg, e.Column)
	}
	if e.EngineType != "" {
		msg = fmt.Sprintf("%s (engine_type=%s)", msg, e.EngineType)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap enables errors.Is/errors.As across the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail attaches a diagnostic key/value pair and returns the
// receiver for chaining.
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithColumn sets the offending column name.
func (e *Error) WithColumn(name string) *Error {
	e.Column = name
	return e
}

// WithEngineType sets the offending engine element type name.
func (e *Error) WithEngineType(name string) *Error {
	e.EngineType = name
	return e
}

// New creates a new Error of the given kind, capturing the call stack.
func New(kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Stack:   captureStack(2),
	}
}

// Newf creates a new Error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error as a codec Error, preserving the
// original error's stack if it is already one of ours. Returns nil if
// err is nil.
func Wrap(err error, kind Kind, message string) *Error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) {
		return &Error{
			Kind:    kind,
			Message: message,
			Cause:   err,
			Stack:   existing.Stack,
		}
	}
	return &Error{
		Kind:    kind,
		Message: message,
		Cause:   err,
		Stack:   captureStack(2),
	}
}

// Is reports whether err is a codec Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

func captureStack(skip int) []StackFrame {
	const maxFrames = 32
	frames := make([]StackFrame, 0, maxFrames)
	for i := skip; i < maxFrames+skip; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}
		frames = append(frames, StackFrame{Function: fn.Name(), File: file, Line: line})
	}
	return frames
}
