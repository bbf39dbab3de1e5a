package core

import (
	"errors"
	"fmt"
)

var (
	ErrTypeAlreadyRegistered         = errors.New("a type with the same name is already registered")
	ErrInconsistentTypeHierarchy     = errors.New("inconsistent type hierarchy: no valid linearization")
	ErrIndexOutOfRange               = errors.New("index out of range")
	ErrCannotPopFromEmptyList        = errors.New("cannot pop from an empty list")
	ErrNoRepresentation              = errors.New("value has no JSON representation")
	ErrExpectedIntOrSliceKey         = errors.New("subscript key should be an integer or a slice")
	ErrExtendedSliceAssignment       = errors.New("slice assignment with a step is not supported")
	ErrSliceBoundNotIntNorNil        = errors.New("slice bounds should be integers or nil")
	ErrMaximumComparisonDepthReached = errors.New("maximum comparison depth reached")
)

// An ErrorKind classifies a runtime error surfaced to language-level callers.
type ErrorKind int

const (
	TypeError ErrorKind = iota + 1
	ValueError
	OverflowError
)

func (k ErrorKind) String() string {
	switch k {
	case TypeError:
		return "type error"
	case ValueError:
		return "value error"
	case OverflowError:
		return "overflow error"
	default:
		return "unknown error"
	}
}

// An Error is a runtime error with a kind and a user-visible message.
// The message is part of the contract: callers may surface it verbatim.
type Error struct {
	kind    ErrorKind
	message string
}

func NewTypeError(message string) *Error {
	return &Error{kind: TypeError, message: message}
}

func NewValueError(message string) *Error {
	return &Error{kind: ValueError, message: message}
}

func NewOverflowError(message string) *Error {
	return &Error{kind: OverflowError, message: message}
}

func FmtTypeError(format string, a ...any) *Error {
	return &Error{kind: TypeError, message: fmt.Sprintf(format, a...)}
}

func (e *Error) Kind() ErrorKind {
	return e.kind
}

func (e *Error) Error() string {
	return e.message
}

// IsErrorOfKind returns true if err is a runtime *Error of the given kind,
// possibly wrapped.
func IsErrorOfKind(err error, kind ErrorKind) bool {
	var runtimeErr *Error
	if !errors.As(err, &runtimeErr) {
		return false
	}
	return runtimeErr.kind == kind
}
