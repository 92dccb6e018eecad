// Package errors provides structured error handling for highlight labels.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindValidation indicates a rejected span registration (bad range,
	// empty or missing search target). Callers can recover from it.
	KindValidation
	// KindPrecondition indicates a broken calling contract, such as
	// registering spans before the label text is set.
	KindPrecondition
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindConfig indicates a label description that failed to load or parse.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindPrecondition:
		return "precondition"
	case KindPanic:
		return "panic"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Sentinel causes wrapped by [HighlightError]. Match them with errors.Is.
var (
	// ErrEmptyTarget is returned when a substring registration is given "".
	ErrEmptyTarget = stderrors.New("empty search target")
	// ErrNoMatch is returned when a substring does not occur in the text.
	ErrNoMatch = stderrors.New("no match")
	// ErrRangeOutOfBounds is returned for ranges outside the text or with
	// Start >= End.
	ErrRangeOutOfBounds = stderrors.New("range out of bounds")
	// ErrTextUnset is reported when spans are registered against empty text.
	ErrTextUnset = stderrors.New("text not set")
	// ErrSpansRegistered is returned when text changes while spans exist.
	ErrSpansRegistered = stderrors.New("spans registered against current text")
)

// HighlightError represents a structured error raised by a label component.
type HighlightError struct {
	// Op is the operation that failed (e.g., "highlight.AddSpanByRange").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Detail carries operation specific context, such as the offending range.
	Detail string
	// StackTrace is the reporting call stack, attached to precondition errors.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *HighlightError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s [%s] %s: %v", e.Op, e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *HighlightError) Unwrap() error {
	return e.Err
}

// Validation builds a [KindValidation] error for op.
func Validation(op string, err error, detail string) *HighlightError {
	return &HighlightError{Op: op, Kind: KindValidation, Err: err, Detail: detail}
}

// Precondition builds a [KindPrecondition] error for op.
func Precondition(op string, err error) *HighlightError {
	return &HighlightError{Op: op, Kind: KindPrecondition, Err: err}
}

// IsKind reports whether err is a [HighlightError] of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var he *HighlightError
	if !stderrors.As(err, &he) {
		return false
	}
	return he.Kind == kind
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "highlight.onTap").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by label components.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *HighlightError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
