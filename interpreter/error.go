package interpreter

import (
	"fmt"

	"rlox/span"
)

// RuntimeError is a runtime failure tied to the source span that
// triggered it, so the reporter can point back at the offending code.
type RuntimeError struct {
	Span    span.Span
	Message string
}

func NewRuntimeError(sp span.Span, message string) RuntimeError {
	return RuntimeError{Span: sp, Message: message}
}

func (e RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Runtime error: %s", e.Span.LineStart, e.Message)
}

// controlReturn is the non-local exit used to carry a "return" value up
// to the enclosing function call. It is panicked rather than threaded
// through every Visit method's return value so the ordinary tree walk
// does not need a tri-state result type; the call boundary in
// (*Function).Call is the only place that catches it. A controlReturn
// that escapes all the way to Interpret indicates a "return" outside of
// a function, which is reported as a RuntimeError.
type controlReturn struct {
	value any
}
