package core

import (
	"errors"
	"fmt"
)

var (
	ErrType          = errors.New("type error")
	ErrValue         = errors.New("value error")
	ErrIndex         = errors.New("index error")
	ErrZeroDivision  = errors.New("zero division")
	ErrNotComparable = errors.New("not comparable")
	ErrNotIterable   = errors.New("not iterable")
)

// A TypeError is returned when an operation is applied to a value of an inappropriate type.
// errors.Is(err, ErrType) is true for any *TypeError.
type TypeError struct {
	msg   string
	cause error
}

func NewTypeError(format string, args ...any) *TypeError {
	return &TypeError{msg: fmt.Sprintf(format, args...)}
}

func newTypeErrorWithCause(cause error, format string, args ...any) *TypeError {
	return &TypeError{msg: fmt.Sprintf(format, args...), cause: cause}
}

func (e *TypeError) Error() string {
	return e.msg
}

func (e *TypeError) Unwrap() error {
	return e.cause
}

func (e *TypeError) Is(target error) bool {
	return target == ErrType
}

// A ValueError is returned when an argument has the right type but an inappropriate value.
type ValueError struct {
	msg string
}

func NewValueError(format string, args ...any) *ValueError {
	return &ValueError{msg: fmt.Sprintf(format, args...)}
}

func (e *ValueError) Error() string {
	return e.msg
}

func (e *ValueError) Is(target error) bool {
	return target == ErrValue
}

// An IndexError is returned when a sequence index is out of range.
type IndexError struct {
	msg string
}

func NewIndexError(format string, args ...any) *IndexError {
	return &IndexError{msg: fmt.Sprintf(format, args...)}
}

func (e *IndexError) Error() string {
	return e.msg
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndex
}

// A ZeroDivisionError is returned when the second operand of a division or modulo operation is zero.
type ZeroDivisionError struct {
	msg string
}

func NewZeroDivisionError(msg string) *ZeroDivisionError {
	return &ZeroDivisionError{msg: msg}
}

func (e *ZeroDivisionError) Error() string {
	return e.msg
}

func (e *ZeroDivisionError) Is(target error) bool {
	return target == ErrZeroDivision
}

func fmtNotSupportedBetween(operator string, a, b Value) *TypeError {
	return newTypeErrorWithCause(ErrNotComparable,
		"'%s' not supported between instances of '%s' and '%s'", operator, a.TypeName(), b.TypeName())
}

func fmtNotIterable(v Value) *TypeError {
	return newTypeErrorWithCause(ErrNotIterable, "'%s' object is not iterable", v.TypeName())
}
