package ms

import (
	"errors"
	"fmt"
)

// Parse errors.
var (
	ErrInputTooLong  = errors.New("input too long")
	ErrInvalidFormat = errors.New("invalid duration format")
	ErrUnknownUnit   = errors.New("unknown unit")
	ErrOverflow      = errors.New("duration overflows int64 milliseconds")
)

// ParseError records a failed Parse. Err is one of the sentinel errors above.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ms: parsing %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// PanicError is the value passed to panic by the Must helpers when their
// precondition does not hold. It signals a programming error and is not meant
// to be recovered in normal control flow.
type PanicError struct {
	Want Kind
	Got  Kind
	Err  error
}

func (e *PanicError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ms: expected %s output, got error: %v", e.Want, e.Err)
	}
	return fmt.Sprintf("ms: expected %s output, got %s", e.Want, e.Got)
}

func (e *PanicError) Unwrap() error { return e.Err }
