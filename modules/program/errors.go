package program

import (
	"errors"
	"fmt"
)

// ErrInvalidProgram is the kind of every InvalidProgramError.
var ErrInvalidProgram = errors.New("invalid program")

// InvalidProgramError reports a structurally invalid program.
type InvalidProgramError struct {
	Msg string
	Err error
}

func (e *InvalidProgramError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", ErrInvalidProgram.Error(), e.Msg, e.Err.Error())
	}
	return fmt.Sprintf("%s: %s", ErrInvalidProgram.Error(), e.Msg)
}

func (e *InvalidProgramError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidProgram}
	}
	return []error{ErrInvalidProgram, e.Err}
}

// Invalidf builds an InvalidProgramError.
func Invalidf(format string, args ...any) error {
	return &InvalidProgramError{Msg: fmt.Sprintf(format, args...)}
}

func invalidWrap(err error, format string, args ...any) error {
	return &InvalidProgramError{Msg: fmt.Sprintf(format, args...), Err: err}
}
