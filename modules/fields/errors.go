package fields

import (
	"errors"
	"fmt"
)

// ErrEncoding is the kind of every EncodingError.
var ErrEncoding = errors.New("encoding error")

// EncodingError reports a value that cannot be represented as a canonical
// field element, e.g. a non-ASCII builtin name or an out-of-range integer.
type EncodingError struct {
	Value string
	Msg   string
}

func (e *EncodingError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %q: %s", ErrEncoding.Error(), e.Value, e.Msg)
}

func (e *EncodingError) Unwrap() error { return ErrEncoding }

func encodingf(value string, format string, args ...any) error {
	return &EncodingError{Value: value, Msg: fmt.Sprintf(format, args...)}
}
