package hashchain

import (
	"errors"
	"fmt"

	"CairoProgramHash/modules/fields"
)

// ErrPrimitiveFailure is the kind of every PrimitiveError. It marks an
// environment fault and is never worth retrying.
var ErrPrimitiveFailure = errors.New("compression primitive failure")

// PrimitiveError wraps a fault reported by a compression primitive.
type PrimitiveError struct {
	Primitive string
	Err       error
}

func (e *PrimitiveError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrPrimitiveFailure.Error(), e.Primitive)
	}
	return fmt.Sprintf("%s: %s: %s", ErrPrimitiveFailure.Error(), e.Primitive, e.Err.Error())
}

// Unwrap exposes both the sentinel and the underlying fault.
func (e *PrimitiveError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrPrimitiveFailure}
	}
	return []error{ErrPrimitiveFailure, e.Err}
}

// AsPrimitiveFailure wraps err unless it already is a primitive failure or
// reports an input outside the field, which is the caller's fault.
func AsPrimitiveFailure(primitive string, err error) error {
	if err == nil || errors.Is(err, ErrPrimitiveFailure) || errors.Is(err, fields.ErrEncoding) {
		return err
	}
	return &PrimitiveError{Primitive: primitive, Err: err}
}
