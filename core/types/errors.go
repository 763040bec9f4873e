package types

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is returned when a transaction input cannot be decoded
// into the canonical record, or carries a value outside its type's range.
var ErrMalformedInput = errors.New("malformed transaction input")

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}
