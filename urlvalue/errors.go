package urlvalue

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every *InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a URL input that is not a string.
type InvalidInputError struct {
	// Type is the Go type of the rejected value, or "nil".
	Type string
}

func newInvalidInputError(v any) *InvalidInputError {
	t := "nil"
	if v != nil {
		t = fmt.Sprintf("%T", v)
	}
	return &InvalidInputError{Type: t}
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("expected URL to be a string, but received a %s", e.Type)
}

// Is lets errors.Is match ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
