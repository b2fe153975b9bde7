package erref

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every *InvalidArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError represents an input that cannot be read as an unsigned 32-bit HRESULT.
type InvalidArgumentError struct {
	Message string
}

func (err *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument error: %s", err.Message)
}

func (err *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
