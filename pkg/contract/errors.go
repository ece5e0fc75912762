package contract

import (
	"errors"
	"fmt"
)

// ErrUnimplemented is matched by every error raised when a placeholder
// member of a conforming type is reached.
var ErrUnimplemented = errors.New("not implemented")

// UnimplementedError identifies the member that was reached.
// It is used as a panic value, never returned.
type UnimplementedError struct {
	Type   string
	Member string
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("not implemented: %s::%s", e.Type, e.Member)
}

// Is allows errors.Is(err, contract.ErrUnimplemented).
func (e *UnimplementedError) Is(target error) bool {
	return target == ErrUnimplemented
}
