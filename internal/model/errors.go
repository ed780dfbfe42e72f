package model

import (
	"errors"
	"fmt"
)

// ErrUnknownStatus is matched by every *UnknownStatusError.
var ErrUnknownStatus = errors.New("unknown session status")

// UnknownStatusError reports a status outside the taxonomy.
type UnknownStatusError struct {
	Status Status
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnknownStatus, string(e.Status))
}

// Is reports whether target is ErrUnknownStatus.
func (e *UnknownStatusError) Is(target error) bool {
	return target == ErrUnknownStatus
}

// ErrInvalidTransition is matched by every *TransitionError.
var ErrInvalidTransition = errors.New("invalid status transition")

// TransitionError reports a lifecycle edge that is not allowed.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

// Is reports whether target is ErrInvalidTransition.
func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
