// Package apperrors defines the failure taxonomy shared by the service layer
// and the transport layer. Every service failure wraps exactly one of the
// sentinels below; anything that does not is treated as unexpected and must
// not leak its detail to callers.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation failed")
)

// NotFound reports that an id did not resolve to a record of the given
// entity. The entity name and id are part of the message by contract.
func NotFound(entity string, id uint) error {
	return fmt.Errorf("%s with ID %d: %w", entity, id, ErrNotFound)
}

func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

func Conflictf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrConflict)...)
}

func Forbiddenf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrForbidden)...)
}

func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

// Expected reports whether err belongs to the named taxonomy, i.e. whether
// its message is safe to surface to the caller.
func Expected(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrValidation)
}
