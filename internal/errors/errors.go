package errors

import (
	"errors"
	"fmt"
)

// Common error types for the admin dashboard
var (
	// Session errors
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrMissingTenant    = errors.New("organization slug missing from session")

	// Upstream errors
	ErrLoginFailed     = errors.New("login failed")
	ErrInvalidResponse = errors.New("invalid response from server")
	ErrUpstream        = errors.New("upstream request failed")
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
