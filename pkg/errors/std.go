package errors

import stdErrors "errors"

// As is errors.As from the standard library, re-exported so callers importing
// this package under the name errors keep access to it.
func As(err error, target any) bool {
	return stdErrors.As(err, target)
}

// Is is errors.Is from the standard library.
func Is(err, target error) bool {
	return stdErrors.Is(err, target)
}
