// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across store/repo/service layers.
var (
	// ErrNotFound indicates the requested entity (or a foreign-key target) does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a uniqueness invariant would be violated
	// (duplicate email, duplicate entitlement, duplicate admin per user,
	// duplicate performance per session).
	ErrConflict = errors.New("conflict")

	// ErrInvalidReference indicates a path identifier disagrees with a
	// body-supplied identifier.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrValidation indicates a required field is missing or malformed.
	ErrValidation = errors.New("validation")
)
