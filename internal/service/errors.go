package service

import "errors"

// Common service errors
var (
	// ErrNotAdmin is returned when an authenticated user attempts an
	// admin-only operation without the admin role. The API layer maps
	// this to Forbidden, never Unauthorized.
	ErrNotAdmin = errors.New("user is not an admin")
)
