// internal/store/errors.go
package store

import "errors"

// Business-rule failures. Validation failures never surface as errors; the
// stores silently drop malformed input so stale persisted data cannot crash a
// caller.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrProtectedUser      = errors.New("the primary admin account cannot be modified")
	ErrOrderNotFound      = errors.New("order not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrEmptyOrder         = errors.New("order must contain at least one item")
)
