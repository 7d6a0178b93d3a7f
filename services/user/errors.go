package user

import (
	"errors"

	userRepo "jeevanrakshak/database/repository/user"
)

var (
	ErrInvalidIDToken  = errors.New("invalid identity token")
	ErrInvalidSession  = errors.New("invalid or expired session")
	ErrProfileNotFound = userRepo.ErrUserNotFound
	ErrProfileExists   = errors.New("profile already registered")
)

// ValidationError reports a field the caller must fix.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// IsClientError reports whether err is caused by the request rather than the service.
func IsClientError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
