package complaint

import (
	"errors"
	"fmt"

	complaintRepo "jeevanrakshak/database/repository/complaint"
)

var (
	ErrComplaintNotFound = complaintRepo.ErrNotFound
	// ErrSubmissionSuperseded means a newer submission from the same user replaced this one.
	ErrSubmissionSuperseded = errors.New("submission superseded by a newer one")
	// ErrSubmissionAbandoned means the caller went away before the complaint was stored.
	ErrSubmissionAbandoned = errors.New("submission abandoned")
	ErrNotOwner            = errors.New("complaint belongs to another user")
)

type ValidationError struct {
	Code    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{
		Code:    "validationError",
		Field:   field,
		Message: msg,
	}
}
