package services

import (
	"errors"
	"fmt"
)

var (
	// ErrProfileNotFound means the exact-email lookup matched no profile
	// record. For promotion this is the "tell them to sign in first" case.
	ErrProfileNotFound = errors.New("profile not found")

	ErrContentNotFound = errors.New("content item not found")
	ErrUpdateNotFound  = errors.New("update post not found")

	// ErrAuthenticationInFlight means a resolution is already running for
	// this session; events are delivered serially, so a second sign-in
	// attempt before the first settles is rejected.
	ErrAuthenticationInFlight = errors.New("authentication already in progress")
)

// PermissionError reports a denied operation with enough context to log.
type PermissionError struct {
	UserID   string
	Resource string
	Action   string
	Reason   string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: user %s cannot %s %s: %s",
		e.UserID, e.Action, e.Resource, e.Reason)
}

func NewPermissionError(userID, resource, action, reason string) error {
	return &PermissionError{
		UserID:   userID,
		Resource: resource,
		Action:   action,
		Reason:   reason,
	}
}

// IsPermissionError reports whether err is a permission denial.
func IsPermissionError(err error) bool {
	var pe *PermissionError
	return errors.As(err, &pe)
}
