package domain

import "errors"

const (
	ApplicationStatusPending     = "PENDING"
	ApplicationStatusReviewed    = "REVIEWED"
	ApplicationStatusShortlisted = "SHORTLISTED"
	ApplicationStatusInterviewed = "INTERVIEWED"
	ApplicationStatusAccepted    = "ACCEPTED"
	ApplicationStatusRejected    = "REJECTED"
	ApplicationStatusWithdrawn   = "WITHDRAWN"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrDuplicateApplication     = errors.New("you have already applied for this job")
	ErrInvalidApplicationStatus = errors.New("invalid application status")
)

// ValidApplicationStatus reports whether s is a member of the application
// status enum. Transitions are deliberately unconstrained: any status may
// move to any other via a status update.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusShortlisted,
		ApplicationStatusInterviewed, ApplicationStatusAccepted, ApplicationStatusRejected,
		ApplicationStatusWithdrawn:
		return true
	}
	return false
}
