package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	JobStatusActive  = "ACTIVE"
	JobStatusClosed  = "CLOSED"
	JobStatusDraft   = "DRAFT"
	JobStatusPaused  = "PAUSED"
	JobStatusExpired = "EXPIRED"
)

var (
	ErrJobNotFound      = errors.New("job not found")
	ErrInvalidJobStatus = errors.New("invalid job status")
)

// ValidJobStatus reports whether s is a member of the job status enum.
func ValidJobStatus(s string) bool {
	switch s {
	case JobStatusActive, JobStatusClosed, JobStatusDraft, JobStatusPaused, JobStatusExpired:
		return true
	}
	return false
}

// JobSearchFilter holds the optional criteria for the public job search.
// Zero-value string fields and nil salary bounds match everything; the
// search itself is always restricted to ACTIVE jobs.
type JobSearchFilter struct {
	Title     string
	Location  string
	JobType   string
	Category  string
	MinSalary *decimal.Decimal
	MaxSalary *decimal.Decimal
}
