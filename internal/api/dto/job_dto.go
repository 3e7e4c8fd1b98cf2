package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateJobRequest struct {
	Title               string          `json:"title" binding:"required"`
	Description         string          `json:"description" binding:"required"`
	Requirements        string          `json:"requirements" binding:"required"`
	Location            string          `json:"location"`
	JobType             string          `json:"jobType"`
	ExperienceLevel     string          `json:"experienceLevel"`
	Category            string          `json:"category"`
	MinSalary           decimal.Decimal `json:"minSalary" binding:"required"`
	MaxSalary           decimal.Decimal `json:"maxSalary" binding:"required"`
	Currency            string          `json:"currency"`
	Benefits            string          `json:"benefits"`
	Skills              string          `json:"skills"`
	Education           string          `json:"education"`
	Status              string          `json:"status"`
	CompanyID           *int64          `json:"companyId"`
	PostedByID          *int64          `json:"postedById"`
	ApplicationDeadline *time.Time      `json:"applicationDeadline"`
}

// UpdateJobRequest carries the mutable job fields. Company and posting-user
// references are fixed at creation; status changes also go through the
// dedicated status endpoint.
type UpdateJobRequest struct {
	Title               string          `json:"title" binding:"required"`
	Description         string          `json:"description" binding:"required"`
	Requirements        string          `json:"requirements" binding:"required"`
	Location            string          `json:"location"`
	JobType             string          `json:"jobType"`
	ExperienceLevel     string          `json:"experienceLevel"`
	Category            string          `json:"category"`
	MinSalary           decimal.Decimal `json:"minSalary" binding:"required"`
	MaxSalary           decimal.Decimal `json:"maxSalary" binding:"required"`
	Currency            string          `json:"currency"`
	Benefits            string          `json:"benefits"`
	Skills              string          `json:"skills"`
	Education           string          `json:"education"`
	Status              string          `json:"status"`
	ApplicationDeadline *time.Time      `json:"applicationDeadline"`
}
