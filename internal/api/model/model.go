package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company is a row in the companies table. Cross-entity references are
// plain foreign-key ids; related records are fetched with explicit queries.
type Company struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Email       string    `db:"email" json:"email"`
	Website     string    `db:"website" json:"website"`
	Phone       string    `db:"phone" json:"phone"`
	Address     string    `db:"address" json:"address"`
	City        string    `db:"city" json:"city"`
	State       string    `db:"state" json:"state"`
	Country     string    `db:"country" json:"country"`
	Location    string    `db:"location" json:"location"`
	LogoURL     string    `db:"logo_url" json:"logoUrl"`
	Industry    string    `db:"industry" json:"industry"`
	CompanySize string    `db:"company_size" json:"companySize"`
	UserID      *int64    `db:"user_id" json:"userId"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// Job is a row in the jobs table.
type Job struct {
	ID                  int64           `db:"id" json:"id"`
	Title               string          `db:"title" json:"title"`
	Description         string          `db:"description" json:"description"`
	Requirements        string          `db:"requirements" json:"requirements"`
	Location            string          `db:"location" json:"location"`
	JobType             string          `db:"job_type" json:"jobType"`
	ExperienceLevel     string          `db:"experience_level" json:"experienceLevel"`
	Category            string          `db:"category" json:"category"`
	MinSalary           decimal.Decimal `db:"min_salary" json:"minSalary"`
	MaxSalary           decimal.Decimal `db:"max_salary" json:"maxSalary"`
	Currency            string          `db:"currency" json:"currency"`
	Benefits            string          `db:"benefits" json:"benefits"`
	Skills              string          `db:"skills" json:"skills"`
	Education           string          `db:"education" json:"education"`
	Status              string          `db:"status" json:"status"`
	CompanyID           *int64          `db:"company_id" json:"companyId"`
	PostedByID          *int64          `db:"posted_by" json:"postedById"`
	ApplicationDeadline *time.Time      `db:"application_deadline" json:"applicationDeadline"`
	CreatedAt           time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time       `db:"updated_at" json:"updatedAt"`
}

// JobApplication is a row in the job_applications table.
type JobApplication struct {
	ID                  int64     `db:"id" json:"id"`
	JobID               int64     `db:"job_id" json:"jobId"`
	UserID              int64     `db:"user_id" json:"userId"`
	CoverLetter         string    `db:"cover_letter" json:"coverLetter"`
	ResumeURL           string    `db:"resume_url" json:"resumeUrl"`
	AdditionalDocuments string    `db:"additional_documents" json:"additionalDocuments"`
	Status              string    `db:"status" json:"status"`
	Notes               string    `db:"notes" json:"notes"`
	Feedback            string    `db:"feedback" json:"feedback"`
	AppliedAt           time.Time `db:"applied_at" json:"appliedAt"`
	UpdatedAt           time.Time `db:"updated_at" json:"updatedAt"`
}
