package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/cuongbtq/jobportal-be/internal/api/domain"
	"github.com/cuongbtq/jobportal-be/internal/api/dto"
	"github.com/cuongbtq/jobportal-be/internal/api/model"
)

// DefaultCurrency is applied when a posting carries no currency.
const DefaultCurrency = "USD"

// JobStore is the persistence surface the job service needs.
type JobStore interface {
	Insert(ctx context.Context, job *model.Job) error
	GetByID(ctx context.Context, id int64) (*model.Job, error)
	List(ctx context.Context) ([]model.Job, error)
	ListByStatus(ctx context.Context, status string) ([]model.Job, error)
	ListByCompany(ctx context.Context, companyID int64) ([]model.Job, error)
	ListByPostedBy(ctx context.Context, userID int64) ([]model.Job, error)
	Search(ctx context.Context, filter domain.JobSearchFilter) ([]model.Job, error)
	DistinctLocations(ctx context.Context) ([]string, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	DistinctJobTypes(ctx context.Context) ([]string, error)
	Update(ctx context.Context, job *model.Job) error
	UpdateStatus(ctx context.Context, id int64, status string, updatedAt time.Time) error
	Delete(ctx context.Context, id int64) error
}

// JobService implements job posting business operations on top of the store.
type JobService struct {
	store  JobStore
	logger *slog.Logger
}

func NewJobService(store JobStore, logger *slog.Logger) *JobService {
	return &JobService{
		store:  store,
		logger: logger,
	}
}

func (s *JobService) Create(ctx context.Context, req *dto.CreateJobRequest) (*model.Job, error) {
	status := req.Status
	if status == "" {
		status = domain.JobStatusActive
	}
	if !domain.ValidJobStatus(status) {
		return nil, domain.ErrInvalidJobStatus
	}

	currency := req.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	now := time.Now().UTC()
	job := &model.Job{
		Title:               req.Title,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Location:            req.Location,
		JobType:             req.JobType,
		ExperienceLevel:     req.ExperienceLevel,
		Category:            req.Category,
		MinSalary:           req.MinSalary,
		MaxSalary:           req.MaxSalary,
		Currency:            currency,
		Benefits:            req.Benefits,
		Skills:              req.Skills,
		Education:           req.Education,
		Status:              status,
		CompanyID:           req.CompanyID,
		PostedByID:          req.PostedByID,
		ApplicationDeadline: req.ApplicationDeadline,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.store.Insert(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info("job created",
		slog.Int64("job_id", job.ID),
		slog.String("title", job.Title),
	)

	return job, nil
}

// Update overwrites every mutable field from the request and refreshes the
// updated timestamp.
func (s *JobService) Update(ctx context.Context, id int64, req *dto.UpdateJobRequest) (*model.Job, error) {
	if req.Status != "" && !domain.ValidJobStatus(req.Status) {
		return nil, domain.ErrInvalidJobStatus
	}

	job, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	job.Title = req.Title
	job.Description = req.Description
	job.Requirements = req.Requirements
	job.Location = req.Location
	job.JobType = req.JobType
	job.ExperienceLevel = req.ExperienceLevel
	job.Category = req.Category
	job.MinSalary = req.MinSalary
	job.MaxSalary = req.MaxSalary
	if req.Currency != "" {
		job.Currency = req.Currency
	}
	job.Benefits = req.Benefits
	job.Skills = req.Skills
	job.Education = req.Education
	if req.Status != "" {
		job.Status = req.Status
	}
	job.ApplicationDeadline = req.ApplicationDeadline
	job.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// UpdateStatus changes only the posting status. Any status may move to any
// other; only enum membership is checked.
func (s *JobService) UpdateStatus(ctx context.Context, id int64, status string) (*model.Job, error) {
	if !domain.ValidJobStatus(status) {
		return nil, domain.ErrInvalidJobStatus
	}

	job, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.store.UpdateStatus(ctx, id, status, now); err != nil {
		return nil, err
	}

	job.Status = status
	job.UpdatedAt = now

	return job, nil
}

func (s *JobService) GetByID(ctx context.Context, id int64) (*model.Job, error) {
	return s.store.GetByID(ctx, id)
}

func (s *JobService) List(ctx context.Context) ([]model.Job, error) {
	return s.store.List(ctx)
}

func (s *JobService) ListActive(ctx context.Context) ([]model.Job, error) {
	return s.store.ListByStatus(ctx, domain.JobStatusActive)
}

func (s *JobService) ListByCompany(ctx context.Context, companyID int64) ([]model.Job, error) {
	return s.store.ListByCompany(ctx, companyID)
}

func (s *JobService) ListByUser(ctx context.Context, userID int64) ([]model.Job, error) {
	return s.store.ListByPostedBy(ctx, userID)
}

// Search returns the ACTIVE jobs matching the optional filter criteria.
func (s *JobService) Search(ctx context.Context, filter domain.JobSearchFilter) ([]model.Job, error) {
	return s.store.Search(ctx, filter)
}

func (s *JobService) DistinctLocations(ctx context.Context) ([]string, error) {
	return s.store.DistinctLocations(ctx)
}

func (s *JobService) DistinctCategories(ctx context.Context) ([]string, error) {
	return s.store.DistinctCategories(ctx)
}

func (s *JobService) DistinctJobTypes(ctx context.Context) ([]string, error) {
	return s.store.DistinctJobTypes(ctx)
}

func (s *JobService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("job deleted", slog.Int64("job_id", id))
	return nil
}
