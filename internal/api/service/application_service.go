package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cuongbtq/jobportal-be/internal/api/domain"
	"github.com/cuongbtq/jobportal-be/internal/api/dto"
	"github.com/cuongbtq/jobportal-be/internal/api/model"
)

// ApplicationStore is the persistence surface the application service needs.
type ApplicationStore interface {
	Insert(ctx context.Context, app *model.JobApplication) error
	GetByID(ctx context.Context, id int64) (*model.JobApplication, error)
	FindByJobAndUser(ctx context.Context, jobID, userID int64) (*model.JobApplication, error)
	ListByUser(ctx context.Context, userID int64) ([]model.JobApplication, error)
	ListByJob(ctx context.Context, jobID int64) ([]model.JobApplication, error)
	ListByCompany(ctx context.Context, companyID int64) ([]model.JobApplication, error)
	ListByStatus(ctx context.Context, status string) ([]model.JobApplication, error)
	CountByJob(ctx context.Context, jobID int64) (int64, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	CountByCompany(ctx context.Context, companyID int64) (int64, error)
	Update(ctx context.Context, app *model.JobApplication) error
	UpdateStatus(ctx context.Context, id int64, status, feedback string, updatedAt time.Time) error
	Delete(ctx context.Context, id int64) error
}

// ApplicationService implements job application business operations on top
// of the store.
type ApplicationService struct {
	store  ApplicationStore
	logger *slog.Logger
}

func NewApplicationService(store ApplicationStore, logger *slog.Logger) *ApplicationService {
	return &ApplicationService{
		store:  store,
		logger: logger,
	}
}

// Create files a new application with default status PENDING. A user may
// apply to a given job at most once; a second attempt fails with
// ErrDuplicateApplication. The unique constraint on (job_id, user_id)
// backs this check up for concurrent creates.
func (s *ApplicationService) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*model.JobApplication, error) {
	_, err := s.store.FindByJobAndUser(ctx, req.JobID, req.UserID)
	if err == nil {
		return nil, domain.ErrDuplicateApplication
	}
	if !errors.Is(err, domain.ErrApplicationNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	app := &model.JobApplication{
		JobID:               req.JobID,
		UserID:              req.UserID,
		CoverLetter:         req.CoverLetter,
		ResumeURL:           req.ResumeURL,
		AdditionalDocuments: req.AdditionalDocuments,
		Status:              domain.ApplicationStatusPending,
		Notes:               req.Notes,
		AppliedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.store.Insert(ctx, app); err != nil {
		return nil, err
	}

	s.logger.Info("application created",
		slog.Int64("application_id", app.ID),
		slog.Int64("job_id", app.JobID),
		slog.Int64("user_id", app.UserID),
	)

	return app, nil
}

// Update overwrites the applicant-editable fields only; status and feedback
// stay untouched.
func (s *ApplicationService) Update(ctx context.Context, id int64, req *dto.UpdateApplicationRequest) (*model.JobApplication, error) {
	app, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	app.CoverLetter = req.CoverLetter
	app.ResumeURL = req.ResumeURL
	app.AdditionalDocuments = req.AdditionalDocuments
	app.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, app); err != nil {
		return nil, err
	}

	return app, nil
}

// UpdateStatus changes the review status and feedback. Any status may move
// to any other; only enum membership is checked.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id int64, status, feedback string) (*model.JobApplication, error) {
	if !domain.ValidApplicationStatus(status) {
		return nil, domain.ErrInvalidApplicationStatus
	}

	app, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.store.UpdateStatus(ctx, id, status, feedback, now); err != nil {
		return nil, err
	}

	app.Status = status
	app.Feedback = feedback
	app.UpdatedAt = now

	return app, nil
}

func (s *ApplicationService) GetByID(ctx context.Context, id int64) (*model.JobApplication, error) {
	return s.store.GetByID(ctx, id)
}

func (s *ApplicationService) ListByUser(ctx context.Context, userID int64) ([]model.JobApplication, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *ApplicationService) ListByJob(ctx context.Context, jobID int64) ([]model.JobApplication, error) {
	return s.store.ListByJob(ctx, jobID)
}

func (s *ApplicationService) ListByCompany(ctx context.Context, companyID int64) ([]model.JobApplication, error) {
	return s.store.ListByCompany(ctx, companyID)
}

func (s *ApplicationService) ListByStatus(ctx context.Context, status string) ([]model.JobApplication, error) {
	if !domain.ValidApplicationStatus(status) {
		return nil, domain.ErrInvalidApplicationStatus
	}
	return s.store.ListByStatus(ctx, status)
}

func (s *ApplicationService) CountByJob(ctx context.Context, jobID int64) (int64, error) {
	return s.store.CountByJob(ctx, jobID)
}

func (s *ApplicationService) CountByUser(ctx context.Context, userID int64) (int64, error) {
	return s.store.CountByUser(ctx, userID)
}

func (s *ApplicationService) CountByCompany(ctx context.Context, companyID int64) (int64, error) {
	return s.store.CountByCompany(ctx, companyID)
}

// HasApplied reports whether the user already has an application for the job.
func (s *ApplicationService) HasApplied(ctx context.Context, jobID, userID int64) (bool, error) {
	_, err := s.store.FindByJobAndUser(ctx, jobID, userID)
	if errors.Is(err, domain.ErrApplicationNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *ApplicationService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("application deleted", slog.Int64("application_id", id))
	return nil
}
