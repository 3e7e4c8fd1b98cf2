package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cuongbtq/jobportal-be/internal/api/domain"
	"github.com/cuongbtq/jobportal-be/internal/api/model"
	"github.com/cuongbtq/jobportal-be/shared/postgresql"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const applicationColumns = `
	id, job_id, user_id, cover_letter, resume_url, additional_documents,
	status, notes, feedback, applied_at, updated_at
`

// uniqueViolation is the PostgreSQL error code raised when the
// (job_id, user_id) uniqueness constraint rejects an insert.
const uniqueViolation = "23505"

// ApplicationStorage persists job applications in PostgreSQL.
type ApplicationStorage struct {
	db *sqlx.DB
}

func NewApplicationStorage(pg *postgresql.Client) *ApplicationStorage {
	return &ApplicationStorage{
		db: pg.GetDB(),
	}
}

// Insert stores a new application and fills in its generated id. A second
// application for the same (job, user) pair is rejected by the unique
// constraint and reported as ErrDuplicateApplication, which closes the
// race between the service-level existence check and the write.
func (s *ApplicationStorage) Insert(ctx context.Context, app *model.JobApplication) error {
	query := `
		INSERT INTO job_applications (
			job_id, user_id, cover_letter, resume_url, additional_documents,
			status, notes, feedback, applied_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10
		)
		RETURNING id
	`

	err := s.db.GetContext(
		ctx,
		&app.ID,
		query,
		app.JobID,
		app.UserID,
		app.CoverLetter,
		app.ResumeURL,
		app.AdditionalDocuments,
		app.Status,
		app.Notes,
		app.Feedback,
		app.AppliedAt,
		app.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrDuplicateApplication
		}
		return fmt.Errorf("failed to insert application: %w", err)
	}

	return nil
}

func (s *ApplicationStorage) GetByID(ctx context.Context, id int64) (*model.JobApplication, error) {
	var app model.JobApplication
	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE id = $1`

	err := s.db.GetContext(ctx, &app, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrApplicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	return &app, nil
}

// FindByJobAndUser looks up the application a user filed for a job, if any.
func (s *ApplicationStorage) FindByJobAndUser(ctx context.Context, jobID, userID int64) (*model.JobApplication, error) {
	var app model.JobApplication
	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE job_id = $1 AND user_id = $2`

	err := s.db.GetContext(ctx, &app, query, jobID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrApplicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find application by job and user: %w", err)
	}

	return &app, nil
}

func (s *ApplicationStorage) ListByUser(ctx context.Context, userID int64) ([]model.JobApplication, error) {
	apps := []model.JobApplication{}
	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE user_id = $1 ORDER BY id`

	if err := s.db.SelectContext(ctx, &apps, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list applications by user: %w", err)
	}

	return apps, nil
}

func (s *ApplicationStorage) ListByJob(ctx context.Context, jobID int64) ([]model.JobApplication, error) {
	apps := []model.JobApplication{}
	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE job_id = $1 ORDER BY id`

	if err := s.db.SelectContext(ctx, &apps, query, jobID); err != nil {
		return nil, fmt.Errorf("failed to list applications by job: %w", err)
	}

	return apps, nil
}

// ListByCompany lists applications to any job belonging to the company,
// joining through the jobs table.
func (s *ApplicationStorage) ListByCompany(ctx context.Context, companyID int64) ([]model.JobApplication, error) {
	apps := []model.JobApplication{}
	query := `
		SELECT
			a.id, a.job_id, a.user_id, a.cover_letter, a.resume_url,
			a.additional_documents, a.status, a.notes, a.feedback,
			a.applied_at, a.updated_at
		FROM job_applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.company_id = $1
		ORDER BY a.id
	`

	if err := s.db.SelectContext(ctx, &apps, query, companyID); err != nil {
		return nil, fmt.Errorf("failed to list applications by company: %w", err)
	}

	return apps, nil
}

func (s *ApplicationStorage) ListByStatus(ctx context.Context, status string) ([]model.JobApplication, error) {
	apps := []model.JobApplication{}
	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE status = $1 ORDER BY id`

	if err := s.db.SelectContext(ctx, &apps, query, status); err != nil {
		return nil, fmt.Errorf("failed to list applications by status: %w", err)
	}

	return apps, nil
}

func (s *ApplicationStorage) CountByJob(ctx context.Context, jobID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM job_applications WHERE job_id = $1`

	if err := s.db.GetContext(ctx, &count, query, jobID); err != nil {
		return 0, fmt.Errorf("failed to count applications by job: %w", err)
	}

	return count, nil
}

func (s *ApplicationStorage) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM job_applications WHERE user_id = $1`

	if err := s.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("failed to count applications by user: %w", err)
	}

	return count, nil
}

func (s *ApplicationStorage) CountByCompany(ctx context.Context, companyID int64) (int64, error) {
	var count int64
	query := `
		SELECT COUNT(*)
		FROM job_applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.company_id = $1
	`

	if err := s.db.GetContext(ctx, &count, query, companyID); err != nil {
		return 0, fmt.Errorf("failed to count applications by company: %w", err)
	}

	return count, nil
}

// Update overwrites the applicant-editable columns of an existing application.
func (s *ApplicationStorage) Update(ctx context.Context, app *model.JobApplication) error {
	query := `
		UPDATE job_applications SET
			cover_letter = $1, resume_url = $2, additional_documents = $3,
			updated_at = $4
		WHERE id = $5
	`

	res, err := s.db.ExecContext(
		ctx,
		query,
		app.CoverLetter,
		app.ResumeURL,
		app.AdditionalDocuments,
		app.UpdatedAt,
		app.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}

	return rowsAffectedOr(res, domain.ErrApplicationNotFound)
}

// UpdateStatus changes the status and feedback columns only.
func (s *ApplicationStorage) UpdateStatus(ctx context.Context, id int64, status, feedback string, updatedAt time.Time) error {
	query := `UPDATE job_applications SET status = $1, feedback = $2, updated_at = $3 WHERE id = $4`

	res, err := s.db.ExecContext(ctx, query, status, feedback, updatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}

	return rowsAffectedOr(res, domain.ErrApplicationNotFound)
}

func (s *ApplicationStorage) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM job_applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}

	return rowsAffectedOr(res, domain.ErrApplicationNotFound)
}
