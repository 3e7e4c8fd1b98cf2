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
)

const jobColumns = `
	id, title, description, requirements, location, job_type,
	experience_level, category, min_salary, max_salary, currency,
	benefits, skills, education, status, company_id, posted_by,
	application_deadline, created_at, updated_at
`

// JobStorage persists job postings in PostgreSQL.
type JobStorage struct {
	db *sqlx.DB
}

func NewJobStorage(pg *postgresql.Client) *JobStorage {
	return &JobStorage{
		db: pg.GetDB(),
	}
}

// Insert stores a new job and fills in its generated id.
func (s *JobStorage) Insert(ctx context.Context, job *model.Job) error {
	query := `
		INSERT INTO jobs (
			title, description, requirements, location, job_type,
			experience_level, category, min_salary, max_salary, currency,
			benefits, skills, education, status, company_id, posted_by,
			application_deadline, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16,
			$17, $18, $19
		)
		RETURNING id
	`

	err := s.db.GetContext(
		ctx,
		&job.ID,
		query,
		job.Title,
		job.Description,
		job.Requirements,
		job.Location,
		job.JobType,
		job.ExperienceLevel,
		job.Category,
		job.MinSalary,
		job.MaxSalary,
		job.Currency,
		job.Benefits,
		job.Skills,
		job.Education,
		job.Status,
		job.CompanyID,
		job.PostedByID,
		job.ApplicationDeadline,
		job.CreatedAt,
		job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert job: %w", err)
	}

	return nil
}

func (s *JobStorage) GetByID(ctx context.Context, id int64) (*model.Job, error) {
	var job model.Job
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	err := s.db.GetContext(ctx, &job, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return &job, nil
}

func (s *JobStorage) List(ctx context.Context) ([]model.Job, error) {
	jobs := []model.Job{}
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY id`

	if err := s.db.SelectContext(ctx, &jobs, query); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs, nil
}

func (s *JobStorage) ListByStatus(ctx context.Context, status string) ([]model.Job, error) {
	jobs := []model.Job{}
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE status = $1 ORDER BY id`

	if err := s.db.SelectContext(ctx, &jobs, query, status); err != nil {
		return nil, fmt.Errorf("failed to list jobs by status: %w", err)
	}

	return jobs, nil
}

func (s *JobStorage) ListByCompany(ctx context.Context, companyID int64) ([]model.Job, error) {
	jobs := []model.Job{}
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE company_id = $1 ORDER BY id`

	if err := s.db.SelectContext(ctx, &jobs, query, companyID); err != nil {
		return nil, fmt.Errorf("failed to list jobs by company: %w", err)
	}

	return jobs, nil
}

func (s *JobStorage) ListByPostedBy(ctx context.Context, userID int64) ([]model.Job, error) {
	jobs := []model.Job{}
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE posted_by = $1 ORDER BY id`

	if err := s.db.SelectContext(ctx, &jobs, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list jobs by user: %w", err)
	}

	return jobs, nil
}

// searchJobsQuery composes the WHERE clause for the public job search from
// the optional filter criteria. Every predicate is skipped when its
// criterion is unset; the status predicate is always present so only
// ACTIVE postings are searchable. Salary bounds form a range-overlap test:
// a job matches when its salary range intersects the requested one.
func searchJobsQuery(filter domain.JobSearchFilter) (string, []interface{}) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE status = $1`
	args := []interface{}{domain.JobStatusActive}
	argIdx := 2

	if filter.Title != "" {
		query += fmt.Sprintf(" AND title ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Title+"%")
		argIdx++
	}

	if filter.Location != "" {
		query += fmt.Sprintf(" AND location ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Location+"%")
		argIdx++
	}

	if filter.JobType != "" {
		query += fmt.Sprintf(" AND job_type = $%d", argIdx)
		args = append(args, filter.JobType)
		argIdx++
	}

	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, filter.Category)
		argIdx++
	}

	if filter.MinSalary != nil {
		query += fmt.Sprintf(" AND max_salary >= $%d", argIdx)
		args = append(args, *filter.MinSalary)
		argIdx++
	}

	if filter.MaxSalary != nil {
		query += fmt.Sprintf(" AND min_salary <= $%d", argIdx)
		args = append(args, *filter.MaxSalary)
		argIdx++
	}

	query += " ORDER BY created_at DESC, id DESC"

	return query, args
}

// Search returns the ACTIVE jobs matching the filter.
func (s *JobStorage) Search(ctx context.Context, filter domain.JobSearchFilter) ([]model.Job, error) {
	query, args := searchJobsQuery(filter)

	jobs := []model.Job{}
	if err := s.db.SelectContext(ctx, &jobs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search jobs: %w", err)
	}

	return jobs, nil
}

func (s *JobStorage) DistinctLocations(ctx context.Context) ([]string, error) {
	return s.distinctActive(ctx, "location")
}

func (s *JobStorage) DistinctCategories(ctx context.Context) ([]string, error) {
	return s.distinctActive(ctx, "category")
}

func (s *JobStorage) DistinctJobTypes(ctx context.Context) ([]string, error) {
	return s.distinctActive(ctx, "job_type")
}

// distinctActive lists the distinct non-empty values of column across
// ACTIVE jobs. column is always one of our own identifiers, never input.
func (s *JobStorage) distinctActive(ctx context.Context, column string) ([]string, error) {
	values := []string{}
	query := fmt.Sprintf(
		`SELECT DISTINCT %s FROM jobs WHERE status = $1 AND %s <> '' ORDER BY %s`,
		column, column, column,
	)

	if err := s.db.SelectContext(ctx, &values, query, domain.JobStatusActive); err != nil {
		return nil, fmt.Errorf("failed to list distinct %s: %w", column, err)
	}

	return values, nil
}

// Update overwrites the mutable columns of an existing job.
func (s *JobStorage) Update(ctx context.Context, job *model.Job) error {
	query := `
		UPDATE jobs SET
			title = $1, description = $2, requirements = $3, location = $4,
			job_type = $5, experience_level = $6, category = $7,
			min_salary = $8, max_salary = $9, currency = $10,
			benefits = $11, skills = $12, education = $13, status = $14,
			application_deadline = $15, updated_at = $16
		WHERE id = $17
	`

	res, err := s.db.ExecContext(
		ctx,
		query,
		job.Title,
		job.Description,
		job.Requirements,
		job.Location,
		job.JobType,
		job.ExperienceLevel,
		job.Category,
		job.MinSalary,
		job.MaxSalary,
		job.Currency,
		job.Benefits,
		job.Skills,
		job.Education,
		job.Status,
		job.ApplicationDeadline,
		job.UpdatedAt,
		job.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	return rowsAffectedOr(res, domain.ErrJobNotFound)
}

// UpdateStatus changes only the status column, leaving everything else as is.
func (s *JobStorage) UpdateStatus(ctx context.Context, id int64, status string, updatedAt time.Time) error {
	query := `UPDATE jobs SET status = $1, updated_at = $2 WHERE id = $3`

	res, err := s.db.ExecContext(ctx, query, status, updatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}

	return rowsAffectedOr(res, domain.ErrJobNotFound)
}

func (s *JobStorage) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	return rowsAffectedOr(res, domain.ErrJobNotFound)
}
