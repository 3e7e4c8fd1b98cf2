package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cuongbtq/jobportal-be/internal/api/domain"
	"github.com/cuongbtq/jobportal-be/internal/api/model"
	"github.com/cuongbtq/jobportal-be/shared/postgresql"
	"github.com/jmoiron/sqlx"
)

const companyColumns = `
	id, name, description, email, website, phone, address,
	city, state, country, location, logo_url, industry, company_size,
	user_id, created_at, updated_at
`

// CompanyStorage persists companies in PostgreSQL.
type CompanyStorage struct {
	db *sqlx.DB
}

func NewCompanyStorage(pg *postgresql.Client) *CompanyStorage {
	return &CompanyStorage{
		db: pg.GetDB(),
	}
}

// Insert stores a new company and fills in its generated id.
func (s *CompanyStorage) Insert(ctx context.Context, company *model.Company) error {
	query := `
		INSERT INTO companies (
			name, description, email, website, phone, address,
			city, state, country, location, logo_url, industry, company_size,
			user_id, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16
		)
		RETURNING id
	`

	err := s.db.GetContext(
		ctx,
		&company.ID,
		query,
		company.Name,
		company.Description,
		company.Email,
		company.Website,
		company.Phone,
		company.Address,
		company.City,
		company.State,
		company.Country,
		company.Location,
		company.LogoURL,
		company.Industry,
		company.CompanySize,
		company.UserID,
		company.CreatedAt,
		company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert company: %w", err)
	}

	return nil
}

func (s *CompanyStorage) GetByID(ctx context.Context, id int64) (*model.Company, error) {
	var company model.Company
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`

	err := s.db.GetContext(ctx, &company, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCompanyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return &company, nil
}

func (s *CompanyStorage) List(ctx context.Context) ([]model.Company, error) {
	companies := []model.Company{}
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY id`

	if err := s.db.SelectContext(ctx, &companies, query); err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	return companies, nil
}

func (s *CompanyStorage) ListByUser(ctx context.Context, userID int64) ([]model.Company, error) {
	companies := []model.Company{}
	query := `SELECT ` + companyColumns + ` FROM companies WHERE user_id = $1 ORDER BY id`

	if err := s.db.SelectContext(ctx, &companies, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list companies by user: %w", err)
	}

	return companies, nil
}

func (s *CompanyStorage) ListByIndustry(ctx context.Context, industry string) ([]model.Company, error) {
	companies := []model.Company{}
	query := `SELECT ` + companyColumns + ` FROM companies WHERE industry = $1 ORDER BY id`

	if err := s.db.SelectContext(ctx, &companies, query, industry); err != nil {
		return nil, fmt.Errorf("failed to list companies by industry: %w", err)
	}

	return companies, nil
}

func (s *CompanyStorage) ListByCity(ctx context.Context, city string) ([]model.Company, error) {
	companies := []model.Company{}
	query := `SELECT ` + companyColumns + ` FROM companies WHERE city = $1 ORDER BY id`

	if err := s.db.SelectContext(ctx, &companies, query, city); err != nil {
		return nil, fmt.Errorf("failed to list companies by city: %w", err)
	}

	return companies, nil
}

// Update overwrites the mutable columns of an existing company.
func (s *CompanyStorage) Update(ctx context.Context, company *model.Company) error {
	query := `
		UPDATE companies SET
			name = $1, description = $2, email = $3, website = $4,
			phone = $5, address = $6, city = $7, state = $8, country = $9,
			logo_url = $10, industry = $11, company_size = $12, updated_at = $13
		WHERE id = $14
	`

	res, err := s.db.ExecContext(
		ctx,
		query,
		company.Name,
		company.Description,
		company.Email,
		company.Website,
		company.Phone,
		company.Address,
		company.City,
		company.State,
		company.Country,
		company.LogoURL,
		company.Industry,
		company.CompanySize,
		company.UpdatedAt,
		company.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}

	return rowsAffectedOr(res, domain.ErrCompanyNotFound)
}

func (s *CompanyStorage) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	return rowsAffectedOr(res, domain.ErrCompanyNotFound)
}
