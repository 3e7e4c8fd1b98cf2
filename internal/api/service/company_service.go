package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/cuongbtq/jobportal-be/internal/api/dto"
	"github.com/cuongbtq/jobportal-be/internal/api/model"
)

// CompanyStore is the persistence surface the company service needs.
type CompanyStore interface {
	Insert(ctx context.Context, company *model.Company) error
	GetByID(ctx context.Context, id int64) (*model.Company, error)
	List(ctx context.Context) ([]model.Company, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Company, error)
	ListByIndustry(ctx context.Context, industry string) ([]model.Company, error)
	ListByCity(ctx context.Context, city string) ([]model.Company, error)
	Update(ctx context.Context, company *model.Company) error
	Delete(ctx context.Context, id int64) error
}

// CompanyService implements company business operations on top of the store.
type CompanyService struct {
	store  CompanyStore
	logger *slog.Logger
}

func NewCompanyService(store CompanyStore, logger *slog.Logger) *CompanyService {
	return &CompanyService{
		store:  store,
		logger: logger,
	}
}

func (s *CompanyService) Create(ctx context.Context, req *dto.CreateCompanyRequest) (*model.Company, error) {
	now := time.Now().UTC()
	company := &model.Company{
		Name:        req.Name,
		Description: req.Description,
		Email:       req.Email,
		Website:     req.Website,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		Location:    req.Location,
		LogoURL:     req.LogoURL,
		Industry:    req.Industry,
		CompanySize: req.CompanySize,
		UserID:      req.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Insert(ctx, company); err != nil {
		return nil, err
	}

	s.logger.Info("company created",
		slog.Int64("company_id", company.ID),
		slog.String("name", company.Name),
	)

	return company, nil
}

// Update overwrites every mutable field from the request and refreshes the
// updated timestamp.
func (s *CompanyService) Update(ctx context.Context, id int64, req *dto.UpdateCompanyRequest) (*model.Company, error) {
	company, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	company.Name = req.Name
	company.Description = req.Description
	company.Email = req.Email
	company.Website = req.Website
	company.Phone = req.Phone
	company.Address = req.Address
	company.City = req.City
	company.State = req.State
	company.Country = req.Country
	company.LogoURL = req.LogoURL
	company.Industry = req.Industry
	company.CompanySize = req.CompanySize
	company.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

func (s *CompanyService) GetByID(ctx context.Context, id int64) (*model.Company, error) {
	return s.store.GetByID(ctx, id)
}

func (s *CompanyService) List(ctx context.Context) ([]model.Company, error) {
	return s.store.List(ctx)
}

func (s *CompanyService) ListByUser(ctx context.Context, userID int64) ([]model.Company, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *CompanyService) ListByIndustry(ctx context.Context, industry string) ([]model.Company, error) {
	return s.store.ListByIndustry(ctx, industry)
}

func (s *CompanyService) ListByCity(ctx context.Context, city string) ([]model.Company, error) {
	return s.store.ListByCity(ctx, city)
}

func (s *CompanyService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("company deleted", slog.Int64("company_id", id))
	return nil
}
