// Package fixtures loads a small set of sample companies and job postings
// for local development. It only runs when explicitly invoked (see
// cmd/fixtures) and never as part of service startup.
package fixtures

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cuongbtq/jobportal-be/internal/api/dto"
	"github.com/cuongbtq/jobportal-be/internal/api/service"
	"github.com/shopspring/decimal"
)

type Loader struct {
	companies *service.CompanyService
	jobs      *service.JobService
	logger    *slog.Logger
}

func NewLoader(companies *service.CompanyService, jobs *service.JobService, logger *slog.Logger) *Loader {
	return &Loader{
		companies: companies,
		jobs:      jobs,
		logger:    logger,
	}
}

// Load seeds the sample data unless companies already exist.
func (l *Loader) Load(ctx context.Context) error {
	existing, err := l.companies.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing companies: %w", err)
	}
	if len(existing) > 0 {
		l.logger.Info("Fixtures skipped, companies already present",
			slog.Int("count", len(existing)),
		)
		return nil
	}

	techCorp, err := l.companies.Create(ctx, &dto.CreateCompanyRequest{
		Name:        "TechCorp Solutions",
		Description: "Leading technology company",
		Email:       "tech@techcorp.com",
		Website:     "https://techcorp.com",
	})
	if err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}

	innovaSoft, err := l.companies.Create(ctx, &dto.CreateCompanyRequest{
		Name:        "InnovaSoft Inc",
		Description: "Innovative software development",
		Email:       "info@innovasoft.com",
		Website:     "https://innovasoft.com",
	})
	if err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}

	jobs := []dto.CreateJobRequest{
		{
			Title:           "Senior Java Developer",
			Description:     "We are looking for an experienced Java developer...",
			Requirements:    "5+ years Java experience, Spring Boot, REST APIs",
			Location:        "New York, NY",
			JobType:         "FULL_TIME",
			ExperienceLevel: "SENIOR",
			Category:        "IT",
			MinSalary:       decimal.NewFromInt(80000),
			MaxSalary:       decimal.NewFromInt(120000),
			CompanyID:       &techCorp.ID,
		},
		{
			Title:           "Frontend React Developer",
			Description:     "Join our frontend team to build amazing user interfaces...",
			Requirements:    "3+ years React experience, JavaScript, CSS",
			Location:        "San Francisco, CA",
			JobType:         "FULL_TIME",
			ExperienceLevel: "MID",
			Category:        "IT",
			MinSalary:       decimal.NewFromInt(70000),
			MaxSalary:       decimal.NewFromInt(100000),
			CompanyID:       &techCorp.ID,
		},
		{
			Title:           "DevOps Engineer",
			Description:     "Manage our cloud infrastructure and deployment pipelines...",
			Requirements:    "AWS, Docker, Kubernetes experience required",
			Location:        "Remote",
			JobType:         "FULL_TIME",
			ExperienceLevel: "MID",
			Category:        "IT",
			MinSalary:       decimal.NewFromInt(90000),
			MaxSalary:       decimal.NewFromInt(130000),
			CompanyID:       &innovaSoft.ID,
		},
		{
			Title:           "Product Manager",
			Description:     "Lead product development and strategy...",
			Requirements:    "MBA preferred, 3+ years product management",
			Location:        "Chicago, IL",
			JobType:         "FULL_TIME",
			ExperienceLevel: "SENIOR",
			Category:        "MANAGEMENT",
			MinSalary:       decimal.NewFromInt(100000),
			MaxSalary:       decimal.NewFromInt(150000),
			CompanyID:       &techCorp.ID,
		},
		{
			Title:           "Data Scientist",
			Description:     "Analyze data and build machine learning models...",
			Requirements:    "Python, R, SQL, Machine Learning experience",
			Location:        "Boston, MA",
			JobType:         "FULL_TIME",
			ExperienceLevel: "MID",
			Category:        "DATA",
			MinSalary:       decimal.NewFromInt(85000),
			MaxSalary:       decimal.NewFromInt(125000),
			CompanyID:       &innovaSoft.ID,
		},
	}

	for i := range jobs {
		if _, err := l.jobs.Create(ctx, &jobs[i]); err != nil {
			return fmt.Errorf("failed to create job %q: %w", jobs[i].Title, err)
		}
	}

	l.logger.Info("Fixtures loaded",
		slog.Int("companies", 2),
		slog.Int("jobs", len(jobs)),
	)

	return nil
}
