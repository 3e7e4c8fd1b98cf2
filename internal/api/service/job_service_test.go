package service

import (
	"context"
	"testing"

	"github.com/cuongbtq/jobportal-be/internal/api/domain"
	"github.com/cuongbtq/jobportal-be/internal/api/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobService() (*JobService, *fakeJobStore) {
	store := newFakeJobStore()
	return NewJobService(store, testLogger()), store
}

func backendJobRequest() *dto.CreateJobRequest {
	return &dto.CreateJobRequest{
		Title:        "Backend Engineer",
		Description:  "Build and run our APIs",
		Requirements: "Go, PostgreSQL",
		Location:     "Berlin",
		JobType:      "FULL_TIME",
		MinSalary:    decimal.NewFromInt(80000),
		MaxSalary:    decimal.NewFromInt(110000),
	}
}

func TestJobService_Create_Defaults(t *testing.T) {
	svc, _ := newJobService()
	ctx := context.Background()

	created, err := svc.Create(ctx, backendJobRequest())
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, domain.JobStatusActive, created.Status)
	assert.Equal(t, "USD", created.Currency)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestJobService_Create_InvalidStatus(t *testing.T) {
	svc, _ := newJobService()

	req := backendJobRequest()
	req.Status = "OPEN"

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidJobStatus)
}

func TestJobService_Update_OverwritesMutableFields(t *testing.T) {
	svc, _ := newJobService()
	ctx := context.Background()

	companyID := int64(3)
	req := backendJobRequest()
	req.CompanyID = &companyID

	created, err := svc.Create(ctx, req)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, &dto.UpdateJobRequest{
		Title:        "Senior Backend Engineer",
		Description:  "Own our API platform",
		Requirements: "Go, PostgreSQL, Kubernetes",
		Location:     "Remote",
		JobType:      "CONTRACT",
		Category:     "IT",
		MinSalary:    decimal.NewFromInt(95000),
		MaxSalary:    decimal.NewFromInt(130000),
		Currency:     "EUR",
		Status:       domain.JobStatusPaused,
	})
	require.NoError(t, err)

	assert.Equal(t, "Senior Backend Engineer", updated.Title)
	assert.Equal(t, "Remote", updated.Location)
	assert.Equal(t, "CONTRACT", updated.JobType)
	assert.Equal(t, "EUR", updated.Currency)
	assert.Equal(t, domain.JobStatusPaused, updated.Status)
	assert.True(t, updated.MinSalary.Equal(decimal.NewFromInt(95000)))

	// Company and posting-user references survive updates.
	require.NotNil(t, updated.CompanyID)
	assert.Equal(t, companyID, *updated.CompanyID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestJobService_Update_NotFound(t *testing.T) {
	svc, _ := newJobService()

	req := &dto.UpdateJobRequest{
		Title:        "Ghost",
		Description:  "does not exist",
		Requirements: "none",
		MinSalary:    decimal.NewFromInt(1),
		MaxSalary:    decimal.NewFromInt(2),
	}

	_, err := svc.Update(context.Background(), 42, req)
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
}

func TestJobService_UpdateStatus(t *testing.T) {
	svc, _ := newJobService()
	ctx := context.Background()

	created, err := svc.Create(ctx, backendJobRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, created.ID, domain.JobStatusClosed)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusClosed, updated.Status)

	// Only status and the updated timestamp change.
	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusClosed, got.Status)
	assert.Equal(t, created.Title, got.Title)
	assert.True(t, got.MinSalary.Equal(created.MinSalary))
	assert.Equal(t, created.CreatedAt, got.CreatedAt)
	assert.False(t, got.UpdatedAt.Before(created.UpdatedAt))

	// Any status may move to any other, including back to ACTIVE.
	_, err = svc.UpdateStatus(ctx, created.ID, domain.JobStatusActive)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, created.ID, "OPEN")
	assert.ErrorIs(t, err, domain.ErrInvalidJobStatus)

	_, err = svc.UpdateStatus(ctx, 42, domain.JobStatusClosed)
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
}

func TestJobService_ListActive(t *testing.T) {
	svc, _ := newJobService()
	ctx := context.Background()

	active, err := svc.Create(ctx, backendJobRequest())
	require.NoError(t, err)

	draft := backendJobRequest()
	draft.Title = "Unpublished role"
	draft.Status = domain.JobStatusDraft
	_, err = svc.Create(ctx, draft)
	require.NoError(t, err)

	jobs, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, active.ID, jobs[0].ID)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestJobService_Search_PassesFilterThrough(t *testing.T) {
	svc, store := newJobService()
	ctx := context.Background()

	_, err := svc.Create(ctx, backendJobRequest())
	require.NoError(t, err)

	minSalary := decimal.NewFromInt(90000)
	filter := domain.JobSearchFilter{
		Title:     "engineer",
		MinSalary: &minSalary,
	}

	_, err = svc.Search(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, filter, store.lastFilter)
}

func TestJobService_DistinctValues(t *testing.T) {
	svc, _ := newJobService()
	ctx := context.Background()

	first := backendJobRequest()
	first.Category = "IT"
	_, err := svc.Create(ctx, first)
	require.NoError(t, err)

	second := backendJobRequest()
	second.Title = "Data Scientist"
	second.Location = "Boston"
	second.Category = "DATA"
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	// Non-active jobs contribute nothing to the filter values.
	closed := backendJobRequest()
	closed.Location = "Oslo"
	closed.Category = "SALES"
	closed.Status = domain.JobStatusClosed
	_, err = svc.Create(ctx, closed)
	require.NoError(t, err)

	locations, err := svc.DistinctLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Berlin", "Boston"}, locations)

	categories, err := svc.DistinctCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"DATA", "IT"}, categories)

	jobTypes, err := svc.DistinctJobTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"FULL_TIME"}, jobTypes)
}

func TestJobService_Delete(t *testing.T) {
	svc, _ := newJobService()
	ctx := context.Background()

	created, err := svc.Create(ctx, backendJobRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrJobNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), domain.ErrJobNotFound)
}
