package service

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/cuongbtq/jobportal-be/internal/api/domain"
	"github.com/cuongbtq/jobportal-be/internal/api/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeCompanyStore is an in-memory CompanyStore. Lookups return copies so
// callers cannot mutate stored records without going through Update.
type fakeCompanyStore struct {
	companies map[int64]model.Company
	nextID    int64
}

func newFakeCompanyStore() *fakeCompanyStore {
	return &fakeCompanyStore{
		companies: map[int64]model.Company{},
		nextID:    1,
	}
}

func (f *fakeCompanyStore) Insert(_ context.Context, company *model.Company) error {
	company.ID = f.nextID
	f.nextID++
	f.companies[company.ID] = *company
	return nil
}

func (f *fakeCompanyStore) GetByID(_ context.Context, id int64) (*model.Company, error) {
	company, ok := f.companies[id]
	if !ok {
		return nil, domain.ErrCompanyNotFound
	}
	return &company, nil
}

func (f *fakeCompanyStore) List(_ context.Context) ([]model.Company, error) {
	return f.filter(func(model.Company) bool { return true }), nil
}

func (f *fakeCompanyStore) ListByUser(_ context.Context, userID int64) ([]model.Company, error) {
	return f.filter(func(c model.Company) bool { return c.UserID != nil && *c.UserID == userID }), nil
}

func (f *fakeCompanyStore) ListByIndustry(_ context.Context, industry string) ([]model.Company, error) {
	return f.filter(func(c model.Company) bool { return c.Industry == industry }), nil
}

func (f *fakeCompanyStore) ListByCity(_ context.Context, city string) ([]model.Company, error) {
	return f.filter(func(c model.Company) bool { return c.City == city }), nil
}

func (f *fakeCompanyStore) Update(_ context.Context, company *model.Company) error {
	if _, ok := f.companies[company.ID]; !ok {
		return domain.ErrCompanyNotFound
	}
	f.companies[company.ID] = *company
	return nil
}

func (f *fakeCompanyStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.companies[id]; !ok {
		return domain.ErrCompanyNotFound
	}
	delete(f.companies, id)
	return nil
}

func (f *fakeCompanyStore) filter(keep func(model.Company) bool) []model.Company {
	result := []model.Company{}
	for _, c := range f.companies {
		if keep(c) {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// fakeJobStore is an in-memory JobStore.
type fakeJobStore struct {
	jobs       map[int64]model.Job
	nextID     int64
	lastFilter domain.JobSearchFilter
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{
		jobs:   map[int64]model.Job{},
		nextID: 1,
	}
}

func (f *fakeJobStore) Insert(_ context.Context, job *model.Job) error {
	job.ID = f.nextID
	f.nextID++
	f.jobs[job.ID] = *job
	return nil
}

func (f *fakeJobStore) GetByID(_ context.Context, id int64) (*model.Job, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	return &job, nil
}

func (f *fakeJobStore) List(_ context.Context) ([]model.Job, error) {
	return f.filter(func(model.Job) bool { return true }), nil
}

func (f *fakeJobStore) ListByStatus(_ context.Context, status string) ([]model.Job, error) {
	return f.filter(func(j model.Job) bool { return j.Status == status }), nil
}

func (f *fakeJobStore) ListByCompany(_ context.Context, companyID int64) ([]model.Job, error) {
	return f.filter(func(j model.Job) bool { return j.CompanyID != nil && *j.CompanyID == companyID }), nil
}

func (f *fakeJobStore) ListByPostedBy(_ context.Context, userID int64) ([]model.Job, error) {
	return f.filter(func(j model.Job) bool { return j.PostedByID != nil && *j.PostedByID == userID }), nil
}

func (f *fakeJobStore) Search(_ context.Context, filter domain.JobSearchFilter) ([]model.Job, error) {
	f.lastFilter = filter
	return f.filter(func(j model.Job) bool { return j.Status == domain.JobStatusActive }), nil
}

func (f *fakeJobStore) DistinctLocations(_ context.Context) ([]string, error) {
	return f.distinctActive(func(j model.Job) string { return j.Location }), nil
}

func (f *fakeJobStore) DistinctCategories(_ context.Context) ([]string, error) {
	return f.distinctActive(func(j model.Job) string { return j.Category }), nil
}

func (f *fakeJobStore) DistinctJobTypes(_ context.Context) ([]string, error) {
	return f.distinctActive(func(j model.Job) string { return j.JobType }), nil
}

func (f *fakeJobStore) Update(_ context.Context, job *model.Job) error {
	if _, ok := f.jobs[job.ID]; !ok {
		return domain.ErrJobNotFound
	}
	f.jobs[job.ID] = *job
	return nil
}

func (f *fakeJobStore) UpdateStatus(_ context.Context, id int64, status string, updatedAt time.Time) error {
	job, ok := f.jobs[id]
	if !ok {
		return domain.ErrJobNotFound
	}
	job.Status = status
	job.UpdatedAt = updatedAt
	f.jobs[id] = job
	return nil
}

func (f *fakeJobStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.jobs[id]; !ok {
		return domain.ErrJobNotFound
	}
	delete(f.jobs, id)
	return nil
}

func (f *fakeJobStore) filter(keep func(model.Job) bool) []model.Job {
	result := []model.Job{}
	for _, j := range f.jobs {
		if keep(j) {
			result = append(result, j)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (f *fakeJobStore) distinctActive(value func(model.Job) string) []string {
	seen := map[string]bool{}
	values := []string{}
	for _, j := range f.jobs {
		v := value(j)
		if j.Status != domain.JobStatusActive || v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// fakeApplicationStore is an in-memory ApplicationStore. companyByJob maps
// job ids to company ids for the join-based lookups.
type fakeApplicationStore struct {
	applications map[int64]model.JobApplication
	companyByJob map[int64]int64
	nextID       int64
}

func newFakeApplicationStore() *fakeApplicationStore {
	return &fakeApplicationStore{
		applications: map[int64]model.JobApplication{},
		companyByJob: map[int64]int64{},
		nextID:       1,
	}
}

func (f *fakeApplicationStore) Insert(_ context.Context, app *model.JobApplication) error {
	for _, existing := range f.applications {
		if existing.JobID == app.JobID && existing.UserID == app.UserID {
			return domain.ErrDuplicateApplication
		}
	}
	app.ID = f.nextID
	f.nextID++
	f.applications[app.ID] = *app
	return nil
}

func (f *fakeApplicationStore) GetByID(_ context.Context, id int64) (*model.JobApplication, error) {
	app, ok := f.applications[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	return &app, nil
}

func (f *fakeApplicationStore) FindByJobAndUser(_ context.Context, jobID, userID int64) (*model.JobApplication, error) {
	for _, app := range f.applications {
		if app.JobID == jobID && app.UserID == userID {
			found := app
			return &found, nil
		}
	}
	return nil, domain.ErrApplicationNotFound
}

func (f *fakeApplicationStore) ListByUser(_ context.Context, userID int64) ([]model.JobApplication, error) {
	return f.filter(func(a model.JobApplication) bool { return a.UserID == userID }), nil
}

func (f *fakeApplicationStore) ListByJob(_ context.Context, jobID int64) ([]model.JobApplication, error) {
	return f.filter(func(a model.JobApplication) bool { return a.JobID == jobID }), nil
}

func (f *fakeApplicationStore) ListByCompany(_ context.Context, companyID int64) ([]model.JobApplication, error) {
	return f.filter(func(a model.JobApplication) bool { return f.companyByJob[a.JobID] == companyID }), nil
}

func (f *fakeApplicationStore) ListByStatus(_ context.Context, status string) ([]model.JobApplication, error) {
	return f.filter(func(a model.JobApplication) bool { return a.Status == status }), nil
}

func (f *fakeApplicationStore) CountByJob(ctx context.Context, jobID int64) (int64, error) {
	apps, _ := f.ListByJob(ctx, jobID)
	return int64(len(apps)), nil
}

func (f *fakeApplicationStore) CountByUser(ctx context.Context, userID int64) (int64, error) {
	apps, _ := f.ListByUser(ctx, userID)
	return int64(len(apps)), nil
}

func (f *fakeApplicationStore) CountByCompany(ctx context.Context, companyID int64) (int64, error) {
	apps, _ := f.ListByCompany(ctx, companyID)
	return int64(len(apps)), nil
}

func (f *fakeApplicationStore) Update(_ context.Context, app *model.JobApplication) error {
	existing, ok := f.applications[app.ID]
	if !ok {
		return domain.ErrApplicationNotFound
	}
	existing.CoverLetter = app.CoverLetter
	existing.ResumeURL = app.ResumeURL
	existing.AdditionalDocuments = app.AdditionalDocuments
	existing.UpdatedAt = app.UpdatedAt
	f.applications[app.ID] = existing
	return nil
}

func (f *fakeApplicationStore) UpdateStatus(_ context.Context, id int64, status, feedback string, updatedAt time.Time) error {
	app, ok := f.applications[id]
	if !ok {
		return domain.ErrApplicationNotFound
	}
	app.Status = status
	app.Feedback = feedback
	app.UpdatedAt = updatedAt
	f.applications[id] = app
	return nil
}

func (f *fakeApplicationStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.applications[id]; !ok {
		return domain.ErrApplicationNotFound
	}
	delete(f.applications, id)
	return nil
}

func (f *fakeApplicationStore) filter(keep func(model.JobApplication) bool) []model.JobApplication {
	result := []model.JobApplication{}
	for _, a := range f.applications {
		if keep(a) {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
