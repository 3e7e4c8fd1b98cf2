package handler

import (
	"log/slog"
	"net/http"

	"github.com/cuongbtq/jobportal-be/internal/api/domain"
	"github.com/cuongbtq/jobportal-be/internal/api/dto"
	"github.com/cuongbtq/jobportal-be/internal/api/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// JobHandler handles job-posting HTTP requests.
type JobHandler struct {
	logger *slog.Logger
	jobs   *service.JobService
}

func NewJobHandler(deps *Dependencies) *JobHandler {
	return &JobHandler{
		logger: deps.Logger,
		jobs:   deps.Jobs,
	}
}

// List handles GET /api/jobs
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobs.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// ListActive handles GET /api/jobs/active
func (h *JobHandler) ListActive(c *gin.Context) {
	jobs, err := h.jobs.ListActive(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetByID handles GET /api/jobs/:id
func (h *JobHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	job, err := h.jobs.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Create handles POST /api/jobs
func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.jobs.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Update handles PUT /api/jobs/:id
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.jobs.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// UpdateStatus handles PUT /api/jobs/:id/status
// The status comes from the "status" query parameter. A "feedback"
// parameter is accepted for parity with the application status endpoint
// but has no effect on jobs.
func (h *JobHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	_ = c.Query("feedback")

	job, err := h.jobs.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Delete handles DELETE /api/jobs/:id
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.jobs.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// ListByCompany handles GET /api/jobs/company/:companyId
func (h *JobHandler) ListByCompany(c *gin.Context) {
	companyID, ok := pathID(c, "companyId")
	if !ok {
		return
	}

	jobs, err := h.jobs.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// ListByUser handles GET /api/jobs/user/:userId
func (h *JobHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	jobs, err := h.jobs.ListByUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Search handles GET /api/jobs/search
// All query parameters are optional: title, location, jobType, category,
// minSalary, maxSalary.
func (h *JobHandler) Search(c *gin.Context) {
	filter := domain.JobSearchFilter{
		Title:    c.Query("title"),
		Location: c.Query("location"),
		JobType:  c.Query("jobType"),
		Category: c.Query("category"),
	}

	if v := c.Query("minSalary"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "minSalary must be a number"})
			return
		}
		filter.MinSalary = &d
	}

	if v := c.Query("maxSalary"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "maxSalary must be a number"})
			return
		}
		filter.MaxSalary = &d
	}

	jobs, err := h.jobs.Search(c.Request.Context(), filter)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// DistinctLocations handles GET /api/jobs/filters/locations
func (h *JobHandler) DistinctLocations(c *gin.Context) {
	values, err := h.jobs.DistinctLocations(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, values)
}

// DistinctCategories handles GET /api/jobs/filters/categories
func (h *JobHandler) DistinctCategories(c *gin.Context) {
	values, err := h.jobs.DistinctCategories(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, values)
}

// DistinctJobTypes handles GET /api/jobs/filters/job-types
func (h *JobHandler) DistinctJobTypes(c *gin.Context) {
	values, err := h.jobs.DistinctJobTypes(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, values)
}
