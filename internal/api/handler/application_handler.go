package handler

import (
	"log/slog"
	"net/http"

	"github.com/cuongbtq/jobportal-be/internal/api/dto"
	"github.com/cuongbtq/jobportal-be/internal/api/service"
	"github.com/gin-gonic/gin"
)

// ApplicationHandler handles job-application HTTP requests.
type ApplicationHandler struct {
	logger       *slog.Logger
	applications *service.ApplicationService
}

func NewApplicationHandler(deps *Dependencies) *ApplicationHandler {
	return &ApplicationHandler{
		logger:       deps.Logger,
		applications: deps.Applications,
	}
}

// Create handles POST /api/applications
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.applications.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// Update handles PUT /api/applications/:id
func (h *ApplicationHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.applications.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// UpdateStatus handles PUT /api/applications/:id/status
// Query parameters: status (required), feedback (optional).
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	app, err := h.applications.UpdateStatus(c.Request.Context(), id, status, c.Query("feedback"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// GetByID handles GET /api/applications/:id
func (h *ApplicationHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	app, err := h.applications.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// ListByUser handles GET /api/applications/user/:userId
func (h *ApplicationHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	apps, err := h.applications.ListByUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// ListByJob handles GET /api/applications/job/:jobId
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		return
	}

	apps, err := h.applications.ListByJob(c.Request.Context(), jobID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// ListByCompany handles GET /api/applications/company/:companyId
func (h *ApplicationHandler) ListByCompany(c *gin.Context) {
	companyID, ok := pathID(c, "companyId")
	if !ok {
		return
	}

	apps, err := h.applications.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// ListByStatus handles GET /api/applications/status/:status
func (h *ApplicationHandler) ListByStatus(c *gin.Context) {
	apps, err := h.applications.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// StatsByJob handles GET /api/applications/stats/job/:jobId
func (h *ApplicationHandler) StatsByJob(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		return
	}

	count, err := h.applications.CountByJob(c.Request.Context(), jobID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applicationCount": count})
}

// StatsByUser handles GET /api/applications/stats/user/:userId
func (h *ApplicationHandler) StatsByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	count, err := h.applications.CountByUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applicationCount": count})
}

// StatsByCompany handles GET /api/applications/stats/company/:companyId
func (h *ApplicationHandler) StatsByCompany(c *gin.Context) {
	companyID, ok := pathID(c, "companyId")
	if !ok {
		return
	}

	count, err := h.applications.CountByCompany(c.Request.Context(), companyID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applicationCount": count})
}

// Check handles GET /api/applications/check/:jobId/:userId
func (h *ApplicationHandler) Check(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	hasApplied, err := h.applications.HasApplied(c.Request.Context(), jobID, userID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hasApplied": hasApplied})
}

// Delete handles DELETE /api/applications/:id
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.applications.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully"})
}
