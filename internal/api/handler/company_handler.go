package handler

import (
	"log/slog"
	"net/http"

	"github.com/cuongbtq/jobportal-be/internal/api/dto"
	"github.com/cuongbtq/jobportal-be/internal/api/service"
	"github.com/gin-gonic/gin"
)

// CompanyHandler handles company-related HTTP requests.
type CompanyHandler struct {
	logger    *slog.Logger
	companies *service.CompanyService
}

func NewCompanyHandler(deps *Dependencies) *CompanyHandler {
	return &CompanyHandler{
		logger:    deps.Logger,
		companies: deps.Companies,
	}
}

// List handles GET /api/companies
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companies.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// GetByID handles GET /api/companies/:id
func (h *CompanyHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	company, err := h.companies.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// Create handles POST /api/companies
func (h *CompanyHandler) Create(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.companies.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// Update handles PUT /api/companies/:id
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.companies.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// Delete handles DELETE /api/companies/:id
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.companies.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Company deleted successfully"})
}

// ListByUser handles GET /api/companies/user/:userId
func (h *CompanyHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	companies, err := h.companies.ListByUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// ListByIndustry handles GET /api/companies/industry/:industry
func (h *CompanyHandler) ListByIndustry(c *gin.Context) {
	companies, err := h.companies.ListByIndustry(c.Request.Context(), c.Param("industry"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// ListByCity handles GET /api/companies/city/:city
func (h *CompanyHandler) ListByCity(c *gin.Context) {
	companies, err := h.companies.ListByCity(c.Request.Context(), c.Param("city"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}
