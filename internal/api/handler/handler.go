package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cuongbtq/jobportal-be/internal/api/domain"
	"github.com/cuongbtq/jobportal-be/internal/api/service"
	"github.com/cuongbtq/jobportal-be/shared/postgresql"
	"github.com/gin-gonic/gin"
)

// Dependencies holds everything the handlers need. DB is only used by the
// health endpoint and may be nil in tests.
type Dependencies struct {
	Logger       *slog.Logger
	DB           *postgresql.Client
	Companies    *service.CompanyService
	Jobs         *service.JobService
	Applications *service.ApplicationService
}

// pathID parses the named int64 path parameter, writing a 400 response and
// returning false when it is not a number.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": name + " must be a number",
		})
		return 0, false
	}
	return id, true
}

// writeError translates a service error into the client-facing
// {"error": ...} envelope. Domain errors keep their message; anything else
// is a persistence failure that must not leak internals.
func writeError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrCompanyNotFound),
		errors.Is(err, domain.ErrJobNotFound),
		errors.Is(err, domain.ErrApplicationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrDuplicateApplication):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidJobStatus),
		errors.Is(err, domain.ErrInvalidApplicationStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
