package router

import (
	"net/http"

	"github.com/cuongbtq/jobportal-be/internal/api/handler"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(cors.New(corsConfig()))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		if deps.DB != nil {
			if err := deps.DB.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":  "unhealthy",
					"service": "job-portal-api",
				})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "job-portal-api",
		})
	})

	companyHandler := handler.NewCompanyHandler(deps)
	jobHandler := handler.NewJobHandler(deps)
	applicationHandler := handler.NewApplicationHandler(deps)

	api := r.Group("/api")
	{
		companies := api.Group("/companies")
		{
			companies.GET("", companyHandler.List)
			companies.GET("/:id", companyHandler.GetByID)
			companies.POST("", companyHandler.Create)
			companies.PUT("/:id", companyHandler.Update)
			companies.DELETE("/:id", companyHandler.Delete)
			companies.GET("/user/:userId", companyHandler.ListByUser)
			companies.GET("/industry/:industry", companyHandler.ListByIndustry)
			companies.GET("/city/:city", companyHandler.ListByCity)
		}

		jobs := api.Group("/jobs")
		{
			jobs.GET("", jobHandler.List)
			jobs.GET("/active", jobHandler.ListActive)
			jobs.GET("/:id", jobHandler.GetByID)
			jobs.POST("", jobHandler.Create)
			jobs.PUT("/:id", jobHandler.Update)
			jobs.PUT("/:id/status", jobHandler.UpdateStatus)
			jobs.DELETE("/:id", jobHandler.Delete)
			jobs.GET("/company/:companyId", jobHandler.ListByCompany)
			jobs.GET("/user/:userId", jobHandler.ListByUser)
			jobs.GET("/search", jobHandler.Search)
			jobs.GET("/filters/locations", jobHandler.DistinctLocations)
			jobs.GET("/filters/categories", jobHandler.DistinctCategories)
			jobs.GET("/filters/job-types", jobHandler.DistinctJobTypes)
		}

		applications := api.Group("/applications")
		{
			applications.POST("", applicationHandler.Create)
			applications.GET("/:id", applicationHandler.GetByID)
			applications.PUT("/:id", applicationHandler.Update)
			applications.PUT("/:id/status", applicationHandler.UpdateStatus)
			applications.DELETE("/:id", applicationHandler.Delete)
			applications.GET("/user/:userId", applicationHandler.ListByUser)
			applications.GET("/job/:jobId", applicationHandler.ListByJob)
			applications.GET("/company/:companyId", applicationHandler.ListByCompany)
			applications.GET("/status/:status", applicationHandler.ListByStatus)
			applications.GET("/stats/job/:jobId", applicationHandler.StatsByJob)
			applications.GET("/stats/user/:userId", applicationHandler.StatsByUser)
			applications.GET("/stats/company/:companyId", applicationHandler.StatsByCompany)
			applications.GET("/check/:jobId/:userId", applicationHandler.Check)
		}
	}

	return r
}

// corsConfig mirrors the permissive cross-origin policy of the public API:
// any origin may call it.
func corsConfig() cors.Config {
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader}
	return config
}
