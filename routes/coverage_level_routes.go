package routes

import (
	"goinsure/internal/handlers"
	"goinsure/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupCoverageLevelRoutes sets up routes for pricing tier management
func SetupCoverageLevelRoutes(r *gin.RouterGroup, coverageLevelHandler *handlers.CoverageLevelHandler, jwtSecret string) {
	// Tiers are readable by any authenticated user
	levels := r.Group("/coverage-levels")
	levels.Use(middleware.AuthRequired(jwtSecret))
	{
		levels.GET("", coverageLevelHandler.GetAllCoverageLevels)
		levels.GET("/:id", coverageLevelHandler.GetCoverageLevel)
	}

	admin := r.Group("/admin/coverage-levels")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.POST("", coverageLevelHandler.CreateCoverageLevel)
		admin.PUT("/:id", coverageLevelHandler.UpdateCoverageLevel)
		admin.DELETE("/:id", coverageLevelHandler.DeleteCoverageLevel)
	}
}
