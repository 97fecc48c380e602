package routes

import (
	"goinsure/internal/handlers"
	"goinsure/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupReportRoutes sets up routes for reporting
func SetupReportRoutes(r *gin.RouterGroup, reportHandler *handlers.ReportHandler, jwtSecret string) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthRequired(jwtSecret), middleware.CustomerRequired())
	{
		reports.GET("/policies", reportHandler.MyPolicyReport)
		reports.GET("/claims", reportHandler.MyClaimReport)
	}

	admin := r.Group("/admin/reports")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.GET("/policies", reportHandler.PolicyReport)
		admin.GET("/claims", reportHandler.ClaimReport)
		admin.GET("/vehicles", reportHandler.VehicleReport)
		admin.GET("/customers", reportHandler.CustomerReport)
	}
}
