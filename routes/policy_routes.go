package routes

import (
	"goinsure/internal/handlers"
	"goinsure/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupPolicyRoutes sets up routes for the policy lifecycle
func SetupPolicyRoutes(r *gin.RouterGroup, policyHandler *handlers.PolicyHandler, jwtSecret string) {
	policies := r.Group("/policies")
	policies.Use(middleware.AuthRequired(jwtSecret), middleware.CustomerRequired())
	{
		policies.POST("", policyHandler.CreatePolicy)
		policies.GET("", policyHandler.GetMyPolicies)
		policies.GET("/:id", policyHandler.GetPolicy)
		policies.PUT("/:id/renew", policyHandler.RenewPolicy)
		policies.PUT("/:id/deactivate", policyHandler.DeactivatePolicy)
		policies.GET("/vehicles/:vehicle_id", policyHandler.GetPoliciesByVehicle)
	}

	admin := r.Group("/admin/policies")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.GET("", policyHandler.GetAllPolicies)
		admin.GET("/:id", policyHandler.GetPolicy)
		admin.PUT("/:id", policyHandler.UpdatePolicy)
		admin.PUT("/:id/renew", policyHandler.RenewPolicy)
		admin.PUT("/:id/deactivate", policyHandler.DeactivatePolicy)
		admin.DELETE("/:id", policyHandler.DeletePolicy)
	}
}
