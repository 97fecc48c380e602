package routes

import (
	"goinsure/internal/handlers"
	"goinsure/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupClaimRoutes sets up routes for the claim workflow
func SetupClaimRoutes(r *gin.RouterGroup, claimHandler *handlers.ClaimHandler, jwtSecret string) {
	claims := r.Group("/claims")
	claims.Use(middleware.AuthRequired(jwtSecret), middleware.CustomerRequired())
	{
		claims.POST("", claimHandler.FileClaim)
		claims.GET("", claimHandler.GetMyClaims)
		claims.GET("/:id", claimHandler.GetClaim)
		claims.PUT("/:id/reapply", claimHandler.ReapplyClaim)
		claims.GET("/policies/:policy_id", claimHandler.GetClaimsByPolicy)
	}

	admin := r.Group("/admin/claims")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.GET("", claimHandler.GetAllClaims)
		admin.GET("/:id", claimHandler.GetClaim)
		admin.PUT("/:id/status", claimHandler.UpdateClaimStatus)
	}
}
