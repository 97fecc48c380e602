package routes

import (
	"goinsure/internal/handlers"
	"goinsure/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupCustomerRoutes sets up routes for customer account management
func SetupCustomerRoutes(r *gin.RouterGroup, customerHandler *handlers.CustomerHandler, jwtSecret string) {
	// Public registration
	r.POST("/customers/register", customerHandler.Register)

	// Customer self-service
	profile := r.Group("/customers/me")
	profile.Use(middleware.AuthRequired(jwtSecret), middleware.CustomerRequired())
	{
		profile.GET("", customerHandler.GetProfile)
		profile.PUT("", customerHandler.UpdateProfile)
	}

	// Admin customer management
	admin := r.Group("/admin/customers")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.GET("", customerHandler.ListCustomers)
		admin.GET("/search", customerHandler.SearchCustomers)
		admin.GET("/:id", customerHandler.GetCustomer)
		admin.PUT("/:id/deactivate", customerHandler.DeactivateCustomer)
		admin.PUT("/:id/activate", customerHandler.ActivateCustomer)
	}
}
