package routes

import (
	"goinsure/internal/handlers"
	"goinsure/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupVehicleRoutes sets up routes for vehicle registration and management
func SetupVehicleRoutes(r *gin.RouterGroup, vehicleHandler *handlers.VehicleHandler, jwtSecret string) {
	vehicles := r.Group("/vehicles")
	vehicles.Use(middleware.AuthRequired(jwtSecret), middleware.CustomerRequired())
	{
		vehicles.POST("", vehicleHandler.AddVehicle)
		vehicles.GET("", vehicleHandler.GetMyVehicles)
		vehicles.GET("/:id", vehicleHandler.GetVehicle)
		vehicles.PUT("/:id", vehicleHandler.UpdateVehicle)
	}

	admin := r.Group("/admin/vehicles")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.GET("", vehicleHandler.ListVehicles)
		admin.POST("", vehicleHandler.AddVehicleForCustomer)
		admin.GET("/:id", vehicleHandler.GetVehicle)
		admin.PUT("/:id", vehicleHandler.UpdateVehicleByAdmin)
		admin.DELETE("/:id", vehicleHandler.DeleteVehicle)
	}
}
