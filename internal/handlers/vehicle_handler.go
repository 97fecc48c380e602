package handlers

import (
	"goinsure/internal/models"
	"goinsure/internal/services"
	"goinsure/internal/utils"
	"goinsure/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleHandler struct {
	vehicleService services.VehicleService
}

func NewVehicleHandler(vehicleService services.VehicleService) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
	}
}

// AddVehicle registers a vehicle for the authenticated customer
func (h *VehicleHandler) AddVehicle(c *gin.Context) {
	customerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var request validators.VehicleCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateVehicleCreate(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	vehicle := &models.Vehicle{
		CustomerID:         customerID,
		RegistrationNumber: request.RegistrationNumber,
		Make:               request.Make,
		Model:              request.Model,
		YearOfManufacture:  request.YearOfManufacture,
		Category:           models.VehicleCategory(request.Category),
	}

	if err := h.vehicleService.AddVehicle(c.Request.Context(), vehicle); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Vehicle registered successfully", vehicle)
}

// AddVehicleForCustomer registers a vehicle on behalf of a customer (admin)
func (h *VehicleHandler) AddVehicleForCustomer(c *gin.Context) {
	var request validators.VehicleCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateVehicleCreate(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	customerID, err := primitive.ObjectIDFromHex(request.CustomerID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid customer ID")
		return
	}

	vehicle := &models.Vehicle{
		CustomerID:         customerID,
		RegistrationNumber: request.RegistrationNumber,
		Make:               request.Make,
		Model:              request.Model,
		YearOfManufacture:  request.YearOfManufacture,
		Category:           models.VehicleCategory(request.Category),
	}

	if err := h.vehicleService.AddVehicle(c.Request.Context(), vehicle); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Vehicle registered successfully", vehicle)
}

// GetMyVehicles lists the authenticated customer's vehicles
func (h *VehicleHandler) GetMyVehicles(c *gin.Context) {
	customerID, ok := currentUserID(c)
	if !ok {
		return
	}

	vehicles, err := h.vehicleService.GetVehiclesByCustomerID(c.Request.Context(), customerID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Vehicles retrieved successfully", vehicles)
}

// GetVehicle returns a vehicle by ID
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	vehicleID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.GetVehicleByID(c.Request.Context(), vehicleID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Vehicle retrieved successfully", vehicle)
}

// UpdateVehicle updates the authenticated customer's own vehicle
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	customerID, ok := currentUserID(c)
	if !ok {
		return
	}
	vehicleID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var request validators.VehicleUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateVehicleUpdate(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	vehicle := &models.Vehicle{
		ID:                 vehicleID,
		RegistrationNumber: request.RegistrationNumber,
		Make:               request.Make,
		Model:              request.Model,
		YearOfManufacture:  request.YearOfManufacture,
		Category:           models.VehicleCategory(request.Category),
	}

	if err := h.vehicleService.UpdateVehicle(c.Request.Context(), customerID, vehicle); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Vehicle updated successfully", nil)
}

// UpdateVehicleByAdmin updates any vehicle (admin)
func (h *VehicleHandler) UpdateVehicleByAdmin(c *gin.Context) {
	vehicleID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var request validators.VehicleUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateVehicleUpdate(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	vehicle := &models.Vehicle{
		ID:                 vehicleID,
		RegistrationNumber: request.RegistrationNumber,
		Make:               request.Make,
		Model:              request.Model,
		YearOfManufacture:  request.YearOfManufacture,
		Category:           models.VehicleCategory(request.Category),
	}

	if err := h.vehicleService.UpdateVehicleByAdmin(c.Request.Context(), vehicle); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Vehicle updated successfully", nil)
}

// DeleteVehicle removes a vehicle with no policies attached (admin)
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	vehicleID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), vehicleID); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Vehicle deleted successfully", nil)
}

// ListVehicles returns a paginated vehicle listing (admin)
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	vehicles, total, err := h.vehicleService.ListVehicles(c.Request.Context(), params)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.NewPaginationMeta(params, total),
	}

	utils.SuccessResponseWithMeta(c, "Vehicles retrieved successfully", map[string]interface{}{
		"vehicles": vehicles,
	}, meta)
}
