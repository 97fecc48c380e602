package handlers

import (
	"goinsure/internal/models"
	"goinsure/internal/services"
	"goinsure/internal/utils"
	"goinsure/internal/validators"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customerService services.CustomerService
}

func NewCustomerHandler(customerService services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// Register creates a customer profile linked to an identity user
func (h *CustomerHandler) Register(c *gin.Context) {
	var request validators.CustomerRegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateCustomerRegister(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	customer := &models.Customer{
		IdentityUserID: request.IdentityUserID,
		Name:           request.Name,
		Email:          request.Email,
		Phone:          request.Phone,
		Address:        request.Address,
	}

	if err := h.customerService.RegisterCustomer(c.Request.Context(), customer); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Customer registered successfully", customer)
}

// GetProfile returns the authenticated customer's profile
func (h *CustomerHandler) GetProfile(c *gin.Context) {
	customerID, ok := currentUserID(c)
	if !ok {
		return
	}

	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), customerID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Customer profile retrieved successfully", customer)
}

// UpdateProfile updates the authenticated customer's contact details
func (h *CustomerHandler) UpdateProfile(c *gin.Context) {
	customerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var request validators.CustomerUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateCustomerUpdate(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	customer := &models.Customer{
		ID:      customerID,
		Name:    request.Name,
		Email:   request.Email,
		Phone:   request.Phone,
		Address: request.Address,
	}

	if err := h.customerService.UpdateCustomerProfile(c.Request.Context(), customer); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Customer profile updated successfully", nil)
}

// GetCustomer returns a customer by ID (admin)
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customerID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), customerID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Customer retrieved successfully", customer)
}

// ListCustomers returns a paginated customer listing (admin)
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	customers, total, err := h.customerService.ListCustomers(c.Request.Context(), params)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.NewPaginationMeta(params, total),
	}

	utils.SuccessResponseWithMeta(c, "Customers retrieved successfully", map[string]interface{}{
		"customers": customers,
	}, meta)
}

// SearchCustomers searches customers by name or email (admin)
func (h *CustomerHandler) SearchCustomers(c *gin.Context) {
	customers, err := h.customerService.SearchCustomers(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Customers retrieved successfully", customers)
}

// DeactivateCustomer disables a customer account (admin)
func (h *CustomerHandler) DeactivateCustomer(c *gin.Context) {
	customerID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.customerService.DeactivateCustomer(c.Request.Context(), customerID); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Customer deactivated successfully", nil)
}

// ActivateCustomer re-enables a customer account (admin)
func (h *CustomerHandler) ActivateCustomer(c *gin.Context) {
	customerID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.customerService.ActivateCustomer(c.Request.Context(), customerID); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Customer activated successfully", nil)
}
