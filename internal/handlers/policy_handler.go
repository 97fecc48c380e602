package handlers

import (
	"goinsure/internal/models"
	"goinsure/internal/services"
	"goinsure/internal/utils"
	"goinsure/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PolicyHandler struct {
	policyService services.PolicyService
}

func NewPolicyHandler(policyService services.PolicyService) *PolicyHandler {
	return &PolicyHandler{
		policyService: policyService,
	}
}

// CreatePolicy writes a new policy for a vehicle at a coverage level
func (h *PolicyHandler) CreatePolicy(c *gin.Context) {
	var request validators.PolicyCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidatePolicyCreate(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	vehicleID, err := primitive.ObjectIDFromHex(request.VehicleID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return
	}
	coverageLevelID, err := primitive.ObjectIDFromHex(request.CoverageLevelID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid coverage level ID")
		return
	}

	policy, err := h.policyService.CreatePolicy(c.Request.Context(), vehicleID, coverageLevelID, request.StartDate, request.EndDate)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Policy created successfully", policy)
}

// GetPolicy returns a policy with its vehicle and coverage level
func (h *PolicyHandler) GetPolicy(c *gin.Context) {
	policyID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	policy, err := h.policyService.GetPolicyWithVehicleAndCustomer(c.Request.Context(), policyID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Policy retrieved successfully", policy)
}

// GetMyPolicies lists the authenticated customer's policies with claims
func (h *PolicyHandler) GetMyPolicies(c *gin.Context) {
	customerID, ok := currentUserID(c)
	if !ok {
		return
	}

	policies, err := h.policyService.GetPoliciesByCustomerIDWithClaims(c.Request.Context(), customerID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Policies retrieved successfully", policies)
}

// GetPoliciesByVehicle lists policies written against a vehicle
func (h *PolicyHandler) GetPoliciesByVehicle(c *gin.Context) {
	vehicleID, ok := pathObjectID(c, "vehicle_id")
	if !ok {
		return
	}

	policies, err := h.policyService.GetPoliciesByVehicleID(c.Request.Context(), vehicleID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Policies retrieved successfully", policies)
}

// GetAllPolicies lists every policy (admin)
func (h *PolicyHandler) GetAllPolicies(c *gin.Context) {
	policies, err := h.policyService.GetAllPolicies(c.Request.Context())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Policies retrieved successfully", policies)
}

// UpdatePolicy applies administrative changes to a policy (admin)
func (h *PolicyHandler) UpdatePolicy(c *gin.Context) {
	policyID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var request validators.PolicyUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidatePolicyUpdate(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	existing, err := h.policyService.GetPolicyByID(c.Request.Context(), policyID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	updated := &models.Policy{
		ID:             policyID,
		StartDate:      existing.StartDate,
		EndDate:        existing.EndDate,
		PremiumAmount:  existing.PremiumAmount,
		CoverageAmount: existing.CoverageAmount,
		Status:         existing.Status,
	}
	if request.StartDate != nil {
		updated.StartDate = *request.StartDate
	}
	if request.EndDate != nil {
		updated.EndDate = *request.EndDate
	}
	if request.PremiumAmount != nil {
		updated.PremiumAmount = *request.PremiumAmount
	}
	if request.CoverageAmount != nil {
		updated.CoverageAmount = *request.CoverageAmount
	}
	if request.Status != "" {
		updated.Status = models.PolicyStatus(request.Status)
	}

	policy, err := h.policyService.UpdatePolicy(c.Request.Context(), updated)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Policy updated successfully", policy)
}

// RenewPolicy restarts a policy term from today
func (h *PolicyHandler) RenewPolicy(c *gin.Context) {
	policyID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var request validators.PolicyRenewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidatePolicyRenew(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	policy, err := h.policyService.RenewPolicy(c.Request.Context(), policyID, request.EndDate, request.PremiumAmount, request.CoverageAmount)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Policy renewed successfully", policy)
}

// DeactivatePolicy expires a policy immediately
func (h *PolicyHandler) DeactivatePolicy(c *gin.Context) {
	policyID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.policyService.DeactivatePolicy(c.Request.Context(), policyID); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Policy deactivated successfully", nil)
}

// DeletePolicy removes a policy with no claims attached (admin)
func (h *PolicyHandler) DeletePolicy(c *gin.Context) {
	policyID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.policyService.DeletePolicy(c.Request.Context(), policyID); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Policy deleted successfully", nil)
}
