package handlers

import (
	"fmt"

	"goinsure/internal/models"
	"goinsure/internal/services"
	"goinsure/internal/utils"
	"goinsure/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClaimHandler struct {
	claimService services.ClaimService
}

func NewClaimHandler(claimService services.ClaimService) *ClaimHandler {
	return &ClaimHandler{
		claimService: claimService,
	}
}

// FileClaim files a claim against a policy. Attachments come in as multipart
// files under the "images" field.
func (h *ClaimHandler) FileClaim(c *gin.Context) {
	var request validators.ClaimCreateRequest
	if err := c.ShouldBind(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateClaimCreate(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	policyID, err := primitive.ObjectIDFromHex(request.PolicyID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid policy ID")
		return
	}

	var attachments []*models.ClaimAttachment
	form, err := c.MultipartForm()
	if err == nil && form != nil {
		for _, fileHeader := range form.File["images"] {
			if fileHeader.Size > utils.MaxImageSize {
				utils.BadRequestResponse(c, fmt.Sprintf("Attachment %s exceeds the maximum size of %d bytes", fileHeader.Filename, utils.MaxImageSize))
				return
			}

			file, openErr := fileHeader.Open()
			if openErr != nil {
				utils.BadRequestResponse(c, "Failed to read attachment "+fileHeader.Filename)
				return
			}
			defer file.Close()

			attachments = append(attachments, &models.ClaimAttachment{
				FileName:    fileHeader.Filename,
				ContentType: fileHeader.Header.Get("Content-Type"),
				Size:        fileHeader.Size,
				Reader:      file,
			})
		}
	}

	claim, err := h.claimService.FileClaim(c.Request.Context(), policyID, request.Amount, request.Reason, attachments)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Claim filed successfully", claim)
}

// GetClaim returns a claim with its policy chain
func (h *ClaimHandler) GetClaim(c *gin.Context) {
	claimID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	claim, err := h.claimService.GetClaimByID(c.Request.Context(), claimID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Claim retrieved successfully", claim)
}

// GetMyClaims lists the authenticated customer's claims
func (h *ClaimHandler) GetMyClaims(c *gin.Context) {
	customerID, ok := currentUserID(c)
	if !ok {
		return
	}

	claims, err := h.claimService.GetClaimsByCustomerID(c.Request.Context(), customerID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Claims retrieved successfully", claims)
}

// GetClaimsByPolicy lists claims filed against a policy
func (h *ClaimHandler) GetClaimsByPolicy(c *gin.Context) {
	policyID, ok := pathObjectID(c, "policy_id")
	if !ok {
		return
	}

	claims, err := h.claimService.GetClaimsByPolicyID(c.Request.Context(), policyID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Claims retrieved successfully", claims)
}

// GetAllClaims lists every claim (admin)
func (h *ClaimHandler) GetAllClaims(c *gin.Context) {
	claims, err := h.claimService.GetAllClaims(c.Request.Context())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Claims retrieved successfully", claims)
}

// UpdateClaimStatus sets a claim's adjudication status (admin)
func (h *ClaimHandler) UpdateClaimStatus(c *gin.Context) {
	claimID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var request validators.ClaimStatusUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateClaimStatusUpdate(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	if err := h.claimService.UpdateClaimStatus(c.Request.Context(), claimID, models.ClaimStatus(request.Status)); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Claim status updated successfully", nil)
}

// ReapplyClaim resubmits a rejected claim
func (h *ClaimHandler) ReapplyClaim(c *gin.Context) {
	claimID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.claimService.ReapplyClaim(c.Request.Context(), claimID); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Claim reapplied successfully", nil)
}
