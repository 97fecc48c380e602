package handlers

import (
	"goinsure/internal/models"
	"goinsure/internal/services"
	"goinsure/internal/utils"
	"goinsure/internal/validators"

	"github.com/gin-gonic/gin"
)

type CoverageLevelHandler struct {
	coverageLevelService services.CoverageLevelService
}

func NewCoverageLevelHandler(coverageLevelService services.CoverageLevelService) *CoverageLevelHandler {
	return &CoverageLevelHandler{
		coverageLevelService: coverageLevelService,
	}
}

// CreateCoverageLevel adds a pricing tier (admin)
func (h *CoverageLevelHandler) CreateCoverageLevel(c *gin.Context) {
	var request validators.CoverageLevelCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateCoverageLevelCreate(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	level := &models.CoverageLevel{
		Name:               request.Name,
		Description:        request.Description,
		PremiumMultiplier:  request.PremiumMultiplier,
		CoverageMultiplier: request.CoverageMultiplier,
	}

	if err := h.coverageLevelService.CreateCoverageLevel(c.Request.Context(), level); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Coverage level created successfully", level)
}

// GetCoverageLevel returns a pricing tier by ID
func (h *CoverageLevelHandler) GetCoverageLevel(c *gin.Context) {
	levelID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	level, err := h.coverageLevelService.GetCoverageLevelByID(c.Request.Context(), levelID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Coverage level retrieved successfully", level)
}

// GetAllCoverageLevels lists all pricing tiers
func (h *CoverageLevelHandler) GetAllCoverageLevels(c *gin.Context) {
	levels, err := h.coverageLevelService.GetAllCoverageLevels(c.Request.Context())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Coverage levels retrieved successfully", levels)
}

// UpdateCoverageLevel changes a pricing tier (admin)
func (h *CoverageLevelHandler) UpdateCoverageLevel(c *gin.Context) {
	levelID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var request validators.CoverageLevelUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}
	if errs := validators.ValidateCoverageLevelUpdate(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, validationDetails(errs))
		return
	}

	level := &models.CoverageLevel{
		ID:                 levelID,
		Name:               request.Name,
		Description:        request.Description,
		PremiumMultiplier:  request.PremiumMultiplier,
		CoverageMultiplier: request.CoverageMultiplier,
	}

	if err := h.coverageLevelService.UpdateCoverageLevel(c.Request.Context(), level); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Coverage level updated successfully", level)
}

// DeleteCoverageLevel removes a pricing tier (admin)
func (h *CoverageLevelHandler) DeleteCoverageLevel(c *gin.Context) {
	levelID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.coverageLevelService.DeleteCoverageLevel(c.Request.Context(), levelID); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Coverage level deleted successfully", nil)
}
