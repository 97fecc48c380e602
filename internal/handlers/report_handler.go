package handlers

import (
	"goinsure/internal/services"
	"goinsure/internal/utils"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// MyPolicyReport returns the authenticated customer's policy report
func (h *ReportHandler) MyPolicyReport(c *gin.Context) {
	customerID, ok := currentUserID(c)
	if !ok {
		return
	}

	rows, err := h.reportService.CustomerPolicyReport(c.Request.Context(), customerID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Policy report generated successfully", rows)
}

// MyClaimReport returns the authenticated customer's claim report
func (h *ReportHandler) MyClaimReport(c *gin.Context) {
	customerID, ok := currentUserID(c)
	if !ok {
		return
	}

	rows, err := h.reportService.CustomerClaimReport(c.Request.Context(), customerID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Claim report generated successfully", rows)
}

// PolicyReport returns the full policy book (admin)
func (h *ReportHandler) PolicyReport(c *gin.Context) {
	rows, err := h.reportService.AdminPolicyReport(c.Request.Context())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Policy report generated successfully", rows)
}

// ClaimReport returns all claims across the book (admin)
func (h *ReportHandler) ClaimReport(c *gin.Context) {
	rows, err := h.reportService.AdminClaimReport(c.Request.Context())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Claim report generated successfully", rows)
}

// VehicleReport returns all registered vehicles with owners (admin)
func (h *ReportHandler) VehicleReport(c *gin.Context) {
	rows, err := h.reportService.AdminVehicleReport(c.Request.Context())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Vehicle report generated successfully", rows)
}

// CustomerReport returns all customers with portfolio counts (admin)
func (h *ReportHandler) CustomerReport(c *gin.Context) {
	rows, err := h.reportService.AdminCustomerReport(c.Request.Context())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Customer report generated successfully", rows)
}
