package validators

import (
	"time"
)

type PolicyCreateRequest struct {
	VehicleID       string    `json:"vehicle_id" validate:"required,object_id"`
	CoverageLevelID string    `json:"coverage_level_id" validate:"required,object_id"`
	StartDate       time.Time `json:"start_date" validate:"required"`
	EndDate         time.Time `json:"end_date" validate:"required"`
}

type PolicyUpdateRequest struct {
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	PremiumAmount  *float64   `json:"premium_amount" validate:"omitempty,gt=0"`
	CoverageAmount *float64   `json:"coverage_amount" validate:"omitempty,gt=0"`
	Status         string     `json:"status" validate:"omitempty,policy_status"`
}

type PolicyRenewRequest struct {
	EndDate        time.Time `json:"end_date" validate:"required"`
	PremiumAmount  float64   `json:"premium_amount" validate:"required,gt=0"`
	CoverageAmount float64   `json:"coverage_amount" validate:"required,gt=0"`
}

func ValidatePolicyCreate(req *PolicyCreateRequest) ValidationErrors {
	errors := ValidateStruct(req)

	if !req.StartDate.IsZero() && !req.EndDate.IsZero() && !req.EndDate.After(req.StartDate) {
		errors = append(errors, ValidationError{
			Field:   "end_date",
			Message: "End date must be after start date",
		})
	}

	return errors
}

func ValidatePolicyUpdate(req *PolicyUpdateRequest) ValidationErrors {
	errors := ValidateStruct(req)

	if req.StartDate != nil && req.EndDate != nil && !req.EndDate.After(*req.StartDate) {
		errors = append(errors, ValidationError{
			Field:   "end_date",
			Message: "End date must be after start date",
		})
	}

	return errors
}

func ValidatePolicyRenew(req *PolicyRenewRequest) ValidationErrors {
	errors := ValidateStruct(req)

	if !req.EndDate.IsZero() && !req.EndDate.After(time.Now()) {
		errors = append(errors, ValidationError{
			Field:   "end_date",
			Message: "Renewal end date must be in the future",
		})
	}

	return errors
}
