package validators

type CoverageLevelCreateRequest struct {
	Name               string  `json:"name" validate:"required,min=1,max=50"`
	Description        string  `json:"description" validate:"omitempty,max=500"`
	PremiumMultiplier  float64 `json:"premium_multiplier" validate:"required,multiplier_range"`
	CoverageMultiplier float64 `json:"coverage_multiplier" validate:"required,multiplier_range"`
}

type CoverageLevelUpdateRequest struct {
	Name               string  `json:"name" validate:"required,min=1,max=50"`
	Description        string  `json:"description" validate:"omitempty,max=500"`
	PremiumMultiplier  float64 `json:"premium_multiplier" validate:"required,multiplier_range"`
	CoverageMultiplier float64 `json:"coverage_multiplier" validate:"required,multiplier_range"`
}

func ValidateCoverageLevelCreate(req *CoverageLevelCreateRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateCoverageLevelUpdate(req *CoverageLevelUpdateRequest) ValidationErrors {
	return ValidateStruct(req)
}
