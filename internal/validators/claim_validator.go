package validators

type ClaimCreateRequest struct {
	PolicyID string  `json:"policy_id" form:"policy_id" validate:"required,object_id"`
	Amount   float64 `json:"amount" form:"amount" validate:"required,gt=0"`
	Reason   string  `json:"reason" form:"reason" validate:"required,min=1,max=500"`
}

type ClaimStatusUpdateRequest struct {
	Status string `json:"status" validate:"required,claim_status"`
}

func ValidateClaimCreate(req *ClaimCreateRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateClaimStatusUpdate(req *ClaimStatusUpdateRequest) ValidationErrors {
	return ValidateStruct(req)
}
