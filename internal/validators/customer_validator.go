package validators

type CustomerRegisterRequest struct {
	IdentityUserID string `json:"identity_user_id" validate:"required"`
	Name           string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required,email,max=100"`
	Phone   string `json:"phone" validate:"omitempty,max=15"`
	Address string `json:"address" validate:"omitempty,max=255"`
}

type CustomerUpdateRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required,email,max=100"`
	Phone   string `json:"phone" validate:"omitempty,max=15"`
	Address string `json:"address" validate:"omitempty,max=255"`
}

func ValidateCustomerRegister(req *CustomerRegisterRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateCustomerUpdate(req *CustomerUpdateRequest) ValidationErrors {
	return ValidateStruct(req)
}
