package validators

import (
	"time"
)

type VehicleCreateRequest struct {
	CustomerID         string `json:"customer_id" validate:"omitempty,object_id"`
	RegistrationNumber string `json:"registration_number" validate:"required,min=2,max=20"`
	Make               string `json:"make" validate:"required,min=1,max=50"`
	Model              string `json:"model" validate:"required,min=1,max=50"`
	YearOfManufacture  int    `json:"year_of_manufacture" validate:"required,min=1900"`
	Category           string `json:"category" validate:"required,vehicle_category"`
}

type VehicleUpdateRequest struct {
	RegistrationNumber string `json:"registration_number" validate:"omitempty,min=2,max=20"`
	Make               string `json:"make" validate:"omitempty,min=1,max=50"`
	Model              string `json:"model" validate:"omitempty,min=1,max=50"`
	YearOfManufacture  int    `json:"year_of_manufacture" validate:"omitempty,min=1900"`
	Category           string `json:"category" validate:"omitempty,vehicle_category"`
}

func ValidateVehicleCreate(req *VehicleCreateRequest) ValidationErrors {
	errors := ValidateStruct(req)

	if req.YearOfManufacture > time.Now().Year() {
		errors = append(errors, ValidationError{
			Field:   "year_of_manufacture",
			Message: "Year of manufacture cannot be in the future",
		})
	}

	return errors
}

func ValidateVehicleUpdate(req *VehicleUpdateRequest) ValidationErrors {
	errors := ValidateStruct(req)

	if req.YearOfManufacture != 0 && req.YearOfManufacture > time.Now().Year() {
		errors = append(errors, ValidationError{
			Field:   "year_of_manufacture",
			Message: "Year of manufacture cannot be in the future",
		})
	}

	return errors
}
