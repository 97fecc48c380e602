package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleCategory string

const (
	VehicleCategoryCar   VehicleCategory = "car"
	VehicleCategoryBike  VehicleCategory = "bike"
	VehicleCategoryTruck VehicleCategory = "truck"
	VehicleCategoryJeep  VehicleCategory = "jeep"
	VehicleCategoryOther VehicleCategory = "other"
)

func (c VehicleCategory) IsValid() bool {
	switch c {
	case VehicleCategoryCar, VehicleCategoryBike, VehicleCategoryTruck, VehicleCategoryJeep, VehicleCategoryOther:
		return true
	}
	return false
}

type Vehicle struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CustomerID         primitive.ObjectID `json:"customer_id" bson:"customer_id" validate:"required"`
	RegistrationNumber string             `json:"registration_number" bson:"registration_number" validate:"required"`
	Make               string             `json:"make" bson:"make" validate:"required"`
	Model              string             `json:"model" bson:"model" validate:"required"`
	YearOfManufacture  int                `json:"year_of_manufacture" bson:"year_of_manufacture" validate:"required"`
	Category           VehicleCategory    `json:"category" bson:"category" validate:"required"`
	CreatedAt          time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" bson:"updated_at"`

	// Populated by eager-load reads only; never written back.
	Customer *Customer `json:"customer,omitempty" bson:"customer,omitempty"`
}
