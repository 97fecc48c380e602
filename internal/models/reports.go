package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report rows are pure read projections joined from the core entities.
// They carry no business rules.

type CustomerPolicyReportRow struct {
	PolicyID                  primitive.ObjectID `json:"policy_id"`
	PolicyNumber              string             `json:"policy_number"`
	VehicleRegistrationNumber string             `json:"vehicle_registration_number"`
	VehicleMake               string             `json:"vehicle_make"`
	VehicleModel              string             `json:"vehicle_model"`
	VehicleYear               int                `json:"vehicle_year"`
	VehicleCategory           VehicleCategory    `json:"vehicle_category"`
	CoverageAmount            float64            `json:"coverage_amount"`
	PremiumAmount             float64            `json:"premium_amount"`
	StartDate                 time.Time          `json:"start_date"`
	EndDate                   time.Time          `json:"end_date"`
	Status                    PolicyStatus       `json:"status"`
}

type CustomerClaimReportRow struct {
	ClaimID                   primitive.ObjectID `json:"claim_id"`
	PolicyID                  primitive.ObjectID `json:"policy_id"`
	PolicyNumber              string             `json:"policy_number"`
	VehicleRegistrationNumber string             `json:"vehicle_registration_number"`
	ClaimAmount               float64            `json:"claim_amount"`
	ClaimReason               string             `json:"claim_reason"`
	ClaimDate                 time.Time          `json:"claim_date"`
	Status                    ClaimStatus        `json:"status"`
}

type AdminPolicyReportRow struct {
	PolicyID                  primitive.ObjectID `json:"policy_id"`
	PolicyNumber              string             `json:"policy_number"`
	VehicleID                 primitive.ObjectID `json:"vehicle_id"`
	VehicleRegistrationNumber string             `json:"vehicle_registration_number"`
	VehicleMake               string             `json:"vehicle_make"`
	VehicleModel              string             `json:"vehicle_model"`
	VehicleYear               int                `json:"vehicle_year"`
	VehicleCategory           VehicleCategory    `json:"vehicle_category"`
	CustomerID                primitive.ObjectID `json:"customer_id"`
	CustomerName              string             `json:"customer_name"`
	CustomerEmail             string             `json:"customer_email"`
	CoverageAmount            float64            `json:"coverage_amount"`
	PremiumAmount             float64            `json:"premium_amount"`
	StartDate                 time.Time          `json:"start_date"`
	EndDate                   time.Time          `json:"end_date"`
	Status                    PolicyStatus       `json:"status"`
}

type AdminClaimReportRow struct {
	ClaimID                   primitive.ObjectID `json:"claim_id"`
	PolicyID                  primitive.ObjectID `json:"policy_id"`
	PolicyNumber              string             `json:"policy_number"`
	VehicleID                 primitive.ObjectID `json:"vehicle_id"`
	VehicleRegistrationNumber string             `json:"vehicle_registration_number"`
	CustomerID                primitive.ObjectID `json:"customer_id"`
	CustomerName              string             `json:"customer_name"`
	CustomerEmail             string             `json:"customer_email"`
	ClaimAmount               float64            `json:"claim_amount"`
	ClaimReason               string             `json:"claim_reason"`
	ClaimDate                 time.Time          `json:"claim_date"`
	Status                    ClaimStatus        `json:"status"`
}

type AdminVehicleReportRow struct {
	VehicleID          primitive.ObjectID `json:"vehicle_id"`
	RegistrationNumber string             `json:"registration_number"`
	Make               string             `json:"make"`
	Model              string             `json:"model"`
	YearOfManufacture  int                `json:"year_of_manufacture"`
	Category           VehicleCategory    `json:"category"`
	CustomerID         primitive.ObjectID `json:"customer_id"`
	CustomerName       string             `json:"customer_name"`
	CustomerEmail      string             `json:"customer_email"`
}

type AdminCustomerReportRow struct {
	CustomerID   primitive.ObjectID `json:"customer_id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	Address      string             `json:"address"`
	IsActive     bool               `json:"is_active"`
	VehicleCount int                `json:"vehicle_count"`
	PolicyCount  int                `json:"policy_count"`
}
