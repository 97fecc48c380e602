package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PolicyStatus string

const (
	PolicyStatusActive    PolicyStatus = "active"
	PolicyStatusExpired   PolicyStatus = "expired"
	PolicyStatusCancelled PolicyStatus = "cancelled"
)

func (s PolicyStatus) IsValid() bool {
	switch s {
	case PolicyStatusActive, PolicyStatusExpired, PolicyStatusCancelled:
		return true
	}
	return false
}

type Policy struct {
	ID              primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	PolicyNumber    string              `json:"policy_number" bson:"policy_number"`
	VehicleID       primitive.ObjectID  `json:"vehicle_id" bson:"vehicle_id" validate:"required"`
	CoverageLevelID *primitive.ObjectID `json:"coverage_level_id,omitempty" bson:"coverage_level_id,omitempty"`
	StartDate       time.Time           `json:"start_date" bson:"start_date" validate:"required"`
	EndDate         time.Time           `json:"end_date" bson:"end_date" validate:"required"`
	PremiumAmount   float64             `json:"premium_amount" bson:"premium_amount"`
	CoverageAmount  float64             `json:"coverage_amount" bson:"coverage_amount"`
	Status          PolicyStatus        `json:"status" bson:"status"`
	CreatedAt       time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at" bson:"updated_at"`

	// Populated by eager-load reads only; never written back.
	Vehicle       *Vehicle       `json:"vehicle,omitempty" bson:"vehicle,omitempty"`
	CoverageLevel *CoverageLevel `json:"coverage_level,omitempty" bson:"coverage_level,omitempty"`
	Claims        []*Claim       `json:"claims,omitempty" bson:"claims,omitempty"`
}

// IsPastDue reports whether the policy's end date has passed relative to
// the given day (date-level comparison).
func (p *Policy) IsPastDue(today time.Time) bool {
	end := time.Date(p.EndDate.Year(), p.EndDate.Month(), p.EndDate.Day(), 0, 0, 0, 0, p.EndDate.Location())
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	return end.Before(day)
}
