package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CoverageLevel is a named pricing tier. Its multipliers feed the premium
// calculation at policy creation time; changing a tier never reprices
// policies that were already written against it.
type CoverageLevel struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name               string             `json:"name" bson:"name" validate:"required,max=50"`
	Description        string             `json:"description" bson:"description" validate:"omitempty,max=500"`
	PremiumMultiplier  float64            `json:"premium_multiplier" bson:"premium_multiplier" validate:"required,min=0.1,max=10.0"`
	CoverageMultiplier float64            `json:"coverage_multiplier" bson:"coverage_multiplier" validate:"required,min=0.1,max=10.0"`
	CreatedAt          time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" bson:"updated_at"`
}
