package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Customer struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	IdentityUserID string             `json:"identity_user_id" bson:"identity_user_id" validate:"required"`
	Name           string             `json:"name" bson:"name" validate:"required,max=100"`
	Email          string             `json:"email" bson:"email" validate:"required,email,max=100"`
	Phone          string             `json:"phone" bson:"phone" validate:"omitempty,max=15"`
	Address        string             `json:"address" bson:"address" validate:"omitempty,max=255"`
	IsActive       bool               `json:"is_active" bson:"is_active"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
}
