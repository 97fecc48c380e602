package models

import (
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClaimStatus string

const (
	ClaimStatusSubmitted ClaimStatus = "submitted"
	ClaimStatusApproved  ClaimStatus = "approved"
	ClaimStatusRejected  ClaimStatus = "rejected"
)

func (s ClaimStatus) IsValid() bool {
	switch s {
	case ClaimStatusSubmitted, ClaimStatusApproved, ClaimStatusRejected:
		return true
	}
	return false
}

type Claim struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PolicyID  primitive.ObjectID `json:"policy_id" bson:"policy_id" validate:"required"`
	Amount    float64            `json:"amount" bson:"amount"`
	Reason    string             `json:"reason" bson:"reason" validate:"required,max=500"`
	ClaimDate time.Time          `json:"claim_date" bson:"claim_date"`
	Status    ClaimStatus        `json:"status" bson:"status"`
	// ImagePaths holds the comma-delimited blob-store references of the
	// attachments uploaded when the claim was filed.
	ImagePaths string    `json:"image_paths,omitempty" bson:"image_paths,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`

	// Populated by eager-load reads only; never written back.
	Policy *Policy `json:"policy,omitempty" bson:"policy,omitempty"`
}

// ClaimAttachment is an incoming attachment stream handed to the blob store
// during claim filing.
type ClaimAttachment struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}
