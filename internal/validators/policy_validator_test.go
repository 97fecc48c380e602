package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestValidatePolicyCreate(t *testing.T) {
	validID := primitive.NewObjectID().Hex()

	valid := &PolicyCreateRequest{
		VehicleID:       validID,
		CoverageLevelID: validID,
		StartDate:       time.Now(),
		EndDate:         time.Now().AddDate(1, 0, 0),
	}
	assert.Empty(t, ValidatePolicyCreate(valid))

	missing := &PolicyCreateRequest{}
	errs := ValidatePolicyCreate(missing)
	assert.NotEmpty(t, errs)

	badID := &PolicyCreateRequest{
		VehicleID:       "not-an-object-id",
		CoverageLevelID: validID,
		StartDate:       time.Now(),
		EndDate:         time.Now().AddDate(1, 0, 0),
	}
	errs = ValidatePolicyCreate(badID)
	assert.NotEmpty(t, errs)
	assert.Equal(t, "object_id", errs[0].Tag)

	inverted := &PolicyCreateRequest{
		VehicleID:       validID,
		CoverageLevelID: validID,
		StartDate:       time.Now().AddDate(1, 0, 0),
		EndDate:         time.Now(),
	}
	errs = ValidatePolicyCreate(inverted)
	assert.NotEmpty(t, errs)
	assert.Equal(t, "end_date", errs[len(errs)-1].Field)
}

func TestValidatePolicyUpdate(t *testing.T) {
	start := time.Now()
	endBefore := start.AddDate(0, 0, -1)
	badPremium := -5.0

	req := &PolicyUpdateRequest{
		StartDate:     &start,
		EndDate:       &endBefore,
		PremiumAmount: &badPremium,
		Status:        "suspended",
	}

	errs := ValidatePolicyUpdate(req)
	tags := make(map[string]bool)
	for _, err := range errs {
		tags[err.Tag] = true
	}
	assert.True(t, tags["gt"], "negative premium must be rejected")
	assert.True(t, tags["policy_status"], "unknown status must be rejected")
	assert.Equal(t, "end_date", errs[len(errs)-1].Field)

	assert.Empty(t, ValidatePolicyUpdate(&PolicyUpdateRequest{}))
}

func TestValidatePolicyRenew(t *testing.T) {
	valid := &PolicyRenewRequest{
		EndDate:        time.Now().AddDate(1, 0, 0),
		PremiumAmount:  750,
		CoverageAmount: 80000,
	}
	assert.Empty(t, ValidatePolicyRenew(valid))

	past := &PolicyRenewRequest{
		EndDate:        time.Now().AddDate(0, 0, -1),
		PremiumAmount:  750,
		CoverageAmount: 80000,
	}
	errs := ValidatePolicyRenew(past)
	assert.NotEmpty(t, errs)
	assert.Equal(t, "end_date", errs[0].Field)
}
