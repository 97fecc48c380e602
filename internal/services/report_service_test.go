package services

import (
	"context"
	"testing"
	"time"

	"goinsure/internal/models"
	"goinsure/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type reportServiceFixture struct {
	policyRepo   *fakePolicyRepo
	claimRepo    *fakeClaimRepo
	vehicleRepo  *fakeVehicleRepo
	customerRepo *fakeCustomerRepo
	service      ReportService
}

func newReportServiceFixture(t *testing.T) *reportServiceFixture {
	t.Helper()
	policyRepo := newFakePolicyRepo()
	claimRepo := newFakeClaimRepo()
	vehicleRepo := newFakeVehicleRepo()
	customerRepo := newFakeCustomerRepo()
	service := NewReportService(policyRepo, claimRepo, vehicleRepo, customerRepo, newTestLogger(t))
	return &reportServiceFixture{
		policyRepo:   policyRepo,
		claimRepo:    claimRepo,
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
		service:      service,
	}
}

func TestCustomerPolicyReportFlattensVehicle(t *testing.T) {
	f := newReportServiceFixture(t)
	ctx := context.Background()

	customerID := primitive.NewObjectID()
	vehicleID := primitive.NewObjectID()

	policy := &models.Policy{
		PolicyNumber:   "POL-AB12CD34",
		VehicleID:      vehicleID,
		StartDate:      time.Now().AddDate(-1, 0, 0),
		EndDate:        time.Now().AddDate(0, 6, 0),
		PremiumAmount:  660,
		CoverageAmount: 60000,
		Status:         models.PolicyStatusActive,
		Vehicle: &models.Vehicle{
			ID:                 vehicleID,
			CustomerID:         customerID,
			RegistrationNumber: "TN22GH5566",
			Make:               "Mahindra",
			Model:              "Thar",
			YearOfManufacture:  2015,
			Category:           models.VehicleCategoryJeep,
		},
	}
	require.NoError(t, f.policyRepo.Create(ctx, policy))
	f.policyRepo.vehicleOwners[vehicleID] = customerID

	rows, err := f.service.CustomerPolicyReport(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, policy.ID, row.PolicyID)
	assert.Equal(t, "POL-AB12CD34", row.PolicyNumber)
	assert.Equal(t, "TN22GH5566", row.VehicleRegistrationNumber)
	assert.Equal(t, "Mahindra", row.VehicleMake)
	assert.Equal(t, models.VehicleCategoryJeep, row.VehicleCategory)
	assert.InDelta(t, 60000, row.CoverageAmount, 0.001)

	_, err = f.service.CustomerPolicyReport(ctx, primitive.NilObjectID)
	require.Error(t, err)
	assert.True(t, utils.IsValidationError(err))
}

func TestAdminClaimReportToleratesMissingJoins(t *testing.T) {
	f := newReportServiceFixture(t)
	ctx := context.Background()

	// A claim whose policy was not eager-loaded still produces a row.
	claim := &models.Claim{
		PolicyID:  primitive.NewObjectID(),
		Amount:    2500,
		Reason:    "parking lot scrape",
		ClaimDate: time.Now(),
		Status:    models.ClaimStatusSubmitted,
	}
	require.NoError(t, f.claimRepo.Create(ctx, claim))

	rows, err := f.service.AdminClaimReport(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, claim.ID, row.ClaimID)
	assert.Equal(t, claim.PolicyID, row.PolicyID)
	assert.Empty(t, row.PolicyNumber)
	assert.Empty(t, row.CustomerName)
	assert.InDelta(t, 2500, row.ClaimAmount, 0.001)
}

func TestAdminCustomerReportCounts(t *testing.T) {
	f := newReportServiceFixture(t)
	ctx := context.Background()

	customer := &models.Customer{
		IdentityUserID: utils.GenerateUUID(),
		Name:           "Riley Chen",
		Email:          "riley@example.com",
		IsActive:       true,
	}
	require.NoError(t, f.customerRepo.Create(ctx, customer))

	vehicle := &models.Vehicle{
		CustomerID:         customer.ID,
		RegistrationNumber: "GJ01QQ2211",
		Make:               "Tata",
		Model:              "Nexon",
		YearOfManufacture:  2021,
		Category:           models.VehicleCategoryCar,
	}
	require.NoError(t, f.vehicleRepo.Create(ctx, vehicle))

	policy := &models.Policy{
		PolicyNumber:   "POL-11AA22BB",
		VehicleID:      vehicle.ID,
		StartDate:      time.Now().AddDate(0, -6, 0),
		EndDate:        time.Now().AddDate(0, 6, 0),
		PremiumAmount:  500,
		CoverageAmount: 50000,
		Status:         models.PolicyStatusActive,
	}
	require.NoError(t, f.policyRepo.Create(ctx, policy))
	f.policyRepo.vehicleOwners[vehicle.ID] = customer.ID

	rows, err := f.service.AdminCustomerReport(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, customer.ID, row.CustomerID)
	assert.Equal(t, 1, row.VehicleCount)
	assert.Equal(t, 1, row.PolicyCount)
	assert.True(t, row.IsActive)
}

func TestAdminVehicleReport(t *testing.T) {
	f := newReportServiceFixture(t)
	ctx := context.Background()

	customerID := primitive.NewObjectID()
	vehicle := &models.Vehicle{
		CustomerID:         customerID,
		RegistrationNumber: "KL07ZZ9090",
		Make:               "Suzuki",
		Model:              "Swift",
		YearOfManufacture:  2019,
		Category:           models.VehicleCategoryCar,
		Customer: &models.Customer{
			ID:    customerID,
			Name:  "Morgan Blake",
			Email: "morgan@example.com",
		},
	}
	require.NoError(t, f.vehicleRepo.Create(ctx, vehicle))

	rows, err := f.service.AdminVehicleReport(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "KL07ZZ9090", row.RegistrationNumber)
	assert.Equal(t, customerID, row.CustomerID)
	assert.Equal(t, "Morgan Blake", row.CustomerName)
	assert.Equal(t, "morgan@example.com", row.CustomerEmail)
}
