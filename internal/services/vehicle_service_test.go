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

type vehicleServiceFixture struct {
	vehicleRepo  *fakeVehicleRepo
	customerRepo *fakeCustomerRepo
	service      VehicleService
}

func newVehicleServiceFixture(t *testing.T) *vehicleServiceFixture {
	t.Helper()
	vehicleRepo := newFakeVehicleRepo()
	customerRepo := newFakeCustomerRepo()
	service := NewVehicleService(vehicleRepo, customerRepo, newTestLogger(t))
	return &vehicleServiceFixture{
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
		service:      service,
	}
}

func (f *vehicleServiceFixture) seedCustomer(t *testing.T) *models.Customer {
	t.Helper()
	customer := &models.Customer{
		IdentityUserID: utils.GenerateUUID(),
		Name:           "Jordan Lee",
		Email:          "jordan@example.com",
		IsActive:       true,
	}
	require.NoError(t, f.customerRepo.Create(context.Background(), customer))
	return customer
}

func validVehicle(customerID primitive.ObjectID) *models.Vehicle {
	return &models.Vehicle{
		CustomerID:         customerID,
		RegistrationNumber: "MH12DE1433",
		Make:               "Honda",
		Model:              "Civic",
		YearOfManufacture:  time.Now().Year() - 4,
		Category:           models.VehicleCategoryCar,
	}
}

func TestAddVehicle(t *testing.T) {
	f := newVehicleServiceFixture(t)
	ctx := context.Background()

	customer := f.seedCustomer(t)
	vehicle := validVehicle(customer.ID)

	require.NoError(t, f.service.AddVehicle(ctx, vehicle))
	assert.False(t, vehicle.ID.IsZero())

	stored, err := f.vehicleRepo.GetByID(ctx, vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, stored.CustomerID)
}

func TestAddVehicleRequiresExistingCustomer(t *testing.T) {
	f := newVehicleServiceFixture(t)

	vehicle := validVehicle(primitive.NewObjectID())

	err := f.service.AddVehicle(context.Background(), vehicle)
	require.Error(t, err)
	assert.True(t, utils.IsNotFound(err))
}

func TestAddVehicleValidation(t *testing.T) {
	f := newVehicleServiceFixture(t)
	ctx := context.Background()

	customer := f.seedCustomer(t)
	currentYear := time.Now().Year()

	tests := []struct {
		name   string
		mutate func(*models.Vehicle)
	}{
		{"missing customer ID", func(v *models.Vehicle) { v.CustomerID = primitive.NilObjectID }},
		{"blank registration number", func(v *models.Vehicle) { v.RegistrationNumber = "  " }},
		{"blank make", func(v *models.Vehicle) { v.Make = "" }},
		{"blank model", func(v *models.Vehicle) { v.Model = "" }},
		{"year before 1900", func(v *models.Vehicle) { v.YearOfManufacture = 1899 }},
		{"year in the future", func(v *models.Vehicle) { v.YearOfManufacture = currentYear + 1 }},
		{"invalid category", func(v *models.Vehicle) { v.Category = models.VehicleCategory("boat") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vehicle := validVehicle(customer.ID)
			tt.mutate(vehicle)

			err := f.service.AddVehicle(ctx, vehicle)
			require.Error(t, err)
			assert.True(t, utils.IsValidationError(err))
		})
	}
}

func TestUpdateVehicleNormalizesFields(t *testing.T) {
	f := newVehicleServiceFixture(t)
	ctx := context.Background()

	customer := f.seedCustomer(t)
	vehicle := validVehicle(customer.ID)
	require.NoError(t, f.service.AddVehicle(ctx, vehicle))

	update := &models.Vehicle{
		ID:                 vehicle.ID,
		CustomerID:         customer.ID,
		RegistrationNumber: "  ka05mn7788  ",
		Make:               "  Honda ",
		Model:              " City ",
		YearOfManufacture:  time.Now().Year() - 2,
		Category:           models.VehicleCategoryCar,
	}

	require.NoError(t, f.service.UpdateVehicle(ctx, customer.ID, update))

	stored, err := f.vehicleRepo.GetByID(ctx, vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, "KA05MN7788", stored.RegistrationNumber)
	assert.Equal(t, "Honda", stored.Make)
	assert.Equal(t, "City", stored.Model)
}

func TestUpdateVehicleOwnershipMismatch(t *testing.T) {
	f := newVehicleServiceFixture(t)
	ctx := context.Background()

	owner := f.seedCustomer(t)
	vehicle := validVehicle(owner.ID)
	require.NoError(t, f.service.AddVehicle(ctx, vehicle))

	otherCustomer := primitive.NewObjectID()
	update := validVehicle(otherCustomer)
	update.ID = vehicle.ID

	// Another customer's vehicle looks like it does not exist.
	err := f.service.UpdateVehicle(ctx, otherCustomer, update)
	require.Error(t, err)
	assert.True(t, utils.IsNotFound(err))

	stored, err := f.vehicleRepo.GetByID(ctx, vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, "MH12DE1433", stored.RegistrationNumber)
}

func TestUpdateVehicleByAdminKeepsOwnerWhenUnset(t *testing.T) {
	f := newVehicleServiceFixture(t)
	ctx := context.Background()

	customer := f.seedCustomer(t)
	vehicle := validVehicle(customer.ID)
	require.NoError(t, f.service.AddVehicle(ctx, vehicle))

	update := &models.Vehicle{
		ID:                 vehicle.ID,
		RegistrationNumber: "DL03XY9900",
		Make:               "Honda",
		Model:              "Civic",
		YearOfManufacture:  time.Now().Year() - 4,
		Category:           models.VehicleCategoryCar,
	}

	require.NoError(t, f.service.UpdateVehicleByAdmin(ctx, update))

	stored, err := f.vehicleRepo.GetByID(ctx, vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, stored.CustomerID)
	assert.Equal(t, "DL03XY9900", stored.RegistrationNumber)
}

func TestDeleteVehicleBlockedByPolicies(t *testing.T) {
	f := newVehicleServiceFixture(t)
	ctx := context.Background()

	customer := f.seedCustomer(t)
	vehicle := validVehicle(customer.ID)
	require.NoError(t, f.service.AddVehicle(ctx, vehicle))

	f.vehicleRepo.deleteErr = utils.NewConflictError("vehicle with ID %s cannot be deleted: policies still reference it", vehicle.ID.Hex())

	err := f.service.DeleteVehicle(ctx, vehicle.ID)
	require.Error(t, err)
	assert.True(t, utils.IsConflict(err))

	f.vehicleRepo.deleteErr = nil
	require.NoError(t, f.service.DeleteVehicle(ctx, vehicle.ID))
}

func TestVehicleReads(t *testing.T) {
	f := newVehicleServiceFixture(t)
	ctx := context.Background()

	customer := f.seedCustomer(t)
	vehicle := validVehicle(customer.ID)
	require.NoError(t, f.service.AddVehicle(ctx, vehicle))

	got, err := f.service.GetVehicleByID(ctx, vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, vehicle.ID, got.ID)

	byCustomer, err := f.service.GetVehiclesByCustomerID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Len(t, byCustomer, 1)

	all, err := f.service.GetAllVehicles(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	listed, total, err := f.service.ListVehicles(ctx, &utils.PaginationParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.Equal(t, int64(1), total)

	_, err = f.service.GetVehicleByID(ctx, primitive.NilObjectID)
	assert.True(t, utils.IsValidationError(err))
	_, err = f.service.GetVehiclesByCustomerID(ctx, primitive.NilObjectID)
	assert.True(t, utils.IsValidationError(err))
}
