package services

import (
	"context"
	"strings"
	"testing"

	"goinsure/internal/models"
	"goinsure/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newCustomerServiceFixture(t *testing.T) (*fakeCustomerRepo, CustomerService) {
	t.Helper()
	repo := newFakeCustomerRepo()
	return repo, NewCustomerService(repo, newTestLogger(t))
}

func validCustomer() *models.Customer {
	return &models.Customer{
		IdentityUserID: utils.GenerateUUID(),
		Name:           "Sam Fisher",
		Email:          "sam.fisher@example.com",
		Phone:          "+15551230987",
		Address:        "42 Harbor Street",
	}
}

func TestRegisterCustomer(t *testing.T) {
	repo, service := newCustomerServiceFixture(t)
	ctx := context.Background()

	customer := validCustomer()
	customer.Email = "  Sam.Fisher@Example.COM "

	require.NoError(t, service.RegisterCustomer(ctx, customer))
	assert.False(t, customer.ID.IsZero())
	assert.Equal(t, "sam.fisher@example.com", customer.Email)
	assert.True(t, customer.IsActive)

	stored, err := repo.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "sam.fisher@example.com", stored.Email)
}

func TestRegisterCustomerValidation(t *testing.T) {
	_, service := newCustomerServiceFixture(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.Customer)
	}{
		{"blank name", func(c *models.Customer) { c.Name = " " }},
		{"name too long", func(c *models.Customer) { c.Name = strings.Repeat("x", utils.MaxNameLength+1) }},
		{"blank email", func(c *models.Customer) { c.Email = "" }},
		{"email without at sign", func(c *models.Customer) { c.Email = "not-an-email" }},
		{"phone too long", func(c *models.Customer) { c.Phone = strings.Repeat("9", utils.MaxPhoneLength+1) }},
		{"address too long", func(c *models.Customer) { c.Address = strings.Repeat("a", utils.MaxAddressLength+1) }},
		{"missing identity user ID", func(c *models.Customer) { c.IdentityUserID = " " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customer := validCustomer()
			tt.mutate(customer)

			err := service.RegisterCustomer(ctx, customer)
			require.Error(t, err)
			assert.True(t, utils.IsValidationError(err))
		})
	}
}

func TestUpdateCustomerProfile(t *testing.T) {
	repo, service := newCustomerServiceFixture(t)
	ctx := context.Background()

	customer := validCustomer()
	require.NoError(t, service.RegisterCustomer(ctx, customer))

	update := &models.Customer{
		ID:      customer.ID,
		Name:    " Sam F. ",
		Email:   " NEW@Example.com ",
		Phone:   " +15550001111 ",
		Address: " 7 New Street ",
	}

	require.NoError(t, service.UpdateCustomerProfile(ctx, update))

	stored, err := repo.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sam F.", stored.Name)
	assert.Equal(t, "new@example.com", stored.Email)
	assert.Equal(t, "+15550001111", stored.Phone)
	assert.Equal(t, "7 New Street", stored.Address)
	// Identity linkage and activation are untouched by profile updates.
	assert.Equal(t, customer.IdentityUserID, stored.IdentityUserID)
	assert.True(t, stored.IsActive)
}

func TestUpdateCustomerProfileUnknownID(t *testing.T) {
	_, service := newCustomerServiceFixture(t)

	update := validCustomer()
	update.ID = primitive.NewObjectID()

	err := service.UpdateCustomerProfile(context.Background(), update)
	require.Error(t, err)
	assert.True(t, utils.IsNotFound(err))
}

func TestActivationLifecycle(t *testing.T) {
	repo, service := newCustomerServiceFixture(t)
	ctx := context.Background()

	customer := validCustomer()
	require.NoError(t, service.RegisterCustomer(ctx, customer))

	// Registration leaves the customer active; activating again is rejected.
	err := service.ActivateCustomer(ctx, customer.ID)
	require.Error(t, err)
	assert.True(t, utils.IsInvalidState(err))

	require.NoError(t, service.DeactivateCustomer(ctx, customer.ID))
	stored, err := repo.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	err = service.DeactivateCustomer(ctx, customer.ID)
	require.Error(t, err)
	assert.True(t, utils.IsInvalidState(err))

	require.NoError(t, service.ActivateCustomer(ctx, customer.ID))
	stored, err = repo.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsActive)
}

func TestCustomerReads(t *testing.T) {
	_, service := newCustomerServiceFixture(t)
	ctx := context.Background()

	customer := validCustomer()
	require.NoError(t, service.RegisterCustomer(ctx, customer))

	got, err := service.GetCustomerByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, got.ID)

	byIdentity, err := service.GetCustomerByIdentityUserID(ctx, customer.IdentityUserID)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, byIdentity.ID)

	all, err := service.GetAllCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	listed, total, err := service.ListCustomers(ctx, &utils.PaginationParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.Equal(t, int64(1), total)

	_, err = service.GetCustomerByID(ctx, primitive.NilObjectID)
	assert.True(t, utils.IsValidationError(err))
	_, err = service.GetCustomerByIdentityUserID(ctx, "  ")
	assert.True(t, utils.IsValidationError(err))
}

func TestSearchCustomers(t *testing.T) {
	_, service := newCustomerServiceFixture(t)
	ctx := context.Background()

	first := validCustomer()
	require.NoError(t, service.RegisterCustomer(ctx, first))

	second := validCustomer()
	second.Name = "Avery Quinn"
	second.Email = "avery@example.com"
	require.NoError(t, service.RegisterCustomer(ctx, second))

	found, err := service.SearchCustomers(ctx, "avery")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, second.ID, found[0].ID)

	_, err = service.SearchCustomers(ctx, "   ")
	require.Error(t, err)
	assert.True(t, utils.IsValidationError(err))
}
