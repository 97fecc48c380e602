package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"goinsure/internal/models"
	"goinsure/internal/utils"
	"goinsure/pkg/logger"
	"goinsure/pkg/storage"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(&logger.Config{
		Level:  logger.ErrorLevel,
		Format: "text",
		Output: "stderr",
	})
	require.NoError(t, err)
	return log
}

// fakePolicyRepo is an in-memory PolicyRepository. vehicleOwners maps a
// vehicle to its customer so the customer-scoped reads behave like the real
// aggregation.
type fakePolicyRepo struct {
	policies      map[primitive.ObjectID]*models.Policy
	vehicleOwners map[primitive.ObjectID]primitive.ObjectID

	createErr        error
	updateErr        error
	deleteErr        error
	failUpdateStatus map[primitive.ObjectID]bool
	updateStatusLog  []primitive.ObjectID
}

func newFakePolicyRepo() *fakePolicyRepo {
	return &fakePolicyRepo{
		policies:         make(map[primitive.ObjectID]*models.Policy),
		vehicleOwners:    make(map[primitive.ObjectID]primitive.ObjectID),
		failUpdateStatus: make(map[primitive.ObjectID]bool),
	}
}

func (r *fakePolicyRepo) Create(ctx context.Context, policy *models.Policy) error {
	if r.createErr != nil {
		return r.createErr
	}
	if policy.ID.IsZero() {
		policy.ID = primitive.NewObjectID()
	}
	policy.CreatedAt = time.Now()
	policy.UpdatedAt = time.Now()
	r.policies[policy.ID] = policy
	return nil
}

func (r *fakePolicyRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Policy, error) {
	policy, ok := r.policies[id]
	if !ok {
		return nil, utils.NewNotFoundError("policy with ID %s not found", id.Hex())
	}
	return policy, nil
}

func (r *fakePolicyRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	policy, ok := r.policies[id]
	if !ok {
		return utils.NewNotFoundError("policy with ID %s not found", id.Hex())
	}
	for key, value := range updates {
		switch key {
		case "start_date":
			policy.StartDate = value.(time.Time)
		case "end_date":
			policy.EndDate = value.(time.Time)
		case "premium_amount":
			policy.PremiumAmount = value.(float64)
		case "coverage_amount":
			policy.CoverageAmount = value.(float64)
		case "status":
			policy.Status = value.(models.PolicyStatus)
		case "coverage_level_id":
			policy.CoverageLevelID = value.(*primitive.ObjectID)
		}
	}
	policy.UpdatedAt = time.Now()
	return nil
}

func (r *fakePolicyRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.policies[id]; !ok {
		return utils.NewNotFoundError("policy with ID %s not found", id.Hex())
	}
	delete(r.policies, id)
	return nil
}

func (r *fakePolicyRepo) GetWithVehicleAndCustomer(ctx context.Context, id primitive.ObjectID) (*models.Policy, error) {
	return r.GetByID(ctx, id)
}

func (r *fakePolicyRepo) GetByVehicleID(ctx context.Context, vehicleID primitive.ObjectID) ([]*models.Policy, error) {
	var result []*models.Policy
	for _, policy := range r.policies {
		if policy.VehicleID == vehicleID {
			result = append(result, policy)
		}
	}
	return result, nil
}

func (r *fakePolicyRepo) GetByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]*models.Policy, error) {
	var result []*models.Policy
	for _, policy := range r.policies {
		if r.vehicleOwners[policy.VehicleID] == customerID {
			result = append(result, policy)
		}
	}
	return result, nil
}

func (r *fakePolicyRepo) GetByCustomerIDWithClaims(ctx context.Context, customerID primitive.ObjectID) ([]*models.Policy, error) {
	return r.GetByCustomerID(ctx, customerID)
}

func (r *fakePolicyRepo) GetAll(ctx context.Context) ([]*models.Policy, error) {
	var result []*models.Policy
	for _, policy := range r.policies {
		result = append(result, policy)
	}
	return result, nil
}

func (r *fakePolicyRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.PolicyStatus) error {
	r.updateStatusLog = append(r.updateStatusLog, id)
	if r.failUpdateStatus[id] {
		return errors.New("write concern failure")
	}
	policy, ok := r.policies[id]
	if !ok {
		return utils.NewNotFoundError("policy with ID %s not found", id.Hex())
	}
	policy.Status = status
	return nil
}

func (r *fakePolicyRepo) CountByVehicleID(ctx context.Context, vehicleID primitive.ObjectID) (int64, error) {
	var count int64
	for _, policy := range r.policies {
		if policy.VehicleID == vehicleID {
			count++
		}
	}
	return count, nil
}

type fakeClaimRepo struct {
	claims    map[primitive.ObjectID]*models.Claim
	createErr error
	updateErr error
}

func newFakeClaimRepo() *fakeClaimRepo {
	return &fakeClaimRepo{claims: make(map[primitive.ObjectID]*models.Claim)}
}

func (r *fakeClaimRepo) Create(ctx context.Context, claim *models.Claim) error {
	if r.createErr != nil {
		return r.createErr
	}
	if claim.ID.IsZero() {
		claim.ID = primitive.NewObjectID()
	}
	claim.CreatedAt = time.Now()
	claim.UpdatedAt = time.Now()
	r.claims[claim.ID] = claim
	return nil
}

func (r *fakeClaimRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Claim, error) {
	claim, ok := r.claims[id]
	if !ok {
		return nil, utils.NewNotFoundError("claim with ID %s not found", id.Hex())
	}
	return claim, nil
}

func (r *fakeClaimRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	claim, ok := r.claims[id]
	if !ok {
		return utils.NewNotFoundError("claim with ID %s not found", id.Hex())
	}
	for key, value := range updates {
		switch key {
		case "status":
			claim.Status = value.(models.ClaimStatus)
		case "claim_date":
			claim.ClaimDate = value.(time.Time)
		}
	}
	claim.UpdatedAt = time.Now()
	return nil
}

func (r *fakeClaimRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.claims[id]; !ok {
		return utils.NewNotFoundError("claim with ID %s not found", id.Hex())
	}
	delete(r.claims, id)
	return nil
}

func (r *fakeClaimRepo) GetByPolicyID(ctx context.Context, policyID primitive.ObjectID) ([]*models.Claim, error) {
	var result []*models.Claim
	for _, claim := range r.claims {
		if claim.PolicyID == policyID {
			result = append(result, claim)
		}
	}
	return result, nil
}

func (r *fakeClaimRepo) GetByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]*models.Claim, error) {
	var result []*models.Claim
	for _, claim := range r.claims {
		result = append(result, claim)
	}
	return result, nil
}

func (r *fakeClaimRepo) GetAll(ctx context.Context) ([]*models.Claim, error) {
	var result []*models.Claim
	for _, claim := range r.claims {
		result = append(result, claim)
	}
	return result, nil
}

func (r *fakeClaimRepo) CountByPolicyID(ctx context.Context, policyID primitive.ObjectID) (int64, error) {
	var count int64
	for _, claim := range r.claims {
		if claim.PolicyID == policyID {
			count++
		}
	}
	return count, nil
}

type fakeVehicleRepo struct {
	vehicles  map[primitive.ObjectID]*models.Vehicle
	createErr error
	deleteErr error
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: make(map[primitive.ObjectID]*models.Vehicle)}
}

func (r *fakeVehicleRepo) Create(ctx context.Context, vehicle *models.Vehicle) error {
	if r.createErr != nil {
		return r.createErr
	}
	if vehicle.ID.IsZero() {
		vehicle.ID = primitive.NewObjectID()
	}
	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = time.Now()
	r.vehicles[vehicle.ID] = vehicle
	return nil
}

func (r *fakeVehicleRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	vehicle, ok := r.vehicles[id]
	if !ok {
		return nil, utils.NewNotFoundError("vehicle with ID %s not found", id.Hex())
	}
	return vehicle, nil
}

func (r *fakeVehicleRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	vehicle, ok := r.vehicles[id]
	if !ok {
		return utils.NewNotFoundError("vehicle with ID %s not found", id.Hex())
	}
	for key, value := range updates {
		switch key {
		case "registration_number":
			vehicle.RegistrationNumber = value.(string)
		case "make":
			vehicle.Make = value.(string)
		case "model":
			vehicle.Model = value.(string)
		case "year_of_manufacture":
			vehicle.YearOfManufacture = value.(int)
		case "category":
			vehicle.Category = value.(models.VehicleCategory)
		}
	}
	vehicle.UpdatedAt = time.Now()
	return nil
}

func (r *fakeVehicleRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.vehicles[id]; !ok {
		return utils.NewNotFoundError("vehicle with ID %s not found", id.Hex())
	}
	delete(r.vehicles, id)
	return nil
}

func (r *fakeVehicleRepo) GetByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]*models.Vehicle, error) {
	var result []*models.Vehicle
	for _, vehicle := range r.vehicles {
		if vehicle.CustomerID == customerID {
			result = append(result, vehicle)
		}
	}
	return result, nil
}

func (r *fakeVehicleRepo) GetByRegistrationNumber(ctx context.Context, registrationNumber string) (*models.Vehicle, error) {
	for _, vehicle := range r.vehicles {
		if vehicle.RegistrationNumber == registrationNumber {
			return vehicle, nil
		}
	}
	return nil, utils.NewNotFoundError("vehicle with registration number %s not found", registrationNumber)
}

func (r *fakeVehicleRepo) GetByIDWithCustomer(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeVehicleRepo) GetAllWithCustomer(ctx context.Context) ([]*models.Vehicle, error) {
	var result []*models.Vehicle
	for _, vehicle := range r.vehicles {
		result = append(result, vehicle)
	}
	return result, nil
}

func (r *fakeVehicleRepo) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Vehicle, int64, error) {
	all, _ := r.GetAllWithCustomer(ctx)
	return all, int64(len(all)), nil
}

type fakeCustomerRepo struct {
	customers map[primitive.ObjectID]*models.Customer
	createErr error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[primitive.ObjectID]*models.Customer)}
}

func (r *fakeCustomerRepo) Create(ctx context.Context, customer *models.Customer) error {
	if r.createErr != nil {
		return r.createErr
	}
	if customer.ID.IsZero() {
		customer.ID = primitive.NewObjectID()
	}
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = time.Now()
	r.customers[customer.ID] = customer
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, utils.NewNotFoundError("customer with ID %s not found", id.Hex())
	}
	return customer, nil
}

func (r *fakeCustomerRepo) GetByIdentityUserID(ctx context.Context, identityUserID string) (*models.Customer, error) {
	for _, customer := range r.customers {
		if customer.IdentityUserID == identityUserID {
			return customer, nil
		}
	}
	return nil, utils.NewNotFoundError("customer with identity user ID %s not found", identityUserID)
}

func (r *fakeCustomerRepo) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	for _, customer := range r.customers {
		if customer.Email == email {
			return customer, nil
		}
	}
	return nil, utils.NewNotFoundError("customer with email %s not found", email)
}

func (r *fakeCustomerRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	customer, ok := r.customers[id]
	if !ok {
		return utils.NewNotFoundError("customer with ID %s not found", id.Hex())
	}
	for key, value := range updates {
		switch key {
		case "name":
			customer.Name = value.(string)
		case "email":
			customer.Email = value.(string)
		case "phone":
			customer.Phone = value.(string)
		case "address":
			customer.Address = value.(string)
		case "is_active":
			customer.IsActive = value.(bool)
		}
	}
	customer.UpdatedAt = time.Now()
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.customers[id]; !ok {
		return utils.NewNotFoundError("customer with ID %s not found", id.Hex())
	}
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) GetAll(ctx context.Context) ([]*models.Customer, error) {
	var result []*models.Customer
	for _, customer := range r.customers {
		result = append(result, customer)
	}
	return result, nil
}

func (r *fakeCustomerRepo) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Customer, int64, error) {
	all, _ := r.GetAll(ctx)
	return all, int64(len(all)), nil
}

func (r *fakeCustomerRepo) Search(ctx context.Context, term string) ([]*models.Customer, error) {
	var result []*models.Customer
	for _, customer := range r.customers {
		if strings.Contains(strings.ToLower(customer.Name), strings.ToLower(term)) ||
			strings.Contains(customer.Email, strings.ToLower(term)) {
			result = append(result, customer)
		}
	}
	return result, nil
}

type fakeCoverageLevelRepo struct {
	levels    map[primitive.ObjectID]*models.CoverageLevel
	createErr error
	deleteErr error
}

func newFakeCoverageLevelRepo() *fakeCoverageLevelRepo {
	return &fakeCoverageLevelRepo{levels: make(map[primitive.ObjectID]*models.CoverageLevel)}
}

func (r *fakeCoverageLevelRepo) Create(ctx context.Context, level *models.CoverageLevel) error {
	if r.createErr != nil {
		return r.createErr
	}
	if level.ID.IsZero() {
		level.ID = primitive.NewObjectID()
	}
	level.CreatedAt = time.Now()
	level.UpdatedAt = time.Now()
	r.levels[level.ID] = level
	return nil
}

func (r *fakeCoverageLevelRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.CoverageLevel, error) {
	level, ok := r.levels[id]
	if !ok {
		return nil, utils.NewNotFoundError("coverage level with ID %s not found", id.Hex())
	}
	return level, nil
}

func (r *fakeCoverageLevelRepo) GetByName(ctx context.Context, name string) (*models.CoverageLevel, error) {
	for _, level := range r.levels {
		if level.Name == name {
			return level, nil
		}
	}
	return nil, utils.NewNotFoundError("coverage level with name %s not found", name)
}

func (r *fakeCoverageLevelRepo) GetAll(ctx context.Context) ([]*models.CoverageLevel, error) {
	var result []*models.CoverageLevel
	for _, level := range r.levels {
		result = append(result, level)
	}
	return result, nil
}

func (r *fakeCoverageLevelRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	level, ok := r.levels[id]
	if !ok {
		return utils.NewNotFoundError("coverage level with ID %s not found", id.Hex())
	}
	for key, value := range updates {
		switch key {
		case "name":
			level.Name = value.(string)
		case "description":
			level.Description = value.(string)
		case "premium_multiplier":
			level.PremiumMultiplier = value.(float64)
		case "coverage_multiplier":
			level.CoverageMultiplier = value.(float64)
		}
	}
	level.UpdatedAt = time.Now()
	return nil
}

func (r *fakeCoverageLevelRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.levels[id]; !ok {
		return utils.NewNotFoundError("coverage level with ID %s not found", id.Hex())
	}
	delete(r.levels, id)
	return nil
}

// fakeStorage records uploads and deletes in call order. failAtUpload is the
// 1-based index of the upload call that fails; zero disables the failure.
type fakeStorage struct {
	uploaded     []string
	deleted      []string
	uploadCalls  int
	failAtUpload int
}

func (s *fakeStorage) Upload(ctx context.Context, request *storage.UploadRequest) (*storage.UploadResponse, error) {
	s.uploadCalls++
	if s.failAtUpload > 0 && s.uploadCalls == s.failAtUpload {
		return nil, errors.New("blob store unavailable")
	}
	s.uploaded = append(s.uploaded, request.Key)
	return &storage.UploadResponse{
		Key:  request.Key,
		URL:  fmt.Sprintf("https://files.test/%s", request.Key),
		Size: request.Size,
	}, nil
}

func (s *fakeStorage) Download(ctx context.Context, key string) (*storage.DownloadResponse, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeStorage) Delete(ctx context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *fakeStorage) GetURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	return fmt.Sprintf("https://files.test/%s", key), nil
}

func (s *fakeStorage) ListFiles(ctx context.Context, prefix string) ([]*storage.FileInfo, error) {
	return nil, nil
}

func (s *fakeStorage) FileExists(ctx context.Context, key string) (bool, error) {
	for _, uploaded := range s.uploaded {
		if uploaded == key {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStorage) GetFileInfo(ctx context.Context, key string) (*storage.FileInfo, error) {
	return nil, utils.NewNotFoundError("file %s not found", key)
}
