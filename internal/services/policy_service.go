package services

import (
	"context"
	"strings"
	"time"

	"goinsure/internal/models"
	"goinsure/internal/repositories/interfaces"
	"goinsure/internal/utils"
	"goinsure/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PolicyService interface {
	// Lifecycle
	CreatePolicy(ctx context.Context, vehicleID, coverageLevelID primitive.ObjectID, startDate, endDate time.Time) (*models.Policy, error)
	UpdatePolicy(ctx context.Context, updated *models.Policy) (*models.Policy, error)
	RenewPolicy(ctx context.Context, policyID primitive.ObjectID, newEndDate time.Time, newPremiumAmount, newCoverageAmount float64) (*models.Policy, error)
	DeactivatePolicy(ctx context.Context, policyID primitive.ObjectID) error
	DeletePolicy(ctx context.Context, policyID primitive.ObjectID) error

	// Reads
	GetPolicyByID(ctx context.Context, policyID primitive.ObjectID) (*models.Policy, error)
	GetPolicyWithVehicleAndCustomer(ctx context.Context, policyID primitive.ObjectID) (*models.Policy, error)
	GetPoliciesByVehicleID(ctx context.Context, vehicleID primitive.ObjectID) ([]*models.Policy, error)
	GetPoliciesByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]*models.Policy, error)
	GetPoliciesByCustomerIDWithClaims(ctx context.Context, customerID primitive.ObjectID) ([]*models.Policy, error)
	GetAllPolicies(ctx context.Context) ([]*models.Policy, error)

	// Expiry reconciliation
	ReconcileExpiry(ctx context.Context, policies []*models.Policy) ([]*models.Policy, error)

	// Pricing
	GeneratePolicyNumber() string
	CalculatePremiumAndCoverage(vehicle *models.Vehicle, level *models.CoverageLevel) (float64, float64, error)
}

type policyService struct {
	policyRepo        interfaces.PolicyRepository
	vehicleRepo       interfaces.VehicleRepository
	coverageLevelRepo interfaces.CoverageLevelRepository
	logger            *logger.Logger
}

func NewPolicyService(
	policyRepo interfaces.PolicyRepository,
	vehicleRepo interfaces.VehicleRepository,
	coverageLevelRepo interfaces.CoverageLevelRepository,
	logger *logger.Logger,
) PolicyService {
	return &policyService{
		policyRepo:        policyRepo,
		vehicleRepo:       vehicleRepo,
		coverageLevelRepo: coverageLevelRepo,
		logger:            logger,
	}
}

// CreatePolicy writes a new active policy against a vehicle. The premium and
// coverage amounts are derived from the vehicle and the coverage level at
// creation time; later coverage level changes never reprice the policy.
func (s *policyService) CreatePolicy(ctx context.Context, vehicleID, coverageLevelID primitive.ObjectID, startDate, endDate time.Time) (*models.Policy, error) {
	if vehicleID.IsZero() {
		return nil, utils.NewValidationError("vehicle ID is required to create a policy")
	}
	if coverageLevelID.IsZero() {
		return nil, utils.NewValidationError("coverage level is required to create a policy")
	}
	if !endDate.After(startDate) {
		return nil, utils.NewValidationError("policy end date must be after start date")
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	level, err := s.coverageLevelRepo.GetByID(ctx, coverageLevelID)
	if err != nil {
		return nil, err
	}

	premium, coverage, err := CalculatePremiumAndCoverage(vehicle, level)
	if err != nil {
		return nil, err
	}

	policy := &models.Policy{
		PolicyNumber:    s.GeneratePolicyNumber(),
		VehicleID:       vehicleID,
		CoverageLevelID: &coverageLevelID,
		StartDate:       startDate,
		EndDate:         endDate,
		PremiumAmount:   premium,
		CoverageAmount:  coverage,
		Status:          models.PolicyStatusActive,
	}

	if err := s.policyRepo.Create(ctx, policy); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"policy_id":     policy.ID.Hex(),
		"policy_number": policy.PolicyNumber,
		"vehicle_id":    vehicleID.Hex(),
		"premium":       premium,
		"coverage":      coverage,
	}).Info("policy created")

	return policy, nil
}

// UpdatePolicy applies an administrative override: amounts, dates, status and
// coverage level are taken from the caller as-is, with no repricing. If the
// supplied end date is already in the past while the status is active, the
// policy is forced to expired as part of the same update.
func (s *policyService) UpdatePolicy(ctx context.Context, updated *models.Policy) (*models.Policy, error) {
	if updated == nil || updated.ID.IsZero() {
		return nil, utils.NewValidationError("policy ID is required for update")
	}
	if !updated.Status.IsValid() {
		return nil, utils.NewValidationError("invalid policy status: %s", updated.Status)
	}
	if !updated.EndDate.After(updated.StartDate) {
		return nil, utils.NewValidationError("policy end date must be after start date")
	}

	existing, err := s.policyRepo.GetByID(ctx, updated.ID)
	if err != nil {
		return nil, err
	}

	status := updated.Status
	if updated.Status == models.PolicyStatusActive && updated.IsPastDue(time.Now()) {
		status = models.PolicyStatusExpired
	}

	updates := map[string]interface{}{
		"coverage_amount":   updated.CoverageAmount,
		"premium_amount":    updated.PremiumAmount,
		"start_date":        updated.StartDate,
		"end_date":          updated.EndDate,
		"status":            status,
		"coverage_level_id": updated.CoverageLevelID,
	}

	if err := s.policyRepo.Update(ctx, updated.ID, updates); err != nil {
		return nil, err
	}

	if status != existing.Status {
		s.logger.WithFields(map[string]interface{}{
			"policy_id":  updated.ID.Hex(),
			"old_status": existing.Status,
			"new_status": status,
		}).Info("policy status changed by update")
	}

	return s.policyRepo.GetByID(ctx, updated.ID)
}

// RenewPolicy resets the policy term: the start date becomes today, the new
// end date, premium and coverage are applied, and the status is forced back
// to active. Renewal reinstates an expired policy.
func (s *policyService) RenewPolicy(ctx context.Context, policyID primitive.ObjectID, newEndDate time.Time, newPremiumAmount, newCoverageAmount float64) (*models.Policy, error) {
	if policyID.IsZero() {
		return nil, utils.NewValidationError("policy ID is required for renewal")
	}

	policy, err := s.policyRepo.GetByID(ctx, policyID)
	if err != nil {
		return nil, err
	}

	today := utils.StartOfDay(time.Now())
	if !utils.StartOfDay(newEndDate).After(today) {
		return nil, utils.NewValidationError("new end date for renewal must be in the future")
	}
	if newPremiumAmount <= 0 || newCoverageAmount <= 0 {
		return nil, utils.NewValidationError("new premium and coverage amounts must be positive for renewal")
	}

	updates := map[string]interface{}{
		"start_date":      today,
		"end_date":        newEndDate,
		"premium_amount":  newPremiumAmount,
		"coverage_amount": newCoverageAmount,
		"status":          models.PolicyStatusActive,
	}

	if err := s.policyRepo.Update(ctx, policyID, updates); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"policy_id":  policyID.Hex(),
		"old_status": policy.Status,
		"end_date":   newEndDate,
	}).Info("policy renewed")

	return s.policyRepo.GetByID(ctx, policyID)
}

// DeactivatePolicy is the cancel-early path: the policy is forced to expired
// with its end date set to today. An already expired policy cannot be
// deactivated again.
func (s *policyService) DeactivatePolicy(ctx context.Context, policyID primitive.ObjectID) error {
	if policyID.IsZero() {
		return utils.NewValidationError("policy ID is required for deactivation")
	}

	policy, err := s.policyRepo.GetByID(ctx, policyID)
	if err != nil {
		return err
	}
	if policy.Status == models.PolicyStatusExpired {
		return utils.NewInvalidStateError("policy with ID %s is already expired", policyID.Hex())
	}

	updates := map[string]interface{}{
		"status":   models.PolicyStatusExpired,
		"end_date": utils.StartOfDay(time.Now()),
	}

	if err := s.policyRepo.Update(ctx, policyID, updates); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"policy_id":  policyID.Hex(),
		"old_status": policy.Status,
	}).Info("policy deactivated")

	return nil
}

// DeletePolicy hard-deletes a policy. The repository rejects the delete with
// a conflict error while claims still reference the policy.
func (s *policyService) DeletePolicy(ctx context.Context, policyID primitive.ObjectID) error {
	if policyID.IsZero() {
		return utils.NewValidationError("a valid policy ID is required to delete a policy")
	}

	if err := s.policyRepo.Delete(ctx, policyID); err != nil {
		return err
	}

	s.logger.WithField("policy_id", policyID.Hex()).Info("policy deleted")

	return nil
}

// Reads
func (s *policyService) GetPolicyByID(ctx context.Context, policyID primitive.ObjectID) (*models.Policy, error) {
	if policyID.IsZero() {
		return nil, utils.NewValidationError("a valid policy ID is required")
	}
	return s.policyRepo.GetByID(ctx, policyID)
}

func (s *policyService) GetPolicyWithVehicleAndCustomer(ctx context.Context, policyID primitive.ObjectID) (*models.Policy, error) {
	if policyID.IsZero() {
		return nil, utils.NewValidationError("a valid policy ID is required")
	}
	return s.policyRepo.GetWithVehicleAndCustomer(ctx, policyID)
}

func (s *policyService) GetPoliciesByVehicleID(ctx context.Context, vehicleID primitive.ObjectID) ([]*models.Policy, error) {
	if vehicleID.IsZero() {
		return nil, utils.NewValidationError("a valid vehicle ID is required to retrieve policies")
	}
	return s.policyRepo.GetByVehicleID(ctx, vehicleID)
}

// GetPoliciesByCustomerID is a customer-facing list read: any active policy
// whose end date has passed is flipped to expired and persisted before the
// result is returned.
func (s *policyService) GetPoliciesByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]*models.Policy, error) {
	if customerID.IsZero() {
		return nil, utils.NewValidationError("a valid customer ID is required to retrieve policies")
	}

	policies, err := s.policyRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return s.ReconcileExpiry(ctx, policies)
}

func (s *policyService) GetPoliciesByCustomerIDWithClaims(ctx context.Context, customerID primitive.ObjectID) ([]*models.Policy, error) {
	if customerID.IsZero() {
		return nil, utils.NewValidationError("a valid customer ID is required to retrieve policies")
	}

	policies, err := s.policyRepo.GetByCustomerIDWithClaims(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return s.ReconcileExpiry(ctx, policies)
}

func (s *policyService) GetAllPolicies(ctx context.Context) ([]*models.Policy, error) {
	return s.policyRepo.GetAll(ctx)
}

// ReconcileExpiry flips any active policy whose end date has passed to
// expired and persists the transition. It is idempotent: reconciling the
// same set twice yields the same final state. Persistence failures for a
// single policy are logged and do not abort the remaining reconciliations.
func (s *policyService) ReconcileExpiry(ctx context.Context, policies []*models.Policy) ([]*models.Policy, error) {
	now := time.Now()
	for _, policy := range policies {
		if policy.Status != models.PolicyStatusActive || !policy.IsPastDue(now) {
			continue
		}

		policy.Status = models.PolicyStatusExpired
		if err := s.policyRepo.UpdateStatus(ctx, policy.ID, models.PolicyStatusExpired); err != nil {
			s.logger.WithError(err).WithField("policy_id", policy.ID.Hex()).Error("failed to persist policy expiry")
			continue
		}

		s.logger.WithField("policy_id", policy.ID.Hex()).Info("policy expired on read")
	}

	return policies, nil
}

// GeneratePolicyNumber produces a policy number of the form POL-XXXXXXXX,
// derived from a random unique identifier. Uniqueness is probabilistic; the
// policy number column additionally carries a unique index.
func (s *policyService) GeneratePolicyNumber() string {
	id := strings.ReplaceAll(utils.GenerateUUID(), "-", "")
	return utils.PolicyNumberPrefix + strings.ToUpper(id[:utils.PolicyNumberLength])
}

func (s *policyService) CalculatePremiumAndCoverage(vehicle *models.Vehicle, level *models.CoverageLevel) (float64, float64, error) {
	return CalculatePremiumAndCoverage(vehicle, level)
}
