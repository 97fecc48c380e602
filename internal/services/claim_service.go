package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"goinsure/internal/models"
	"goinsure/internal/repositories/interfaces"
	"goinsure/internal/utils"
	"goinsure/pkg/logger"
	"goinsure/pkg/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClaimService interface {
	// Workflow
	FileClaim(ctx context.Context, policyID primitive.ObjectID, amount float64, reason string, attachments []*models.ClaimAttachment) (*models.Claim, error)
	UpdateClaimStatus(ctx context.Context, claimID primitive.ObjectID, newStatus models.ClaimStatus) error
	ReapplyClaim(ctx context.Context, claimID primitive.ObjectID) error

	// Reads
	GetClaimByID(ctx context.Context, claimID primitive.ObjectID) (*models.Claim, error)
	GetClaimsByPolicyID(ctx context.Context, policyID primitive.ObjectID) ([]*models.Claim, error)
	GetClaimsByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]*models.Claim, error)
	GetAllClaims(ctx context.Context) ([]*models.Claim, error)
}

type claimService struct {
	claimRepo  interfaces.ClaimRepository
	policyRepo interfaces.PolicyRepository
	storage    storage.StorageProvider
	logger     *logger.Logger
}

func NewClaimService(
	claimRepo interfaces.ClaimRepository,
	policyRepo interfaces.PolicyRepository,
	storage storage.StorageProvider,
	logger *logger.Logger,
) ClaimService {
	return &claimService{
		claimRepo:  claimRepo,
		policyRepo: policyRepo,
		storage:    storage,
		logger:     logger,
	}
}

// FileClaim validates the claim against its policy, stores any attachments
// through the blob store, and persists the claim as submitted. Filing either
// fully succeeds or fully fails: if any attachment upload or the final insert
// fails, already-stored attachments are removed (best effort) and no claim
// record is created.
func (s *claimService) FileClaim(ctx context.Context, policyID primitive.ObjectID, amount float64, reason string, attachments []*models.ClaimAttachment) (*models.Claim, error) {
	if policyID.IsZero() {
		return nil, utils.NewValidationError("policy ID is required to file a claim")
	}
	if amount < utils.MinClaimAmount {
		return nil, utils.NewValidationError("claim amount must be at least %.2f", utils.MinClaimAmount)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, utils.NewValidationError("claim reason is required")
	}
	if len(reason) > utils.MaxClaimReasonLength {
		return nil, utils.NewValidationError("claim reason cannot exceed %d characters", utils.MaxClaimReasonLength)
	}

	policy, err := s.policyRepo.GetWithVehicleAndCustomer(ctx, policyID)
	if err != nil {
		return nil, err
	}

	if amount > policy.CoverageAmount {
		return nil, utils.NewValidationError("claim amount (%.2f) cannot exceed the policy's coverage amount (%.2f)", amount, policy.CoverageAmount)
	}
	if policy.Status != models.PolicyStatusActive {
		return nil, utils.NewInvalidStateError("claims can only be filed for active policies; current policy status: %s", policy.Status)
	}

	paths, keys, err := s.uploadAttachments(ctx, attachments)
	if err != nil {
		return nil, err
	}

	claim := &models.Claim{
		PolicyID:   policyID,
		Amount:     amount,
		Reason:     reason,
		ClaimDate:  time.Now(),
		Status:     models.ClaimStatusSubmitted,
		ImagePaths: utils.JoinImagePaths(paths),
	}

	if err := s.claimRepo.Create(ctx, claim); err != nil {
		s.cleanupAttachments(ctx, keys)
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"claim_id":    claim.ID.Hex(),
		"policy_id":   policyID.Hex(),
		"amount":      amount,
		"attachments": len(paths),
	}).Info("claim filed")

	return claim, nil
}

// UpdateClaimStatus sets the claim status unconditionally. This is an
// administrative override with no transition-table enforcement; the customer
// resubmission path goes through ReapplyClaim instead.
func (s *claimService) UpdateClaimStatus(ctx context.Context, claimID primitive.ObjectID, newStatus models.ClaimStatus) error {
	if claimID.IsZero() {
		return utils.NewValidationError("a valid claim ID is required")
	}
	if !newStatus.IsValid() {
		return utils.NewValidationError("invalid claim status: %s", newStatus)
	}

	claim, err := s.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		return err
	}

	if err := s.claimRepo.Update(ctx, claimID, map[string]interface{}{"status": newStatus}); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"claim_id":   claimID.Hex(),
		"old_status": claim.Status,
		"new_status": newStatus,
	}).Info("claim status updated")

	return nil
}

// ReapplyClaim resubmits a rejected claim: the status returns to submitted
// and the claim date is reset to now. Only rejected claims can be reapplied.
func (s *claimService) ReapplyClaim(ctx context.Context, claimID primitive.ObjectID) error {
	if claimID.IsZero() {
		return utils.NewValidationError("a valid claim ID is required")
	}

	claim, err := s.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		return err
	}
	if claim.Status != models.ClaimStatusRejected {
		return utils.NewInvalidStateError("claim with ID %s cannot be reapplied: current status is %s; only rejected claims can be reapplied", claimID.Hex(), claim.Status)
	}

	updates := map[string]interface{}{
		"status":     models.ClaimStatusSubmitted,
		"claim_date": time.Now(),
	}
	if err := s.claimRepo.Update(ctx, claimID, updates); err != nil {
		return err
	}

	s.logger.WithField("claim_id", claimID.Hex()).Info("claim reapplied")

	return nil
}

// Reads
func (s *claimService) GetClaimByID(ctx context.Context, claimID primitive.ObjectID) (*models.Claim, error) {
	if claimID.IsZero() {
		return nil, utils.NewValidationError("a valid claim ID is required")
	}
	return s.claimRepo.GetByID(ctx, claimID)
}

func (s *claimService) GetClaimsByPolicyID(ctx context.Context, policyID primitive.ObjectID) ([]*models.Claim, error) {
	if policyID.IsZero() {
		return nil, utils.NewValidationError("a valid policy ID is required to retrieve claims")
	}
	return s.claimRepo.GetByPolicyID(ctx, policyID)
}

func (s *claimService) GetClaimsByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]*models.Claim, error) {
	if customerID.IsZero() {
		return nil, utils.NewValidationError("a valid customer ID is required to retrieve claims")
	}
	return s.claimRepo.GetByCustomerID(ctx, customerID)
}

func (s *claimService) GetAllClaims(ctx context.Context) ([]*models.Claim, error) {
	return s.claimRepo.GetAll(ctx)
}

// uploadAttachments stores each attachment and accumulates the resulting
// references. On any failure the already-stored blobs are deleted and the
// whole filing aborts.
func (s *claimService) uploadAttachments(ctx context.Context, attachments []*models.ClaimAttachment) (paths []string, keys []string, err error) {
	for _, attachment := range attachments {
		if attachment == nil || attachment.Size == 0 {
			continue
		}

		key := fmt.Sprintf("%s/%s_%s", utils.ClaimUploadsPrefix, utils.GenerateUUID(), attachment.FileName)
		response, uploadErr := s.storage.Upload(ctx, &storage.UploadRequest{
			Key:         key,
			Reader:      attachment.Reader,
			ContentType: attachment.ContentType,
			Size:        attachment.Size,
		})
		if uploadErr != nil {
			s.cleanupAttachments(ctx, keys)
			return nil, nil, fmt.Errorf("failed to store claim attachment %s: %w", attachment.FileName, uploadErr)
		}

		paths = append(paths, response.URL)
		keys = append(keys, key)
	}

	return paths, keys, nil
}

func (s *claimService) cleanupAttachments(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.storage.Delete(ctx, key); err != nil {
			s.logger.WithError(err).WithField("key", key).Warn("failed to clean up claim attachment")
		}
	}
}
