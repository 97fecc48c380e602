package services

import (
	"context"
	"strings"

	"goinsure/internal/models"
	"goinsure/internal/repositories/interfaces"
	"goinsure/internal/utils"
	"goinsure/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CoverageLevelService interface {
	CreateCoverageLevel(ctx context.Context, level *models.CoverageLevel) error
	UpdateCoverageLevel(ctx context.Context, level *models.CoverageLevel) error
	DeleteCoverageLevel(ctx context.Context, id primitive.ObjectID) error

	GetCoverageLevelByID(ctx context.Context, id primitive.ObjectID) (*models.CoverageLevel, error)
	GetAllCoverageLevels(ctx context.Context) ([]*models.CoverageLevel, error)
}

type coverageLevelService struct {
	coverageLevelRepo interfaces.CoverageLevelRepository
	logger            *logger.Logger
}

func NewCoverageLevelService(
	coverageLevelRepo interfaces.CoverageLevelRepository,
	logger *logger.Logger,
) CoverageLevelService {
	return &coverageLevelService{
		coverageLevelRepo: coverageLevelRepo,
		logger:            logger,
	}
}

func (s *coverageLevelService) CreateCoverageLevel(ctx context.Context, level *models.CoverageLevel) error {
	if err := s.validateCoverageLevel(level); err != nil {
		return err
	}

	level.Name = strings.TrimSpace(level.Name)
	if err := s.coverageLevelRepo.Create(ctx, level); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"coverage_level_id": level.ID.Hex(),
		"name":              level.Name,
	}).Info("coverage level created")

	return nil
}

// UpdateCoverageLevel changes a tier's definition. Policies already written
// against the tier keep their computed amounts.
func (s *coverageLevelService) UpdateCoverageLevel(ctx context.Context, level *models.CoverageLevel) error {
	if level == nil || level.ID.IsZero() {
		return utils.NewValidationError("a valid coverage level ID is required")
	}
	if err := s.validateCoverageLevel(level); err != nil {
		return err
	}

	if _, err := s.coverageLevelRepo.GetByID(ctx, level.ID); err != nil {
		return err
	}

	updates := map[string]interface{}{
		"name":                strings.TrimSpace(level.Name),
		"description":         strings.TrimSpace(level.Description),
		"premium_multiplier":  level.PremiumMultiplier,
		"coverage_multiplier": level.CoverageMultiplier,
	}

	if err := s.coverageLevelRepo.Update(ctx, level.ID, updates); err != nil {
		return err
	}

	s.logger.WithField("coverage_level_id", level.ID.Hex()).Info("coverage level updated")
	return nil
}

func (s *coverageLevelService) DeleteCoverageLevel(ctx context.Context, id primitive.ObjectID) error {
	if id.IsZero() {
		return utils.NewValidationError("a valid coverage level ID is required")
	}

	if err := s.coverageLevelRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.WithField("coverage_level_id", id.Hex()).Info("coverage level deleted")
	return nil
}

func (s *coverageLevelService) GetCoverageLevelByID(ctx context.Context, id primitive.ObjectID) (*models.CoverageLevel, error) {
	if id.IsZero() {
		return nil, utils.NewValidationError("a valid coverage level ID is required")
	}
	return s.coverageLevelRepo.GetByID(ctx, id)
}

func (s *coverageLevelService) GetAllCoverageLevels(ctx context.Context) ([]*models.CoverageLevel, error) {
	return s.coverageLevelRepo.GetAll(ctx)
}

func (s *coverageLevelService) validateCoverageLevel(level *models.CoverageLevel) error {
	if level == nil {
		return utils.NewValidationError("coverage level is required")
	}
	if utils.IsBlank(level.Name) {
		return utils.NewValidationError("coverage level name is required")
	}
	if len(strings.TrimSpace(level.Name)) > utils.MaxCoverageLevelNameLength {
		return utils.NewValidationError("coverage level name cannot exceed %d characters", utils.MaxCoverageLevelNameLength)
	}
	if level.PremiumMultiplier < utils.MinMultiplier || level.PremiumMultiplier > utils.MaxMultiplier {
		return utils.NewValidationError("premium multiplier must be between %.1f and %.1f", utils.MinMultiplier, utils.MaxMultiplier)
	}
	if level.CoverageMultiplier < utils.MinMultiplier || level.CoverageMultiplier > utils.MaxMultiplier {
		return utils.NewValidationError("coverage multiplier must be between %.1f and %.1f", utils.MinMultiplier, utils.MaxMultiplier)
	}
	return nil
}
