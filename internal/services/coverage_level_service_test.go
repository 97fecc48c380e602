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

func newCoverageLevelServiceFixture(t *testing.T) (*fakeCoverageLevelRepo, CoverageLevelService) {
	t.Helper()
	repo := newFakeCoverageLevelRepo()
	return repo, NewCoverageLevelService(repo, newTestLogger(t))
}

func validCoverageLevel() *models.CoverageLevel {
	return &models.CoverageLevel{
		Name:               "Comprehensive",
		Description:        "Full cover including own damage",
		PremiumMultiplier:  1.5,
		CoverageMultiplier: 2.0,
	}
}

func TestCreateCoverageLevel(t *testing.T) {
	repo, service := newCoverageLevelServiceFixture(t)
	ctx := context.Background()

	level := validCoverageLevel()
	level.Name = "  Comprehensive  "

	require.NoError(t, service.CreateCoverageLevel(ctx, level))
	assert.False(t, level.ID.IsZero())
	assert.Equal(t, "Comprehensive", level.Name)

	stored, err := repo.GetByID(ctx, level.ID)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, stored.PremiumMultiplier, 0.001)
}

func TestCoverageLevelValidation(t *testing.T) {
	_, service := newCoverageLevelServiceFixture(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.CoverageLevel)
	}{
		{"blank name", func(l *models.CoverageLevel) { l.Name = "  " }},
		{"name too long", func(l *models.CoverageLevel) { l.Name = strings.Repeat("x", utils.MaxCoverageLevelNameLength+1) }},
		{"premium multiplier below range", func(l *models.CoverageLevel) { l.PremiumMultiplier = 0.05 }},
		{"premium multiplier above range", func(l *models.CoverageLevel) { l.PremiumMultiplier = 10.1 }},
		{"coverage multiplier below range", func(l *models.CoverageLevel) { l.CoverageMultiplier = 0 }},
		{"coverage multiplier above range", func(l *models.CoverageLevel) { l.CoverageMultiplier = 11 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := validCoverageLevel()
			tt.mutate(level)

			err := service.CreateCoverageLevel(ctx, level)
			require.Error(t, err)
			assert.True(t, utils.IsValidationError(err))
		})
	}

	err := service.CreateCoverageLevel(ctx, nil)
	require.Error(t, err)
	assert.True(t, utils.IsValidationError(err))
}

func TestCoverageLevelBoundaryMultipliersAreAccepted(t *testing.T) {
	_, service := newCoverageLevelServiceFixture(t)
	ctx := context.Background()

	level := validCoverageLevel()
	level.PremiumMultiplier = utils.MinMultiplier
	level.CoverageMultiplier = utils.MaxMultiplier

	require.NoError(t, service.CreateCoverageLevel(ctx, level))
}

func TestUpdateCoverageLevel(t *testing.T) {
	repo, service := newCoverageLevelServiceFixture(t)
	ctx := context.Background()

	level := validCoverageLevel()
	require.NoError(t, service.CreateCoverageLevel(ctx, level))

	update := &models.CoverageLevel{
		ID:                 level.ID,
		Name:               " Third Party ",
		Description:        " Liability only ",
		PremiumMultiplier:  0.8,
		CoverageMultiplier: 0.5,
	}

	require.NoError(t, service.UpdateCoverageLevel(ctx, update))

	stored, err := repo.GetByID(ctx, level.ID)
	require.NoError(t, err)
	assert.Equal(t, "Third Party", stored.Name)
	assert.Equal(t, "Liability only", stored.Description)
	assert.InDelta(t, 0.8, stored.PremiumMultiplier, 0.001)
	assert.InDelta(t, 0.5, stored.CoverageMultiplier, 0.001)
}

func TestUpdateCoverageLevelUnknownID(t *testing.T) {
	_, service := newCoverageLevelServiceFixture(t)

	update := validCoverageLevel()
	update.ID = primitive.NewObjectID()

	err := service.UpdateCoverageLevel(context.Background(), update)
	require.Error(t, err)
	assert.True(t, utils.IsNotFound(err))
}

func TestDeleteCoverageLevel(t *testing.T) {
	repo, service := newCoverageLevelServiceFixture(t)
	ctx := context.Background()

	level := validCoverageLevel()
	require.NoError(t, service.CreateCoverageLevel(ctx, level))

	require.NoError(t, service.DeleteCoverageLevel(ctx, level.ID))
	_, err := repo.GetByID(ctx, level.ID)
	assert.True(t, utils.IsNotFound(err))

	err = service.DeleteCoverageLevel(ctx, primitive.NilObjectID)
	require.Error(t, err)
	assert.True(t, utils.IsValidationError(err))
}

func TestCoverageLevelReads(t *testing.T) {
	_, service := newCoverageLevelServiceFixture(t)
	ctx := context.Background()

	level := validCoverageLevel()
	require.NoError(t, service.CreateCoverageLevel(ctx, level))

	got, err := service.GetCoverageLevelByID(ctx, level.ID)
	require.NoError(t, err)
	assert.Equal(t, level.Name, got.Name)

	all, err := service.GetAllCoverageLevels(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = service.GetCoverageLevelByID(ctx, primitive.NilObjectID)
	assert.True(t, utils.IsValidationError(err))
}
