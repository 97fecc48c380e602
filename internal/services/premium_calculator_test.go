package services

import (
	"testing"
	"time"

	"goinsure/internal/models"
	"goinsure/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePremiumAndCoverage(t *testing.T) {
	currentYear := time.Now().Year()

	tests := []struct {
		name               string
		category           models.VehicleCategory
		yearOfManufacture  int
		premiumMultiplier  float64
		coverageMultiplier float64
		wantPremium        float64
		wantCoverage       float64
	}{
		{
			name:               "old car pays an age surcharge and loses coverage",
			category:           models.VehicleCategoryCar,
			yearOfManufacture:  currentYear - 15,
			premiumMultiplier:  1.2,
			coverageMultiplier: 1.5,
			wantPremium:        660.00,
			wantCoverage:       60000.00,
		},
		{
			name:               "new bike gets the young-vehicle bonus",
			category:           models.VehicleCategoryBike,
			yearOfManufacture:  currentYear - 1,
			premiumMultiplier:  1.2,
			coverageMultiplier: 1.5,
			wantPremium:        252.00,
			wantCoverage:       36000.00,
		},
		{
			name:               "mid-age truck has no age adjustment",
			category:           models.VehicleCategoryTruck,
			yearOfManufacture:  currentYear - 5,
			premiumMultiplier:  1.0,
			coverageMultiplier: 1.0,
			wantPremium:        800.00,
			wantCoverage:       100000.00,
		},
		{
			name:               "jeep base rates",
			category:           models.VehicleCategoryJeep,
			yearOfManufacture:  currentYear - 5,
			premiumMultiplier:  1.0,
			coverageMultiplier: 1.0,
			wantPremium:        600.00,
			wantCoverage:       75000.00,
		},
		{
			name:               "unknown category falls back to the default rate",
			category:           models.VehicleCategoryOther,
			yearOfManufacture:  currentYear - 5,
			premiumMultiplier:  1.0,
			coverageMultiplier: 1.0,
			wantPremium:        400.00,
			wantCoverage:       40000.00,
		},
		{
			name:               "exactly 10 years old is not surcharged",
			category:           models.VehicleCategoryCar,
			yearOfManufacture:  currentYear - 10,
			premiumMultiplier:  1.0,
			coverageMultiplier: 1.0,
			wantPremium:        500.00,
			wantCoverage:       50000.00,
		},
		{
			name:               "exactly 3 years old gets no bonus",
			category:           models.VehicleCategoryCar,
			yearOfManufacture:  currentYear - 3,
			premiumMultiplier:  1.0,
			coverageMultiplier: 1.0,
			wantPremium:        500.00,
			wantCoverage:       50000.00,
		},
		{
			name:               "results are rounded to two decimal places",
			category:           models.VehicleCategoryBike,
			yearOfManufacture:  currentYear - 15,
			premiumMultiplier:  0.333,
			coverageMultiplier: 0.333,
			// 200 * 1.10 * 0.333 = 73.26, 20000 * 0.80 * 0.333 = 5328
			wantPremium:  73.26,
			wantCoverage: 5328.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vehicle := &models.Vehicle{
				Category:          tt.category,
				YearOfManufacture: tt.yearOfManufacture,
			}
			level := &models.CoverageLevel{
				PremiumMultiplier:  tt.premiumMultiplier,
				CoverageMultiplier: tt.coverageMultiplier,
			}

			premium, coverage, err := CalculatePremiumAndCoverage(vehicle, level)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantPremium, premium, 0.001)
			assert.InDelta(t, tt.wantCoverage, coverage, 0.001)
		})
	}
}

func TestCalculatePremiumAndCoverageClampsToMinimum(t *testing.T) {
	vehicle := &models.Vehicle{
		Category:          models.VehicleCategoryBike,
		YearOfManufacture: time.Now().Year() - 20,
	}
	// Multipliers far below any base rate push both results under 1.
	level := &models.CoverageLevel{
		PremiumMultiplier:  0.000001,
		CoverageMultiplier: 0.000001,
	}

	premium, coverage, err := CalculatePremiumAndCoverage(vehicle, level)
	require.NoError(t, err)
	assert.Equal(t, 1.0, premium)
	assert.Equal(t, 1.0, coverage)
}

func TestCalculatePremiumAndCoverageRequiresInputs(t *testing.T) {
	level := &models.CoverageLevel{PremiumMultiplier: 1, CoverageMultiplier: 1}
	vehicle := &models.Vehicle{Category: models.VehicleCategoryCar, YearOfManufacture: 2020}

	_, _, err := CalculatePremiumAndCoverage(nil, level)
	require.Error(t, err)
	assert.True(t, utils.IsValidationError(err))

	_, _, err = CalculatePremiumAndCoverage(vehicle, nil)
	require.Error(t, err)
	assert.True(t, utils.IsValidationError(err))
}
