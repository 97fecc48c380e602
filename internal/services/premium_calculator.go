package services

import (
	"math"
	"time"

	"goinsure/internal/models"
	"goinsure/internal/utils"
)

type baseRate struct {
	Premium  float64
	Coverage float64
}

// Base premium and coverage by vehicle category.
var baseRates = map[models.VehicleCategory]baseRate{
	models.VehicleCategoryCar:   {Premium: 500, Coverage: 50000},
	models.VehicleCategoryBike:  {Premium: 200, Coverage: 20000},
	models.VehicleCategoryTruck: {Premium: 800, Coverage: 100000},
	models.VehicleCategoryJeep:  {Premium: 600, Coverage: 75000},
}

var defaultBaseRate = baseRate{Premium: 400, Coverage: 40000}

// CalculatePremiumAndCoverage derives a policy's premium and coverage amounts
// from the vehicle's category and age and the coverage level's multipliers.
//
// Vehicles older than 10 years cost more to insure and are covered for less;
// vehicles younger than 3 years are favored with higher coverage. Both results
// are clamped to a minimum of 1 and rounded half-away-from-zero to 2 decimal
// places. The function is pure and safe for concurrent use.
func CalculatePremiumAndCoverage(vehicle *models.Vehicle, level *models.CoverageLevel) (float64, float64, error) {
	if vehicle == nil {
		return 0, 0, utils.NewValidationError("vehicle is required for premium calculation")
	}
	if level == nil {
		return 0, 0, utils.NewValidationError("coverage level is required for premium calculation")
	}

	rate, ok := baseRates[vehicle.Category]
	if !ok {
		rate = defaultBaseRate
	}
	premium := rate.Premium
	coverage := rate.Coverage

	age := time.Now().Year() - vehicle.YearOfManufacture
	if age > 10 {
		premium *= 1.10
		coverage *= 0.80
	} else if age < 3 {
		premium *= 1.05
		coverage *= 1.20
	}

	premium *= level.PremiumMultiplier
	coverage *= level.CoverageMultiplier

	premium = math.Max(1, premium)
	coverage = math.Max(1, coverage)

	return utils.RoundCurrency(premium), utils.RoundCurrency(coverage), nil
}
