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

type VehicleService interface {
	AddVehicle(ctx context.Context, vehicle *models.Vehicle) error
	UpdateVehicle(ctx context.Context, customerID primitive.ObjectID, vehicle *models.Vehicle) error
	UpdateVehicleByAdmin(ctx context.Context, vehicle *models.Vehicle) error
	DeleteVehicle(ctx context.Context, id primitive.ObjectID) error

	GetVehicleByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error)
	GetVehiclesByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]*models.Vehicle, error)
	GetAllVehicles(ctx context.Context) ([]*models.Vehicle, error)
	ListVehicles(ctx context.Context, params *utils.PaginationParams) ([]*models.Vehicle, int64, error)
}

type vehicleService struct {
	vehicleRepo  interfaces.VehicleRepository
	customerRepo interfaces.CustomerRepository
	logger       *logger.Logger
}

func NewVehicleService(
	vehicleRepo interfaces.VehicleRepository,
	customerRepo interfaces.CustomerRepository,
	logger *logger.Logger,
) VehicleService {
	return &vehicleService{
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (s *vehicleService) AddVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	if err := s.validateVehicle(vehicle); err != nil {
		return err
	}

	if _, err := s.customerRepo.GetByID(ctx, vehicle.CustomerID); err != nil {
		return err
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"vehicle_id":          vehicle.ID.Hex(),
		"customer_id":         vehicle.CustomerID.Hex(),
		"registration_number": vehicle.RegistrationNumber,
	}).Info("vehicle registered")

	return nil
}

// UpdateVehicle applies a customer's changes to their own vehicle. Ownership
// is checked against the stored record, not the request payload.
func (s *vehicleService) UpdateVehicle(ctx context.Context, customerID primitive.ObjectID, vehicle *models.Vehicle) error {
	if vehicle == nil || vehicle.ID.IsZero() {
		return utils.NewValidationError("a valid vehicle ID is required")
	}

	existing, err := s.vehicleRepo.GetByID(ctx, vehicle.ID)
	if err != nil {
		return err
	}
	if existing.CustomerID != customerID {
		return utils.NewNotFoundError("vehicle with ID %s not found", vehicle.ID.Hex())
	}

	vehicle.CustomerID = existing.CustomerID
	return s.applyUpdate(ctx, vehicle)
}

func (s *vehicleService) UpdateVehicleByAdmin(ctx context.Context, vehicle *models.Vehicle) error {
	if vehicle == nil || vehicle.ID.IsZero() {
		return utils.NewValidationError("a valid vehicle ID is required")
	}

	existing, err := s.vehicleRepo.GetByID(ctx, vehicle.ID)
	if err != nil {
		return err
	}
	if vehicle.CustomerID.IsZero() {
		vehicle.CustomerID = existing.CustomerID
	}
	return s.applyUpdate(ctx, vehicle)
}

func (s *vehicleService) applyUpdate(ctx context.Context, vehicle *models.Vehicle) error {
	if err := s.validateVehicle(vehicle); err != nil {
		return err
	}

	updates := map[string]interface{}{
		"registration_number": strings.ToUpper(strings.TrimSpace(vehicle.RegistrationNumber)),
		"make":                strings.TrimSpace(vehicle.Make),
		"model":               strings.TrimSpace(vehicle.Model),
		"year_of_manufacture": vehicle.YearOfManufacture,
		"category":            vehicle.Category,
	}

	if err := s.vehicleRepo.Update(ctx, vehicle.ID, updates); err != nil {
		return err
	}

	s.logger.WithField("vehicle_id", vehicle.ID.Hex()).Info("vehicle updated")
	return nil
}

// DeleteVehicle removes a vehicle. The repository refuses the delete while
// policies still reference the vehicle.
func (s *vehicleService) DeleteVehicle(ctx context.Context, id primitive.ObjectID) error {
	if id.IsZero() {
		return utils.NewValidationError("a valid vehicle ID is required")
	}

	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.WithField("vehicle_id", id.Hex()).Info("vehicle deleted")
	return nil
}

func (s *vehicleService) GetVehicleByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	if id.IsZero() {
		return nil, utils.NewValidationError("a valid vehicle ID is required")
	}
	return s.vehicleRepo.GetByIDWithCustomer(ctx, id)
}

func (s *vehicleService) GetVehiclesByCustomerID(ctx context.Context, customerID primitive.ObjectID) ([]*models.Vehicle, error) {
	if customerID.IsZero() {
		return nil, utils.NewValidationError("a valid customer ID is required to retrieve vehicles")
	}
	return s.vehicleRepo.GetByCustomerID(ctx, customerID)
}

func (s *vehicleService) GetAllVehicles(ctx context.Context) ([]*models.Vehicle, error) {
	return s.vehicleRepo.GetAllWithCustomer(ctx)
}

func (s *vehicleService) ListVehicles(ctx context.Context, params *utils.PaginationParams) ([]*models.Vehicle, int64, error) {
	return s.vehicleRepo.List(ctx, params)
}

func (s *vehicleService) validateVehicle(vehicle *models.Vehicle) error {
	if vehicle == nil {
		return utils.NewValidationError("vehicle is required")
	}
	if vehicle.CustomerID.IsZero() {
		return utils.NewValidationError("a valid customer ID is required")
	}
	if utils.IsBlank(vehicle.RegistrationNumber) {
		return utils.NewValidationError("registration number is required")
	}
	if utils.IsBlank(vehicle.Make) {
		return utils.NewValidationError("vehicle make is required")
	}
	if utils.IsBlank(vehicle.Model) {
		return utils.NewValidationError("vehicle model is required")
	}
	currentYear := time.Now().Year()
	if vehicle.YearOfManufacture < utils.MinManufactureYear || vehicle.YearOfManufacture > currentYear {
		return utils.NewValidationError("year of manufacture must be between %d and %d", utils.MinManufactureYear, currentYear)
	}
	if !vehicle.Category.IsValid() {
		return utils.NewValidationError("invalid vehicle category: %s", vehicle.Category)
	}
	return nil
}
