package services

import (
	"context"

	"goinsure/internal/models"
	"goinsure/internal/repositories/interfaces"
	"goinsure/internal/utils"
	"goinsure/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportService flattens the core entities into read-only projection rows.
// It never mutates state; expiry reconciliation stays with PolicyService.
type ReportService interface {
	CustomerPolicyReport(ctx context.Context, customerID primitive.ObjectID) ([]*models.CustomerPolicyReportRow, error)
	CustomerClaimReport(ctx context.Context, customerID primitive.ObjectID) ([]*models.CustomerClaimReportRow, error)

	AdminPolicyReport(ctx context.Context) ([]*models.AdminPolicyReportRow, error)
	AdminClaimReport(ctx context.Context) ([]*models.AdminClaimReportRow, error)
	AdminVehicleReport(ctx context.Context) ([]*models.AdminVehicleReportRow, error)
	AdminCustomerReport(ctx context.Context) ([]*models.AdminCustomerReportRow, error)
}

type reportService struct {
	policyRepo   interfaces.PolicyRepository
	claimRepo    interfaces.ClaimRepository
	vehicleRepo  interfaces.VehicleRepository
	customerRepo interfaces.CustomerRepository
	logger       *logger.Logger
}

func NewReportService(
	policyRepo interfaces.PolicyRepository,
	claimRepo interfaces.ClaimRepository,
	vehicleRepo interfaces.VehicleRepository,
	customerRepo interfaces.CustomerRepository,
	logger *logger.Logger,
) ReportService {
	return &reportService{
		policyRepo:   policyRepo,
		claimRepo:    claimRepo,
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (s *reportService) CustomerPolicyReport(ctx context.Context, customerID primitive.ObjectID) ([]*models.CustomerPolicyReportRow, error) {
	if customerID.IsZero() {
		return nil, utils.NewValidationError("a valid customer ID is required")
	}

	policies, err := s.policyRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	rows := make([]*models.CustomerPolicyReportRow, 0, len(policies))
	for _, policy := range policies {
		row := &models.CustomerPolicyReportRow{
			PolicyID:       policy.ID,
			PolicyNumber:   policy.PolicyNumber,
			CoverageAmount: policy.CoverageAmount,
			PremiumAmount:  policy.PremiumAmount,
			StartDate:      policy.StartDate,
			EndDate:        policy.EndDate,
			Status:         policy.Status,
		}
		if policy.Vehicle != nil {
			row.VehicleRegistrationNumber = policy.Vehicle.RegistrationNumber
			row.VehicleMake = policy.Vehicle.Make
			row.VehicleModel = policy.Vehicle.Model
			row.VehicleYear = policy.Vehicle.YearOfManufacture
			row.VehicleCategory = policy.Vehicle.Category
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (s *reportService) CustomerClaimReport(ctx context.Context, customerID primitive.ObjectID) ([]*models.CustomerClaimReportRow, error) {
	if customerID.IsZero() {
		return nil, utils.NewValidationError("a valid customer ID is required")
	}

	claims, err := s.claimRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	rows := make([]*models.CustomerClaimReportRow, 0, len(claims))
	for _, claim := range claims {
		row := &models.CustomerClaimReportRow{
			ClaimID:     claim.ID,
			PolicyID:    claim.PolicyID,
			ClaimAmount: claim.Amount,
			ClaimReason: claim.Reason,
			ClaimDate:   claim.ClaimDate,
			Status:      claim.Status,
		}
		if claim.Policy != nil {
			row.PolicyNumber = claim.Policy.PolicyNumber
			if claim.Policy.Vehicle != nil {
				row.VehicleRegistrationNumber = claim.Policy.Vehicle.RegistrationNumber
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (s *reportService) AdminPolicyReport(ctx context.Context) ([]*models.AdminPolicyReportRow, error) {
	policies, err := s.policyRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]*models.AdminPolicyReportRow, 0, len(policies))
	for _, policy := range policies {
		row := &models.AdminPolicyReportRow{
			PolicyID:       policy.ID,
			PolicyNumber:   policy.PolicyNumber,
			VehicleID:      policy.VehicleID,
			CoverageAmount: policy.CoverageAmount,
			PremiumAmount:  policy.PremiumAmount,
			StartDate:      policy.StartDate,
			EndDate:        policy.EndDate,
			Status:         policy.Status,
		}
		if policy.Vehicle != nil {
			row.VehicleRegistrationNumber = policy.Vehicle.RegistrationNumber
			row.VehicleMake = policy.Vehicle.Make
			row.VehicleModel = policy.Vehicle.Model
			row.VehicleYear = policy.Vehicle.YearOfManufacture
			row.VehicleCategory = policy.Vehicle.Category
			row.CustomerID = policy.Vehicle.CustomerID
			if policy.Vehicle.Customer != nil {
				row.CustomerName = policy.Vehicle.Customer.Name
				row.CustomerEmail = policy.Vehicle.Customer.Email
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (s *reportService) AdminClaimReport(ctx context.Context) ([]*models.AdminClaimReportRow, error) {
	claims, err := s.claimRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]*models.AdminClaimReportRow, 0, len(claims))
	for _, claim := range claims {
		row := &models.AdminClaimReportRow{
			ClaimID:     claim.ID,
			PolicyID:    claim.PolicyID,
			ClaimAmount: claim.Amount,
			ClaimReason: claim.Reason,
			ClaimDate:   claim.ClaimDate,
			Status:      claim.Status,
		}
		if claim.Policy != nil {
			row.PolicyNumber = claim.Policy.PolicyNumber
			row.VehicleID = claim.Policy.VehicleID
			if claim.Policy.Vehicle != nil {
				row.VehicleRegistrationNumber = claim.Policy.Vehicle.RegistrationNumber
				row.CustomerID = claim.Policy.Vehicle.CustomerID
				if claim.Policy.Vehicle.Customer != nil {
					row.CustomerName = claim.Policy.Vehicle.Customer.Name
					row.CustomerEmail = claim.Policy.Vehicle.Customer.Email
				}
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (s *reportService) AdminVehicleReport(ctx context.Context) ([]*models.AdminVehicleReportRow, error) {
	vehicles, err := s.vehicleRepo.GetAllWithCustomer(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]*models.AdminVehicleReportRow, 0, len(vehicles))
	for _, vehicle := range vehicles {
		row := &models.AdminVehicleReportRow{
			VehicleID:          vehicle.ID,
			RegistrationNumber: vehicle.RegistrationNumber,
			Make:               vehicle.Make,
			Model:              vehicle.Model,
			YearOfManufacture:  vehicle.YearOfManufacture,
			Category:           vehicle.Category,
			CustomerID:         vehicle.CustomerID,
		}
		if vehicle.Customer != nil {
			row.CustomerName = vehicle.Customer.Name
			row.CustomerEmail = vehicle.Customer.Email
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (s *reportService) AdminCustomerReport(ctx context.Context) ([]*models.AdminCustomerReportRow, error) {
	customers, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]*models.AdminCustomerReportRow, 0, len(customers))
	for _, customer := range customers {
		row := &models.AdminCustomerReportRow{
			CustomerID: customer.ID,
			Name:       customer.Name,
			Email:      customer.Email,
			Phone:      customer.Phone,
			Address:    customer.Address,
			IsActive:   customer.IsActive,
		}

		vehicles, err := s.vehicleRepo.GetByCustomerID(ctx, customer.ID)
		if err != nil {
			return nil, err
		}
		row.VehicleCount = len(vehicles)

		policies, err := s.policyRepo.GetByCustomerID(ctx, customer.ID)
		if err != nil {
			return nil, err
		}
		row.PolicyCount = len(policies)

		rows = append(rows, row)
	}

	return rows, nil
}
