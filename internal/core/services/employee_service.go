package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/salilgupta4/absoms-backend/internal/apperrors"
	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portsrepo "github.com/salilgupta4/absoms-backend/internal/core/ports/repositories"
	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// employeeService provides employee master-data operations.
type employeeService struct {
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: employeeRepo}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// buildBankAccounts maps bank account requests, keeping the default flag on
// the first claimant only.
func buildBankAccounts(reqs []dto.BankAccountRequest) []domain.BankAccount {
	accounts := make([]domain.BankAccount, len(reqs))
	defaultSeen := false
	for i, b := range reqs {
		isDefault := b.IsDefault && !defaultSeen
		if isDefault {
			defaultSeen = true
		}
		accounts[i] = domain.BankAccount{
			BankAccountID: uuid.NewString(),
			BankName:      b.BankName,
			AccountNumber: b.AccountNumber,
			IFSC:          b.IFSC,
			IsDefault:     isDefault,
		}
	}
	if !defaultSeen && len(accounts) > 0 {
		accounts[0].IsDefault = true
	}
	return accounts
}

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, userID string) (*domain.Employee, error) {
	if req.Basic.IsNegative() || req.HRA.IsNegative() || req.SpecialAllowances.IsNegative() {
		return nil, fmt.Errorf("salary components must not be negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	employee := domain.Employee{
		EmployeeID:        uuid.NewString(),
		EmployeeCode:      req.EmployeeCode,
		Name:              req.Name,
		Designation:       req.Designation,
		JoiningDate:       req.JoiningDate,
		Basic:             req.Basic,
		HRA:               req.HRA,
		SpecialAllowances: req.SpecialAllowances,
		BankAccounts:      buildBankAccounts(req.BankAccounts),
		IsActive:          true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("employee code %q is taken: %w", req.EmployeeCode, apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return &employee, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee %s: %w", employeeID, err)
	}
	return employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context, activeOnly bool, limit int, offset int) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.FindEmployees(ctx, activeOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, userID string) (*domain.Employee, error) {
	if req.Basic.IsNegative() || req.HRA.IsNegative() || req.SpecialAllowances.IsNegative() {
		return nil, fmt.Errorf("salary components must not be negative: %w", apperrors.ErrValidation)
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	employee.Name = req.Name
	employee.Designation = req.Designation
	employee.Basic = req.Basic
	employee.HRA = req.HRA
	employee.SpecialAllowances = req.SpecialAllowances
	employee.BankAccounts = buildBankAccounts(req.BankAccounts)
	employee.LastUpdatedAt = time.Now()
	employee.LastUpdatedBy = userID

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		return nil, fmt.Errorf("failed to update employee %s: %w", employeeID, err)
	}
	return employee, nil
}

func (s *employeeService) DeactivateEmployee(ctx context.Context, employeeID string, userID string) error {
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID); err != nil {
		return err
	}
	return s.employeeRepo.DeactivateEmployee(ctx, employeeID, userID, time.Now())
}
