package services

import (
	"context"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// EmployeeReaderSvc defines read operations for employees
type EmployeeReaderSvc interface {
	// GetEmployeeByID retrieves an employee with their bank accounts.
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves a paginated list of employees.
	ListEmployees(ctx context.Context, activeOnly bool, limit int, offset int) ([]domain.Employee, error)
}

// EmployeeWriterSvc defines write operations for employees
type EmployeeWriterSvc interface {
	// CreateEmployee persists a new employee with their salary structure.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, userID string) (*domain.Employee, error)

	// UpdateEmployee updates an employee's details and bank accounts.
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, userID string) (*domain.Employee, error)

	// DeactivateEmployee soft-deletes an employee. Past payroll records remain.
	DeactivateEmployee(ctx context.Context, employeeID string, userID string) error
}

// EmployeeSvcFacade combines all employee service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
}

// PayrollReaderSvc defines read operations for payroll records
type PayrollReaderSvc interface {
	// GetPayrollRecordByID retrieves a single payroll record.
	GetPayrollRecordByID(ctx context.Context, recordID string) (*domain.PayrollRecord, error)

	// ListPayrollRecordsByMonth retrieves all records for a month (YYYY-MM).
	ListPayrollRecordsByMonth(ctx context.Context, month string) ([]domain.PayrollRecord, error)
}

// PayrollComputeSvc defines the payroll computation operations
type PayrollComputeSvc interface {
	// ComputePayroll computes (or recomputes) a DRAFT payroll record for one
	// employee and month. Statutory deductions and the proposed advance
	// deduction are derived here; nothing touches the advance ledger yet.
	ComputePayroll(ctx context.Context, req dto.ComputePayrollRequest, userID string) (*domain.PayrollRecord, error)

	// ApprovePayroll finalizes a DRAFT record. If it carries an advance
	// deduction, the corresponding ledger entry is appended atomically.
	ApprovePayroll(ctx context.Context, recordID string, userID string) (*domain.PayrollRecord, error)
}

// PayrollSvcFacade combines all payroll service interfaces
type PayrollSvcFacade interface {
	PayrollReaderSvc
	PayrollComputeSvc
}
