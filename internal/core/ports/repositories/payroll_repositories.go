package repositories

import (
	"context"
	"time"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
)

// EmployeeReader defines read operations for employees
type EmployeeReader interface {
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	FindEmployeeByCode(ctx context.Context, employeeCode string) (*domain.Employee, error)
	FindEmployees(ctx context.Context, activeOnly bool, limit int, offset int) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employees
type EmployeeWriter interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
	DeactivateEmployee(ctx context.Context, employeeID string, userID string, now time.Time) error
}

// EmployeeRepositoryFacade combines all employee repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}

// PayrollReader defines read operations for payroll records
type PayrollReader interface {
	FindPayrollRecordByID(ctx context.Context, recordID string) (*domain.PayrollRecord, error)

	// FindPayrollRecord retrieves the record for an employee and month, if any.
	FindPayrollRecord(ctx context.Context, employeeID string, month string) (*domain.PayrollRecord, error)

	// FindPayrollRecordsByMonth retrieves all records for a month.
	FindPayrollRecordsByMonth(ctx context.Context, month string) ([]domain.PayrollRecord, error)
}

// PayrollWriter defines write operations for payroll records
type PayrollWriter interface {
	SavePayrollRecord(ctx context.Context, record domain.PayrollRecord) error

	// UpdatePayrollRecord replaces a draft record's computed fields or flips status.
	UpdatePayrollRecord(ctx context.Context, record domain.PayrollRecord) error
}

// PayrollRepositoryFacade combines all payroll repository interfaces
type PayrollRepositoryFacade interface {
	PayrollReader
	PayrollWriter
}

// AdvanceReader defines read operations for advance payments
type AdvanceReader interface {
	// FindAdvanceByID retrieves an advance with its full transaction list.
	FindAdvanceByID(ctx context.Context, advanceID string) (*domain.AdvancePayment, error)

	// FindActiveAdvanceByEmployee retrieves the employee's active advance, if any.
	FindActiveAdvanceByEmployee(ctx context.Context, employeeID string) (*domain.AdvancePayment, error)

	// FindAdvancesByEmployee retrieves all advances for an employee, newest first.
	FindAdvancesByEmployee(ctx context.Context, employeeID string) ([]domain.AdvancePayment, error)
}

// AdvanceWriter defines write operations for advance payments
type AdvanceWriter interface {
	// SaveAdvance persists a new advance with its initial disbursement transaction.
	SaveAdvance(ctx context.Context, advance domain.AdvancePayment) error

	// AppendTransaction atomically appends a ledger entry and persists the new
	// balance and status on the advance row.
	AppendTransaction(ctx context.Context, advance domain.AdvancePayment, txn domain.AdvanceTransaction) error
}

// AdvanceRepositoryFacade combines all advance repository interfaces
type AdvanceRepositoryFacade interface {
	AdvanceReader
	AdvanceWriter
}

// LeaveReader defines read operations for leave requests
type LeaveReader interface {
	FindLeaveRequestByID(ctx context.Context, leaveRequestID string) (*domain.LeaveRequest, error)
	FindLeaveRequestsByEmployee(ctx context.Context, employeeID string, limit int, offset int) ([]domain.LeaveRequest, error)
}

// LeaveWriter defines write operations for leave requests
type LeaveWriter interface {
	SaveLeaveRequest(ctx context.Context, leave domain.LeaveRequest) error
	UpdateLeaveRequest(ctx context.Context, leave domain.LeaveRequest) error
}

// LeaveRepositoryFacade combines all leave repository interfaces
type LeaveRepositoryFacade interface {
	LeaveReader
	LeaveWriter
}
