package services

import (
	"context"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// AdvanceReaderSvc defines read operations for advance payments
type AdvanceReaderSvc interface {
	// GetAdvanceByID retrieves an advance with its full ledger.
	GetAdvanceByID(ctx context.Context, advanceID string) (*domain.AdvancePayment, error)

	// ListAdvancesByEmployee retrieves all advances for an employee, newest first.
	ListAdvancesByEmployee(ctx context.Context, employeeID string) ([]domain.AdvancePayment, error)
}

// AdvanceWriterSvc defines write operations for advance payments
type AdvanceWriterSvc interface {
	// CreateAdvance disburses a new advance. An employee may hold at most one
	// ACTIVE advance at a time.
	CreateAdvance(ctx context.Context, req dto.CreateAdvanceRequest, userID string) (*domain.AdvancePayment, error)

	// RecordTopUp appends a further disbursement to the ledger, raising both
	// the total disbursed amount and the outstanding balance. Topping up a
	// FULLY_DEDUCTED advance re-activates it, provided the employee holds no
	// other ACTIVE advance.
	RecordTopUp(ctx context.Context, advanceID string, req dto.AdvanceTopUpRequest, userID string) (*domain.AdvancePayment, error)

	// RecordRepayment appends a cash repayment to the ledger. The repayment may
	// not exceed the outstanding balance.
	RecordRepayment(ctx context.Context, advanceID string, req dto.AdvanceRepaymentRequest, userID string) (*domain.AdvancePayment, error)

	// RecordDeduction appends a payroll deduction to the ledger. Called by the
	// payroll approval flow, not exposed over HTTP directly.
	RecordDeduction(ctx context.Context, advanceID string, req dto.AdvanceDeductionRequest, userID string) (*domain.AdvancePayment, error)
}

// AdvanceSvcFacade combines all advance service interfaces
type AdvanceSvcFacade interface {
	AdvanceReaderSvc
	AdvanceWriterSvc
}
