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

// advanceService maintains salary advance ledgers. Every balance change goes
// through the transaction ledger; the stored balance is always the fold of
// the ledger entries.
type advanceService struct {
	advanceRepo  portsrepo.AdvanceRepositoryFacade
	employeeRepo portsrepo.EmployeeReader
}

// NewAdvanceService creates a new advance service.
func NewAdvanceService(advanceRepo portsrepo.AdvanceRepositoryFacade, employeeRepo portsrepo.EmployeeReader) portssvc.AdvanceSvcFacade {
	return &advanceService{
		advanceRepo:  advanceRepo,
		employeeRepo: employeeRepo,
	}
}

var _ portssvc.AdvanceSvcFacade = (*advanceService)(nil)

func (s *advanceService) CreateAdvance(ctx context.Context, req dto.CreateAdvanceRequest, userID string) (*domain.AdvancePayment, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("advance amount must be positive: %w", apperrors.ErrValidation)
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !employee.IsActive {
		return nil, fmt.Errorf("employee %s is inactive: %w", req.EmployeeID, apperrors.ErrValidation)
	}

	// One active advance per employee.
	existing, err := s.advanceRepo.FindActiveAdvanceByEmployee(ctx, req.EmployeeID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("employee %s already has an active advance: %w", req.EmployeeID, apperrors.ErrDuplicate)
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	advance := domain.AdvancePayment{
		AdvanceID:     uuid.NewString(),
		EmployeeID:    req.EmployeeID,
		Amount:        req.Amount,
		BalanceAmount: req.Amount,
		Status:        domain.AdvanceActive,
		Reason:        req.Reason,
		AuditFields:   audit,
	}
	advance.Transactions = []domain.AdvanceTransaction{{
		TransactionID: uuid.NewString(),
		AdvanceID:     advance.AdvanceID,
		Date:          req.Date,
		Type:          domain.AdvanceDisbursement,
		Amount:        req.Amount,
		Note:          req.Reason,
		AuditFields:   audit,
	}}

	if err := s.advanceRepo.SaveAdvance(ctx, advance); err != nil {
		return nil, fmt.Errorf("failed to create advance: %w", err)
	}
	return &advance, nil
}

func (s *advanceService) GetAdvanceByID(ctx context.Context, advanceID string) (*domain.AdvancePayment, error) {
	advance, err := s.advanceRepo.FindAdvanceByID(ctx, advanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get advance %s: %w", advanceID, err)
	}
	return advance, nil
}

func (s *advanceService) ListAdvancesByEmployee(ctx context.Context, employeeID string) ([]domain.AdvancePayment, error) {
	advances, err := s.advanceRepo.FindAdvancesByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances for employee %s: %w", employeeID, err)
	}
	return advances, nil
}

// RecordTopUp disburses further funds onto an existing advance. A settled
// advance comes back to ACTIVE, but only while the employee holds no other
// active advance.
func (s *advanceService) RecordTopUp(ctx context.Context, advanceID string, req dto.AdvanceTopUpRequest, userID string) (*domain.AdvancePayment, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("top-up amount must be positive: %w", apperrors.ErrValidation)
	}

	advance, err := s.advanceRepo.FindAdvanceByID(ctx, advanceID)
	if err != nil {
		return nil, err
	}

	if advance.Status != domain.AdvanceActive {
		active, err := s.advanceRepo.FindActiveAdvanceByEmployee(ctx, advance.EmployeeID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		if active != nil && active.AdvanceID != advanceID {
			return nil, fmt.Errorf("employee %s already has an active advance: %w", advance.EmployeeID, apperrors.ErrDuplicate)
		}
	}

	now := time.Now()
	txn := domain.AdvanceTransaction{
		TransactionID: uuid.NewString(),
		AdvanceID:     advance.AdvanceID,
		Date:          req.Date,
		Type:          domain.AdvanceDisbursement,
		Amount:        req.Amount,
		Note:          req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	advance.Transactions = append(advance.Transactions, txn)
	advance.Amount = advance.Amount.Add(req.Amount)
	advance.BalanceAmount = advance.ComputeBalance()
	advance.Status = domain.StatusForBalance(advance.BalanceAmount)
	advance.LastUpdatedAt = now
	advance.LastUpdatedBy = userID

	if err := s.advanceRepo.AppendTransaction(ctx, *advance, txn); err != nil {
		return nil, fmt.Errorf("failed to append top-up to advance %s: %w", advanceID, err)
	}
	return advance, nil
}

func (s *advanceService) RecordRepayment(ctx context.Context, advanceID string, req dto.AdvanceRepaymentRequest, userID string) (*domain.AdvancePayment, error) {
	return s.appendEntry(ctx, advanceID, domain.AdvanceTransaction{
		Date:   req.Date,
		Type:   domain.AdvanceRepayment,
		Amount: req.Amount,
		Note:   req.Note,
	}, userID)
}

func (s *advanceService) RecordDeduction(ctx context.Context, advanceID string, req dto.AdvanceDeductionRequest, userID string) (*domain.AdvancePayment, error) {
	return s.appendEntry(ctx, advanceID, domain.AdvanceTransaction{
		Date:            req.Date,
		Type:            domain.AdvanceDeduction,
		Amount:          req.Amount,
		Note:            req.Note,
		PayrollRecordID: req.PayrollRecordID,
	}, userID)
}

// appendEntry validates and appends a balance-reducing ledger entry, then
// derives the new balance and status from the full ledger.
func (s *advanceService) appendEntry(ctx context.Context, advanceID string, txn domain.AdvanceTransaction, userID string) (*domain.AdvancePayment, error) {
	if !txn.Amount.IsPositive() {
		return nil, fmt.Errorf("ledger amount must be positive: %w", apperrors.ErrValidation)
	}

	advance, err := s.advanceRepo.FindAdvanceByID(ctx, advanceID)
	if err != nil {
		return nil, err
	}
	if advance.Status != domain.AdvanceActive {
		return nil, fmt.Errorf("advance %s is not active: %w", advanceID, apperrors.ErrValidation)
	}
	// The balance never goes negative.
	if txn.Amount.GreaterThan(advance.BalanceAmount) {
		return nil, fmt.Errorf("amount %s exceeds outstanding balance %s: %w",
			txn.Amount, advance.BalanceAmount, apperrors.ErrValidation)
	}

	now := time.Now()
	txn.TransactionID = uuid.NewString()
	txn.AdvanceID = advance.AdvanceID
	txn.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	advance.Transactions = append(advance.Transactions, txn)
	advance.BalanceAmount = advance.ComputeBalance()
	advance.Status = domain.StatusForBalance(advance.BalanceAmount)
	advance.LastUpdatedAt = now
	advance.LastUpdatedBy = userID

	if err := s.advanceRepo.AppendTransaction(ctx, *advance, txn); err != nil {
		return nil, fmt.Errorf("failed to append ledger entry to advance %s: %w", advanceID, err)
	}
	return advance, nil
}
