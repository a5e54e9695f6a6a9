package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salilgupta4/absoms-backend/internal/apperrors"
	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portsrepo "github.com/salilgupta4/absoms-backend/internal/core/ports/repositories"
	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
	"github.com/salilgupta4/absoms-backend/internal/middleware"
	"github.com/salilgupta4/absoms-backend/internal/utils/payrollmath"
)

// payrollService computes and approves monthly payroll records. Approval is
// the point where advance deductions hit the advance ledger.
type payrollService struct {
	payrollRepo  portsrepo.PayrollRepositoryFacade
	employeeRepo portsrepo.EmployeeReader
	advanceRepo  portsrepo.AdvanceReader
	advanceSvc   portssvc.AdvanceSvcFacade
}

// NewPayrollService creates a new payroll service.
func NewPayrollService(
	payrollRepo portsrepo.PayrollRepositoryFacade,
	employeeRepo portsrepo.EmployeeReader,
	advanceRepo portsrepo.AdvanceReader,
	advanceSvc portssvc.AdvanceSvcFacade,
) portssvc.PayrollSvcFacade {
	return &payrollService{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		advanceRepo:  advanceRepo,
		advanceSvc:   advanceSvc,
	}
}

var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

// daysInMonth returns the calendar day count for a "YYYY-MM" month.
func daysInMonth(month string) (int, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return 0, fmt.Errorf("month must be YYYY-MM: %w", apperrors.ErrValidation)
	}
	return t.AddDate(0, 1, -1).Day(), nil
}

func (s *payrollService) ComputePayroll(ctx context.Context, req dto.ComputePayrollRequest, userID string) (*domain.PayrollRecord, error) {
	days, err := daysInMonth(req.Month)
	if err != nil {
		return nil, err
	}
	if req.DaysWorked.IsNegative() || req.DaysWorked.GreaterThan(decimal.NewFromInt(int64(days))) {
		return nil, fmt.Errorf("days worked must be between 0 and %d: %w", days, apperrors.ErrValidation)
	}
	if req.OvertimeAmount.IsNegative() {
		return nil, fmt.Errorf("overtime amount must not be negative: %w", apperrors.ErrValidation)
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !employee.IsActive {
		return nil, fmt.Errorf("employee %s is inactive: %w", req.EmployeeID, apperrors.ErrValidation)
	}

	existing, err := s.payrollRepo.FindPayrollRecord(ctx, req.EmployeeID, req.Month)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil && existing.Status == domain.PayrollApproved {
		return nil, fmt.Errorf("payroll for %s in %s is already approved: %w",
			employee.EmployeeCode, req.Month, apperrors.ErrDuplicate)
	}

	earnedBasic := payrollmath.Prorate(employee.Basic, req.DaysWorked, days)
	earnedHRA := payrollmath.Prorate(employee.HRA, req.DaysWorked, days)
	earnedAllowances := payrollmath.Prorate(employee.SpecialAllowances, req.DaysWorked, days)
	gross := earnedBasic.Add(earnedHRA).Add(earnedAllowances).Add(payrollmath.Round2(req.OvertimeAmount))

	pf := payrollmath.PFDeduction(earnedBasic)
	esi := payrollmath.ESIDeduction(gross)
	pt := payrollmath.ProfessionalTax(gross)
	payAfterStatutory := gross.Sub(pf).Sub(esi).Sub(pt)

	// The proposed deduction recovers as much of the active advance as the
	// month's pay allows. Nothing touches the ledger until approval.
	advanceDeduction := decimal.Zero
	advance, err := s.advanceRepo.FindActiveAdvanceByEmployee(ctx, req.EmployeeID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if advance != nil {
		advanceDeduction = payrollmath.ClampAdvanceDeduction(advance.BalanceAmount, advance.BalanceAmount, payAfterStatutory)
	}

	totalDeductions := pf.Add(esi).Add(pt).Add(advanceDeduction)

	now := time.Now()
	record := domain.PayrollRecord{
		PayrollRecordID:  uuid.NewString(),
		EmployeeID:       employee.EmployeeID,
		EmployeeName:     employee.Name,
		Month:            req.Month,
		DaysInMonth:      days,
		DaysWorked:       req.DaysWorked,
		EarnedBasic:      earnedBasic,
		EarnedHRA:        earnedHRA,
		EarnedAllowances: earnedAllowances,
		OvertimeAmount:   payrollmath.Round2(req.OvertimeAmount),
		GrossPay:         gross,
		PFDeduction:      pf,
		ESIDeduction:     esi,
		ProfessionalTax:  pt,
		AdvanceDeduction: advanceDeduction,
		TotalDeductions:  totalDeductions,
		NetPay:           gross.Sub(totalDeductions),
		Status:           domain.PayrollDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if existing != nil {
		record.PayrollRecordID = existing.PayrollRecordID
		record.CreatedAt = existing.CreatedAt
		record.CreatedBy = existing.CreatedBy
		if err := s.payrollRepo.UpdatePayrollRecord(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to recompute payroll record: %w", err)
		}
		return &record, nil
	}

	if err := s.payrollRepo.SavePayrollRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save payroll record: %w", err)
	}
	return &record, nil
}

func (s *payrollService) ApprovePayroll(ctx context.Context, recordID string, userID string) (*domain.PayrollRecord, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	record, err := s.payrollRepo.FindPayrollRecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record.Status != domain.PayrollDraft {
		return nil, fmt.Errorf("payroll record %s is not a draft: %w", recordID, apperrors.ErrValidation)
	}

	if record.AdvanceDeduction.IsPositive() {
		advance, err := s.advanceRepo.FindActiveAdvanceByEmployee(ctx, record.EmployeeID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("advance deduction proposed but no active advance remains, recompute first: %w", apperrors.ErrValidation)
			}
			return nil, err
		}
		// Stale drafts may propose more than the current balance.
		if record.AdvanceDeduction.GreaterThan(advance.BalanceAmount) {
			return nil, fmt.Errorf("proposed deduction %s exceeds advance balance %s, recompute first: %w",
				record.AdvanceDeduction, advance.BalanceAmount, apperrors.ErrValidation)
		}

		if _, err := s.advanceSvc.RecordDeduction(ctx, advance.AdvanceID, dto.AdvanceDeductionRequest{
			Amount:          record.AdvanceDeduction,
			Date:            time.Now(),
			PayrollRecordID: record.PayrollRecordID,
			Note:            fmt.Sprintf("payroll deduction for %s", record.Month),
		}, userID); err != nil {
			return nil, fmt.Errorf("failed to post advance deduction: %w", err)
		}
		logger.Info("advance deduction posted",
			slog.String("payroll_record_id", record.PayrollRecordID),
			slog.String("advance_id", advance.AdvanceID),
			slog.String("amount", record.AdvanceDeduction.String()))
	}

	record.Status = domain.PayrollApproved
	record.LastUpdatedAt = time.Now()
	record.LastUpdatedBy = userID

	if err := s.payrollRepo.UpdatePayrollRecord(ctx, *record); err != nil {
		return nil, fmt.Errorf("failed to approve payroll record %s: %w", recordID, err)
	}
	return record, nil
}

func (s *payrollService) GetPayrollRecordByID(ctx context.Context, recordID string) (*domain.PayrollRecord, error) {
	record, err := s.payrollRepo.FindPayrollRecordByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payroll record %s: %w", recordID, err)
	}
	return record, nil
}

func (s *payrollService) ListPayrollRecordsByMonth(ctx context.Context, month string) ([]domain.PayrollRecord, error) {
	if _, err := daysInMonth(month); err != nil {
		return nil, err
	}
	records, err := s.payrollRepo.FindPayrollRecordsByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records for %s: %w", month, err)
	}
	return records, nil
}
