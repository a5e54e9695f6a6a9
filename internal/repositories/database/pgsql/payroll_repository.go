package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salilgupta4/absoms-backend/internal/apperrors"
	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portsrepo "github.com/salilgupta4/absoms-backend/internal/core/ports/repositories"
	"github.com/salilgupta4/absoms-backend/internal/models"
)

type PgxPayrollRepository struct {
	pool *pgxpool.Pool
}

// newPgxPayrollRepository creates a new repository for payroll records.
func newPgxPayrollRepository(pool *pgxpool.Pool) portsrepo.PayrollRepositoryFacade {
	return &PgxPayrollRepository{pool: pool}
}

var _ portsrepo.PayrollRepositoryFacade = (*PgxPayrollRepository)(nil)

const payrollColumns = `payroll_record_id, employee_id, employee_name, month, days_in_month, days_worked, earned_basic, earned_hra, earned_allowances, overtime_amount, gross_pay, pf_deduction, esi_deduction, professional_tax, advance_deduction, total_deductions, net_pay, status, created_at, created_by, last_updated_at, last_updated_by`

func scanPayrollRecordRow(row pgx.Row) (*domain.PayrollRecord, error) {
	var m models.PayrollRecord
	err := row.Scan(
		&m.PayrollRecordID, &m.EmployeeID, &m.EmployeeName, &m.Month,
		&m.DaysInMonth, &m.DaysWorked,
		&m.EarnedBasic, &m.EarnedHRA, &m.EarnedAllowances, &m.OvertimeAmount, &m.GrossPay,
		&m.PFDeduction, &m.ESIDeduction, &m.ProfessionalTax, &m.AdvanceDeduction,
		&m.TotalDeductions, &m.NetPay, &m.Status,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	record := toDomainPayrollRecord(m)
	return &record, nil
}

func toDomainPayrollRecord(m models.PayrollRecord) domain.PayrollRecord {
	return domain.PayrollRecord{
		PayrollRecordID:  m.PayrollRecordID,
		EmployeeID:       m.EmployeeID,
		EmployeeName:     m.EmployeeName,
		Month:            m.Month,
		DaysInMonth:      m.DaysInMonth,
		DaysWorked:       m.DaysWorked,
		EarnedBasic:      m.EarnedBasic,
		EarnedHRA:        m.EarnedHRA,
		EarnedAllowances: m.EarnedAllowances,
		OvertimeAmount:   m.OvertimeAmount,
		GrossPay:         m.GrossPay,
		PFDeduction:      m.PFDeduction,
		ESIDeduction:     m.ESIDeduction,
		ProfessionalTax:  m.ProfessionalTax,
		AdvanceDeduction: m.AdvanceDeduction,
		TotalDeductions:  m.TotalDeductions,
		NetPay:           m.NetPay,
		Status:           domain.PayrollStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func (r *PgxPayrollRepository) SavePayrollRecord(ctx context.Context, record domain.PayrollRecord) error {
	query := `
		INSERT INTO payroll_records (` + payrollColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);
	`
	_, err := r.pool.Exec(ctx, query,
		record.PayrollRecordID, record.EmployeeID, record.EmployeeName, record.Month,
		record.DaysInMonth, record.DaysWorked,
		record.EarnedBasic, record.EarnedHRA, record.EarnedAllowances, record.OvertimeAmount, record.GrossPay,
		record.PFDeduction, record.ESIDeduction, record.ProfessionalTax, record.AdvanceDeduction,
		record.TotalDeductions, record.NetPay, string(record.Status),
		record.CreatedAt, record.CreatedBy, record.LastUpdatedAt, record.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: payroll for employee %s month %s already exists", apperrors.ErrDuplicate, record.EmployeeID, record.Month)
		}
		return fmt.Errorf("failed to save payroll record %s: %w", record.PayrollRecordID, err)
	}
	return nil
}

func (r *PgxPayrollRepository) UpdatePayrollRecord(ctx context.Context, record domain.PayrollRecord) error {
	query := `
		UPDATE payroll_records
		SET days_worked = $2, earned_basic = $3, earned_hra = $4, earned_allowances = $5,
		    overtime_amount = $6, gross_pay = $7,
		    pf_deduction = $8, esi_deduction = $9, professional_tax = $10, advance_deduction = $11,
		    total_deductions = $12, net_pay = $13, status = $14,
		    last_updated_at = $15, last_updated_by = $16
		WHERE payroll_record_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		record.PayrollRecordID, record.DaysWorked,
		record.EarnedBasic, record.EarnedHRA, record.EarnedAllowances,
		record.OvertimeAmount, record.GrossPay,
		record.PFDeduction, record.ESIDeduction, record.ProfessionalTax, record.AdvanceDeduction,
		record.TotalDeductions, record.NetPay, string(record.Status),
		record.LastUpdatedAt, record.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update payroll record %s: %w", record.PayrollRecordID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPayrollRepository) FindPayrollRecordByID(ctx context.Context, recordID string) (*domain.PayrollRecord, error) {
	query := `SELECT ` + payrollColumns + ` FROM payroll_records WHERE payroll_record_id = $1;`
	record, err := scanPayrollRecordRow(r.pool.QueryRow(ctx, query, recordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payroll record by ID %s: %w", recordID, err)
	}
	return record, nil
}

func (r *PgxPayrollRepository) FindPayrollRecord(ctx context.Context, employeeID string, month string) (*domain.PayrollRecord, error) {
	query := `SELECT ` + payrollColumns + ` FROM payroll_records WHERE employee_id = $1 AND month = $2;`
	record, err := scanPayrollRecordRow(r.pool.QueryRow(ctx, query, employeeID, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payroll record for employee %s month %s: %w", employeeID, month, err)
	}
	return record, nil
}

func (r *PgxPayrollRepository) FindPayrollRecordsByMonth(ctx context.Context, month string) ([]domain.PayrollRecord, error) {
	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records
		WHERE month = $1
		ORDER BY employee_name;
	`
	rows, err := r.pool.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll records for month %s: %w", month, err)
	}
	defer rows.Close()

	records := []domain.PayrollRecord{}
	for rows.Next() {
		record, err := scanPayrollRecordRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}
