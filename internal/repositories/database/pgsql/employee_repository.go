package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salilgupta4/absoms-backend/internal/apperrors"
	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portsrepo "github.com/salilgupta4/absoms-backend/internal/core/ports/repositories"
	"github.com/salilgupta4/absoms-backend/internal/models"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for employee data.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeColumns = `employee_id, employee_code, name, designation, joining_date, basic, hra, special_allowances, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanEmployeeRow(row pgx.Row) (*models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID, &m.EmployeeCode, &m.Name, &m.Designation, &m.JoiningDate,
		&m.Basic, &m.HRA, &m.SpecialAllowances, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func toDomainEmployee(m models.Employee, accounts []models.EmployeeBankAccount) domain.Employee {
	e := domain.Employee{
		EmployeeID:        m.EmployeeID,
		EmployeeCode:      m.EmployeeCode,
		Name:              m.Name,
		Designation:       m.Designation,
		JoiningDate:       m.JoiningDate,
		Basic:             m.Basic,
		HRA:               m.HRA,
		SpecialAllowances: m.SpecialAllowances,
		IsActive:          m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	for _, ma := range accounts {
		e.BankAccounts = append(e.BankAccounts, domain.BankAccount{
			BankAccountID: ma.BankAccountID,
			BankName:      ma.BankName,
			AccountNumber: ma.AccountNumber,
			IFSC:          ma.IFSC,
			IsDefault:     ma.IsDefault,
		})
	}
	return e
}

func insertBankAccounts(ctx context.Context, tx pgx.Tx, employee domain.Employee) error {
	query := `
		INSERT INTO employee_bank_accounts (bank_account_id, employee_id, bank_name, account_number, ifsc, is_default)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, a := range employee.BankAccounts {
		if _, err := tx.Exec(ctx, query, a.BankAccountID, employee.EmployeeID, a.BankName, a.AccountNumber, a.IFSC, a.IsDefault); err != nil {
			return fmt.Errorf("failed to insert bank account for employee %s: %w", employee.EmployeeID, err)
		}
	}
	return nil
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, query,
		employee.EmployeeID, employee.EmployeeCode, employee.Name, employee.Designation, employee.JoiningDate,
		employee.Basic, employee.HRA, employee.SpecialAllowances, employee.IsActive,
		employee.CreatedAt, employee.CreatedBy, employee.LastUpdatedAt, employee.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: employee code %s already exists", apperrors.ErrDuplicate, employee.EmployeeCode)
		}
		return fmt.Errorf("failed to save employee %s: %w", employee.EmployeeID, err)
	}

	if err := insertBankAccounts(ctx, tx, employee); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE employees
		SET employee_code = $2, name = $3, designation = $4, joining_date = $5,
		    basic = $6, hra = $7, special_allowances = $8, is_active = $9,
		    last_updated_at = $10, last_updated_by = $11
		WHERE employee_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		employee.EmployeeID, employee.EmployeeCode, employee.Name, employee.Designation, employee.JoiningDate,
		employee.Basic, employee.HRA, employee.SpecialAllowances, employee.IsActive,
		employee.LastUpdatedAt, employee.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: employee code %s already exists", apperrors.ErrDuplicate, employee.EmployeeCode)
		}
		return fmt.Errorf("failed to update employee %s: %w", employee.EmployeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM employee_bank_accounts WHERE employee_id = $1;`, employee.EmployeeID); err != nil {
		return fmt.Errorf("failed to clear bank accounts for employee %s: %w", employee.EmployeeID, err)
	}
	if err := insertBankAccounts(ctx, tx, employee); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxEmployeeRepository) findBankAccounts(ctx context.Context, employeeID string) ([]models.EmployeeBankAccount, error) {
	query := `
		SELECT bank_account_id, employee_id, bank_name, account_number, ifsc, is_default
		FROM employee_bank_accounts
		WHERE employee_id = $1
		ORDER BY is_default DESC, bank_name;
	`
	rows, err := r.Pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank accounts for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	var accounts []models.EmployeeBankAccount
	for rows.Next() {
		var a models.EmployeeBankAccount
		if err := rows.Scan(&a.BankAccountID, &a.EmployeeID, &a.BankName, &a.AccountNumber, &a.IFSC, &a.IsDefault); err != nil {
			return nil, fmt.Errorf("failed to scan bank account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *PgxEmployeeRepository) findEmployeeWhere(ctx context.Context, query string, arg any) (*domain.Employee, error) {
	m, err := scanEmployeeRow(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}

	accounts, err := r.findBankAccounts(ctx, m.EmployeeID)
	if err != nil {
		return nil, err
	}
	employee := toDomainEmployee(*m, accounts)
	return &employee, nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`
	return r.findEmployeeWhere(ctx, query, employeeID)
}

func (r *PgxEmployeeRepository) FindEmployeeByCode(ctx context.Context, employeeCode string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_code = $1;`
	return r.findEmployeeWhere(ctx, query, employeeCode)
}

func (r *PgxEmployeeRepository) FindEmployees(ctx context.Context, activeOnly bool, limit int, offset int) ([]domain.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE ($1 = FALSE OR is_active = TRUE)
		ORDER BY employee_code
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, activeOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employeeModels []models.Employee
	for rows.Next() {
		m, err := scanEmployeeRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employeeModels = append(employeeModels, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	employees := make([]domain.Employee, 0, len(employeeModels))
	for _, m := range employeeModels {
		accounts, err := r.findBankAccounts(ctx, m.EmployeeID)
		if err != nil {
			return nil, err
		}
		employees = append(employees, toDomainEmployee(m, accounts))
	}
	return employees, nil
}

func (r *PgxEmployeeRepository) DeactivateEmployee(ctx context.Context, employeeID string, userID string, now time.Time) error {
	query := `
		UPDATE employees
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE employee_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, employeeID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee %s: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
