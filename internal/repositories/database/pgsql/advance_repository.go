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

type PgxAdvanceRepository struct {
	BaseRepository
}

// newPgxAdvanceRepository creates a new repository for salary advances.
func newPgxAdvanceRepository(pool *pgxpool.Pool) portsrepo.AdvanceRepositoryFacade {
	return &PgxAdvanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AdvanceRepositoryFacade = (*PgxAdvanceRepository)(nil)

const advanceColumns = `advance_id, employee_id, amount, balance_amount, status, reason, created_at, created_by, last_updated_at, last_updated_by`

func scanAdvanceRow(row pgx.Row) (*models.AdvancePayment, error) {
	var m models.AdvancePayment
	err := row.Scan(
		&m.AdvanceID, &m.EmployeeID, &m.Amount, &m.BalanceAmount, &m.Status, &m.Reason,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func toDomainAdvance(m models.AdvancePayment, txns []models.AdvanceTransaction) domain.AdvancePayment {
	a := domain.AdvancePayment{
		AdvanceID:     m.AdvanceID,
		EmployeeID:    m.EmployeeID,
		Amount:        m.Amount,
		BalanceAmount: m.BalanceAmount,
		Status:        domain.AdvanceStatus(m.Status),
		Reason:        m.Reason,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	for _, mt := range txns {
		a.Transactions = append(a.Transactions, domain.AdvanceTransaction{
			TransactionID:   mt.TransactionID,
			AdvanceID:       mt.AdvanceID,
			Date:            mt.Date,
			Type:            domain.AdvanceTxnType(mt.Type),
			Amount:          mt.Amount,
			Note:            mt.Note,
			PayrollRecordID: mt.PayrollRecordID,
			AuditFields: domain.AuditFields{
				CreatedAt:     mt.CreatedAt,
				CreatedBy:     mt.CreatedBy,
				LastUpdatedAt: mt.LastUpdatedAt,
				LastUpdatedBy: mt.LastUpdatedBy,
			},
		})
	}
	return a
}

func insertAdvanceTransaction(ctx context.Context, tx pgx.Tx, txn domain.AdvanceTransaction) error {
	query := `
		INSERT INTO advance_transactions (transaction_id, advance_id, date, type, amount, note, payroll_record_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := tx.Exec(ctx, query,
		txn.TransactionID, txn.AdvanceID, txn.Date, string(txn.Type), txn.Amount, txn.Note, txn.PayrollRecordID,
		txn.CreatedAt, txn.CreatedBy, txn.LastUpdatedAt, txn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert advance transaction for %s: %w", txn.AdvanceID, err)
	}
	return nil
}

// SaveAdvance persists the advance row and its initial disbursement ledger
// entry in one transaction.
func (r *PgxAdvanceRepository) SaveAdvance(ctx context.Context, advance domain.AdvancePayment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO advance_payments (` + advanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, query,
		advance.AdvanceID, advance.EmployeeID, advance.Amount, advance.BalanceAmount,
		string(advance.Status), advance.Reason,
		advance.CreatedAt, advance.CreatedBy, advance.LastUpdatedAt, advance.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: advance %s already exists", apperrors.ErrDuplicate, advance.AdvanceID)
		}
		return fmt.Errorf("failed to save advance %s: %w", advance.AdvanceID, err)
	}

	for _, txn := range advance.Transactions {
		if err := insertAdvanceTransaction(ctx, tx, txn); err != nil {
			return err
		}
	}
	return r.Commit(ctx, tx)
}

// AppendTransaction writes the ledger entry and the recomputed balance and
// status together, so the advance row never drifts from its ledger.
func (r *PgxAdvanceRepository) AppendTransaction(ctx context.Context, advance domain.AdvancePayment, txn domain.AdvanceTransaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertAdvanceTransaction(ctx, tx, txn); err != nil {
		return err
	}

	// amount moves too: top-ups raise the total disbursed figure.
	query := `
		UPDATE advance_payments
		SET amount = $2, balance_amount = $3, status = $4, last_updated_at = $5, last_updated_by = $6
		WHERE advance_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		advance.AdvanceID, advance.Amount, advance.BalanceAmount, string(advance.Status),
		advance.LastUpdatedAt, advance.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update advance %s: %w", advance.AdvanceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return r.Commit(ctx, tx)
}

func (r *PgxAdvanceRepository) findTransactions(ctx context.Context, advanceID string) ([]models.AdvanceTransaction, error) {
	query := `
		SELECT transaction_id, advance_id, date, type, amount, note, payroll_record_id, created_at, created_by, last_updated_at, last_updated_by
		FROM advance_transactions
		WHERE advance_id = $1
		ORDER BY date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, advanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query advance transactions for %s: %w", advanceID, err)
	}
	defer rows.Close()

	var txns []models.AdvanceTransaction
	for rows.Next() {
		var mt models.AdvanceTransaction
		if err := rows.Scan(
			&mt.TransactionID, &mt.AdvanceID, &mt.Date, &mt.Type, &mt.Amount, &mt.Note, &mt.PayrollRecordID,
			&mt.CreatedAt, &mt.CreatedBy, &mt.LastUpdatedAt, &mt.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan advance transaction: %w", err)
		}
		txns = append(txns, mt)
	}
	return txns, rows.Err()
}

func (r *PgxAdvanceRepository) FindAdvanceByID(ctx context.Context, advanceID string) (*domain.AdvancePayment, error) {
	query := `SELECT ` + advanceColumns + ` FROM advance_payments WHERE advance_id = $1;`
	m, err := scanAdvanceRow(r.Pool.QueryRow(ctx, query, advanceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find advance by ID %s: %w", advanceID, err)
	}

	txns, err := r.findTransactions(ctx, advanceID)
	if err != nil {
		return nil, err
	}
	advance := toDomainAdvance(*m, txns)
	return &advance, nil
}

func (r *PgxAdvanceRepository) FindActiveAdvanceByEmployee(ctx context.Context, employeeID string) (*domain.AdvancePayment, error) {
	query := `SELECT ` + advanceColumns + ` FROM advance_payments WHERE employee_id = $1 AND status = 'ACTIVE';`
	m, err := scanAdvanceRow(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find active advance for employee %s: %w", employeeID, err)
	}

	txns, err := r.findTransactions(ctx, m.AdvanceID)
	if err != nil {
		return nil, err
	}
	advance := toDomainAdvance(*m, txns)
	return &advance, nil
}

func (r *PgxAdvanceRepository) FindAdvancesByEmployee(ctx context.Context, employeeID string) ([]domain.AdvancePayment, error) {
	query := `
		SELECT ` + advanceColumns + `
		FROM advance_payments
		WHERE employee_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query advances for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	var advanceModels []models.AdvancePayment
	for rows.Next() {
		m, err := scanAdvanceRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		advanceModels = append(advanceModels, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	advances := make([]domain.AdvancePayment, 0, len(advanceModels))
	for _, m := range advanceModels {
		txns, err := r.findTransactions(ctx, m.AdvanceID)
		if err != nil {
			return nil, err
		}
		advances = append(advances, toDomainAdvance(m, txns))
	}
	return advances, nil
}
