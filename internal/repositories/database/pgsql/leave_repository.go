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

type PgxLeaveRepository struct {
	pool *pgxpool.Pool
}

// newPgxLeaveRepository creates a new repository for leave requests.
func newPgxLeaveRepository(pool *pgxpool.Pool) portsrepo.LeaveRepositoryFacade {
	return &PgxLeaveRepository{pool: pool}
}

var _ portsrepo.LeaveRepositoryFacade = (*PgxLeaveRepository)(nil)

const leaveColumns = `leave_request_id, employee_id, from_date, to_date, kind, reason, status, decided_by, created_at, created_by, last_updated_at, last_updated_by`

func scanLeaveRow(row pgx.Row) (*domain.LeaveRequest, error) {
	var m models.LeaveRequest
	err := row.Scan(
		&m.LeaveRequestID, &m.EmployeeID, &m.FromDate, &m.ToDate,
		&m.Kind, &m.Reason, &m.Status, &m.DecidedBy,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	leave := domain.LeaveRequest{
		LeaveRequestID: m.LeaveRequestID,
		EmployeeID:     m.EmployeeID,
		FromDate:       m.FromDate,
		ToDate:         m.ToDate,
		Kind:           domain.LeaveKind(m.Kind),
		Reason:         m.Reason,
		Status:         domain.LeaveStatus(m.Status),
		DecidedBy:      m.DecidedBy,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	return &leave, nil
}

func (r *PgxLeaveRepository) SaveLeaveRequest(ctx context.Context, leave domain.LeaveRequest) error {
	query := `
		INSERT INTO leave_requests (` + leaveColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.pool.Exec(ctx, query,
		leave.LeaveRequestID, leave.EmployeeID, leave.FromDate, leave.ToDate,
		string(leave.Kind), leave.Reason, string(leave.Status), leave.DecidedBy,
		leave.CreatedAt, leave.CreatedBy, leave.LastUpdatedAt, leave.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save leave request %s: %w", leave.LeaveRequestID, err)
	}
	return nil
}

func (r *PgxLeaveRepository) UpdateLeaveRequest(ctx context.Context, leave domain.LeaveRequest) error {
	query := `
		UPDATE leave_requests
		SET from_date = $2, to_date = $3, kind = $4, reason = $5, status = $6, decided_by = $7,
		    last_updated_at = $8, last_updated_by = $9
		WHERE leave_request_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		leave.LeaveRequestID, leave.FromDate, leave.ToDate,
		string(leave.Kind), leave.Reason, string(leave.Status), leave.DecidedBy,
		leave.LastUpdatedAt, leave.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave request %s: %w", leave.LeaveRequestID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLeaveRepository) FindLeaveRequestByID(ctx context.Context, leaveRequestID string) (*domain.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE leave_request_id = $1;`
	leave, err := scanLeaveRow(r.pool.QueryRow(ctx, query, leaveRequestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find leave request by ID %s: %w", leaveRequestID, err)
	}
	return leave, nil
}

func (r *PgxLeaveRepository) FindLeaveRequestsByEmployee(ctx context.Context, employeeID string, limit int, offset int) ([]domain.LeaveRequest, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY from_date DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.pool.Query(ctx, query, employeeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	leaves := []domain.LeaveRequest{}
	for rows.Next() {
		leave, err := scanLeaveRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		leaves = append(leaves, *leave)
	}
	return leaves, rows.Err()
}
