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

type PgxNumberingRepository struct {
	pool *pgxpool.Pool
}

// newPgxNumberingRepository creates a new repository for numbering sequences.
func newPgxNumberingRepository(pool *pgxpool.Pool) portsrepo.NumberingRepository {
	return &PgxNumberingRepository{pool: pool}
}

var _ portsrepo.NumberingRepository = (*PgxNumberingRepository)(nil)

func toDomainNumberingSequence(m models.NumberingSequence) domain.NumberingSequence {
	return domain.NumberingSequence{
		DocType:    domain.DocumentType(m.DocType),
		Prefix:     m.Prefix,
		NextNumber: m.NextNumber,
		Padding:    m.Padding,
		Suffix:     m.Suffix,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func (r *PgxNumberingRepository) GetSequence(ctx context.Context, docType domain.DocumentType) (*domain.NumberingSequence, error) {
	query := `
		SELECT doc_type, prefix, next_number, padding, suffix, created_at, created_by, last_updated_at, last_updated_by
		FROM numbering_sequences
		WHERE doc_type = $1;
	`
	var m models.NumberingSequence
	err := r.pool.QueryRow(ctx, query, string(docType)).Scan(
		&m.DocType, &m.Prefix, &m.NextNumber, &m.Padding, &m.Suffix,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find numbering sequence for %s: %w", docType, err)
	}
	seq := toDomainNumberingSequence(m)
	return &seq, nil
}

func (r *PgxNumberingRepository) ListSequences(ctx context.Context) ([]domain.NumberingSequence, error) {
	query := `
		SELECT doc_type, prefix, next_number, padding, suffix, created_at, created_by, last_updated_at, last_updated_by
		FROM numbering_sequences
		ORDER BY doc_type;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list numbering sequences: %w", err)
	}
	defer rows.Close()

	var seqs []domain.NumberingSequence
	for rows.Next() {
		var m models.NumberingSequence
		if err := rows.Scan(
			&m.DocType, &m.Prefix, &m.NextNumber, &m.Padding, &m.Suffix,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan numbering sequence: %w", err)
		}
		seqs = append(seqs, toDomainNumberingSequence(m))
	}
	return seqs, rows.Err()
}

func (r *PgxNumberingRepository) UpdateSequence(ctx context.Context, seq domain.NumberingSequence) error {
	query := `
		UPDATE numbering_sequences
		SET prefix = $2, next_number = $3, padding = $4, suffix = $5, last_updated_at = $6, last_updated_by = $7
		WHERE doc_type = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		string(seq.DocType), seq.Prefix, seq.NextNumber, seq.Padding, seq.Suffix,
		seq.LastUpdatedAt, seq.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update numbering sequence for %s: %w", seq.DocType, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// allocateDocumentNumber reserves the current counter value for a document
// type inside the caller's transaction. The UPDATE takes a row lock that is
// held until the transaction ends, so concurrent inserts serialize on the
// sequence and a rolled-back insert restores the counter.
func allocateDocumentNumber(ctx context.Context, tx pgx.Tx, docType domain.DocumentType) (string, error) {
	query := `
		UPDATE numbering_sequences
		SET next_number = next_number + 1
		WHERE doc_type = $1
		RETURNING doc_type, prefix, next_number, padding, suffix, created_at, created_by, last_updated_at, last_updated_by;
	`
	var m models.NumberingSequence
	err := tx.QueryRow(ctx, query, string(docType)).Scan(
		&m.DocType, &m.Prefix, &m.NextNumber, &m.Padding, &m.Suffix,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to allocate number for %s: %w", docType, err)
	}

	seq := toDomainNumberingSequence(m)
	// RETURNING reflects the incremented counter; the reserved value is the one before.
	return seq.Format(seq.NextNumber - 1), nil
}
