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

type PgxAPITokenRepository struct {
	pool *pgxpool.Pool
}

// newPgxAPITokenRepository creates a new repository for API tokens.
func newPgxAPITokenRepository(pool *pgxpool.Pool) portsrepo.APITokenRepository {
	return &PgxAPITokenRepository{pool: pool}
}

var _ portsrepo.APITokenRepository = (*PgxAPITokenRepository)(nil)

const apiTokenColumns = `id, user_id, name, token_hash, last_used_at, expires_at, created_at, updated_at`

func scanAPIToken(row pgx.Row) (*domain.APIToken, error) {
	var m models.APIToken
	err := row.Scan(
		&m.ID, &m.UserID, &m.Name, &m.TokenHash,
		&m.LastUsedAt, &m.ExpiresAt, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &domain.APIToken{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		TokenHash:  m.TokenHash,
		LastUsedAt: m.LastUsedAt,
		ExpiresAt:  m.ExpiresAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}, nil
}

func (r *PgxAPITokenRepository) Create(ctx context.Context, token *domain.APIToken) error {
	if token == nil {
		return fmt.Errorf("%w: token cannot be nil", apperrors.ErrValidation)
	}
	query := `
		INSERT INTO api_tokens (id, user_id, name, token_hash, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at;
	`
	err := r.pool.QueryRow(ctx, query,
		token.ID, token.UserID, token.Name, token.TokenHash, token.ExpiresAt,
	).Scan(&token.CreatedAt, &token.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create api token: %w", err)
	}
	return nil
}

func (r *PgxAPITokenRepository) FindByID(ctx context.Context, id string) (*domain.APIToken, error) {
	query := `SELECT ` + apiTokenColumns + ` FROM api_tokens WHERE id = $1 AND deleted_at IS NULL;`
	token, err := scanAPIToken(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find api token by ID %s: %w", id, err)
	}
	return token, nil
}

func (r *PgxAPITokenRepository) FindByUserID(ctx context.Context, userID string) ([]domain.APIToken, error) {
	query := `
		SELECT ` + apiTokenColumns + `
		FROM api_tokens
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC;
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query api tokens for user %s: %w", userID, err)
	}
	defer rows.Close()

	tokens := []domain.APIToken{}
	for rows.Next() {
		token, err := scanAPIToken(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan api token: %w", err)
		}
		tokens = append(tokens, *token)
	}
	return tokens, rows.Err()
}

// FindByToken looks up a token by its stored hash.
func (r *PgxAPITokenRepository) FindByToken(ctx context.Context, tokenString string) (*domain.APIToken, error) {
	query := `SELECT ` + apiTokenColumns + ` FROM api_tokens WHERE token_hash = $1 AND deleted_at IS NULL;`
	token, err := scanAPIToken(r.pool.QueryRow(ctx, query, tokenString))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find api token by hash: %w", err)
	}
	return token, nil
}

func (r *PgxAPITokenRepository) Update(ctx context.Context, token *domain.APIToken) error {
	if token == nil {
		return fmt.Errorf("%w: token cannot be nil", apperrors.ErrValidation)
	}
	query := `
		UPDATE api_tokens
		SET last_used_at = COALESCE($2, last_used_at), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.pool.Exec(ctx, query, token.ID, token.LastUsedAt)
	if err != nil {
		return fmt.Errorf("failed to update api token %s: %w", token.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAPITokenRepository) Delete(ctx context.Context, id string) error {
	query := `UPDATE api_tokens SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL;`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete api token %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAPITokenRepository) DeleteByUserID(ctx context.Context, userID string) error {
	query := `UPDATE api_tokens SET deleted_at = NOW() WHERE user_id = $1 AND deleted_at IS NULL;`
	if _, err := r.pool.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to delete api tokens for user %s: %w", userID, err)
	}
	return nil
}

func (r *PgxAPITokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	query := `UPDATE api_tokens SET deleted_at = NOW() WHERE expires_at < $1 AND deleted_at IS NULL;`
	tag, err := r.pool.Exec(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired api tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
