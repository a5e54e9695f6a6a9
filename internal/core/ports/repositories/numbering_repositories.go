package repositories

import (
	"context"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
)

// NumberingRepository manages the per-document-type numbering sequences.
type NumberingRepository interface {
	// GetSequence retrieves the sequence row for a document type.
	GetSequence(ctx context.Context, docType domain.DocumentType) (*domain.NumberingSequence, error)

	// ListSequences retrieves all sequence rows.
	ListSequences(ctx context.Context) ([]domain.NumberingSequence, error)

	// UpdateSequence updates prefix/suffix/padding/next number for a document type.
	UpdateSequence(ctx context.Context, seq domain.NumberingSequence) error
}
