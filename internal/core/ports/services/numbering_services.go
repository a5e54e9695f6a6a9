package services

import (
	"context"

	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// NumberingReaderSvc defines read operations for numbering sequences
type NumberingReaderSvc interface {
	// GetSequence retrieves the sequence for a document type.
	GetSequence(ctx context.Context, docType domain.DocumentType) (*domain.NumberingSequence, error)

	// ListSequences retrieves all configured sequences.
	ListSequences(ctx context.Context) ([]domain.NumberingSequence, error)
}

// NumberingWriterSvc defines write operations for numbering sequences
type NumberingWriterSvc interface {
	// UpdateSequence changes the prefix, padding, suffix or next number of a
	// sequence. Lowering the next number below an already issued value is the
	// caller's risk and is rejected when it would collide.
	UpdateSequence(ctx context.Context, docType domain.DocumentType, req dto.UpdateNumberingSequenceRequest, userID string) (*domain.NumberingSequence, error)
}

// NumberingSvcFacade combines all numbering service interfaces.
// Document numbers are not handed out here: repositories reserve them inside
// the same transaction that inserts the document, so a failed insert never
// consumes a number.
type NumberingSvcFacade interface {
	NumberingReaderSvc
	NumberingWriterSvc
}
