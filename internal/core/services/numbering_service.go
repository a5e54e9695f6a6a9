package services

import (
	"context"
	"fmt"
	"time"

	"github.com/salilgupta4/absoms-backend/internal/apperrors"
	"github.com/salilgupta4/absoms-backend/internal/core/domain"
	portsrepo "github.com/salilgupta4/absoms-backend/internal/core/ports/repositories"
	portssvc "github.com/salilgupta4/absoms-backend/internal/core/ports/services"
	"github.com/salilgupta4/absoms-backend/internal/dto"
)

// maxNumberPadding bounds the zero padding of formatted document numbers.
const maxNumberPadding = 10

// numberingService manages the per-document-type numbering sequences.
type numberingService struct {
	numberingRepo portsrepo.NumberingRepository
}

// NewNumberingService creates a new numbering service.
func NewNumberingService(numberingRepo portsrepo.NumberingRepository) portssvc.NumberingSvcFacade {
	return &numberingService{numberingRepo: numberingRepo}
}

var _ portssvc.NumberingSvcFacade = (*numberingService)(nil)

func (s *numberingService) GetSequence(ctx context.Context, docType domain.DocumentType) (*domain.NumberingSequence, error) {
	seq, err := s.numberingRepo.GetSequence(ctx, docType)
	if err != nil {
		return nil, fmt.Errorf("failed to get sequence for %s: %w", docType, err)
	}
	return seq, nil
}

func (s *numberingService) ListSequences(ctx context.Context) ([]domain.NumberingSequence, error) {
	seqs, err := s.numberingRepo.ListSequences(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sequences: %w", err)
	}
	return seqs, nil
}

func (s *numberingService) UpdateSequence(ctx context.Context, docType domain.DocumentType, req dto.UpdateNumberingSequenceRequest, userID string) (*domain.NumberingSequence, error) {
	seq, err := s.numberingRepo.GetSequence(ctx, docType)
	if err != nil {
		return nil, err
	}

	if req.Prefix != nil {
		seq.Prefix = *req.Prefix
	}
	if req.Suffix != nil {
		seq.Suffix = *req.Suffix
	}
	if req.Padding != nil {
		if *req.Padding < 0 || *req.Padding > maxNumberPadding {
			return nil, fmt.Errorf("padding %d is outside 0..%d: %w", *req.Padding, maxNumberPadding, apperrors.ErrValidation)
		}
		seq.Padding = *req.Padding
	}
	if req.NextNumber != nil {
		if *req.NextNumber < 1 {
			return nil, fmt.Errorf("next number must be at least 1: %w", apperrors.ErrValidation)
		}
		// Rewinding the counter would reissue already allocated numbers.
		if *req.NextNumber < seq.NextNumber {
			return nil, fmt.Errorf("next number %d is below the current counter %d: %w",
				*req.NextNumber, seq.NextNumber, apperrors.ErrValidation)
		}
		seq.NextNumber = *req.NextNumber
	}
	seq.LastUpdatedAt = time.Now()
	seq.LastUpdatedBy = userID

	if err := s.numberingRepo.UpdateSequence(ctx, *seq); err != nil {
		return nil, fmt.Errorf("failed to update sequence for %s: %w", docType, err)
	}
	return seq, nil
}
