package dto

import (
	"github.com/salilgupta4/absoms-backend/internal/core/domain"
)

// UpdateNumberingSequenceRequest defines the data allowed for reconfiguring a
// document numbering sequence.
type UpdateNumberingSequenceRequest struct {
	Prefix     *string `json:"prefix"`
	NextNumber *int64  `json:"nextNumber" binding:"omitempty,min=1"`
	Padding    *int    `json:"padding" binding:"omitempty,min=0,max=10"`
	Suffix     *string `json:"suffix"`
}

// NumberingSequenceResponse defines the data returned for a numbering sequence.
type NumberingSequenceResponse struct {
	DocType    string `json:"docType"`
	Prefix     string `json:"prefix"`
	NextNumber int64  `json:"nextNumber"`
	Padding    int    `json:"padding"`
	Suffix     string `json:"suffix"`
	Preview    string `json:"preview"` // what the next allocated number will look like
}

// ToNumberingSequenceResponse converts a domain.NumberingSequence to its DTO
func ToNumberingSequenceResponse(s *domain.NumberingSequence) NumberingSequenceResponse {
	return NumberingSequenceResponse{
		DocType:    string(s.DocType),
		Prefix:     s.Prefix,
		NextNumber: s.NextNumber,
		Padding:    s.Padding,
		Suffix:     s.Suffix,
		Preview:    s.Format(s.NextNumber),
	}
}

// ToListNumberingSequenceResponse converts a slice of sequences to DTOs
func ToListNumberingSequenceResponse(seqs []domain.NumberingSequence) []NumberingSequenceResponse {
	res := make([]NumberingSequenceResponse, len(seqs))
	for i, s := range seqs {
		res[i] = ToNumberingSequenceResponse(&s)
	}
	return res
}
