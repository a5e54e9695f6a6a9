package domain

import "fmt"

// NumberingSequence is the per-document-type counter behind document numbers.
// Numbers are allocated gap-free: the row is locked for the duration of the
// allocating transaction, NextNumber is formatted, incremented and written
// back before the document insert commits.
type NumberingSequence struct {
	DocType    DocumentType `json:"docType"`
	Prefix     string       `json:"prefix"`
	NextNumber int64        `json:"nextNumber"`
	Padding    int          `json:"padding"` // zero-pad width, 0 disables padding
	Suffix     string       `json:"suffix"`
	AuditFields
}

// Format renders the given counter value as a document number,
// e.g. prefix "QT-" padding 4 suffix "/25" and n=42 -> "QT-0042/25".
func (s NumberingSequence) Format(n int64) string {
	if s.Padding > 0 {
		return fmt.Sprintf("%s%0*d%s", s.Prefix, s.Padding, n, s.Suffix)
	}
	return fmt.Sprintf("%s%d%s", s.Prefix, n, s.Suffix)
}
