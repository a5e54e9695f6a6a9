package models

// NumberingSequence represents a numbering_sequences row. DocType is the
// primary key; one row exists per document type.
type NumberingSequence struct {
	DocType    string `db:"doc_type"`
	Prefix     string `db:"prefix"`
	NextNumber int64  `db:"next_number"`
	Padding    int    `db:"padding"`
	Suffix     string `db:"suffix"`
	AuditFields
}
