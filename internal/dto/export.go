package dto

// ImportSummary reports the outcome of a CSV import. Rows that fail
// validation are listed in Errors; the remaining rows are still applied.
type ImportSummary struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Errors  []string `json:"errors,omitempty"`
}
