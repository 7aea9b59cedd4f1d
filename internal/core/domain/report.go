package domain

// ReportOptions is the small configuration handed to the report collaborator
// alongside the filtered subset and the full supplier set. SortKey is passed
// through for the collaborator's own layout; the summary grouping itself is
// keyed by CNPJ.
type ReportOptions struct {
	StartDate string `json:"dataInicio"`
	EndDate   string `json:"dataFim"`
	SortKey   string `json:"ordenacao"`
}
