package finance

type CreateEntryDTO struct {
	Date        string    `json:"date"`
	Type        EntryType `json:"type"`
	Category    string    `json:"category"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
}

type FinancesPageResponse struct {
	Summary Summary `json:"summary"`
	Records []Entry `json:"records"`
}
