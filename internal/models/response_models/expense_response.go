package response_models

type ExpenseResponse struct {
	ID          string  `json:"id"`
	TripID      string  `json:"trip_id"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	ExpenseDate string  `json:"expense_date"`
	Notes       string  `json:"notes,omitempty"`
}

type ExpenseStats struct {
	Total      float64            `json:"total"`
	ByCategory map[string]float64 `json:"by_category"`
	Count      int                `json:"count"`
}
