package request_models

type CreateExpenseRequest struct {
	Amount      float64 `json:"amount" binding:"required,gte=0"`
	Category    string  `json:"category" binding:"required"`
	ExpenseDate string  `json:"expense_date" binding:"required"`
	Notes       string  `json:"notes"`
}

type UpdateExpenseRequest struct {
	Amount      *float64 `json:"amount" binding:"omitempty,gte=0"`
	Category    *string  `json:"category"`
	ExpenseDate *string  `json:"expense_date"`
	Notes       *string  `json:"notes"`
}
