package db_models

import (
	"github.com/google/uuid"
)

// Expense is one spend record attached to a saved trip.
type Expense struct {
	BaseModel
	TripID      uuid.UUID `gorm:"type:uuid;index"`
	Amount      float64
	Category    string
	ExpenseDate string
	Notes       string
}
