package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"tripflow/internal/models/plan_models"
)

// Trip is one saved itinerary. The plan payload is stored whole as jsonb and
// replaced whole on update; nothing edits it field by field.
type Trip struct {
	BaseModel
	UserID       uuid.UUID            `gorm:"type:uuid;index"`
	Title        string
	Destinations pq.StringArray       `gorm:"type:text[]"`
	Plan         plan_models.TripPlan `gorm:"type:jsonb"`

	Expenses []Expense
}
