package response_models

import "tripflow/internal/models/plan_models"

type TripSummary struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Destinations []string `json:"destinations,omitempty"`
	CreatedAt    string   `json:"created_at"`
}

type TripDetail struct {
	TripSummary
	Plan plan_models.TripPlan `json:"plan"`
}
