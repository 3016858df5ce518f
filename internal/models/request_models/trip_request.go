package request_models

import "tripflow/internal/models/plan_models"

type SaveTripRequest struct {
	Title string               `json:"title"`
	Plan  plan_models.TripPlan `json:"plan" binding:"required"`
}
