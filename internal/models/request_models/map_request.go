package request_models

import "tripflow/internal/models/plan_models"

// SyncMapRequest carries either a saved trip id or an inline plan. Both empty
// resyncs the session to an empty plan (default view).
type SyncMapRequest struct {
	TripID string                `json:"trip_id"`
	Plan   *plan_models.TripPlan `json:"plan"`
}

type FocusRequest struct {
	Lat float64 `json:"lat" binding:"required"`
	Lng float64 `json:"lng" binding:"required"`
}
