package response_models

import "tripflow/pkg/mapkit"

// MapSessionState is what the rendering client polls: the session lifecycle
// state plus the overlay and camera snapshot to mirror onto the map.
type MapSessionState struct {
	SessionID string           `json:"session_id"`
	State     string           `json:"state"`
	Overlays  []mapkit.Overlay `json:"overlays"`
	Camera    mapkit.Camera    `json:"camera"`
}
