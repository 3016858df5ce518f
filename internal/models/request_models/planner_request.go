package request_models

type GeneratePlanRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type PlaceDetailsRequest struct {
	Name    string `json:"name" binding:"required"`
	Context string `json:"context"`
}
