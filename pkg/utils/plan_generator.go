package utils

import (
	"context"
	"fmt"
	"strings"

	"tripflow/internal/models/plan_models"
)

// PlanGeneratorInterface is the single outbound seam to the text-generation
// service. One call, one network round trip, no automatic retries; the
// credential is a per-call bearer token, never stored on the client.
type PlanGeneratorInterface interface {
	GeneratePlan(ctx context.Context, instruction string, credential string) (*plan_models.TripPlan, error)
	GeneratePlaceDetails(ctx context.Context, instruction string, credential string) (*plan_models.PlaceDetails, error)
}

// NewPlanGenerator picks the generation provider. DashScope (qwen) is the
// default; Gemini is the alternate.
func NewPlanGenerator(provider, model string) (PlanGeneratorInterface, error) {
	switch strings.ToLower(provider) {
	case "", "dashscope":
		return NewDashScopeClient(model, ""), nil
	case "gemini":
		return NewGeminiPlanClient(model), nil
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s. Use 'dashscope' or 'gemini'", provider)
	}
}
