package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tripflow/internal/models/plan_models"
)

// GeminiPlanClient is the alternate generation provider. The client is built
// per call because the credential is caller-held, not process config.
type GeminiPlanClient struct {
	model string
}

func NewGeminiPlanClient(model string) *GeminiPlanClient {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &GeminiPlanClient{model: model}
}

func (c *GeminiPlanClient) GeneratePlan(ctx context.Context, instruction string, credential string) (*plan_models.TripPlan, error) {
	content, err := c.complete(ctx, instruction, credential)
	if err != nil {
		return nil, err
	}

	var plan plan_models.TripPlan
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &plan); err != nil {
		log.Printf("plan JSON parse failed: %v; raw text: %s", err, content)
		return nil, ErrInvalidPlanJSON
	}
	if err := plan.Validate(); err != nil {
		log.Printf("plan failed structural validation: %v", err)
		return nil, ErrInvalidPlanJSON
	}
	return &plan, nil
}

func (c *GeminiPlanClient) GeneratePlaceDetails(ctx context.Context, instruction string, credential string) (*plan_models.PlaceDetails, error) {
	content, err := c.complete(ctx, instruction, credential)
	if err != nil {
		return nil, err
	}

	var details plan_models.PlaceDetails
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &details); err != nil {
		log.Printf("place details JSON parse failed: %v; raw text: %s", err, content)
		return nil, ErrInvalidPlanJSON
	}
	return &details, nil
}

func (c *GeminiPlanClient) complete(ctx context.Context, instruction string, credential string) (string, error) {
	if strings.TrimSpace(credential) == "" {
		return "", ErrMissingCredential
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(credential))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamError, err)
	}
	defer client.Close()

	m := client.GenerativeModel(c.model)
	// Force JSON-only output, same as the compatible-mode json_object knob.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)

	resp, err := m.GenerateContent(ctx, genai.Text(instruction))
	if err != nil {
		log.Printf("gemini request failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrUpstreamError, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Printf("gemini returned an unexpected envelope: %+v", resp)
		return "", ErrMalformedEnvelope
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
