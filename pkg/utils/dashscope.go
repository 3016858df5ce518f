package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"tripflow/internal/models/plan_models"
)

// DashScope exposes an OpenAI-compatible endpoint, so the generation call
// rides on the go-openai client with a swapped base URL.
const dashScopeBaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1"

// DashScopeClient generates plans through Alibaba Cloud DashScope (qwen).
type DashScopeClient struct {
	model   string
	baseURL string
}

func NewDashScopeClient(model, baseURL string) *DashScopeClient {
	if model == "" {
		model = "qwen-plus"
	}
	if baseURL == "" {
		baseURL = dashScopeBaseURL
	}
	return &DashScopeClient{model: model, baseURL: baseURL}
}

func (c *DashScopeClient) GeneratePlan(ctx context.Context, instruction string, credential string) (*plan_models.TripPlan, error) {
	content, err := c.complete(ctx, instruction, credential)
	if err != nil {
		return nil, err
	}

	var plan plan_models.TripPlan
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &plan); err != nil {
		// Raw text goes to the log for diagnosis, never to the end user.
		log.Printf("plan JSON parse failed: %v; raw text: %s", err, content)
		return nil, ErrInvalidPlanJSON
	}
	if err := plan.Validate(); err != nil {
		log.Printf("plan failed structural validation: %v", err)
		return nil, ErrInvalidPlanJSON
	}
	return &plan, nil
}

func (c *DashScopeClient) GeneratePlaceDetails(ctx context.Context, instruction string, credential string) (*plan_models.PlaceDetails, error) {
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

// complete performs the single upstream round trip and extracts the text
// payload from the response envelope.
func (c *DashScopeClient) complete(ctx context.Context, instruction string, credential string) (string, error) {
	if strings.TrimSpace(credential) == "" {
		return "", ErrMissingCredential
	}

	cfg := openai.DefaultConfig(credential)
	cfg.BaseURL = c.baseURL
	client := openai.NewClientWithConfig(cfg)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: instruction},
		},
		// Bias the service toward emitting a bare JSON object.
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.1,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			log.Printf("dashscope request failed: status=%d message=%s", apiErr.HTTPStatusCode, apiErr.Message)
			return "", fmt.Errorf("%w: %s", ErrUpstreamError, apiErr.Message)
		}
		log.Printf("dashscope request failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrUpstreamError, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("dashscope returned an unexpected envelope: %+v", resp)
		return "", ErrMalformedEnvelope
	}
	return resp.Choices[0].Message.Content, nil
}
