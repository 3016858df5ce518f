package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chatUpstream fakes the OpenAI-compatible completion endpoint: every request
// gets the same assistant message content back.
func chatUpstream(t *testing.T, calls *atomic.Int32, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		resp := map[string]any{
			"id":    "chatcmpl-test",
			"model": "qwen-plus",
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]any{
						"role":    "assistant",
						"content": content,
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestGeneratePlanMissingCredentialSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	srv := chatUpstream(t, &calls, "{}")
	defer srv.Close()

	client := NewDashScopeClient("", srv.URL)
	_, err := client.GeneratePlan(context.Background(), "prompt", "  ")

	assert.ErrorIs(t, err, ErrMissingCredential)
	assert.Zero(t, calls.Load())
}

func TestGeneratePlanParsesEnvelopeContent(t *testing.T) {
	var calls atomic.Int32
	srv := chatUpstream(t, &calls, `{"title":"Beijing Weekend","budget":{"total":1500,"breakdown":[]},"days":[]}`)
	defer srv.Close()

	client := NewDashScopeClient("", srv.URL)
	plan, err := client.GeneratePlan(context.Background(), "prompt", "sk-test")

	require.NoError(t, err)
	assert.Equal(t, "Beijing Weekend", plan.Title)
	assert.Equal(t, float64(1500), plan.Budget.Total)
	assert.Empty(t, plan.Days)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGeneratePlanTrimsWhitespaceAroundJSON(t *testing.T) {
	var calls atomic.Int32
	srv := chatUpstream(t, &calls, "\n  {\"title\":\"Trimmed\",\"budget\":{\"total\":0,\"breakdown\":[]},\"days\":[]}  \n")
	defer srv.Close()

	client := NewDashScopeClient("", srv.URL)
	plan, err := client.GeneratePlan(context.Background(), "prompt", "sk-test")

	require.NoError(t, err)
	assert.Equal(t, "Trimmed", plan.Title)
}

func TestGeneratePlanRejectsNonJSONContent(t *testing.T) {
	var calls atomic.Int32
	srv := chatUpstream(t, &calls, "Sure! Here is your plan: ...")
	defer srv.Close()

	client := NewDashScopeClient("", srv.URL)
	_, err := client.GeneratePlan(context.Background(), "prompt", "sk-test")

	assert.ErrorIs(t, err, ErrInvalidPlanJSON)
}

func TestGeneratePlanRejectsStructurallyInvalidPlan(t *testing.T) {
	var calls atomic.Int32
	// Parses fine but violates the plan grammar: empty title.
	srv := chatUpstream(t, &calls, `{"title":"","budget":{"total":100,"breakdown":[]},"days":[]}`)
	defer srv.Close()

	client := NewDashScopeClient("", srv.URL)
	_, err := client.GeneratePlan(context.Background(), "prompt", "sk-test")

	assert.ErrorIs(t, err, ErrInvalidPlanJSON)
}

func TestGeneratePlanUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limit exceeded","type":"requests"}}`))
	}))
	defer srv.Close()

	client := NewDashScopeClient("", srv.URL)
	_, err := client.GeneratePlan(context.Background(), "prompt", "sk-test")

	assert.ErrorIs(t, err, ErrUpstreamError)
}

func TestGeneratePlanMalformedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"chatcmpl-test","choices":[]}`))
	}))
	defer srv.Close()

	client := NewDashScopeClient("", srv.URL)
	_, err := client.GeneratePlan(context.Background(), "prompt", "sk-test")

	assert.ErrorIs(t, err, ErrMalformedEnvelope)
}

func TestGeneratePlaceDetails(t *testing.T) {
	var calls atomic.Int32
	srv := chatUpstream(t, &calls, `{"description":"Historic palace complex.","location":{"lat":39.9163,"lng":116.3972},"details":{"address":"4 Jingshan Front St, Beijing"}}`)
	defer srv.Close()

	client := NewDashScopeClient("", srv.URL)
	details, err := client.GeneratePlaceDetails(context.Background(), "prompt", "sk-test")

	require.NoError(t, err)
	assert.Equal(t, "Historic palace complex.", details.Description)
	require.NotNil(t, details.Location)
	assert.InDelta(t, 39.9163, details.Location.Lat, 1e-9)
	require.NotNil(t, details.Details)
	assert.Equal(t, "4 Jingshan Front St, Beijing", details.Details.Address)
}

func TestGeneratePlaceDetailsMissingCredential(t *testing.T) {
	client := NewDashScopeClient("", "http://127.0.0.1:0")
	_, err := client.GeneratePlaceDetails(context.Background(), "prompt", "")
	assert.ErrorIs(t, err, ErrMissingCredential)
}
