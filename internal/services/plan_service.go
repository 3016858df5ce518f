package services

import (
	"context"
	"log"
	"strings"

	"tripflow/internal/models/db_models"
	"tripflow/internal/models/plan_models"
	"tripflow/internal/repositories"
	"tripflow/pkg/utils"
)

// PlanServiceInterface is the generation pipeline: user text in, validated
// TripPlan out. One upstream attempt per call; every failure is terminal and
// typed, and the caller decides whether the user retries.
type PlanServiceInterface interface {
	GeneratePlan(ctx context.Context, userId, userText string) (*plan_models.TripPlan, error)
	GeneratePlaceDetails(ctx context.Context, userId, placeName, placeContext string) (*plan_models.PlaceDetails, error)
}

type PlanService struct {
	generator   utils.PlanGeneratorInterface
	settingRepo repositories.SettingRepository
}

func NewPlanService(
	generator utils.PlanGeneratorInterface,
	settingRepo repositories.SettingRepository,
) PlanServiceInterface {
	return &PlanService{
		generator:   generator,
		settingRepo: settingRepo,
	}
}

func (p *PlanService) GeneratePlan(ctx context.Context, userId, userText string) (*plan_models.TripPlan, error) {
	if strings.TrimSpace(userText) == "" {
		return nil, utils.ErrInvalidInput
	}

	credential, err := p.settingRepo.Get(ctx, userId, db_models.SettingDashScopeAPIKey)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if credential == "" {
		return nil, utils.ErrMissingCredential
	}

	instruction := BuildPlanPrompt(userText)

	// The request context flows into the upstream call, so an abandoned
	// request cancels the round trip instead of running to completion.
	plan, err := p.generator.GeneratePlan(ctx, instruction, credential)
	if err != nil {
		log.Printf("plan generation failed for user %s: %v", userId, err)
		return nil, err
	}
	return plan, nil
}

func (p *PlanService) GeneratePlaceDetails(ctx context.Context, userId, placeName, placeContext string) (*plan_models.PlaceDetails, error) {
	if strings.TrimSpace(placeName) == "" {
		return nil, utils.ErrInvalidInput
	}

	credential, err := p.settingRepo.Get(ctx, userId, db_models.SettingDashScopeAPIKey)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if credential == "" {
		return nil, utils.ErrMissingCredential
	}

	instruction := BuildPlaceDetailsPrompt(placeName, placeContext)

	details, err := p.generator.GeneratePlaceDetails(ctx, instruction, credential)
	if err != nil {
		log.Printf("place details lookup failed for user %s: %v", userId, err)
		return nil, err
	}
	return details, nil
}
