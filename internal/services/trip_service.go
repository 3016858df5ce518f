package services

import (
	"context"

	"tripflow/internal/models/db_models"
	"tripflow/internal/models/plan_models"
	"tripflow/internal/models/response_models"
	"tripflow/internal/repositories"
	"tripflow/pkg/utils"

	"github.com/google/uuid"
)

type TripServiceInterface interface {
	SaveTrip(ctx context.Context, userId, title string, plan plan_models.TripPlan) (string, error)
	ListTrips(ctx context.Context, userId string) ([]response_models.TripSummary, error)
	GetTrip(ctx context.Context, tripId, userId string) (*response_models.TripDetail, error)
	DeleteTrip(ctx context.Context, tripId, userId string) error
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
	}
}

func (t *TripService) SaveTrip(ctx context.Context, userId, title string, plan plan_models.TripPlan) (string, error) {
	if err := plan.Validate(); err != nil {
		return "", utils.ErrInvalidInput
	}
	uid, err := uuid.Parse(userId)
	if err != nil {
		return "", utils.ErrInvalidInput
	}
	if title == "" {
		title = plan.Title
	}

	trip := &db_models.Trip{
		UserID:       uid,
		Title:        title,
		Destinations: plan.Destinations,
		Plan:         plan,
	}
	id, err := t.tripRepo.Insert(ctx, trip)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	return id.String(), nil
}

func (t *TripService) ListTrips(ctx context.Context, userId string) ([]response_models.TripSummary, error) {
	trips, err := t.tripRepo.ListByUser(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripSummary, 0, len(trips))
	for _, trip := range trips {
		out = append(out, summarize(trip))
	}
	return out, nil
}

func (t *TripService) GetTrip(ctx context.Context, tripId, userId string) (*response_models.TripDetail, error) {
	trip, err := t.tripRepo.FindByIdForUser(ctx, tripId, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	return &response_models.TripDetail{
		TripSummary: summarize(*trip),
		Plan:        trip.Plan,
	}, nil
}

func (t *TripService) DeleteTrip(ctx context.Context, tripId, userId string) error {
	trip, err := t.tripRepo.FindByIdForUser(ctx, tripId, userId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}
	if err := t.tripRepo.Delete(ctx, tripId, userId); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func summarize(trip db_models.Trip) response_models.TripSummary {
	return response_models.TripSummary{
		ID:           trip.ID.String(),
		Title:        trip.Title,
		Destinations: trip.Destinations,
		CreatedAt:    utils.FormatRFC3339CN(utils.FromUnixSecondsCN(trip.CreatedAt)),
	}
}
