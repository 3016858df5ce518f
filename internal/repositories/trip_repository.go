package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripflow/internal/models/db_models"
)

// TripRepository is the persisted record store for itineraries: insert,
// select by owner, select by id, delete. The plan payload passes through
// whole; nothing here looks inside it.
type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.Trip) (uuid.UUID, error)
	ListByUser(ctx context.Context, userId string) ([]db_models.Trip, error)
	FindByIdForUser(ctx context.Context, tripId, userId string) (*db_models.Trip, error)
	Delete(ctx context.Context, tripId, userId string) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{
		db: db,
	}
}

func (r *tripRepository) Insert(ctx context.Context, trip *db_models.Trip) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(trip).Error; err != nil {
		return uuid.Nil, err
	}
	return trip.ID, nil
}

func (r *tripRepository) ListByUser(ctx context.Context, userId string) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) FindByIdForUser(ctx context.Context, tripId, userId string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", tripId, userId).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) Delete(ctx context.Context, tripId, userId string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", tripId, userId).
		Delete(&db_models.Trip{}).Error
}
