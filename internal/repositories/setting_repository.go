package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripflow/internal/models/db_models"
)

// SettingRepository is the opaque key-value credential store: get returns
// the value or absent (""), set upserts. Values are never logged.
type SettingRepository interface {
	Get(ctx context.Context, userId, key string) (string, error)
	Set(ctx context.Context, userId, key, value string) error
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{
		db: db,
	}
}

func (r *settingRepository) Get(ctx context.Context, userId, key string) (string, error) {
	var setting db_models.Setting
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND key = ?", userId, key).
		First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return setting.Value, nil
}

func (r *settingRepository) Set(ctx context.Context, userId, key, value string) error {
	uid, err := uuid.Parse(userId)
	if err != nil {
		return err
	}
	setting := db_models.Setting{
		UserID: uid,
		Key:    key,
		Value:  value,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&setting).Error
}
